package orchestration

import "github.com/agbru/ecccalc/internal/bignum"

// SelectMultipliers returns the strategies to run for algo: every
// registered strategy for "all", otherwise the named one. The result is
// empty for an unknown name.
func SelectMultipliers(algo string, registry *Registry) []Multiplier {
	if algo == "all" {
		return registry.GetAll()
	}
	if m, err := registry.Get(algo); err == nil {
		return []Multiplier{m}
	}
	return nil
}

// ScalarLimiter is implemented by strategies that only accept some scalars.
type ScalarLimiter interface {
	Accepts(k bignum.Nat) bool
}

// FilterApplicable drops the strategies that declare they cannot handle k.
// It is used for comparison runs, where a strategy that would only fail
// validation adds noise rather than a cross-check.
func FilterApplicable(multipliers []Multiplier, k bignum.Nat) []Multiplier {
	out := make([]Multiplier, 0, len(multipliers))
	for _, m := range multipliers {
		if l, ok := m.(ScalarLimiter); ok && !l.Accepts(k) {
			continue
		}
		out = append(out, m)
	}
	return out
}
