package orchestration

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/agbru/ecccalc/internal/bignum"
	"github.com/agbru/ecccalc/internal/curve"
	apperrors "github.com/agbru/ecccalc/internal/errors"
	"github.com/agbru/ecccalc/internal/progress"
)

// Multiplier computes k·P with one particular strategy.
type Multiplier interface {
	// Name identifies the strategy on the command line and in reports.
	Name() string
	// Multiply returns k·p. cb may be nil.
	Multiply(ctx context.Context, p curve.Point, k bignum.Nat, cb progress.ProgressCallback) (curve.Point, error)
}

// DoubleAndAdd is right-to-left binary scalar multiplication.
type DoubleAndAdd struct{}

// Name implements Multiplier.
func (DoubleAndAdd) Name() string { return "double-and-add" }

// Multiply implements Multiplier.
func (DoubleAndAdd) Multiply(ctx context.Context, p curve.Point, k bignum.Nat, cb progress.ProgressCallback) (curve.Point, error) {
	return p.ScalarMulProgress(ctx, k, cb)
}

// Ladder is the Montgomery ladder.
type Ladder struct{}

// Name implements Multiplier.
func (Ladder) Name() string { return "ladder" }

// Multiply implements Multiplier.
func (Ladder) Multiply(ctx context.Context, p curve.Point, k bignum.Nat, cb progress.ProgressCallback) (curve.Point, error) {
	return p.LadderProgress(ctx, k, cb)
}

// DefaultRepeatedAdditionLimit bounds the scalars RepeatedAddition accepts.
const DefaultRepeatedAdditionLimit = 1 << 20

// RepeatedAddition adds P to itself k times. It is linear in k and only
// accepts scalars up to Limit; it exists to cross-check the other
// strategies on small inputs.
type RepeatedAddition struct {
	Limit uint64
}

// Name implements Multiplier.
func (RepeatedAddition) Name() string { return "repeated-addition" }

func (r RepeatedAddition) limit() uint64 {
	if r.Limit == 0 {
		return DefaultRepeatedAdditionLimit
	}
	return r.Limit
}

// Accepts implements ScalarLimiter.
func (r RepeatedAddition) Accepts(k bignum.Nat) bool {
	n, ok := k.Uint64()
	return ok && n <= r.limit()
}

// Multiply implements Multiplier.
func (r RepeatedAddition) Multiply(ctx context.Context, p curve.Point, k bignum.Nat, cb progress.ProgressCallback) (curve.Point, error) {
	limit := r.limit()
	n, ok := k.Uint64()
	if !ok || n > limit {
		return curve.Point{}, apperrors.ValidationError{
			Field:   "k",
			Message: fmt.Sprintf("repeated-addition accepts scalars up to %d", limit),
		}
	}

	const checkEvery = 1024
	acc := p.Identity()
	for i := uint64(0); i < n; i++ {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return curve.Point{}, err
			}
			if cb != nil {
				cb(float64(i) / float64(n))
			}
		}
		var err error
		if acc, err = acc.Add(p); err != nil {
			return curve.Point{}, err
		}
	}
	if cb != nil {
		cb(1.0)
	}
	return acc, nil
}

// Registry holds the available strategies by name.
type Registry struct {
	mu          sync.RWMutex
	multipliers map[string]Multiplier
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{multipliers: make(map[string]Multiplier)}
}

// NewDefaultRegistry returns a registry with every built-in strategy.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(DoubleAndAdd{})
	r.Register(Ladder{})
	r.Register(RepeatedAddition{})
	return r
}

// Register adds or replaces a strategy.
func (r *Registry) Register(m Multiplier) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.multipliers[m.Name()] = m
}

// List returns the registered names in sorted order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.multipliers))
	for name := range r.multipliers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get returns the named strategy.
func (r *Registry) Get(name string) (Multiplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.multipliers[name]
	if !ok {
		return nil, fmt.Errorf("unknown strategy %q", name)
	}
	return m, nil
}

// GetAll returns every strategy, sorted by name.
func (r *Registry) GetAll() []Multiplier {
	names := r.List()
	out := make([]Multiplier, 0, len(names))
	for _, name := range names {
		if m, err := r.Get(name); err == nil {
			out = append(out, m)
		}
	}
	return out
}
