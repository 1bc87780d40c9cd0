// Package modular implements arithmetic on residues modulo an odd integer.
// Addition and subtraction use weak reduction (at most one subtraction of
// the modulus); multiplication goes through the field's Montgomery context.
package modular

import (
	"github.com/agbru/ecccalc/internal/bignum"
	"github.com/agbru/ecccalc/internal/montgomery"
)

// Field is the set of residues modulo an odd modulus together with the
// Montgomery context used for its multiplications.
type Field struct {
	modulus bignum.Nat
	mont    *montgomery.Context
}

// NewField returns the field for modulus. When cache is non-nil the
// Montgomery context comes from (and is stored in) it; otherwise a private
// context is built. The modulus must be odd and at least 3.
func NewField(modulus bignum.Nat, cache *montgomery.Cache) (*Field, error) {
	var (
		ctx *montgomery.Context
		err error
	)
	if cache != nil {
		ctx, err = cache.Get(modulus)
	} else {
		ctx, err = montgomery.New(modulus)
	}
	if err != nil {
		return nil, err
	}
	return &Field{modulus: modulus, mont: ctx}, nil
}

// New returns v reduced modulo the field's modulus.
func (f *Field) New(v bignum.Nat) Int {
	if v.GreaterOrEqual(f.modulus) {
		v, _ = v.Mod(f.modulus)
	}
	return Int{value: v, field: f}
}

// Parse parses a base-10 value and reduces it.
func (f *Field) Parse(s string) (Int, error) {
	v, err := bignum.ParseNat(s)
	if err != nil {
		return Int{}, err
	}
	return f.New(v), nil
}

// FromInt maps a signed integer into the field, so -1 becomes modulus-1.
func (f *Field) FromInt(v bignum.Int) Int {
	r := f.New(v.Magnitude())
	if v.IsNegative() {
		return r.Neg()
	}
	return r
}

// Zero returns the residue 0.
func (f *Field) Zero() Int { return Int{field: f} }

// One returns the residue 1.
func (f *Field) One() Int { return Int{value: bignum.NatFromDigit(1), field: f} }

// Modulus returns the field's modulus.
func (f *Field) Modulus() bignum.Nat { return f.modulus }

// Context returns the Montgomery context used for multiplication.
func (f *Field) Context() *montgomery.Context { return f.mont }

// Equal reports whether f and g have the same modulus.
func (f *Field) Equal(g *Field) bool {
	if f == nil || g == nil {
		return f == g
	}
	return f == g || f.modulus.Equal(g.modulus)
}
