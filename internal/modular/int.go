package modular

import (
	"github.com/agbru/ecccalc/internal/bignum"
	apperrors "github.com/agbru/ecccalc/internal/errors"
	"github.com/agbru/ecccalc/internal/montgomery"
)

// Int is a residue 0 <= value < modulus bound to its Field. The zero Int
// belongs to no field and every binary operation on it fails with
// ErrIncompatibleOperands.
type Int struct {
	value bignum.Nat
	field *Field
}

// Parse builds a residue from decimal value and modulus strings, e.g.
// Parse("12", "23", nil). The value is reduced modulo the modulus.
func Parse(value, modulus string, cache *montgomery.Cache) (Int, error) {
	m, err := bignum.ParseNat(modulus)
	if err != nil {
		return Int{}, err
	}
	f, err := NewField(m, cache)
	if err != nil {
		return Int{}, err
	}
	return f.Parse(value)
}

func (x Int) compatible(op string, y Int) error {
	if x.field == nil || !x.field.Equal(y.field) {
		return apperrors.NewArithmeticError(op, apperrors.ErrIncompatibleOperands)
	}
	return nil
}

// Add returns x + y with weak reduction.
func (x Int) Add(y Int) (Int, error) {
	if err := x.compatible("modular.Add", y); err != nil {
		return Int{}, err
	}
	m := x.field.modulus
	s := x.value.Add(y.value)
	if s.GreaterOrEqual(m) {
		s, _ = s.Sub(m)
	}
	return Int{value: s, field: x.field}, nil
}

// Sub returns x - y, adding the modulus first when x < y.
func (x Int) Sub(y Int) (Int, error) {
	if err := x.compatible("modular.Sub", y); err != nil {
		return Int{}, err
	}
	a := x.value
	if a.Less(y.value) {
		a = a.Add(x.field.modulus)
	}
	d, _ := a.Sub(y.value)
	return Int{value: d, field: x.field}, nil
}

// Mul returns x * y computed with Montgomery multiplication.
func (x Int) Mul(y Int) (Int, error) {
	if err := x.compatible("modular.Mul", y); err != nil {
		return Int{}, err
	}
	return Int{value: x.field.mont.Multiply(x.value, y.value), field: x.field}, nil
}

// Square returns x * x.
func (x Int) Square() Int {
	if x.field == nil {
		return x
	}
	return Int{value: x.field.mont.Multiply(x.value, x.value), field: x.field}
}

// Neg returns -x.
func (x Int) Neg() Int {
	if x.field == nil || x.value.IsZero() {
		return x
	}
	v, _ := x.field.modulus.Sub(x.value)
	return Int{value: v, field: x.field}
}

// Exp returns x^e.
func (x Int) Exp(e bignum.Nat) Int {
	if x.field == nil {
		return x
	}
	return Int{value: x.field.mont.Exp(x.value, e), field: x.field}
}

// Inverse returns the multiplicative inverse of x. It fails with
// ErrNotInvertible when x shares a factor with the modulus, which for a
// prime field means x is zero.
func (x Int) Inverse() (Int, error) {
	if x.field == nil {
		return Int{}, apperrors.NewArithmeticError("modular.Inverse", apperrors.ErrIncompatibleOperands)
	}
	inv, err := bignum.ModInverse(x.value, x.field.modulus)
	if err != nil {
		return Int{}, apperrors.NewArithmeticError("modular.Inverse", apperrors.ErrNotInvertible)
	}
	return Int{value: inv, field: x.field}, nil
}

// Equal reports whether x and y hold the same value under the same
// modulus.
func (x Int) Equal(y Int) bool {
	return x.field.Equal(y.field) && x.value.Equal(y.value)
}

// Cmp orders x and y by value, ignoring the modulus.
func (x Int) Cmp(y Int) int { return x.value.Cmp(y.value) }

// Value returns the residue as a Nat.
func (x Int) Value() bignum.Nat { return x.value }

// Field returns the field x belongs to.
func (x Int) Field() *Field { return x.field }

// Modulus returns the modulus of x's field, or zero for the zero Int.
func (x Int) Modulus() bignum.Nat {
	if x.field == nil {
		return bignum.Nat{}
	}
	return x.field.modulus
}

// IsZero reports whether the residue is 0.
func (x Int) IsZero() bool { return x.value.IsZero() }

// String returns the residue in base 10.
func (x Int) String() string { return x.value.String() }
