package bignum

import apperrors "github.com/agbru/ecccalc/internal/errors"

// Euclidean runs the extended Euclidean algorithm and returns g, x and y
// such that u*x + v*y = g. When both inputs are non-negative, g is their
// greatest common divisor. g is never negative: if the recursion ends on a
// negative value, all three results are negated.
//
// The recursion depth is bounded by O(log min(|u|, |v|)).
func Euclidean(u, v Int) (gcd, x, y Int) {
	gcd, x, y = euclid(u, v)
	if gcd.IsNegative() {
		return gcd.Neg(), x.Neg(), y.Neg()
	}
	return gcd, x, y
}

func euclid(u, v Int) (gcd, x, y Int) {
	if u.IsZero() {
		return makeInt(v.sign, v.mag.clone()), Int{}, NewInt(1)
	}
	q, r, _ := v.QuoRem(u)
	gcd, x1, y1 := euclid(r, u)
	return gcd, y1.Sub(q.Mul(x1)), x1
}

// ModInverse returns the inverse of a modulo m in [0, m). It fails with
// ErrDivisionByZero when m is zero and ErrNotInvertible when a and m share a
// factor.
func ModInverse(a, m Nat) (Nat, error) {
	if m.IsZero() {
		return Nat{}, apperrors.NewArithmeticError("ModInverse", apperrors.ErrDivisionByZero)
	}
	g, x, _ := Euclidean(makeInt(Positive, a.clone()), makeInt(Positive, m.clone()))
	if !g.Equal(NewInt(1)) {
		return Nat{}, apperrors.NewArithmeticError("ModInverse", apperrors.ErrNotInvertible)
	}
	mi := makeInt(Positive, m.clone())
	x, _ = x.Rem(mi)
	if x.IsNegative() {
		x = x.Add(mi)
	}
	return x.mag.clone(), nil
}

// GCD returns the greatest common divisor of a and b. GCD(0, 0) is 0.
func GCD(a, b Nat) Nat {
	for !b.IsZero() {
		r, _ := a.Mod(b)
		a, b = b, r
	}
	return a.clone()
}
