package curve

import (
	"fmt"

	"github.com/agbru/ecccalc/internal/bignum"
	apperrors "github.com/agbru/ecccalc/internal/errors"
	"github.com/agbru/ecccalc/internal/modular"
)

// Point is a projective point (X : Y : Z) together with the coefficients of
// its curve. Points are values; every operation returns a new Point.
//
// The zero Point has Z = 0 and is an identity that belongs to no curve:
// Add with it fails with ErrIncompatibleOperands.
type Point struct {
	x, y, z modular.Int
	a, b    modular.Int
}

// X returns the projective X coordinate.
func (p Point) X() modular.Int { return p.x }

// Y returns the projective Y coordinate.
func (p Point) Y() modular.Int { return p.y }

// Z returns the projective Z coordinate.
func (p Point) Z() modular.Int { return p.z }

// A returns the curve coefficient a.
func (p Point) A() modular.Int { return p.a }

// B returns the curve coefficient b.
func (p Point) B() modular.Int { return p.b }

// IsZero reports whether p is the identity, i.e. Z = 0.
func (p Point) IsZero() bool { return p.z.IsZero() }

// Identity returns the identity of p's curve, or the zero Point when p
// belongs to no curve.
func (p Point) Identity() Point {
	f := p.a.Field()
	if f == nil {
		return Point{}
	}
	return Point{x: f.Zero(), y: f.One(), z: f.Zero(), a: p.a, b: p.b}
}

// sameCurve compares (a, b, modulus). modular.Int.Equal covers the modulus.
func (p Point) sameCurve(q Point) bool {
	return p.a.Field() != nil && p.a.Equal(q.a) && p.b.Equal(q.b)
}

// IsOnCurve checks y²z = x³ + axz² + bz³. The identity is reported as not
// on the curve.
func (p Point) IsOnCurve() bool {
	if p.IsZero() {
		return false
	}
	var o fieldOps
	zz := o.mul(p.z, p.z)
	lhs := o.mul(o.mul(p.y, p.y), p.z)
	rhs := o.mul(o.mul(p.x, p.x), p.x)
	rhs = o.add(rhs, o.mul(o.mul(p.a, p.x), zz))
	rhs = o.add(rhs, o.mul(p.b, o.mul(zz, p.z)))
	return o.eq(lhs, rhs)
}

// Equal reports whether p and q are both the identity, or represent the
// same affine point on the same curve (x₁z₂ = x₂z₁ and y₁z₂ = y₂z₁).
func (p Point) Equal(q Point) bool {
	if p.IsZero() || q.IsZero() {
		return p.IsZero() && q.IsZero()
	}
	if !p.sameCurve(q) {
		return false
	}
	var o fieldOps
	return o.eq(o.mul(p.x, q.z), o.mul(q.x, p.z)) && o.eq(o.mul(p.y, q.z), o.mul(q.y, p.z))
}

// Neg returns -p, replacing Y with p - Y.
func (p Point) Neg() Point {
	return Point{x: p.x, y: p.y.Neg(), z: p.z, a: p.a, b: p.b}
}

// Double returns 2p. The identity and points with Y = 0 double to the
// identity.
func (p Point) Double() Point {
	if p.IsZero() || p.y.IsZero() {
		return p.Identity()
	}
	var o fieldOps
	zz := o.mul(p.z, p.z)
	xx := o.mul(p.x, p.x)
	t := o.add(o.add(o.double(xx), xx), o.mul(p.a, zz)) // 3x² + az²
	u := o.mul(o.double(p.y), p.z)                      // 2yz
	v := o.mul(o.mul(o.double(u), p.x), p.y)            // 2uxy
	w := o.sub(o.mul(t, t), o.double(v))                // t² - 2v
	uu := o.mul(u, u)
	yy := o.mul(p.y, p.y)

	r := Point{
		x: o.mul(u, w),
		y: o.sub(o.mul(t, o.sub(v, w)), o.mul(o.double(uu), yy)),
		z: o.mul(uu, u),
		a: p.a,
		b: p.b,
	}
	mustSucceed(o.err)
	return r
}

// Add returns p + q. It fails with ErrIncompatibleOperands when the points
// are on different curves.
func (p Point) Add(q Point) (Point, error) {
	if !p.sameCurve(q) {
		return Point{}, apperrors.NewArithmeticError("curve.Add", apperrors.ErrIncompatibleOperands)
	}
	return p.add(q), nil
}

// add assumes both points share a curve.
func (p Point) add(q Point) Point {
	if p.IsZero() {
		return q
	}
	if q.IsZero() {
		return p
	}
	var o fieldOps
	t0 := o.mul(p.y, q.z)
	t1 := o.mul(q.y, p.z)
	u0 := o.mul(p.x, q.z)
	u1 := o.mul(q.x, p.z)
	mustSucceed(o.err)
	if u0.Equal(u1) {
		if t0.Equal(t1) {
			return p.Double()
		}
		return p.Identity()
	}

	t := o.sub(t0, t1)
	u := o.sub(u0, u1)
	u2 := o.mul(u, u)
	v := o.mul(p.z, q.z)
	w := o.sub(o.mul(o.mul(t, t), v), o.mul(u2, o.add(u0, u1)))
	u3 := o.mul(u, u2)

	r := Point{
		x: o.mul(u, w),
		y: o.sub(o.mul(t, o.sub(o.mul(u0, u2), w)), o.mul(t0, u3)),
		z: o.mul(u3, v),
		a: p.a,
		b: p.b,
	}
	mustSucceed(o.err)
	return r
}

// Sub returns p - q.
func (p Point) Sub(q Point) (Point, error) {
	return p.Add(q.Neg())
}

// Affine returns (X/Z, Y/Z). It fails with ErrPointAtInfinity for the
// identity.
func (p Point) Affine() (x, y bignum.Nat, err error) {
	if p.IsZero() {
		return bignum.Nat{}, bignum.Nat{}, apperrors.NewArithmeticError("curve.Affine", apperrors.ErrPointAtInfinity)
	}
	zInv, err := p.z.Inverse()
	if err != nil {
		return bignum.Nat{}, bignum.Nat{}, err
	}
	var o fieldOps
	ax := o.mul(p.x, zInv)
	ay := o.mul(p.y, zInv)
	if o.err != nil {
		return bignum.Nat{}, bignum.Nat{}, o.err
	}
	return ax.Value(), ay.Value(), nil
}

// String formats p as "(x, y)" in affine coordinates, or "infinity".
func (p Point) String() string {
	x, y, err := p.Affine()
	if err != nil {
		return "infinity"
	}
	return fmt.Sprintf("(%s, %s)", x, y)
}

// mustSucceed panics when a formula mixed fields. Points built through a
// Curve share one field, so this only fires on corrupted values.
func mustSucceed(err error) {
	if err != nil {
		panic("curve: " + err.Error())
	}
}
