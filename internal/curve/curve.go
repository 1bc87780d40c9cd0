// Package curve implements projective point arithmetic on short Weierstrass
// curves y²z = x³ + axz² + bz³ over a prime field.
//
// A point with Z = 0 is the identity, whatever its X and Y. Points carry
// their curve coefficients, so two points can be checked for compatibility
// without a shared curve object.
package curve

import (
	"github.com/agbru/ecccalc/internal/bignum"
	apperrors "github.com/agbru/ecccalc/internal/errors"
	"github.com/agbru/ecccalc/internal/modular"
	"github.com/agbru/ecccalc/internal/montgomery"
)

// Curve binds a parameter set to its base field.
type Curve struct {
	params Params
	field  *modular.Field
	a, b   modular.Int
	g      Point
}

// NewCurve builds the field for params and validates the generator. The
// cache may be nil.
func NewCurve(params Params, cache *montgomery.Cache) (*Curve, error) {
	field, err := modular.NewField(params.P, cache)
	if err != nil {
		return nil, err
	}
	c := &Curve{
		params: params,
		field:  field,
		a:      field.New(params.A),
		b:      field.New(params.B),
	}
	g, err := c.NewPoint(params.Gx, params.Gy)
	if err != nil {
		return nil, apperrors.WrapError(err, "curve %s: generator", params.Name)
	}
	c.g = g
	return c, nil
}

// Params returns the curve parameters.
func (c *Curve) Params() Params { return c.params }

// Name returns the curve name.
func (c *Curve) Name() string { return c.params.Name }

// Field returns the base field.
func (c *Curve) Field() *modular.Field { return c.field }

// Order returns the order of the generator.
func (c *Curve) Order() bignum.Nat { return c.params.N }

// Generator returns the base point.
func (c *Curve) Generator() Point { return c.g }

// Identity returns the point at infinity (0 : 1 : 0).
func (c *Curve) Identity() Point {
	return Point{x: c.field.Zero(), y: c.field.One(), z: c.field.Zero(), a: c.a, b: c.b}
}

// NewPoint returns the affine point (x, y), reduced into the field. It fails
// with ErrNotOnCurve when the coordinates do not satisfy the equation.
func (c *Curve) NewPoint(x, y bignum.Nat) (Point, error) {
	p := Point{x: c.field.New(x), y: c.field.New(y), z: c.field.One(), a: c.a, b: c.b}
	if !p.IsOnCurve() {
		return Point{}, apperrors.NewArithmeticError("curve.NewPoint", apperrors.ErrNotOnCurve)
	}
	return p, nil
}

// NewProjectivePoint returns (x : y : z) without validating it.
func (c *Curve) NewProjectivePoint(x, y, z bignum.Nat) Point {
	return Point{x: c.field.New(x), y: c.field.New(y), z: c.field.New(z), a: c.a, b: c.b}
}
