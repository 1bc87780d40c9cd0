package orchestration

import (
	"github.com/agbru/ecccalc/internal/bignum"
	"github.com/agbru/ecccalc/internal/curve"
	apperrors "github.com/agbru/ecccalc/internal/errors"
	"github.com/agbru/ecccalc/internal/modular"
	"github.com/agbru/ecccalc/internal/montgomery"
)

// Operands holds the decimal inputs of a numeric operation. Operations read
// only the fields they need.
type Operands struct {
	A, B, M string
}

type numericOp func(in Operands, cache *montgomery.Cache) (string, error)

func signedOp(apply func(a, b bignum.Int) (bignum.Int, error)) numericOp {
	return func(in Operands, _ *montgomery.Cache) (string, error) {
		a, err := bignum.ParseInt(in.A)
		if err != nil {
			return "", err
		}
		b, err := bignum.ParseInt(in.B)
		if err != nil {
			return "", err
		}
		r, err := apply(a, b)
		if err != nil {
			return "", err
		}
		return r.String(), nil
	}
}

func parseNats(values ...string) ([]bignum.Nat, error) {
	out := make([]bignum.Nat, len(values))
	for i, v := range values {
		n, err := bignum.ParseNat(v)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

var numericOps = map[string]numericOp{
	"add": signedOp(func(a, b bignum.Int) (bignum.Int, error) { return a.Add(b), nil }),
	"sub": signedOp(func(a, b bignum.Int) (bignum.Int, error) { return a.Sub(b), nil }),
	"mul": signedOp(func(a, b bignum.Int) (bignum.Int, error) { return a.Mul(b), nil }),
	"div": signedOp(bignum.Int.Quo),
	"mod": signedOp(bignum.Int.Rem),
	"gcd": func(in Operands, _ *montgomery.Cache) (string, error) {
		n, err := parseNats(in.A, in.B)
		if err != nil {
			return "", err
		}
		return bignum.GCD(n[0], n[1]).String(), nil
	},
	"inverse": func(in Operands, _ *montgomery.Cache) (string, error) {
		n, err := parseNats(in.A, in.M)
		if err != nil {
			return "", err
		}
		inv, err := bignum.ModInverse(n[0], n[1])
		if err != nil {
			return "", err
		}
		return inv.String(), nil
	},
	"modmul": func(in Operands, cache *montgomery.Cache) (string, error) {
		a, err := modular.Parse(in.A, in.M, cache)
		if err != nil {
			return "", err
		}
		b, err := a.Field().Parse(in.B)
		if err != nil {
			return "", err
		}
		r, err := a.Mul(b)
		if err != nil {
			return "", err
		}
		return r.String(), nil
	},
	"modexp": func(in Operands, cache *montgomery.Cache) (string, error) {
		a, err := modular.Parse(in.A, in.M, cache)
		if err != nil {
			return "", err
		}
		e, err := bignum.ParseNat(in.B)
		if err != nil {
			return "", err
		}
		return a.Exp(e).String(), nil
	},
}

// IsNumericOperation reports whether op is handled by Evaluate.
func IsNumericOperation(op string) bool {
	_, ok := numericOps[op]
	return ok
}

// Evaluate runs a numeric operation on decimal operands and returns the
// decimal result. Signed operations (add, sub, mul, div, mod) accept a
// leading minus sign; division truncates toward zero. The cache may be nil.
func Evaluate(op string, in Operands, cache *montgomery.Cache) (string, error) {
	fn, ok := numericOps[op]
	if !ok {
		return "", apperrors.ValidationError{Field: "op", Message: "unknown numeric operation " + op}
	}
	return fn(in, cache)
}

// VerifyPoint parses the affine coordinates (x, y), checks that they lie on
// c and that the generator's order annihilates the point.
func VerifyPoint(c *curve.Curve, x, y string) (curve.Point, error) {
	n, err := parseNats(x, y)
	if err != nil {
		return curve.Point{}, err
	}
	p, err := c.NewPoint(n[0], n[1])
	if err != nil {
		return curve.Point{}, err
	}
	if !p.Ladder(c.Order()).IsZero() {
		return curve.Point{}, apperrors.ValidationError{Field: "point", Message: "not in the subgroup generated by the base point"}
	}
	return p, nil
}
