// Package montgomery implements Montgomery multiplication (REDC) for a fixed
// odd modulus, replacing the division by N in a modular product with a
// mask and a shift by a power of two.
package montgomery

import (
	"github.com/agbru/ecccalc/internal/bignum"
	apperrors "github.com/agbru/ecccalc/internal/errors"
)

// Context holds the reduction parameters for one modulus N. It is immutable
// after New returns and safe for concurrent use.
type Context struct {
	n      bignum.Nat
	k      uint       // bit length of N; R = 2^k
	r      bignum.Nat // R
	mask   bignum.Nat // R - 1
	rModN  bignum.Nat // R mod N, the Montgomery form of 1
	r2ModN bignum.Nat // R² mod N
	rInv   bignum.Nat // R⁻¹ mod N
	factor bignum.Nat // N' = (R·R⁻¹ - 1) / N, so N·N' ≡ -1 (mod R)
}

var three = bignum.NatFromDigit(3)

// New precomputes the parameters for modulus n. It fails with
// ErrInvalidModulus when n is even or smaller than 3, since REDC needs N
// coprime to R.
func New(n bignum.Nat) (*Context, error) {
	if !n.IsOdd() || n.Less(three) {
		return nil, apperrors.NewArithmeticError("montgomery.New", apperrors.ErrInvalidModulus)
	}

	k := n.BitLen()
	r := bignum.NatFromDigit(1).Lsh(k)
	mask, err := r.Dec()
	if err != nil {
		return nil, err
	}
	rModN, err := r.Mod(n)
	if err != nil {
		return nil, err
	}
	r2ModN, err := rModN.Mul(rModN).Mod(n)
	if err != nil {
		return nil, err
	}
	rInv, err := bignum.ModInverse(rModN, n)
	if err != nil {
		return nil, apperrors.NewArithmeticError("montgomery.New", apperrors.ErrInvalidModulus)
	}
	rrInv, err := r.Mul(rInv).Dec()
	if err != nil {
		return nil, err
	}
	factor, err := rrInv.Div(n)
	if err != nil {
		return nil, err
	}

	return &Context{
		n:      n,
		k:      k,
		r:      r,
		mask:   mask,
		rModN:  rModN,
		r2ModN: r2ModN,
		rInv:   rInv,
		factor: factor,
	}, nil
}

// Reduce is the REDC step: it returns x·R⁻¹ mod N for x < R·N.
//
//	m = ((x mod R) · N') mod R
//	t = (x + m·N) / R
//
// followed by a single conditional subtraction of N.
func (c *Context) Reduce(x bignum.Nat) bignum.Nat {
	m := x.And(c.mask).Mul(c.factor).And(c.mask)
	t := x.Add(m.Mul(c.n)).Rsh(c.k)
	if t.GreaterOrEqual(c.n) {
		t, _ = t.Sub(c.n)
	}
	return t
}

// ToMontgomery returns a·R mod N for a < N.
func (c *Context) ToMontgomery(a bignum.Nat) bignum.Nat {
	return c.Reduce(a.Mul(c.r2ModN))
}

// FromMontgomery returns the ordinary residue of a Montgomery-form value.
func (c *Context) FromMontgomery(aM bignum.Nat) bignum.Nat {
	return c.Reduce(aM)
}

// MulMontgomery multiplies two Montgomery-form values and keeps the result
// in Montgomery form.
func (c *Context) MulMontgomery(aM, bM bignum.Nat) bignum.Nat {
	return c.Reduce(aM.Mul(bM))
}

// Multiply returns a·b mod N. Operands already below N never go through a
// division by N; larger operands are reduced once first.
func (c *Context) Multiply(a, b bignum.Nat) bignum.Nat {
	a, b = c.inRange(a), c.inRange(b)
	aM := c.ToMontgomery(a)
	bM := c.ToMontgomery(b)
	return c.FromMontgomery(c.MulMontgomery(aM, bM))
}

// Exp returns base^e mod N by left-to-right square-and-multiply inside the
// Montgomery domain.
func (c *Context) Exp(base, e bignum.Nat) bignum.Nat {
	xM := c.ToMontgomery(c.inRange(base))
	acc := c.rModN
	for i := int(e.BitLen()) - 1; i >= 0; i-- {
		acc = c.MulMontgomery(acc, acc)
		if e.Bit(uint(i)) == 1 {
			acc = c.MulMontgomery(acc, xM)
		}
	}
	return c.FromMontgomery(acc)
}

func (c *Context) inRange(a bignum.Nat) bignum.Nat {
	if a.Less(c.n) {
		return a
	}
	r, _ := a.Mod(c.n)
	return r
}

// Modulus returns N.
func (c *Context) Modulus() bignum.Nat { return c.n }

// ReducerBits returns k, with R = 2^k.
func (c *Context) ReducerBits() uint { return c.k }

// R returns the reducer 2^k.
func (c *Context) R() bignum.Nat { return c.r }

// RModN returns R mod N.
func (c *Context) RModN() bignum.Nat { return c.rModN }

// R2ModN returns R² mod N.
func (c *Context) R2ModN() bignum.Nat { return c.r2ModN }

// RInverse returns R⁻¹ mod N.
func (c *Context) RInverse() bignum.Nat { return c.rInv }

// Factor returns the REDC factor N'.
func (c *Context) Factor() bignum.Nat { return c.factor }
