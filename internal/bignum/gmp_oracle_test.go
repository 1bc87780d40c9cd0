//go:build gmp

package bignum

import (
	"math/rand/v2"
	"testing"

	"github.com/ncw/gmp"
)

// TestAgainstGMP cross-checks multiplication and division with libgmp on
// operands much larger than the property tests use. Run with -tags gmp.
func TestAgainstGMP(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	randomNat := func(digits int) Nat {
		ds := make([]Digit, digits)
		for i := range ds {
			ds[i] = Digit(rng.Uint32())
		}
		return NatFromDigits(ds)
	}
	toGMP := func(x Nat) *gmp.Int {
		z, ok := new(gmp.Int).SetString(x.String(), 10)
		if !ok {
			t.Fatalf("gmp rejected %s", x)
		}
		return z
	}

	for i := 0; i < 200; i++ {
		a := randomNat(1 + rng.IntN(64))
		b := randomNat(1 + rng.IntN(32))
		if b.IsZero() {
			continue
		}

		prod := a.Mul(b)
		wantProd := new(gmp.Int).Mul(toGMP(a), toGMP(b))
		if prod.String() != wantProd.String() {
			t.Fatalf("Mul mismatch for %s * %s", a, b)
		}

		q, r, err := prod.Add(a).DivMod(b)
		if err != nil {
			t.Fatal(err)
		}
		wantQ, wantR := new(gmp.Int).QuoRem(toGMP(prod.Add(a)), toGMP(b), new(gmp.Int))
		if q.String() != wantQ.String() || r.String() != wantR.String() {
			t.Fatalf("DivMod mismatch for (%s) / %s", prod.Add(a), b)
		}
	}
}
