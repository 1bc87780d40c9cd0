package curve

import (
	"context"

	"github.com/agbru/ecccalc/internal/bignum"
	"github.com/agbru/ecccalc/internal/progress"
)

// ScalarMul returns k·p using right-to-left double-and-add: for each bit of
// k from the least significant, add the running point into the accumulator
// when the bit is set, then double the running point. It performs
// BitLen(k) iterations; k = 0 yields the identity.
func (p Point) ScalarMul(k bignum.Nat) Point {
	r, _ := p.ScalarMulProgress(context.Background(), k, nil)
	return r
}

// ScalarMulProgress is ScalarMul with cancellation and progress reporting.
// ctx is checked once per bit; progress, when non-nil, receives the fraction
// of bits processed.
func (p Point) ScalarMulProgress(ctx context.Context, k bignum.Nat, cb progress.ProgressCallback) (Point, error) {
	n := k.BitLen()
	report := progress.StepReporter(cb, n)
	acc := p.Identity()
	run := p
	for i := uint(0); i < n; i++ {
		if err := ctx.Err(); err != nil {
			return Point{}, err
		}
		if k.Bit(i) == 1 {
			acc = acc.add(run)
		}
		run = run.Double()
		if report != nil {
			report(i + 1)
		}
	}
	return acc, nil
}

// Ladder returns k·p using the Montgomery ladder, which performs one
// addition and one doubling per bit whatever its value. The point
// operations themselves still branch on their inputs.
func (p Point) Ladder(k bignum.Nat) Point {
	r, _ := p.LadderProgress(context.Background(), k, nil)
	return r
}

// LadderProgress is Ladder with cancellation and progress reporting.
func (p Point) LadderProgress(ctx context.Context, k bignum.Nat, cb progress.ProgressCallback) (Point, error) {
	n := k.BitLen()
	report := progress.StepReporter(cb, n)
	r0 := p.Identity()
	r1 := p
	for i := n; i > 0; i-- {
		if err := ctx.Err(); err != nil {
			return Point{}, err
		}
		if k.Bit(i-1) == 0 {
			r1 = r0.add(r1)
			r0 = r0.Double()
		} else {
			r0 = r0.add(r1)
			r1 = r1.Double()
		}
		if report != nil {
			report(n - i + 1)
		}
	}
	return r0, nil
}
