package cli

import (
	"testing"

	"github.com/agbru/ecccalc/internal/bignum"
	"github.com/agbru/ecccalc/internal/curve"
	"github.com/agbru/ecccalc/internal/ui"
)

// toyCurve is y² = x³ + 2x + 2 over F17 with a generator of order 19.
var toyCurve = curve.Params{
	Name: "toy",
	P:    bignum.NatFromDigit(17),
	A:    bignum.NatFromDigit(2),
	B:    bignum.NatFromDigit(2),
	Gx:   bignum.NatFromDigit(5),
	Gy:   bignum.NatFromDigit(1),
	N:    bignum.NatFromDigit(19),
}

func newToyCurve(t *testing.T) *curve.Curve {
	t.Helper()
	c, err := curve.NewCurve(toyCurve, nil)
	if err != nil {
		t.Fatalf("NewCurve: %v", err)
	}
	return c
}

func newP256(t *testing.T) *curve.Curve {
	t.Helper()
	c, err := curve.NewCurve(curve.P256, nil)
	if err != nil {
		t.Fatalf("NewCurve: %v", err)
	}
	return c
}

// noColor switches to the colorless theme for the duration of the test.
func noColor(t *testing.T) {
	t.Helper()
	prev := ui.GetCurrentTheme()
	ui.SetCurrentTheme(ui.NoColorTheme)
	t.Cleanup(func() { ui.SetCurrentTheme(prev) })
}
