package bignum

import (
	"errors"
	"testing"

	apperrors "github.com/agbru/ecccalc/internal/errors"
)

func TestEuclidean(t *testing.T) {
	t.Parallel()
	tests := []struct {
		u, v, gcd string
	}{
		{"13", "17", "1"},
		{"240", "46", "2"},
		{"0", "9", "9"},
		{"9", "0", "9"},
		{"0", "0", "0"},
		{"-240", "46", "2"},
		{"115792089210356248762697446949407573530086143415290314195533631308867097853951",
			"48439561293906451759052585252797914202762949526041747995844080717082404635286", "1"},
	}

	for _, tt := range tests {
		t.Run(tt.u+","+tt.v, func(t *testing.T) {
			t.Parallel()
			u, v := MustParseInt(tt.u), MustParseInt(tt.v)
			g, x, y := Euclidean(u, v)
			if g.String() != tt.gcd {
				t.Errorf("gcd = %s, want %s", g, tt.gcd)
			}
			if lhs := u.Mul(x).Add(v.Mul(y)); !lhs.Equal(g) {
				t.Errorf("%s*%s + %s*%s = %s, want %s", u, x, v, y, lhs, g)
			}
		})
	}
}

func TestModInverse(t *testing.T) {
	t.Parallel()
	tests := []struct {
		a, m, want string
		wantErr    error
	}{
		{a: "3", m: "7", want: "5"},
		{a: "13", m: "17", want: "4"},
		{a: "20", m: "17", want: "6"},
		{a: "1", m: "1", want: "0"},
		{a: "6", m: "9", wantErr: apperrors.ErrNotInvertible},
		{a: "0", m: "9", wantErr: apperrors.ErrNotInvertible},
		{a: "5", m: "0", wantErr: apperrors.ErrDivisionByZero},
	}

	for _, tt := range tests {
		got, err := ModInverse(MustParseNat(tt.a), MustParseNat(tt.m))
		if tt.wantErr != nil {
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ModInverse(%s, %s) error = %v, want %v", tt.a, tt.m, err, tt.wantErr)
			}
			continue
		}
		if err != nil || got.String() != tt.want {
			t.Errorf("ModInverse(%s, %s) = %s, %v; want %s", tt.a, tt.m, got, err, tt.want)
		}
	}
}

func TestGCD(t *testing.T) {
	t.Parallel()
	if got := GCD(MustParseNat("240"), MustParseNat("46")).String(); got != "2" {
		t.Errorf("GCD(240, 46) = %s", got)
	}
	if got := GCD(Nat{}, MustParseNat("46")).String(); got != "46" {
		t.Errorf("GCD(0, 46) = %s", got)
	}
}
