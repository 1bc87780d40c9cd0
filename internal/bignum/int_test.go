package bignum

import (
	"errors"
	"testing"

	apperrors "github.com/agbru/ecccalc/internal/errors"
)

func TestParseInt(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in       string
		want     string
		sign     Sign
		wantErr  bool
		errIndex int
	}{
		{in: "0", want: "0", sign: Zero},
		{in: "-0", want: "0", sign: Zero},
		{in: "-000", want: "0", sign: Zero},
		{in: "42", want: "42", sign: Positive},
		{in: "-42", want: "-42", sign: Negative},
		{in: "-", wantErr: true, errIndex: 1},
		{in: "--1", wantErr: true, errIndex: 1},
		{in: "-1x", wantErr: true, errIndex: 2},
		{in: "+1", wantErr: true, errIndex: 0},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := ParseInt(tt.in)
			if tt.wantErr {
				var pe apperrors.ParseError
				if !errors.As(err, &pe) {
					t.Fatalf("ParseInt(%q) error = %v, want ParseError", tt.in, err)
				}
				if pe.Offset != tt.errIndex || pe.Input != tt.in {
					t.Errorf("ParseError = %+v, want offset %d in %q", pe, tt.errIndex, tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseInt(%q) unexpected error: %v", tt.in, err)
			}
			if got.String() != tt.want || got.Sign() != tt.sign {
				t.Errorf("ParseInt(%q) = %s (sign %d), want %s (sign %d)", tt.in, got, got.Sign(), tt.want, tt.sign)
			}
		})
	}
}

func TestIntSignInvariant(t *testing.T) {
	t.Parallel()
	five := NewInt(5)
	tests := []struct {
		name string
		got  Int
	}{
		{"5 - 5", five.Sub(five)},
		{"5 + -5", five.Add(five.Neg())},
		{"0 * -5", NewInt(0).Mul(five.Neg())},
		{"-1 >> 1", NewInt(-1).Rsh(1)},
		{"zero magnitude with sign", IntFromNat(Nat{}, Negative)},
	}

	for _, tt := range tests {
		if tt.got.Sign() != Zero || !tt.got.IsZero() || tt.got.String() != "0" {
			t.Errorf("%s = %s with sign %d, want canonical zero", tt.name, tt.got, tt.got.Sign())
		}
	}
	if IntFromNat(NatFromDigit(3), Zero).Sign() != Positive {
		t.Error("a Zero sign on a non-zero magnitude should read as Positive")
	}
}

func TestIntArithmetic(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		a, b string
		op   func(a, b Int) Int
		want string
	}{
		{"add positives", "52069158701248348990665441625155476344422",
			"8976025279197247334376783355988518174544216699351",
			Int.Add, "8976025331266406035625132346653959799699693043773"},
		{"add mixed signs", "52069159197247334376783301248348990",
			"-8976066544162515559888754763444222527518174544216699351",
			Int.Add, "-8976066544162515559836685604246975193141391242968350361"},
		{"sub negatives", "-97517531365945353460500986231467501975566488681897",
			"30165755786462904037747915978978091902166141872378",
			Int.Sub, "-127683287152408257498248902210445593877732630554275"},
		{"sub crossing zero", "3", "10", Int.Sub, "-7"},
		{"mul signs", "-12", "-12", Int.Mul, "144"},
		{"mul mixed", "-12", "12", Int.Mul, "-144"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := tt.op(MustParseInt(tt.a), MustParseInt(tt.b))
			if got.String() != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestIntQuoRem(t *testing.T) {
	t.Parallel()
	tests := []struct {
		a, b, q, r string
	}{
		{"7", "2", "3", "1"},
		{"-7", "2", "-3", "-1"},
		{"7", "-2", "-3", "1"},
		{"-7", "-2", "3", "-1"},
		{"-6", "3", "-2", "0"},
		{"1", "-5", "0", "1"},
	}

	for _, tt := range tests {
		q, r, err := MustParseInt(tt.a).QuoRem(MustParseInt(tt.b))
		if err != nil {
			t.Fatalf("%s / %s: %v", tt.a, tt.b, err)
		}
		if q.String() != tt.q || r.String() != tt.r {
			t.Errorf("%s / %s = (%s, %s), want (%s, %s)", tt.a, tt.b, q, r, tt.q, tt.r)
		}
	}

	if _, _, err := NewInt(1).QuoRem(Int{}); !errors.Is(err, apperrors.ErrDivisionByZero) {
		t.Errorf("division by zero error = %v", err)
	}
}

func TestIntCompareAndShift(t *testing.T) {
	t.Parallel()
	ordered := []Int{MustParseInt("-18446744073709551616"), NewInt(-3), {}, NewInt(2), MustParseInt("18446744073709551616")}
	for i := range ordered {
		for j := range ordered {
			want := 0
			if i < j {
				want = -1
			} else if i > j {
				want = 1
			}
			if got := ordered[i].Cmp(ordered[j]); got != want {
				t.Errorf("Cmp(%s, %s) = %d, want %d", ordered[i], ordered[j], got, want)
			}
		}
	}

	if got := NewInt(-3).Lsh(4).String(); got != "-48" {
		t.Errorf("-3 << 4 = %s", got)
	}
	if got := NewInt(-48).Rsh(4).String(); got != "-3" {
		t.Errorf("-48 >> 4 = %s", got)
	}
	if got := NewInt(-9).Abs().String(); got != "9" {
		t.Errorf("|-9| = %s", got)
	}
	if got := NewInt(-9223372036854775808).String(); got != "-9223372036854775808" {
		t.Errorf("NewInt(MinInt64) = %s", got)
	}
}
