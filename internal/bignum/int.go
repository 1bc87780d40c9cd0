package bignum

import (
	"errors"

	apperrors "github.com/agbru/ecccalc/internal/errors"
)

// Sign is the sign of an Int.
type Sign int8

const (
	Negative Sign = -1
	Zero     Sign = 0
	Positive Sign = 1
)

// Int is an arbitrary-precision signed integer: a sign and a Nat magnitude.
// The zero value is 0.
type Int struct {
	sign Sign
	mag  Nat
}

// makeInt is the only place an Int is assembled. It restores the invariant
// that sign is Zero exactly when the magnitude is zero. mag must not be
// shared with another value.
func makeInt(s Sign, mag Nat) Int {
	if mag.IsZero() {
		return Int{}
	}
	if s == Zero {
		s = Positive
	}
	return Int{sign: s, mag: mag}
}

// NewInt returns the value v.
func NewInt(v int64) Int {
	if v < 0 {
		return makeInt(Negative, NatFromUint64(uint64(-(v + 1))+1))
	}
	return makeInt(Positive, NatFromUint64(uint64(v)))
}

// IntFromNat returns mag with the given sign. A Zero sign on a non-zero
// magnitude is read as Positive.
func IntFromNat(mag Nat, s Sign) Int {
	return makeInt(s, mag.clone())
}

// ParseInt parses a base-10 string with an optional leading '-'.
func ParseInt(s string) (Int, error) {
	sign := Positive
	digits := s
	if len(s) > 0 && s[0] == '-' {
		sign = Negative
		digits = s[1:]
	}
	mag, err := ParseNat(digits)
	if err != nil {
		var pe apperrors.ParseError
		if sign == Negative && errors.As(err, &pe) {
			return Int{}, apperrors.ParseError{Input: s, Offset: pe.Offset + 1}
		}
		return Int{}, err
	}
	return makeInt(sign, mag), nil
}

// MustParseInt is like ParseInt but panics on malformed input.
func MustParseInt(s string) Int {
	x, err := ParseInt(s)
	if err != nil {
		panic("bignum: " + err.Error())
	}
	return x
}

// Sign returns the sign of x.
func (x Int) Sign() Sign { return x.sign }

// Magnitude returns |x| as a Nat.
func (x Int) Magnitude() Nat { return x.mag.clone() }

// IsZero reports whether x == 0.
func (x Int) IsZero() bool { return x.sign == Zero }

// IsNegative reports whether x < 0.
func (x Int) IsNegative() bool { return x.sign == Negative }

// Neg returns -x.
func (x Int) Neg() Int { return makeInt(-x.sign, x.mag.clone()) }

// Abs returns |x|.
func (x Int) Abs() Int { return makeInt(Positive, x.mag.clone()) }

// Cmp compares x and y and returns -1, 0 or +1.
func (x Int) Cmp(y Int) int {
	switch {
	case x.sign < y.sign:
		return -1
	case x.sign > y.sign:
		return 1
	case x.sign == Negative:
		return -x.mag.Cmp(y.mag)
	default:
		return x.mag.Cmp(y.mag)
	}
}

// Equal reports whether x == y.
func (x Int) Equal(y Int) bool { return x.Cmp(y) == 0 }

// Add returns x + y.
func (x Int) Add(y Int) Int {
	switch {
	case x.sign == Zero:
		return makeInt(y.sign, y.mag.clone())
	case y.sign == Zero:
		return makeInt(x.sign, x.mag.clone())
	case x.sign == y.sign:
		return makeInt(x.sign, x.mag.Add(y.mag))
	}
	switch x.mag.Cmp(y.mag) {
	case 0:
		return Int{}
	case 1:
		return makeInt(x.sign, x.mag.sub(y.mag))
	default:
		return makeInt(y.sign, y.mag.sub(x.mag))
	}
}

// Sub returns x - y.
func (x Int) Sub(y Int) Int {
	return x.Add(Int{sign: -y.sign, mag: y.mag})
}

// Mul returns x * y.
func (x Int) Mul(y Int) Int {
	return makeInt(x.sign*y.sign, x.mag.Mul(y.mag))
}

// QuoRem returns the truncated quotient and the remainder of x / y. The
// quotient's sign is the product of the operand signs; the remainder takes
// the sign of x. It fails with ErrDivisionByZero when y is zero.
func (x Int) QuoRem(y Int) (q, r Int, err error) {
	if y.IsZero() {
		return Int{}, Int{}, apperrors.NewArithmeticError("Int.QuoRem", apperrors.ErrDivisionByZero)
	}
	qm, rm, err := x.mag.DivMod(y.mag)
	if err != nil {
		return Int{}, Int{}, err
	}
	return makeInt(x.sign*y.sign, qm), makeInt(x.sign, rm), nil
}

// Quo returns x / y truncated toward zero.
func (x Int) Quo(y Int) (Int, error) {
	q, _, err := x.QuoRem(y)
	return q, err
}

// Rem returns the remainder of x / y, with the sign of x.
func (x Int) Rem(y Int) (Int, error) {
	_, r, err := x.QuoRem(y)
	return r, err
}

// Lsh returns x << n, keeping the sign.
func (x Int) Lsh(n uint) Int { return makeInt(x.sign, x.mag.Lsh(n)) }

// Rsh returns the magnitude of x shifted right by n, keeping the sign.
// Unlike an arithmetic shift, -1 >> 1 is 0.
func (x Int) Rsh(n uint) Int { return makeInt(x.sign, x.mag.Rsh(n)) }

// String returns the base-10 representation of x, with a leading '-' for
// negative values only.
func (x Int) String() string {
	if x.sign == Negative {
		return "-" + x.mag.String()
	}
	return x.mag.String()
}

// MarshalText implements encoding.TextMarshaler.
func (x Int) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (x *Int) UnmarshalText(text []byte) error {
	v, err := ParseInt(string(text))
	if err != nil {
		return err
	}
	*x = v
	return nil
}
