package bignum

import (
	"math/bits"

	apperrors "github.com/agbru/ecccalc/internal/errors"
)

// Nat is an arbitrary-precision unsigned integer. The zero value is 0.
//
// Internally zero is held as an empty digit slice; Digits reports it as the
// single digit 0.
type Nat struct {
	d []Digit
}

// NatFromDigit returns the one-digit value d.
func NatFromDigit(d Digit) Nat {
	if d == 0 {
		return Nat{}
	}
	return Nat{d: []Digit{d}}
}

// NatFromDigits returns the value of a little-endian digit sequence. The
// input is copied and trimmed.
func NatFromDigits(ds []Digit) Nat {
	z := norm(ds)
	if len(z) == 0 {
		return Nat{}
	}
	return Nat{d: append([]Digit(nil), z...)}
}

// NatFromUint64 returns the value v.
func NatFromUint64(v uint64) Nat {
	return NatFromDigits([]Digit{Digit(v), Digit(v >> DigitBits)})
}

// Digits returns a copy of the little-endian digits of x. Zero is reported
// as []Digit{0}.
func (x Nat) Digits() []Digit {
	if len(x.d) == 0 {
		return []Digit{0}
	}
	return x.clone().d
}

// Uint64 returns x as a uint64 and reports whether it fits.
func (x Nat) Uint64() (uint64, bool) {
	switch len(x.d) {
	case 0:
		return 0, true
	case 1:
		return uint64(x.d[0]), true
	case 2:
		return uint64(x.d[1])<<DigitBits | uint64(x.d[0]), true
	}
	return 0, false
}

func (x Nat) clone() Nat {
	if len(x.d) == 0 {
		return Nat{}
	}
	return Nat{d: append([]Digit(nil), x.d...)}
}

// IsZero reports whether x == 0.
func (x Nat) IsZero() bool { return len(x.d) == 0 }

// IsOdd reports whether the lowest bit of x is set.
func (x Nat) IsOdd() bool { return len(x.d) > 0 && x.d[0]&1 == 1 }

// Cmp compares x and y and returns -1, 0 or +1.
func (x Nat) Cmp(y Nat) int {
	m, n := len(x.d), len(y.d)
	if m != n {
		if m < n {
			return -1
		}
		return 1
	}
	for i := m - 1; i >= 0; i-- {
		if x.d[i] != y.d[i] {
			if x.d[i] < y.d[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Equal reports whether x == y.
func (x Nat) Equal(y Nat) bool { return x.Cmp(y) == 0 }

// Less reports whether x < y.
func (x Nat) Less(y Nat) bool { return x.Cmp(y) < 0 }

// LessOrEqual reports whether x <= y.
func (x Nat) LessOrEqual(y Nat) bool { return x.Cmp(y) <= 0 }

// Greater reports whether x > y.
func (x Nat) Greater(y Nat) bool { return x.Cmp(y) > 0 }

// GreaterOrEqual reports whether x >= y.
func (x Nat) GreaterOrEqual(y Nat) bool { return x.Cmp(y) >= 0 }

// Inc returns x + 1.
func (x Nat) Inc() Nat {
	return x.Add(NatFromDigit(1))
}

// Dec returns x - 1. It fails with ErrUnderflow when x is zero.
func (x Nat) Dec() (Nat, error) {
	if x.IsZero() {
		return Nat{}, apperrors.NewArithmeticError("Nat.Dec", apperrors.ErrUnderflow)
	}
	z := make([]Digit, len(x.d))
	subVW(z, x.d, 1)
	return Nat{d: norm(z)}, nil
}

// Add returns x + y.
func (x Nat) Add(y Nat) Nat {
	m, n := len(x.d), len(y.d)
	if m < n {
		return y.Add(x)
	}
	if n == 0 {
		return x.clone()
	}
	z := make([]Digit, m+1)
	c := addVV(z[:n], x.d[:n], y.d)
	if m > n {
		c = addVW(z[n:m], x.d[n:], c)
	}
	z[m] = c
	return Nat{d: norm(z)}
}

// Sub returns x - y. It fails with ErrUnderflow when y > x.
func (x Nat) Sub(y Nat) (Nat, error) {
	if x.Less(y) {
		return Nat{}, apperrors.NewArithmeticError("Nat.Sub", apperrors.ErrUnderflow)
	}
	return x.sub(y), nil
}

// sub returns x - y for x >= y.
func (x Nat) sub(y Nat) Nat {
	m, n := len(x.d), len(y.d)
	if n == 0 {
		return x.clone()
	}
	z := make([]Digit, m)
	b := subVV(z[:n], x.d[:n], y.d)
	if m > n {
		subVW(z[n:], x.d[n:], b)
	}
	return Nat{d: norm(z)}
}

// Mul returns x * y using the schoolbook method.
func (x Nat) Mul(y Nat) Nat {
	m, n := len(x.d), len(y.d)
	if m == 0 || n == 0 {
		return Nat{}
	}
	z := make([]Digit, m+n)
	for i, yi := range y.d {
		if yi != 0 {
			z[m+i] = addMulVVW(z[i:i+m], x.d, yi)
		}
	}
	return Nat{d: norm(z)}
}

// mulDigit returns x*y + r.
func (x Nat) mulDigit(y, r Digit) Nat {
	z := make([]Digit, len(x.d)+1)
	z[len(x.d)] = mulAddVWW(z[:len(x.d)], x.d, y, r)
	return Nat{d: norm(z)}
}

// BitLen returns the 1-based index of the most significant set bit, or 0
// for zero.
func (x Nat) BitLen() uint {
	if len(x.d) == 0 {
		return 0
	}
	top := x.d[len(x.d)-1]
	return uint(len(x.d)-1)*DigitBits + uint(bits.Len32(uint32(top)))
}

// Bit returns the bit at index i (0 is the least significant bit).
func (x Nat) Bit(i uint) uint {
	j := i / DigitBits
	if j >= uint(len(x.d)) {
		return 0
	}
	return uint(x.d[j]>>(i%DigitBits)) & 1
}
