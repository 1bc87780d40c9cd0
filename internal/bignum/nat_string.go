package bignum

import (
	"strconv"
	"strings"

	apperrors "github.com/agbru/ecccalc/internal/errors"
)

// Decimal conversion works on 10^9 chunks, the largest power of ten that
// fits in a Digit.
const (
	decChunk       = 1_000_000_000
	decChunkDigits = 9
)

// String returns the base-10 representation of x.
func (x Nat) String() string {
	if x.IsZero() {
		return "0"
	}
	var chunks []Digit
	q := x.d
	for len(q) > 0 {
		var r Digit
		q, r = divDigit(q, decChunk)
		chunks = append(chunks, r)
	}

	var sb strings.Builder
	sb.Grow(len(chunks) * decChunkDigits)
	sb.WriteString(strconv.FormatUint(uint64(chunks[len(chunks)-1]), 10))
	for i := len(chunks) - 2; i >= 0; i-- {
		part := strconv.FormatUint(uint64(chunks[i]), 10)
		sb.WriteString(strings.Repeat("0", decChunkDigits-len(part)))
		sb.WriteString(part)
	}
	return sb.String()
}

// ParseNat parses a base-10 string of ASCII digits. Signs, whitespace and
// any other character are rejected with a ParseError; leading zeros are
// accepted.
func ParseNat(s string) (Nat, error) {
	if s == "" {
		return Nat{}, apperrors.ParseError{}
	}
	var z []Digit
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch < '0' || ch > '9' {
			return Nat{}, apperrors.ParseError{Input: s, Offset: i}
		}
		if c := mulAddVWW(z, z, 10, Digit(ch-'0')); c != 0 {
			z = append(z, c)
		}
	}
	return Nat{d: norm(z)}, nil
}

// MustParseNat is like ParseNat but panics on malformed input. It is meant
// for constants.
func MustParseNat(s string) Nat {
	x, err := ParseNat(s)
	if err != nil {
		panic("bignum: " + err.Error())
	}
	return x
}

// MarshalText implements encoding.TextMarshaler.
func (x Nat) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (x *Nat) UnmarshalText(text []byte) error {
	v, err := ParseNat(string(text))
	if err != nil {
		return err
	}
	*x = v
	return nil
}
