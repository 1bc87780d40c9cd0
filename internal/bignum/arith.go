package bignum

import "math/bits"

// Digit is one base 2^32 position of a Nat.
type Digit uint32

const (
	// DigitBits is the width of a Digit in bits.
	DigitBits = 32
	// DigitMax is the largest value a Digit can hold.
	DigitMax = 1<<DigitBits - 1
)

// The vector helpers below work on equal-length digit slices and carry in
// 64-bit accumulators. They mirror the addVV/subVV/mulAddVWW/addMulVVW/shlVU
// kernels of math/big but are written for 32-bit digits.

// addVV computes z = x + y and returns the carry.
func addVV(z, x, y []Digit) Digit {
	var c uint64
	for i := range z {
		s := uint64(x[i]) + uint64(y[i]) + c
		z[i] = Digit(s)
		c = s >> DigitBits
	}
	return Digit(c)
}

// addVW computes z = x + y for a single digit y and returns the carry.
func addVW(z, x []Digit, y Digit) Digit {
	c := uint64(y)
	for i := range z {
		s := uint64(x[i]) + c
		z[i] = Digit(s)
		c = s >> DigitBits
	}
	return Digit(c)
}

// subVV computes z = x - y and returns the borrow.
func subVV(z, x, y []Digit) Digit {
	var b uint64
	for i := range z {
		d := uint64(x[i]) - uint64(y[i]) - b
		z[i] = Digit(d)
		b = (d >> DigitBits) & 1
	}
	return Digit(b)
}

// subVW computes z = x - y for a single digit y and returns the borrow.
func subVW(z, x []Digit, y Digit) Digit {
	b := uint64(y)
	for i := range z {
		d := uint64(x[i]) - b
		z[i] = Digit(d)
		b = (d >> DigitBits) & 1
	}
	return Digit(b)
}

// mulAddVWW computes z = x*y + r and returns the carry.
func mulAddVWW(z, x []Digit, y, r Digit) Digit {
	c := uint64(r)
	for i := range z {
		t := uint64(x[i])*uint64(y) + c
		z[i] = Digit(t)
		c = t >> DigitBits
	}
	return Digit(c)
}

// addMulVVW computes z += x*y and returns the carry.
func addMulVVW(z, x []Digit, y Digit) Digit {
	var c uint64
	for i := range z {
		t := uint64(x[i])*uint64(y) + uint64(z[i]) + c
		z[i] = Digit(t)
		c = t >> DigitBits
	}
	return Digit(c)
}

// shlVU computes z = x << s for s < DigitBits and returns the bits shifted
// out of the top digit. z may alias x.
func shlVU(z, x []Digit, s uint) Digit {
	if len(x) == 0 {
		return 0
	}
	if s == 0 {
		copy(z, x)
		return 0
	}
	ŝ := DigitBits - s
	c := x[len(x)-1] >> ŝ
	for i := len(x) - 1; i > 0; i-- {
		z[i] = x[i]<<s | x[i-1]>>ŝ
	}
	z[0] = x[0] << s
	return c
}

// shrVU computes z = x >> s for s < DigitBits and returns the bits shifted
// out of the bottom digit, left-aligned. z may alias x.
func shrVU(z, x []Digit, s uint) Digit {
	if len(x) == 0 {
		return 0
	}
	if s == 0 {
		copy(z, x)
		return 0
	}
	ŝ := DigitBits - s
	c := x[0] << ŝ
	for i := 0; i < len(x)-1; i++ {
		z[i] = x[i]>>s | x[i+1]<<ŝ
	}
	z[len(x)-1] = x[len(x)-1] >> s
	return c
}

// nlz returns the number of leading zero bits of d.
func nlz(d Digit) uint {
	return uint(bits.LeadingZeros32(uint32(d)))
}

// norm drops leading zero digits.
func norm(z []Digit) []Digit {
	i := len(z)
	for i > 0 && z[i-1] == 0 {
		i--
	}
	return z[:i]
}
