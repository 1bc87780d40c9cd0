package bignum

import apperrors "github.com/agbru/ecccalc/internal/errors"

// DivMod returns the quotient and remainder of x / y, with x = q*y + r and
// r < y. It fails with ErrDivisionByZero when y is zero.
func (x Nat) DivMod(y Nat) (q, r Nat, err error) {
	if y.IsZero() {
		return Nat{}, Nat{}, apperrors.NewArithmeticError("Nat.DivMod", apperrors.ErrDivisionByZero)
	}
	if x.Less(y) {
		return Nat{}, x.clone(), nil
	}
	if len(y.d) == 1 {
		qd, rd := divDigit(x.d, y.d[0])
		return Nat{d: qd}, NatFromDigit(rd), nil
	}
	qd, rdig := divKnuth(x.d, y.d)
	return Nat{d: qd}, Nat{d: rdig}, nil
}

// Div returns x / y rounded toward zero.
func (x Nat) Div(y Nat) (Nat, error) {
	q, _, err := x.DivMod(y)
	return q, err
}

// Mod returns x mod y.
func (x Nat) Mod(y Nat) (Nat, error) {
	_, r, err := x.DivMod(y)
	return r, err
}

// divDigit is short division of x by a single non-zero digit.
func divDigit(x []Digit, y Digit) ([]Digit, Digit) {
	q := make([]Digit, len(x))
	var rem uint64
	for i := len(x) - 1; i >= 0; i-- {
		cur := rem<<DigitBits | uint64(x[i])
		q[i] = Digit(cur / uint64(y))
		rem = cur % uint64(y)
	}
	return norm(q), Digit(rem)
}

// divKnuth divides u by v using Algorithm D. It requires len(v) >= 2 and
// u >= v, and returns trimmed quotient and remainder digits.
func divKnuth(u, v []Digit) (q, r []Digit) {
	n := len(v)
	m := len(u) - n

	// D1: normalize so the top bit of the divisor is set.
	s := nlz(v[n-1])
	vn := make([]Digit, n)
	shlVU(vn, v, s)
	un := make([]Digit, len(u)+1)
	un[len(u)] = shlVU(un[:len(u)], u, s)

	q = make([]Digit, m+1)
	prod := make([]Digit, n+1)
	vTop := uint64(vn[n-1])
	vNext := uint64(vn[n-2])

	for j := m; j >= 0; j-- {
		// D3: estimate qhat from the top two digits, then correct it at most
		// twice using the next divisor digit.
		num := uint64(un[j+n])<<DigitBits | uint64(un[j+n-1])
		qhat := num / vTop
		rhat := num % vTop
		for qhat > DigitMax || qhat*vNext > (rhat<<DigitBits|uint64(un[j+n-2])) {
			qhat--
			rhat += vTop
			if rhat > DigitMax {
				break
			}
		}

		// D4: multiply and subtract.
		prod[n] = mulAddVWW(prod[:n], vn, Digit(qhat), 0)
		window := un[j : j+n+1]
		if subVV(window, window, prod) != 0 {
			// D6: the estimate was one too large; add the divisor back.
			qhat--
			c := addVV(window[:n], window[:n], vn)
			window[n] += c
		}
		q[j] = Digit(qhat)
	}

	// D8: denormalize the remainder.
	r = make([]Digit, n)
	shrVU(r, un[:n], s)
	return norm(q), norm(r)
}
