package bignum

// Lsh returns x << n.
func (x Nat) Lsh(n uint) Nat {
	if x.IsZero() {
		return Nat{}
	}
	w := int(n / DigitBits)
	m := len(x.d)
	z := make([]Digit, m+w+1)
	z[m+w] = shlVU(z[w:m+w], x.d, n%DigitBits)
	return Nat{d: norm(z)}
}

// Rsh returns x >> n.
func (x Nat) Rsh(n uint) Nat {
	w := n / DigitBits
	if w >= uint(len(x.d)) {
		return Nat{}
	}
	z := make([]Digit, len(x.d)-int(w))
	shrVU(z, x.d[w:], n%DigitBits)
	return Nat{d: norm(z)}
}

// And returns x & y.
func (x Nat) And(y Nat) Nat {
	n := min(len(x.d), len(y.d))
	z := make([]Digit, n)
	for i := range z {
		z[i] = x.d[i] & y.d[i]
	}
	return Nat{d: norm(z)}
}

// Or returns x | y.
func (x Nat) Or(y Nat) Nat {
	if len(x.d) < len(y.d) {
		return y.Or(x)
	}
	z := append([]Digit(nil), x.d...)
	for i, yi := range y.d {
		z[i] |= yi
	}
	return Nat{d: norm(z)}
}

// Xor returns x ^ y.
func (x Nat) Xor(y Nat) Nat {
	if len(x.d) < len(y.d) {
		return y.Xor(x)
	}
	z := append([]Digit(nil), x.d...)
	for i, yi := range y.d {
		z[i] ^= yi
	}
	return Nat{d: norm(z)}
}
