package curve

import (
	"sort"

	"github.com/agbru/ecccalc/internal/bignum"
)

// Params describes a short Weierstrass curve y² = x³ + ax + b over the prime
// field of order P, with base point (Gx, Gy) of order N.
type Params struct {
	Name   string
	P      bignum.Nat
	A, B   bignum.Nat
	Gx, Gy bignum.Nat
	N      bignum.Nat
}

var (
	// P256 is NIST P-256 (secp256r1), FIPS 186-4 D.1.2.3.
	P256 = Params{
		Name: "p256",
		P:    bignum.MustParseNat("115792089210356248762697446949407573530086143415290314195533631308867097853951"),
		A:    bignum.MustParseNat("115792089210356248762697446949407573530086143415290314195533631308867097853948"),
		B:    bignum.MustParseNat("41058363725152142129326129780047268409114441015993725554835256314039467401291"),
		Gx:   bignum.MustParseNat("48439561293906451759052585252797914202762949526041747995844080717082404635286"),
		Gy:   bignum.MustParseNat("36134250956749795798585127919587881956611106672985015071877198253568414405109"),
		N:    bignum.MustParseNat("115792089210356248762697446949407573529996955224135760342422259061068512044369"),
	}

	// P384 is NIST P-384 (secp384r1), FIPS 186-4 D.1.2.4.
	P384 = Params{
		Name: "p384",
		P:    bignum.MustParseNat("39402006196394479212279040100143613805079739270465446667948293404245721771496870329047266088258938001861606973112319"),
		A:    bignum.MustParseNat("39402006196394479212279040100143613805079739270465446667948293404245721771496870329047266088258938001861606973112316"),
		B:    bignum.MustParseNat("27580193559959705877849011840389048093056905856361568521428707301988689241309860865136260764883745107765439761230575"),
		Gx:   bignum.MustParseNat("26247035095799689268623156744566981891852923491109213387815615900925518854738050089022388053975719786650872476732087"),
		Gy:   bignum.MustParseNat("8325710961489029985546751289520108179287853048861315594709205902480503199884419224438643760392947333078086511627871"),
		N:    bignum.MustParseNat("39402006196394479212279040100143613805079739270465446667946905279627659399113263569398956308152294913554433653942643"),
	}

	// Secp256k1 is the SEC 2 Koblitz curve y² = x³ + 7.
	Secp256k1 = Params{
		Name: "secp256k1",
		P:    bignum.MustParseNat("115792089237316195423570985008687907853269984665640564039457584007908834671663"),
		A:    bignum.Nat{},
		B:    bignum.NatFromDigit(7),
		Gx:   bignum.MustParseNat("55066263022277343669578718895168534326250603453777594175500187360389116729240"),
		Gy:   bignum.MustParseNat("32670510020758816978083085130507043184471273380659243275938904335757337482424"),
		N:    bignum.MustParseNat("115792089237316195423570985008687907852837564279074904382605163141518161494337"),
	}
)

var registry = map[string]Params{
	P256.Name:      P256,
	P384.Name:      P384,
	Secp256k1.Name: Secp256k1,
}

// LookupParams returns the named curve parameters.
func LookupParams(name string) (Params, bool) {
	p, ok := registry[name]
	return p, ok
}

// ParamNames returns the known curve names in sorted order.
func ParamNames() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
