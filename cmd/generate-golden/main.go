// Command generate-golden writes the scalar multiplication vectors used by
// the curve package tests. The points are computed with an affine
// math/big implementation that shares no code with internal/curve.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/big"
	"os"

	"github.com/agbru/ecccalc/internal/curve"
)

type vector struct {
	Curve    string `json:"curve"`
	K        string `json:"k"`
	X        string `json:"x"`
	Y        string `json:"y"`
	Infinity bool   `json:"infinity"`
}

type goldenFile struct {
	Vectors []vector `json:"vectors"`
}

// affineCurve holds the parameters of y² = x³ + ax + b mod p as big.Ints.
type affineCurve struct {
	p, a, gx, gy, n *big.Int
}

// affinePoint is nil for the point at infinity.
type affinePoint struct {
	x, y *big.Int
}

func bigOf(s fmt.Stringer) *big.Int {
	v, ok := new(big.Int).SetString(s.String(), 10)
	if !ok {
		panic("generate-golden: bad constant " + s.String())
	}
	return v
}

func newAffineCurve(p curve.Params) affineCurve {
	return affineCurve{p: bigOf(p.P), a: bigOf(p.A), gx: bigOf(p.Gx), gy: bigOf(p.Gy), n: bigOf(p.N)}
}

func (c affineCurve) add(p, q *affinePoint) *affinePoint {
	if p == nil {
		return q
	}
	if q == nil {
		return p
	}
	lambda := new(big.Int)
	if p.x.Cmp(q.x) == 0 {
		sum := new(big.Int).Add(p.y, q.y)
		if sum.Mod(sum, c.p).Sign() == 0 {
			return nil
		}
		num := new(big.Int).Mul(p.x, p.x)
		num.Mul(num, big.NewInt(3)).Add(num, c.a)
		den := new(big.Int).Lsh(p.y, 1)
		lambda.Mul(num, den.ModInverse(den, c.p))
	} else {
		num := new(big.Int).Sub(q.y, p.y)
		den := new(big.Int).Sub(q.x, p.x)
		den.Mod(den, c.p)
		lambda.Mul(num, den.ModInverse(den, c.p))
	}
	lambda.Mod(lambda, c.p)

	x := new(big.Int).Mul(lambda, lambda)
	x.Sub(x, p.x).Sub(x, q.x).Mod(x, c.p)
	y := new(big.Int).Sub(p.x, x)
	y.Mul(y, lambda).Sub(y, p.y).Mod(y, c.p)
	return &affinePoint{x: x, y: y}
}

// scalarBaseMult returns k·G by binary expansion.
func (c affineCurve) scalarBaseMult(k *big.Int) *affinePoint {
	var acc *affinePoint
	run := &affinePoint{x: c.gx, y: c.gy}
	for i := 0; i < k.BitLen(); i++ {
		if k.Bit(i) == 1 {
			acc = c.add(acc, run)
		}
		run = c.add(run, run)
	}
	return acc
}

// scalars returns the multipliers exercised for a curve of order n.
func scalars(n *big.Int) []*big.Int {
	pow := func(e uint) *big.Int { return new(big.Int).Lsh(big.NewInt(1), e) }
	fixed, _ := new(big.Int).SetString("C9AFA9D845BA75166B5C215767B1D6934E50C3DB36E89B127B8A622B120F6721", 16)
	return []*big.Int{
		big.NewInt(0),
		big.NewInt(1),
		big.NewInt(2),
		big.NewInt(3),
		big.NewInt(7),
		big.NewInt(20),
		pow(64).Add(pow(64), big.NewInt(1)),
		big.NewInt(112233445566778899),
		pow(128).Add(pow(128), big.NewInt(1)),
		new(big.Int).Sub(n, big.NewInt(1)),
		new(big.Int).Set(n),
		new(big.Int).Add(n, big.NewInt(5)),
		fixed,
	}
}

func generate() goldenFile {
	var out goldenFile
	for _, name := range curve.ParamNames() {
		params, _ := curve.LookupParams(name)
		c := newAffineCurve(params)
		for _, k := range scalars(c.n) {
			v := vector{Curve: name, K: k.String()}
			if p := c.scalarBaseMult(k); p == nil {
				v.Infinity = true
			} else {
				v.X, v.Y = p.x.String(), p.y.String()
			}
			out.Vectors = append(out.Vectors, v)
		}
	}
	return out
}

func main() {
	outPath := flag.String("out", "internal/curve/testdata/scalarmult_golden.json", "output file")
	flag.Parse()

	golden := generate()
	data, err := json.MarshalIndent(golden, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "encode: %v\n", err)
		os.Exit(1)
	}
	data = append(data, '\n')
	if err := os.WriteFile(*outPath, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write %s: %v\n", *outPath, err)
		os.Exit(1)
	}
	fmt.Printf("wrote %d vectors to %s\n", len(golden.Vectors), *outPath)
}
