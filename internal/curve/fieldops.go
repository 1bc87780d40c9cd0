package curve

import "github.com/agbru/ecccalc/internal/modular"

// fieldOps chains field operations and keeps the first error, so the point
// formulas read as straight-line code. Once an error is recorded every
// further call returns its first operand unchanged.
type fieldOps struct {
	err error
}

func (o *fieldOps) add(x, y modular.Int) modular.Int {
	if o.err != nil {
		return x
	}
	r, err := x.Add(y)
	o.err = err
	return r
}

func (o *fieldOps) sub(x, y modular.Int) modular.Int {
	if o.err != nil {
		return x
	}
	r, err := x.Sub(y)
	o.err = err
	return r
}

func (o *fieldOps) mul(x, y modular.Int) modular.Int {
	if o.err != nil {
		return x
	}
	r, err := x.Mul(y)
	o.err = err
	return r
}

func (o *fieldOps) double(x modular.Int) modular.Int {
	return o.add(x, x)
}

func (o *fieldOps) eq(x, y modular.Int) bool {
	return o.err == nil && x.Equal(y)
}
