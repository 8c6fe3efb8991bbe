package decint

import "fmt"

// MustQuo is like [Int.Quo] but panics if computing error.
func (x Int) MustQuo(y Int) Int {
	q, err := x.Quo(y)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", y, err))
	}
	return q
}

// MustRem is like [Int.Rem] but panics if computing error.
func (x Int) MustRem(y Int) Int {
	r, err := x.Rem(y)
	if err != nil {
		panic(fmt.Sprintf("MustRem(%v) failed: %v", y, err))
	}
	return r
}

// MustQuoRem is like [Int.QuoRem] but panics if computing error.
func (x Int) MustQuoRem(y Int) (Int, Int) {
	q, r, err := x.QuoRem(y)
	if err != nil {
		panic(fmt.Sprintf("MustQuoRem(%v) failed: %v", y, err))
	}
	return q, r
}

// MustModInverse is like [ModInverse] but panics if computing error.
func MustModInverse(e, phi Int) Int {
	d, err := ModInverse(e, phi)
	if err != nil {
		panic(fmt.Sprintf("MustModInverse(%v, %v) failed: %v", e, phi, err))
	}
	return d
}

// MustModExp is like [ModExp] but panics if computing error.
func MustModExp(base, exp, m Int) Int {
	z, err := ModExp(base, exp, m)
	if err != nil {
		panic(fmt.Sprintf("MustModExp(%v, %v, %v) failed: %v", base, exp, m, err))
	}
	return z
}
