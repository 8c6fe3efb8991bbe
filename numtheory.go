package decint

import "github.com/pkg/errors"

// GCD returns the greatest common divisor of x and y.
// The signs of x and y are ignored, and GCD(0, 0) = 0.
func GCD(x, y Int) Int {
	a, b := x.Abs(), y.Abs()
	for !b.IsZero() {
		_, r := quoRem(a, b)
		a, b = b, r
	}
	return a
}

// ModInverse returns d such that e * d ≡ 1 (mod phi) and 0 <= d < phi.
// Negative values of e are reduced modulo phi first.
//
// ModInverse returns an error:
//   - wrapping [ErrNoInverse] if gcd(e, phi) != 1;
//   - wrapping [ErrDivisionByZero] if phi is 0;
//   - wrapping [ErrInvalidModulus] if phi is negative.
func ModInverse(e, phi Int) (Int, error) {
	switch {
	case phi.IsZero():
		return Int{}, errors.Wrapf(ErrDivisionByZero, "inverse of %v modulo %v", e, phi)
	case phi.IsNeg():
		return Int{}, errors.Wrapf(ErrInvalidModulus, "inverse of %v modulo %v", e, phi)
	}

	// Reduction
	_, a := quoRem(e, phi)
	if a.IsNeg() {
		a = a.Add(phi)
	}

	// Extended Euclidean algorithm
	var (
		r, newR = phi, a
		t, newT = Int{}, one
	)
	for !newR.IsZero() {
		q, _ := quoRem(r, newR)
		r, newR = newR, r.Sub(q.Mul(newR))
		t, newT = newT, t.Sub(q.Mul(newT))
	}

	// r is gcd(e, phi) and t is its Bezout coefficient for e
	if r.Cmp(one) > 0 {
		return Int{}, errors.Wrapf(ErrNoInverse, "gcd(%v, %v) = %v", e, phi, r)
	}
	if t.IsNeg() {
		t = t.Add(phi)
	}
	return t, nil
}

// ModExp returns base^exp mod m, computed by square-and-multiply.
// The result is in the range [0, m), including for negative bases.
//
// ModExp returns an error:
//   - wrapping [ErrNegativeExponent] if exp is negative;
//   - wrapping [ErrDivisionByZero] if m is 0;
//   - wrapping [ErrInvalidModulus] if m is negative.
func ModExp(base, exp, m Int) (Int, error) {
	switch {
	case m.IsZero():
		return Int{}, errors.Wrapf(ErrDivisionByZero, "%v^%v mod %v", base, exp, m)
	case m.IsNeg():
		return Int{}, errors.Wrapf(ErrInvalidModulus, "%v^%v mod %v", base, exp, m)
	case exp.IsNeg():
		return Int{}, errors.Wrapf(ErrNegativeExponent, "%v^%v mod %v", base, exp, m)
	}

	_, z := quoRem(one, m)
	_, base = quoRem(base, m)
	if base.IsNeg() {
		base = base.Add(m)
	}
	for exp.IsPos() {
		if exp.IsOdd() {
			_, z = quoRem(z.Mul(base), m)
		}
		_, base = quoRem(base.Mul(base), m)
		exp, _ = quoRem(exp, two)
	}
	return z, nil
}
