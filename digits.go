package decint

import "math"

// digits is a magnitude stored as decimal digits, least significant digit first.
// A normalized magnitude has no most significant zeros, except for zero itself,
// which is represented as a single 0 digit.
// Methods of digits never modify their receiver or arguments.
type digits []byte

var (
	digitsZero    = digits{0}
	digitsOne     = digits{1}
	digitsTwo     = digits{2}
	digitsSixteen = digits{6, 1}
)

// digitsFromUint64 converts x to its decimal digits.
func digitsFromUint64(x uint64) digits {
	if x == 0 {
		return digitsZero
	}
	z := make(digits, 0, 20)
	for x > 0 {
		z = append(z, byte(x%10))
		x /= 10
	}
	return z
}

// uint64 converts x to uint64 and reports whether it fits.
func (x digits) uint64() (uint64, bool) {
	var z uint64
	for i := len(x) - 1; i >= 0; i-- {
		d := uint64(x[i])
		if z > (math.MaxUint64-d)/10 {
			return 0, false
		}
		z = z*10 + d
	}
	return z, true
}

// trim strips most significant zeros.
// The result shares the underlying array with x.
func (x digits) trim() digits {
	n := len(x)
	for n > 1 && x[n-1] == 0 {
		n--
	}
	if n == 0 {
		return digitsZero
	}
	return x[:n]
}

func (x digits) isZero() bool {
	return len(x) == 1 && x[0] == 0
}

func (x digits) isOdd() bool {
	return x[0]&1 != 0
}

// prec returns length of x in decimal digits.
func (x digits) prec() int {
	return len(x)
}

// cmp compares magnitudes of x and y and returns:
//
//	-1 if x < y
//	 0 if x == y
//	+1 if x > y
//
// Both x and y must be normalized.
func (x digits) cmp(y digits) int {
	switch {
	case len(x) < len(y):
		return -1
	case len(y) < len(x):
		return 1
	}
	for i := len(x) - 1; i >= 0; i-- {
		switch {
		case x[i] < y[i]:
			return -1
		case y[i] < x[i]:
			return 1
		}
	}
	return 0
}

// add calculates x + y.
func (x digits) add(y digits) digits {
	if len(x) < len(y) {
		x, y = y, x
	}
	z := make(digits, len(x)+1)
	var carry byte
	for i := range x {
		s := x[i] + carry
		if i < len(y) {
			s += y[i]
		}
		z[i] = s % 10
		carry = s / 10
	}
	z[len(x)] = carry
	return z.trim()
}

// sub calculates x - y.
// If x < y, the result is undefined.
func (x digits) sub(y digits) digits {
	z := make(digits, len(x))
	var borrow int
	for i := range x {
		d := int(x[i]) - borrow
		if i < len(y) {
			d -= int(y[i])
		}
		borrow = 0
		if d < 0 {
			d += 10
			borrow = 1
		}
		z[i] = byte(d)
	}
	return z.trim()
}

// mul calculates x * y using the schoolbook method.
// Carries are folded into the next position as soon as they appear,
// so every position of the buffer stays a single digit.
func (x digits) mul(y digits) digits {
	if x.isZero() || y.isZero() {
		return digitsZero
	}
	z := make(digits, len(x)+len(y))
	for i, a := range x {
		if a == 0 {
			continue
		}
		var carry byte
		for j, b := range y {
			t := z[i+j] + a*b + carry // at most 9 + 81 + 9
			z[i+j] = t % 10
			carry = t / 10
		}
		z[i+len(y)] = carry
	}
	return z.trim()
}

// shift calculates x * 10 + d.
func (x digits) shift(d byte) digits {
	if x.isZero() {
		return digits{d}
	}
	z := make(digits, len(x)+1)
	z[0] = d
	copy(z[1:], x)
	return z
}

// quoRem calculates q and r such that x = q * y + r and 0 <= r < y.
// y must not be zero.
//
// The dividend is consumed from its most significant digit.
// Every step appends one dividend digit to the running remainder and
// selects the quotient digit with a binary search over [0, 9].
func (x digits) quoRem(y digits) (q, r digits) {
	q = make(digits, len(x))
	r = digitsZero
	for i := len(x) - 1; i >= 0; i-- {
		r = r.shift(x[i])
		k, p := y.quoDigit(r)
		q[i] = k
		if k != 0 {
			r = r.sub(p)
		}
	}
	return q.trim(), r
}

// quoDigit finds the largest k in [0, 9] such that y * k <= r.
// It returns k together with the product y * k.
func (y digits) quoDigit(r digits) (byte, digits) {
	var (
		k     byte
		p     = digitsZero
		left  = 0
		right = 9
	)
	for left <= right {
		mid := (left + right) / 2
		t := y.mul(digits{byte(mid)})
		if t.cmp(r) <= 0 {
			k, p = byte(mid), t
			left = mid + 1
		} else {
			right = mid - 1
		}
	}
	return k, p
}
