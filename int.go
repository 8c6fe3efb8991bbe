package decint

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Int type is a representation of an arbitrary-precision signed integer.
// The zero value is the numeric value of 0.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// An integer type is a struct with two parameters:
//
//   - Sign: a boolean indicating whether the integer is negative.
//   - Magnitude: the absolute value of the integer as a sequence of
//     decimal digits, least significant digit first.
//
// Every method returns a new value and leaves its receiver and arguments
// unchanged.
// Negative zero is not representable: an integer with a zero magnitude
// is always non-negative.
type Int struct {
	neg bool   // indicates whether the integer is negative
	mag digits // the magnitude of the integer
}

var (
	// ErrInvalidInt is returned when a string is not a decimal integer.
	ErrInvalidInt = errors.New("invalid integer")
	// ErrInvalidHex is returned when a string is not an uppercase hexadecimal integer.
	ErrInvalidHex = errors.New("invalid hexadecimal integer")
	// ErrDivisionByZero is returned by division, remainder and modular operations with a zero divisor.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrNoInverse is returned by [ModInverse] when the arguments are not coprime.
	ErrNoInverse = errors.New("no modular inverse")
	// ErrNegativeExponent is returned by [ModExp] for negative exponents.
	ErrNegativeExponent = errors.New("negative exponent")
	// ErrInvalidModulus is returned by modular operations with a negative modulus.
	ErrInvalidModulus = errors.New("invalid modulus")
)

var (
	one     = Int{mag: digitsOne}
	two     = Int{mag: digitsTwo}
	sixteen = Int{mag: digitsSixteen}
)

func newInt(neg bool, mag digits) Int {
	mag = mag.trim()
	if mag.isZero() {
		neg = false
	}
	return Int{neg: neg, mag: mag}
}

// New returns an integer equal to x.
func New(x int64) Int {
	neg := x < 0
	u := uint64(x)
	if neg {
		u = -u
	}
	return newInt(neg, digitsFromUint64(u))
}

// Parse converts a decimal string to an integer.
// The input string must be in one of the following formats:
//
//	1234
//	-1234
//	000123
//
// The formal EBNF grammar for the supported format is as follows:
//
//	sign           ::= '-'
//	digits         ::= digit { digit }
//	digit          ::= '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9'
//	numeric-string ::= [sign] digits
//
// Parse removes leading zeros, so "007" becomes 7 and "-0" becomes 0.
// Parse returns an error wrapping [ErrInvalidInt] if the string is empty,
// consists of a sign only, or contains any other character.
func Parse(s string) (Int, error) {
	var (
		pos   int
		width int
		neg   bool
	)

	width = len(s)

	// Sign
	if pos < width && s[pos] == '-' {
		neg = true
		pos++
	}

	if pos == width {
		return Int{}, errors.Wrapf(ErrInvalidInt, "no digits in %q", s)
	}

	// Digits
	mag := make(digits, width-pos)
	for i := pos; i < width; i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return Int{}, errors.Wrapf(ErrInvalidInt, "invalid character %q at position %v", c, i)
		}
		mag[width-1-i] = c - '0'
	}

	return newInt(neg, mag), nil
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding integers.
func MustParse(s string) Int {
	x, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return x
}

// magnitude returns the normalized magnitude of x.
// It differs from x.mag only for the zero value.
func (x Int) magnitude() digits {
	if len(x.mag) == 0 {
		return digitsZero
	}
	return x.mag
}

// String method implements the [fmt.Stringer] interface and returns
// the decimal representation of an integer, with a leading '-' for
// negative values.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (x Int) String() string {
	mag := x.magnitude()
	buf := make([]byte, 0, len(mag)+1)
	if x.neg {
		buf = append(buf, '-')
	}
	for i := len(mag) - 1; i >= 0; i-- {
		buf = append(buf, mag[i]+'0')
	}
	return string(buf)
}

// Int64 returns x as int64.
// If x does not fit into int64, the result is 0 and false.
func (x Int) Int64() (int64, bool) {
	u, ok := x.magnitude().uint64()
	if !ok {
		return 0, false
	}
	if x.neg {
		if u > 1<<63 {
			return 0, false
		}
		return -int64(u), true
	}
	if u > 1<<63-1 {
		return 0, false
	}
	return int64(u), true
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// Also see method [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (x *Int) UnmarshalText(text []byte) error {
	var err error
	*x, err = Parse(string(text))
	return err
}

// MarshalText implements [encoding.TextMarshaler] interface.
// Also see method [Int.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (x Int) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// Format implements [fmt.Formatter] interface.
// The following [verbs] are available:
//
//	%d, %s, %v: -1234
//	%q:        "-1234"
//	%x:         -4d2
//	%X:         -4D2
//
// The following format flags can be used with all verbs: '+', ' ', '0', '-'.
//
// [verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (x Int) Format(state fmt.State, verb rune) {

	// Digits
	var body string
	switch verb {
	case 'x':
		body = strings.ToLower(x.Abs().Hex())
	case 'X':
		body = x.Abs().Hex()
	default:
		body = x.Abs().String()
	}

	// Arithmetic sign
	rsign := ""
	switch {
	case x.IsNeg():
		rsign = "-"
	case state.Flag('+'):
		rsign = "+"
	case state.Flag(' '):
		rsign = " "
	}

	// Quotes
	quote := ""
	if verb == 'q' || verb == 'Q' {
		quote = `"`
	}

	// Padding
	width := len(quote) + len(rsign) + len(body) + len(quote)
	lspaces, tspaces, lzeroes := 0, 0, 0
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
		case state.Flag('0'):
			lzeroes = w - width
		default:
			lspaces = w - width
		}
	}

	// Writing buffer
	var buf strings.Builder
	buf.WriteString(strings.Repeat(" ", lspaces))
	buf.WriteString(quote)
	buf.WriteString(rsign)
	buf.WriteString(strings.Repeat("0", lzeroes))
	buf.WriteString(body)
	buf.WriteString(quote)
	buf.WriteString(strings.Repeat(" ", tspaces))

	// Writing result
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'd', 'x', 'X':
		fmt.Fprint(state, buf.String())
	default:
		fmt.Fprintf(state, "%%!%c(decint.Int=%s)", verb, buf.String())
	}
}

// Prec returns number of decimal digits in the magnitude of x.
// Zero has one digit.
func (x Int) Prec() int {
	return x.magnitude().prec()
}

// Neg returns x with opposite sign.
func (x Int) Neg() Int {
	return newInt(!x.neg, x.magnitude())
}

// Abs returns absolute value of x.
func (x Int) Abs() Int {
	return newInt(false, x.magnitude())
}

// Sign returns:
//
//	-1 if x < 0
//	 0 if x == 0
//	+1 if x > 0
func (x Int) Sign() int {
	switch {
	case x.neg:
		return -1
	case x.magnitude().isZero():
		return 0
	}
	return 1
}

// IsPos returns true if x > 0.
func (x Int) IsPos() bool {
	return x.Sign() > 0
}

// IsNeg returns true if x < 0.
func (x Int) IsNeg() bool {
	return x.neg
}

// IsZero returns true if x == 0.
func (x Int) IsZero() bool {
	return x.magnitude().isZero()
}

// IsOdd returns true if x is not divisible by 2.
func (x Int) IsOdd() bool {
	return x.magnitude().isOdd()
}

// Add returns the sum of x and y.
func (x Int) Add(y Int) Int {
	return add(x.neg, x.magnitude(), y.neg, y.magnitude())
}

// Sub returns the difference of x and y.
func (x Int) Sub(y Int) Int {
	return add(x.neg, x.magnitude(), !y.neg, y.magnitude())
}

// add calculates (-1)^xneg * xmag + (-1)^yneg * ymag.
func add(xneg bool, xmag digits, yneg bool, ymag digits) Int {
	// Same signs
	if xneg == yneg {
		return newInt(xneg, xmag.add(ymag))
	}

	// Different signs
	switch xmag.cmp(ymag) {
	case 1:
		return newInt(xneg, xmag.sub(ymag))
	case -1:
		return newInt(yneg, ymag.sub(xmag))
	}
	return Int{mag: digitsZero}
}

// Mul returns the product of x and y.
func (x Int) Mul(y Int) Int {
	return newInt(x.neg != y.neg, x.magnitude().mul(y.magnitude()))
}

// QuoRem returns the truncated quotient and the remainder of x and y
// such that x = q * y + r.
// The quotient is rounded towards zero and the remainder has the sign
// of the dividend, so -7 / 3 = -2 and -7 % 3 = -1.
//
// QuoRem returns an error wrapping [ErrDivisionByZero] if y is 0.
func (x Int) QuoRem(y Int) (q, r Int, err error) {
	if y.IsZero() {
		return Int{}, Int{}, errors.Wrapf(ErrDivisionByZero, "%v / %v", x, y)
	}
	q, r = quoRem(x, y)
	return q, r, nil
}

// Quo returns the truncated quotient of x and y.
// See [Int.QuoRem] for details.
func (x Int) Quo(y Int) (Int, error) {
	q, _, err := x.QuoRem(y)
	return q, err
}

// Rem returns the remainder of x and y, which has the sign of x.
// See [Int.QuoRem] for details.
func (x Int) Rem(y Int) (Int, error) {
	_, r, err := x.QuoRem(y)
	return r, err
}

// quoRem is [Int.QuoRem] for a non-zero divisor.
// The remainder is derived from the quotient as x - q * y.
func quoRem(x, y Int) (q, r Int) {
	qmag, _ := x.magnitude().quoRem(y.magnitude())
	q = newInt(x.neg != y.neg, qmag)
	r = x.Sub(q.Mul(y))
	return q, r
}

// Cmp compares x and y numerically and returns:
//
//	-1 if x < y
//	 0 if x == y
//	+1 if x > y
func (x Int) Cmp(y Int) int {

	// Special case: different signs
	switch {
	case y.Sign() < x.Sign():
		return 1
	case x.Sign() < y.Sign():
		return -1
	}

	// General case
	r := x.magnitude().cmp(y.magnitude())
	if x.neg {
		return -r
	}
	return r
}

// CmpAbs compares absolute values of x and y and returns:
//
//	-1 if |x| < |y|
//	 0 if |x| == |y|
//	+1 if |x| > |y|
func (x Int) CmpAbs(y Int) int {
	return x.magnitude().cmp(y.magnitude())
}

// Equal returns true if x and y have the same value.
func (x Int) Equal(y Int) bool {
	return x.Cmp(y) == 0
}

// Max returns maximum of x and y.
func (x Int) Max(y Int) Int {
	if x.Cmp(y) >= 0 {
		return x
	}
	return y
}

// Min returns minimum of x and y.
func (x Int) Min(y Int) Int {
	if x.Cmp(y) <= 0 {
		return x
	}
	return y
}
