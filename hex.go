package decint

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// hexDigits maps hexadecimal digit values to characters and back.
const hexDigits = "0123456789ABCDEF"

// ParseHex converts a hexadecimal string to an integer.
// The string is read most significant digit first and must consist of the
// characters 0-9 and A-F only: lowercase letters, signs, prefixes such as
// "0x" and whitespace are rejected.
//
// ParseHex returns an error wrapping [ErrInvalidHex] if the string is empty
// or contains any other character.
func ParseHex(s string) (Int, error) {
	if s == "" {
		return Int{}, errors.Wrap(ErrInvalidHex, "empty string")
	}
	z := Int{}
	for pos := 0; pos < len(s); pos++ {
		v := strings.IndexByte(hexDigits, s[pos])
		if v < 0 {
			return Int{}, errors.Wrapf(ErrInvalidHex, "invalid character %q at position %v", s[pos], pos)
		}
		z = z.Mul(sixteen).Add(New(int64(v)))
	}
	return z, nil
}

// MustParseHex is like [ParseHex] but panics if the string cannot be parsed.
func MustParseHex(s string) Int {
	x, err := ParseHex(s)
	if err != nil {
		panic(fmt.Sprintf("MustParseHex(%q) failed: %v", s, err))
	}
	return x
}

// Hex returns the uppercase hexadecimal representation of x without
// a prefix and without leading zeros.
// Zero is "0", negative values have a leading '-'.
// Also see method [ParseHex].
func (x Int) Hex() string {
	mag := x.magnitude()
	buf := make([]byte, 0, mag.prec()+1)

	// Digits, least significant first
	for mag.cmp(digitsSixteen) >= 0 {
		q, r := mag.quoRem(digitsSixteen)
		v, _ := r.uint64()
		buf = append(buf, hexDigits[v])
		mag = q
	}
	v, _ := mag.uint64()
	buf = append(buf, hexDigits[v])

	// Sign
	if x.neg {
		buf = append(buf, '-')
	}

	// Reversing
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}
