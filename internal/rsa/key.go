package rsa

import (
	"fmt"
	"io"

	"github.com/govalues/decint"
	"github.com/hyperledger/fabric-lib-go/common/flogging"
	"github.com/pkg/errors"
)

var logger = flogging.MustGetLogger("rsa")

var two = decint.New(2)

// KeyParams holds the inputs of a key derivation: two primes and
// the public exponent.
type KeyParams struct {
	P, Q, E decint.Int
}

// PrivateKey is the result of a key derivation.
type PrivateKey struct {
	N   decint.Int // modulus, p * q
	Phi decint.Int // Euler's totient, (p - 1) * (q - 1)
	E   decint.Int // public exponent
	D   decint.Int // private exponent, e^-1 mod phi
}

// ReadKeyParams reads three whitespace separated hexadecimal numbers,
// p, q and e, in this order.
func ReadKeyParams(r io.Reader) (KeyParams, error) {
	tr := newTokenReader(r)
	var (
		params KeyParams
		err    error
	)
	if params.P, err = tr.nextHex("p"); err != nil {
		return KeyParams{}, err
	}
	if params.Q, err = tr.nextHex("q"); err != nil {
		return KeyParams{}, err
	}
	if params.E, err = tr.nextHex("e"); err != nil {
		return KeyParams{}, err
	}
	if err = tr.end(); err != nil {
		return KeyParams{}, err
	}
	return params, nil
}

// DeriveKey computes n = p * q, phi = (p - 1) * (q - 1) and the private
// exponent d = e^-1 mod phi.
// Primality of p and q is not verified, but both must be at least 2.
// If e is not invertible modulo phi, the returned error wraps
// [decint.ErrNoInverse].
func DeriveKey(params KeyParams) (PrivateKey, error) {
	if params.P.Cmp(two) < 0 || params.Q.Cmp(two) < 0 {
		return PrivateKey{}, errors.Errorf("primes must be at least 2, got p = %v and q = %v", params.P, params.Q)
	}

	one := decint.New(1)
	key := PrivateKey{
		N:   params.P.Mul(params.Q),
		Phi: params.P.Sub(one).Mul(params.Q.Sub(one)),
		E:   params.E,
	}
	logger.Debugf("deriving key: n has %d digits, phi has %d digits", key.N.Prec(), key.Phi.Prec())

	d, err := decint.ModInverse(params.E, key.Phi)
	if err != nil {
		return PrivateKey{}, errors.WithMessage(err, "computing private exponent")
	}
	key.D = d
	return key, nil
}

// WriteKey writes the outcome of [DeriveKey]: the private exponent in
// uppercase hexadecimal, or -1 if the public exponent has no inverse.
// Any other derivation error is returned unchanged and nothing is written.
func WriteKey(w io.Writer, key PrivateKey, derr error) error {
	var line string
	switch {
	case derr == nil:
		line = key.D.Hex()
	case errors.Is(derr, decint.ErrNoInverse):
		logger.Infof("public exponent is not invertible: %v", derr)
		line = notFound
	default:
		return derr
	}
	_, err := fmt.Fprintln(w, line)
	return errors.Wrap(err, "writing private exponent")
}

// notFound is written in place of a value that does not exist.
const notFound = "-1"
