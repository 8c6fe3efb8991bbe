package rsa

import (
	"bufio"
	"io"
	"strconv"

	"github.com/govalues/decint"
	"github.com/pkg/errors"
)

// MatchInput holds a public key together with candidate plaintexts and
// candidate ciphertexts.
type MatchInput struct {
	N, E        decint.Int
	Plaintexts  []decint.Int
	Ciphertexts []decint.Int
}

// Match is the result of looking up the encryption of one plaintext
// among the candidate ciphertexts.
type Match struct {
	Plaintext  int  // index of the plaintext
	Ciphertext int  // index of the first equal ciphertext, valid only if Found
	Found      bool // whether any ciphertext is equal to the encryption
}

// ReadMatchInput reads whitespace separated tokens in the following order:
// the number of plaintexts and the number of ciphertexts as decimal
// integers, then n, e, the plaintexts and the ciphertexts as hexadecimal
// numbers.
func ReadMatchInput(r io.Reader) (MatchInput, error) {
	tr := newTokenReader(r)
	var (
		in     MatchInput
		mCount int
		cCount int
		err    error
	)
	if mCount, err = tr.nextCount("plaintext count"); err != nil {
		return MatchInput{}, err
	}
	if cCount, err = tr.nextCount("ciphertext count"); err != nil {
		return MatchInput{}, err
	}
	if in.N, err = tr.nextHex("n"); err != nil {
		return MatchInput{}, err
	}
	if in.E, err = tr.nextHex("e"); err != nil {
		return MatchInput{}, err
	}
	if in.Plaintexts, err = tr.nextHexList("plaintext", mCount); err != nil {
		return MatchInput{}, err
	}
	if in.Ciphertexts, err = tr.nextHexList("ciphertext", cCount); err != nil {
		return MatchInput{}, err
	}
	if err = tr.end(); err != nil {
		return MatchInput{}, err
	}
	return in, nil
}

// MatchCiphertexts encrypts every plaintext as m^e mod n and finds the
// first candidate ciphertext with the same value.
// The result has one entry per plaintext, in input order.
func MatchCiphertexts(in MatchInput) ([]Match, error) {
	matches := make([]Match, 0, len(in.Plaintexts))
	for i, m := range in.Plaintexts {
		c, err := decint.ModExp(m, in.E, in.N)
		if err != nil {
			return nil, errors.WithMessagef(err, "encrypting plaintext %d", i)
		}
		match := Match{Plaintext: i}
		for j, cand := range in.Ciphertexts {
			if c.Equal(cand) {
				match.Ciphertext, match.Found = j, true
				break
			}
		}
		logger.Debugf("plaintext %d encrypts to %v, found = %v", i, c, match.Found)
		matches = append(matches, match)
	}
	return matches, nil
}

// WriteMatches writes the ciphertext index of every match separated by
// spaces, using -1 for plaintexts without a match, followed by a newline.
func WriteMatches(w io.Writer, matches []Match) error {
	bw := bufio.NewWriter(w)
	for i, match := range matches {
		if i > 0 {
			bw.WriteByte(' ')
		}
		if match.Found {
			bw.WriteString(strconv.Itoa(match.Ciphertext))
		} else {
			bw.WriteString(notFound)
		}
	}
	bw.WriteByte('\n')
	return errors.Wrap(bw.Flush(), "writing matches")
}
