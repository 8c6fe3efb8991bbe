package rsa

import (
	"bufio"
	"io"
	"strconv"

	"github.com/govalues/decint"
	"github.com/pkg/errors"
)

// tokenReader splits an input stream into whitespace separated tokens.
type tokenReader struct {
	scanner *bufio.Scanner
	count   int
}

func newTokenReader(r io.Reader) *tokenReader {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), maxTokenSize)
	s.Split(bufio.ScanWords)
	return &tokenReader{scanner: s}
}

// maxTokenSize bounds a single hexadecimal number in the input.
const maxTokenSize = 1 << 20

// maxListPrealloc bounds the capacity reserved from a count in the input
// before its tokens have been read.
const maxListPrealloc = 1024

func (t *tokenReader) next(what string) (string, error) {
	if !t.scanner.Scan() {
		if err := t.scanner.Err(); err != nil {
			return "", errors.Wrapf(err, "reading %s", what)
		}
		return "", errors.Wrapf(io.ErrUnexpectedEOF, "reading %s (token %d)", what, t.count+1)
	}
	t.count++
	return t.scanner.Text(), nil
}

func (t *tokenReader) nextHex(what string) (decint.Int, error) {
	s, err := t.next(what)
	if err != nil {
		return decint.Int{}, err
	}
	x, err := decint.ParseHex(s)
	if err != nil {
		return decint.Int{}, errors.WithMessagef(err, "parsing %s (token %d)", what, t.count)
	}
	return x, nil
}

func (t *tokenReader) nextHexList(what string, n int) ([]decint.Int, error) {
	list := make([]decint.Int, 0, min(n, maxListPrealloc))
	for i := 0; i < n; i++ {
		x, err := t.nextHex(what + " " + strconv.Itoa(i))
		if err != nil {
			return nil, err
		}
		list = append(list, x)
	}
	return list, nil
}

func (t *tokenReader) nextCount(what string) (int, error) {
	s, err := t.next(what)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrapf(err, "parsing %s (token %d)", what, t.count)
	}
	if n < 0 {
		return 0, errors.Errorf("parsing %s (token %d): negative count %d", what, t.count, n)
	}
	return n, nil
}

// end checks that the input has no tokens left.
func (t *tokenReader) end() error {
	if t.scanner.Scan() {
		return errors.Errorf("unexpected token %q after %d tokens", t.scanner.Text(), t.count)
	}
	return errors.Wrap(t.scanner.Err(), "reading input")
}
