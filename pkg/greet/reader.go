package greet

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// ErrNameTooLong is returned by a BoundedReader in OverflowError mode
// when the token exceeds its capacity.
var ErrNameTooLong = errors.New("name too long")

// DefaultMaxNameLen is the default capacity of a BoundedReader, in runes.
const DefaultMaxNameLen = 49

// OverflowPolicy selects what a BoundedReader does with a token longer
// than its capacity.
type OverflowPolicy string

const (
	// OverflowTruncate keeps the first Max runes and discards the rest
	// of the token.
	OverflowTruncate OverflowPolicy = "truncate"

	// OverflowError rejects the whole token with ErrNameTooLong.
	OverflowError OverflowPolicy = "error"
)

// NameReader extracts the user's name from an input stream.
//
// Implementations return io.EOF when the stream ends before any name
// is read. They may buffer ahead, so a stream should be handed to at
// most one read.
type NameReader interface {
	ReadName(r io.Reader) (string, error)
}

// TokenReader reads one whitespace-delimited token of any length.
type TokenReader struct{}

// ReadName returns the next token from r. There is no length ceiling;
// the token comes back verbatim however long it is.
func (TokenReader) ReadName(r io.Reader) (string, error) {
	name, _, err := readToken(bufio.NewReader(r), -1)
	if err != nil {
		return "", err
	}
	return string(name), nil
}

// BoundedReader reads one whitespace-delimited token into a fixed
// capacity, counted in runes. It replaces the classic unchecked
// fixed-size buffer: an oversized token is either truncated or rejected,
// never written past the bound.
type BoundedReader struct {
	// Max is the capacity in runes. Non-positive values fall back to
	// DefaultMaxNameLen.
	Max int

	// Overflow picks truncation or rejection for oversized tokens.
	// The zero value behaves like OverflowTruncate.
	Overflow OverflowPolicy
}

// ReadName returns the next token from r, applying the capacity bound.
// The oversized tail of a token is always consumed through its trailing
// whitespace, so exactly one token leaves the stream either way.
func (b BoundedReader) ReadName(r io.Reader) (string, error) {
	max := b.Max
	if max <= 0 {
		max = DefaultMaxNameLen
	}

	name, overflowed, err := readToken(bufio.NewReader(r), max)
	if err != nil {
		return "", err
	}
	if overflowed && b.Overflow == OverflowError {
		return "", fmt.Errorf("%w: exceeds %d characters", ErrNameTooLong, max)
	}
	return string(name), nil
}

// LineReader reads one full line, preserving interior whitespace.
type LineReader struct{}

// ReadName returns the next line from r without its line ending.
// A final line with no newline is still returned.
func (LineReader) ReadName(r io.Reader) (string, error) {
	br := bufio.NewReader(r)
	line, err := br.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

// readToken collects the next whitespace-delimited token from br, rune
// by rune. A max < 0 means unbounded; otherwise runes past max are
// consumed and dropped, and the second result reports whether any were.
func readToken(br *bufio.Reader, max int) ([]rune, bool, error) {
	var first rune
	for {
		ch, _, err := br.ReadRune()
		if err != nil {
			return nil, false, err
		}
		if !unicode.IsSpace(ch) {
			first = ch
			break
		}
	}

	name := []rune{first}
	overflowed := false
	for {
		ch, _, err := br.ReadRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, false, err
		}
		if unicode.IsSpace(ch) {
			break
		}
		if max < 0 || len(name) < max {
			name = append(name, ch)
		} else {
			overflowed = true
		}
	}

	return name, overflowed, nil
}

// Ensure each reader implements NameReader
var (
	_ NameReader = TokenReader{}
	_ NameReader = BoundedReader{}
	_ NameReader = LineReader{}
)
