// Package matcher scans an undelimited Morse symbol stream and records, for
// every position, which letters a code of each length could start there.
//
// For position i and length L (1 to alphabet.MaxCodeLen), slot L-1 of the
// position's Quadruple holds alphabet.Decode(stream[i:i+L]), or NoMatch when
// the window is not a code or runs past the end of the stream. Quadruples
// are flattened in position order into a Stream, the input of the
// recompose package.
//
// Every real position is a scan start, including the last three; windows
// that would extend past the end are rejected by an explicit bounds check.
//
// All functions are safe for concurrent use by multiple goroutines.
package matcher

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/strycore/dojo-20130708/alphabet"
)

// Width is the number of slots recorded per position.
const Width = alphabet.MaxCodeLen

// ErrWindowSize is returned by Decompose when the window is not exactly Width bytes.
var ErrWindowSize = errors.New("matcher: window must be exactly 4 symbols")

// Candidate is a letter matched at some position, or NoMatch.
type Candidate byte

// NoMatch marks a slot where no letter code fits.
const NoMatch Candidate = 0

// Valid reports whether c holds a letter.
func (c Candidate) Valid() bool { return c != NoMatch }

// String returns the letter, or "" for NoMatch.
func (c Candidate) String() string {
	if c == NoMatch {
		return ""
	}
	return string(rune(c))
}

// Quadruple holds the candidates for one position; slot k is the letter whose
// code has length k+1 and starts at that position.
type Quadruple [Width]Candidate

// String renders the quadruple as e.g. "(e a _ _)".
func (q Quadruple) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for k, c := range q {
		if k > 0 {
			sb.WriteByte(' ')
		}
		if c.Valid() {
			sb.WriteByte(byte(c))
		} else {
			sb.WriteByte('_')
		}
	}
	sb.WriteByte(')')
	return sb.String()
}

// Stream is the flattened sequence of quadruples, Width slots per position.
type Stream []Candidate

// Positions returns the number of scanned positions.
func (s Stream) Positions() int { return len(s) / Width }

// Quadruple returns the candidates recorded for position i.
// Out-of-range positions yield an all-NoMatch quadruple.
func (s Stream) Quadruple(i int) Quadruple {
	var q Quadruple
	if i < 0 || i >= s.Positions() {
		return q
	}
	copy(q[:], s[i*Width:(i+1)*Width])
	return q
}

// Letters returns the number of slots holding a letter.
func (s Stream) Letters() int {
	n := 0
	for _, c := range s {
		if c.Valid() {
			n++
		}
	}
	return n
}

// String renders every quadruple, space separated.
func (s Stream) String() string {
	parts := make([]string, 0, s.Positions())
	for i := 0; i < s.Positions(); i++ {
		parts = append(parts, s.Quadruple(i).String())
	}
	return strings.Join(parts, " ")
}

// Match scans every position of stream and returns the flattened candidate
// stream. The result has exactly Width*len(stream) slots. An empty stream
// yields an empty result.
func Match(stream string) Stream {
	out := make(Stream, 0, Width*len(stream))
	for i := 0; i < len(stream); i++ {
		q := At(stream, i)
		out = append(out, q[:]...)
	}
	return out
}

// At returns the quadruple for position i of stream.
// Positions outside the stream yield an all-NoMatch quadruple.
func At(stream string, i int) Quadruple {
	var q Quadruple
	if i < 0 || i >= len(stream) {
		return q
	}
	for k := range q {
		end := i + k + 1
		if end > len(stream) {
			break
		}
		if l, ok := alphabet.Decode(stream[i:end]); ok {
			q[k] = Candidate(l)
		}
	}
	return q
}

// Decompose matches the 1- to 4-symbol prefixes of a single 4-byte window.
// Bytes that are not symbols (such as padding) never match. A window of any
// other length is a caller error and returns ErrWindowSize.
func Decompose(window string) (Quadruple, error) {
	if len(window) != Width {
		return Quadruple{}, fmt.Errorf("%w: got %d", ErrWindowSize, len(window))
	}
	return At(window, 0), nil
}

// Windows yields every full Width-symbol window of stream in order:
// len(stream)-3 windows, or none when the stream is shorter than Width.
func Windows(stream string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for i := 0; i+Width <= len(stream); i++ {
			if !yield(stream[i : i+Width]) {
				return
			}
		}
	}
}
