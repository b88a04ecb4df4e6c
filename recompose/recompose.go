// Package recompose rebuilds letter sequences from a matcher.Stream.
//
// A Segmentation is one way of splitting the symbol stream into letters.
// Starting from a quadruple, each slot k that holds a letter consumes k+1
// symbols and continues at the quadruple k+1 positions further on. A path
// that lands exactly on the end of the stream is a complete decoding.
//
// The package provides three views of the same search space:
//
//   - Recompose returns every Segmentation that exactly covers the stream
//     from a given offset.
//   - Prefixes returns every non-empty letter sequence that starts at the
//     offset and stays inside the stream, complete or not.
//   - Count returns the number of complete Segmentations without
//     enumerating them.
//
// Offsets are slot indexes into the stream and must be quadruple aligned:
// offset 4*i is position i.
//
// The search is iterative: a worklist of arena indexes replaces recursion,
// so stream length does not bound stack depth. The number of results grows
// exponentially with the number of ambiguous positions (a run of n dots has
// as many decodings as n has compositions into parts of size 1 to 4).
// Use RecomposeLimit or Count to guard untrusted input.
//
// Order of results is discovery order and carries no meaning. Use
// SortLexical or SortByLength for a canonical order.
//
// All functions are safe for concurrent use by multiple goroutines.
package recompose

import (
	"bytes"
	"cmp"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"slices"

	"github.com/strycore/dojo-20130708/matcher"
)

// ErrContract is wrapped by every error caused by a malformed candidate
// stream or offset. These indicate a caller bug, not bad user input.
var ErrContract = errors.New("recompose: contract violation")

var (
	// ErrStreamLength: the candidate stream length is not a multiple of matcher.Width.
	ErrStreamLength = fmt.Errorf("%w: stream length is not a multiple of %d", ErrContract, matcher.Width)
	// ErrOffset: the offset is negative, past the end, or not quadruple aligned.
	ErrOffset = fmt.Errorf("%w: offset out of range", ErrContract)
	// ErrSlot: a slot holds a letter whose code length does not match the slot,
	// or a letter that would run past the end of the stream.
	ErrSlot = fmt.Errorf("%w: invalid slot", ErrContract)
)

// ErrLimitExceeded is returned when a search would produce more results than allowed.
var ErrLimitExceeded = errors.New("recompose: too many segmentations")

// Segmentation is one decoded letter sequence.
type Segmentation []byte

// String returns the letters as a word, e.g. "et".
func (s Segmentation) String() string { return string(s) }

// MarshalJSON encodes the segmentation as a JSON string (e.g. "et").
func (s Segmentation) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

// UnmarshalJSON decodes a JSON string (e.g. "et") into a Segmentation.
func (s *Segmentation) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*s = Segmentation(str)
	return nil
}

// MarshalYAML encodes the segmentation as a YAML string.
func (s Segmentation) MarshalYAML() (any, error) {
	return string(s), nil
}

// Recompose returns every Segmentation that starts at offset and exactly
// covers the rest of the stream. When offset is the end of the stream the
// result is a single empty Segmentation.
func Recompose(c matcher.Stream, offset int) ([]Segmentation, error) {
	return RecomposeLimit(c, offset, 0)
}

// RecomposeLimit is Recompose with an upper bound on the number of results.
// A limit of zero or less means unlimited. When the bound is exceeded no
// results are returned, only ErrLimitExceeded.
func RecomposeLimit(c matcher.Stream, offset, limit int) ([]Segmentation, error) {
	w, err := newWalker(c, offset)
	if err != nil {
		return nil, err
	}
	return w.complete(limit)
}

// Prefixes returns every non-empty letter sequence that starts at offset and
// does not run past the end of the stream, whether or not it reaches the end.
func Prefixes(c matcher.Stream, offset int) ([]Segmentation, error) {
	return PrefixesLimit(c, offset, 0)
}

// PrefixesLimit is Prefixes with an upper bound on the number of results.
func PrefixesLimit(c matcher.Stream, offset, limit int) ([]Segmentation, error) {
	w, err := newWalker(c, offset)
	if err != nil {
		return nil, err
	}
	return w.prefixes(limit)
}

// Count returns the number of Segmentations Recompose would return.
func Count(c matcher.Stream, offset int) (*big.Int, error) {
	w, err := newWalker(c, offset)
	if err != nil {
		return nil, err
	}
	return w.count(), nil
}

// SortLexical orders segmentations by byte-wise letter comparison.
func SortLexical(segs []Segmentation) {
	slices.SortFunc(segs, func(a, b Segmentation) int {
		return bytes.Compare(a, b)
	})
}

// SortByLength orders segmentations by letter count, shortest first, then lexically.
func SortByLength(segs []Segmentation) {
	slices.SortFunc(segs, func(a, b Segmentation) int {
		if c := cmp.Compare(len(a), len(b)); c != 0 {
			return c
		}
		return bytes.Compare(a, b)
	})
}

// Strings returns the segmentations as words.
func Strings(segs []Segmentation) []string {
	if segs == nil {
		return nil
	}
	out := make([]string, len(segs))
	for i, s := range segs {
		out[i] = s.String()
	}
	return out
}
