// Package morse decodes Morse code written without letter spacing into
// every letter sequence that could have produced it.
//
// International Morse codes are 1 to 4 symbols long and some codes are
// prefixes of others, so a stream such as ".-" reads both as "a" and as
// "et". The package enumerates all such readings; it does not rank them or
// check them against a dictionary.
//
// The package provides two API layers:
//
//   - Convenience: DecodeAll, Count and Encode use a default Decoder with
//     strict input, lexical ordering and no result limit.
//
//   - Configurable: New builds a Decoder with a logger, a result limit,
//     an ordering and optional glyph normalization.
//
// Input must consist of '.' and '-' only. Any other character, including
// whitespace, is reported as an *InputError wrapping ErrMalformedInput
// before any decoding is attempted. Spacing is never interpreted.
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - Letters a-z only; digits, punctuation and prosigns are not decoded.
//   - The number of decodings grows exponentially with input length.
//     A run of 60 dots already has more than 10^16 readings; use Count
//     or WithLimit before enumerating untrusted input.
package morse

import (
	"math/big"
	"unicode/utf8"

	"github.com/strycore/dojo-20130708/alphabet"
	"github.com/strycore/dojo-20130708/recompose"
)

var std = New()

// DecodeAll returns every segmentation of s into letters, sorted lexically.
// The empty string has exactly one, empty, segmentation.
func DecodeAll(s string) ([]recompose.Segmentation, error) {
	return std.Decode(s)
}

// Count returns the number of segmentations DecodeAll would return.
func Count(s string) (*big.Int, error) {
	return std.Count(s)
}

// Validate reports the first character of s that is not a Morse symbol.
func Validate(s string) error {
	for i, r := range s {
		if r >= utf8.RuneSelf || !alphabet.IsSymbol(byte(r)) {
			return &InputError{Offset: i, Rune: r, Err: ErrMalformedInput}
		}
	}
	return nil
}

// Encode returns the Morse codes of the letters of word, concatenated
// without spacing. Letters are case-insensitive. The empty word encodes to
// the empty string.
func Encode(word string) (string, error) {
	buf := make([]byte, 0, len(word)*alphabet.MaxCodeLen)
	for i, r := range word {
		code, ok := "", false
		if r < utf8.RuneSelf {
			code, ok = alphabet.Encode(byte(r))
		}
		if !ok {
			return "", &InputError{Offset: i, Rune: r, Err: ErrUnknownLetter}
		}
		buf = append(buf, code...)
	}
	return string(buf), nil
}
