// Package alphabet holds the International Morse code table for the 26
// Latin letters and its inverse.
//
// A code is a string of 1 to MaxCodeLen symbols, each a Dot or a Dash.
// No two letters share a code, so Decode is the exact inverse of Encode.
// Decode only accepts whole table entries: the prefix of a longer code
// is not a match unless it is itself a code.
//
// The tables are built once at package initialization and never mutated.
// All functions are safe for concurrent use by multiple goroutines.
package alphabet

// Symbol is one element of a Morse code.
type Symbol byte

const (
	Dot  Symbol = '.'
	Dash Symbol = '-'
)

// MaxCodeLen is the length of the longest letter code.
const MaxCodeLen = 4

// IsSymbol reports whether b is a Dot or a Dash.
func IsSymbol(b byte) bool {
	return Symbol(b) == Dot || Symbol(b) == Dash
}

// Encode returns the Morse code for letter.
// Upper-case ASCII letters are folded to lower case.
// Reports false for anything outside a-z and A-Z.
func Encode(letter byte) (string, bool) {
	c, ok := letterToCode[fold(letter)]
	return c, ok
}

// Decode returns the letter whose code is exactly code.
// Reports false for the empty string, codes longer than MaxCodeLen and
// symbol strings that are not in the table.
func Decode(code string) (byte, bool) {
	if len(code) == 0 || len(code) > MaxCodeLen {
		return 0, false
	}
	l, ok := codeToLetter[code]
	return l, ok
}

// Len returns the code length of letter, or 0 if letter is not in the table.
func Len(letter byte) int {
	return len(letterToCode[fold(letter)])
}

// Letters returns the 26 table letters in alphabetical order.
func Letters() []byte {
	out := make([]byte, 0, len(letterToCode))
	for l := byte('a'); l <= 'z'; l++ {
		out = append(out, l)
	}
	return out
}

// Codes returns a copy of the letter-to-code table.
func Codes() map[byte]string {
	out := make(map[byte]string, len(letterToCode))
	for l, c := range letterToCode {
		out[l] = c
	}
	return out
}

func fold(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}
