// Package normalize folds the typographic variants of Morse symbols found in
// pasted or typeset text into the two ASCII symbols '.' and '-'.
//
// Input is first width-folded, so full-width forms such as U+FF0E and
// U+FF0D become ASCII, and then composed to NFC. Dot-like glyphs (middle dot, bullet,
// bullet operator, dot operator) then map to '.', and dash-like glyphs
// (minus sign, hyphen, en and em dashes, low line) map to '-'.
//
// Every other rune passes through unchanged, so callers still see and can
// report characters that are not Morse symbols. Whitespace is not removed:
// gaps are not interpreted.
//
// All functions are safe for concurrent use by multiple goroutines.
package normalize

import (
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// glyphs maps symbol look-alikes to ASCII symbols.
var glyphs = map[rune]rune{
	'·': '.', // middle dot
	'•': '.', // bullet
	'∙': '.', // bullet operator
	'⋅': '.', // dot operator
	'․': '.', // one dot leader

	'−': '-', // minus sign
	'‐': '-', // hyphen
	'‑': '-', // non-breaking hyphen
	'‒': '-', // figure dash
	'–': '-', // en dash
	'—': '-', // em dash
	'―': '-', // horizontal bar
	'_': '-', // low line
}

// Symbols returns s with every Morse glyph variant replaced by '.' or '-'.
// Returns s unchanged when it is already plain ASCII without look-alikes.
func Symbols(s string) string {
	if isPlain(s) {
		return s
	}
	out, _, err := transform.String(folder(), s)
	if err != nil {
		return s
	}
	return out
}

// IsGlyph reports whether r is a look-alike that Symbols rewrites.
func IsGlyph(r rune) bool {
	_, ok := glyphs[r]
	return ok
}

// folder builds a fresh transformer chain; chains hold state and must not be shared.
func folder() transform.Transformer {
	return transform.Chain(width.Fold, norm.NFC, runes.Map(func(r rune) rune {
		if g, ok := glyphs[r]; ok {
			return g
		}
		return r
	}))
}

func isPlain(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 || s[i] == '_' {
			return false
		}
	}
	return true
}
