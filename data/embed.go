// Package data embeds the pinned decoding cases.
package data

import _ "embed"

// GoldenMorse is golden/morse.json: a JSON array of cases with name, input,
// want_count and optionally want, want_contains and want_error.
//
//go:embed golden/morse.json
var GoldenMorse []byte
