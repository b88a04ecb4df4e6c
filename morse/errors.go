package morse

import (
	"errors"
	"fmt"

	"github.com/strycore/dojo-20130708/matcher"
	"github.com/strycore/dojo-20130708/recompose"
)

var (
	// ErrMalformedInput: the input holds a character other than '.' or '-'.
	ErrMalformedInput = errors.New("morse: malformed input")
	// ErrUnknownLetter: a word passed to Encode holds a character outside a-z.
	ErrUnknownLetter = errors.New("morse: unknown letter")
)

// InputError reports the first offending character of an input.
type InputError struct {
	Offset int   // byte offset into the input
	Rune   rune  // the offending character
	Err    error // ErrMalformedInput or ErrUnknownLetter
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%v: %q at offset %d", e.Err, e.Rune, e.Offset)
}

func (e *InputError) Unwrap() error { return e.Err }

// Code is a coarse error class for logs and exit reporting.
type Code string

const (
	CodeUnknown   Code = "unknown"
	CodeMalformed Code = "malformed"
	CodeContract  Code = "contract"
	CodeLimit     Code = "limit"
)

// Classify maps err to a Code using sentinel errors only.
func Classify(err error) Code {
	switch {
	case err == nil:
		return CodeUnknown
	case errors.Is(err, ErrMalformedInput), errors.Is(err, ErrUnknownLetter):
		return CodeMalformed
	case errors.Is(err, recompose.ErrLimitExceeded):
		return CodeLimit
	case errors.Is(err, recompose.ErrContract), errors.Is(err, matcher.ErrWindowSize):
		return CodeContract
	default:
		return CodeUnknown
	}
}
