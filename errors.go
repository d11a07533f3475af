package cubeplay

import (
	"errors"
	"fmt"
)

// Sentinel errors for the cubeplay package.
var (
	// Parsing errors
	ErrInvalidNotation = errors.New("cubeplay: invalid move notation")

	// State errors
	ErrUnknownMove  = errors.New("cubeplay: move not covered by permutation tables")
	ErrCorruptState = errors.New("cubeplay: cube state is inconsistent")

	// Playback errors
	ErrBusy            = errors.New("cubeplay: playback already in progress")
	ErrIndexOutOfRange = errors.New("cubeplay: cursor out of range")
	ErrCanceled        = errors.New("cubeplay: playback canceled")
)

// ParseError reports the first invalid character in a move script.
// It unwraps to ErrInvalidNotation.
type ParseError struct {
	Line   int  // 1-based line number
	Column int  // 1-based column, counted in runes
	Char   rune // The rejected character
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cubeplay: invalid character %q at line %d, column %d", e.Char, e.Line, e.Column)
}

// Unwrap lets errors.Is match ErrInvalidNotation.
func (e *ParseError) Unwrap() error {
	return ErrInvalidNotation
}
