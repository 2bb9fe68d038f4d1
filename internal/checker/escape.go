package checker

import (
	"errors"
	"fmt"
	"strings"
)

// MaxCodepoint is the largest value a %x escape may encode.
const MaxCodepoint = 0x10FFFF

const escapeMarker = "%x"

var ErrMalformedEscape = errors.New("malformed unicode escape")

type EscapeReason int

const (
	MissingDigits EscapeReason = iota
	MissingTerminator
	OutOfRange
)

func (r EscapeReason) String() string {
	switch r {
	case MissingDigits:
		return "no hex digits after %x"
	case MissingTerminator:
		return "missing ';'"
	case OutOfRange:
		return "codepoint above U+10FFFF"
	default:
		return fmt.Sprintf("EscapeReason(%d)", int(r))
	}
}

// EscapeError locates the first bad escape in a string. Offset is the byte
// offset of its %x marker.
type EscapeError struct {
	Offset int
	Reason EscapeReason
}

func (e *EscapeError) Error() string {
	return fmt.Sprintf("%v at offset %d: %v", ErrMalformedEscape, e.Offset, e.Reason)
}

func (e *EscapeError) Unwrap() error { return ErrMalformedEscape }

// ValidateEscapes checks every %x<hex>; escape in s, left to right, and
// returns an *EscapeError for the first one that is malformed.
func ValidateEscapes(s string) error {
	pos := 0
	for {
		i := strings.Index(s[pos:], escapeMarker)
		if i < 0 {
			return nil
		}
		start := pos + i
		j := start + len(escapeMarker)
		value, digits := 0, 0
		for ; j < len(s) && isHex(s[j]); j++ {
			// stop accumulating once out of range so long runs cannot overflow
			if value <= MaxCodepoint {
				value = value<<4 | hexValue(s[j])
			}
			digits++
		}
		switch {
		case digits == 0:
			return &EscapeError{Offset: start, Reason: MissingDigits}
		case j >= len(s) || s[j] != ';':
			return &EscapeError{Offset: start, Reason: MissingTerminator}
		case value > MaxCodepoint:
			return &EscapeError{Offset: start, Reason: OutOfRange}
		}
		pos = j + 1
	}
}

// CheckEscapedUnicode reports whether every %x escape in s is well formed.
func CheckEscapedUnicode(s string) bool {
	return ValidateEscapes(s) == nil
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func hexValue(c byte) int {
	switch {
	case c >= 'a':
		return int(c-'a') + 10
	case c >= 'A':
		return int(c-'A') + 10
	default:
		return int(c - '0')
	}
}
