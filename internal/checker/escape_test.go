package checker

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckEscapedUnicode(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"", true},
		{"abc", true},
		{"100%", true},
		{"%y41;", true},
		{"%x48;", true},
		{"%x0;", true},
		{"%x10FFFF;", true},
		{"%x10ffff;", true},
		{"a%x41;b%x42;c", true},
		{"%x0000000041;", true},
		{"%x48;;", true},
		{"%x110000;", false},
		{"%xFFFFFFFF;", false},
		{"%xFFFFFFFFFFFFFFFFFFFFFFFF;", false},
		{"%xZZ;", false},
		{"%x;", false},
		{"%x41", false},
		{"%x", false},
		{"%x41 ;", false},
		{"%x 41;", false},
		{"%x-41;", false},
		{"%x41;%x", false},
		{"%x41;%xG;", false},
		{"ok %x41; then %x110000;", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, CheckEscapedUnicode(tt.input), "input %q", tt.input)
	}
}

func TestValidateEscapesReason(t *testing.T) {
	tests := []struct {
		input  string
		offset int
		reason EscapeReason
	}{
		{"%xZZ;", 0, MissingDigits},
		{"ab%x41", 2, MissingTerminator},
		{"%x41;%xFFFFFFFF;", 5, OutOfRange},
		{"%x41;%x42;x%x", 11, MissingDigits},
	}
	for _, tt := range tests {
		err := ValidateEscapes(tt.input)
		require.Error(t, err, tt.input)
		assert.True(t, errors.Is(err, ErrMalformedEscape))
		var esc *EscapeError
		require.True(t, errors.As(err, &esc))
		assert.Equal(t, tt.offset, esc.Offset, tt.input)
		assert.Equal(t, tt.reason, esc.Reason, tt.input)
	}
}

func TestEscapeErrorMessage(t *testing.T) {
	err := ValidateEscapes("a%x41")
	assert.EqualError(t, err, "malformed unicode escape at offset 1: missing ';'")
}
