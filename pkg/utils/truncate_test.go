package utils

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncateCharsShortString(t *testing.T) {
	assert.Equal(t, "hello", TruncateChars("hello", 10))
	assert.Equal(t, "hello", TruncateChars("hello", 5))
}

func TestTruncateCharsAscii(t *testing.T) {
	assert.Equal(t, "hel", TruncateChars("hello", 3))
	assert.Equal(t, "", TruncateChars("hello", 0))
}

func TestTruncateCharsCountsRunesNotBytes(t *testing.T) {
	// Each rune below is multi-byte; slicing bytes at the same limit would
	// split one mid-sequence
	s := strings.Repeat("é", 10)

	got := TruncateChars(s, 4)
	assert.Equal(t, "éééé", got)
	assert.True(t, utf8.ValidString(got))
}

func TestTruncateCharsMixedContent(t *testing.T) {
	s := "fee: ₹5000 – due 1 June"

	for n := 1; n < len(s); n++ {
		got := TruncateChars(s, n)
		assert.True(t, utf8.ValidString(got), "truncating to %d runes must stay valid UTF-8", n)
		assert.LessOrEqual(t, utf8.RuneCountInString(got), n)
	}
}
