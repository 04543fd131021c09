package detect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello world"},
		{"  spaced   out  ", "spaced out"},
		{"don't stop", "dont stop"},
		{"Привет, мир!", "привет мир"},
		{"abc 123 def", "abc def"},
		{"42", ""},
		{"!!!", ""},
		{"", ""},
		{"tabs\tand\nnewlines", "tabs and newlines"},
		{"ÊTRE", "être"},
		{"ΕΛΛΗΝΙΚΆ", "ελληνικά"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, cleanText(tt.in), "cleanText(%q)", tt.in)
	}
}

func TestCleanText_CaseFolding(t *testing.T) {
	// Case folding is Unicode-aware, not ASCII-only.
	assert.Equal(t, cleanText("STRASSE"), cleanText("strasse"))
	assert.Equal(t, "соль", cleanText("СОЛЬ"))
}

func TestContainsLetter(t *testing.T) {
	assert.True(t, containsLetter("a"))
	assert.True(t, containsLetter("   ö"))
	assert.True(t, containsLetter("中"))
	assert.False(t, containsLetter(""))
	assert.False(t, containsLetter("  "))
	assert.False(t, containsLetter("12 34"))
}
