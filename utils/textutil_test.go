package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"mixed whitespace", "  a\n\tb  ", "a b"},
		{"already clean", "a b", "a b"},
		{"inner runs collapse", "loss  of   control", "loss of control"},
		{"newlines inside", "line one\n\nline two", "line one line two"},
		{"empty", "", ""},
		{"only whitespace", " \t\n ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanText(tt.input))
		})
	}
}
