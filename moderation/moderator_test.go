package moderation

import (
	"chatgraph/errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const maskChar = '*'

// The dictionary uses specific words to avoid partial collisions (e.g., "he" inside "The")
func TestModerator_Censor(t *testing.T) {
	req := require.New(t)
	mod, err := NewModerator([]string{"badger", "snake"}, maskChar)
	req.NoError(err)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "simple word with preserved spacing",
			input:    "The badger is here",
			expected: "The ****** is here",
		},
		{
			name:     "case-insensitive match",
			input:    "BaDgEr crossing",
			expected: "****** crossing",
		},
		{
			name:     "leet-speak variant",
			input:    "watch the b4dg3r",
			expected: "watch the ******",
		},
		{
			name:     "multiple patterns in one text",
			input:    "snake meets badger",
			expected: "***** meets ******",
		},
		{
			name:     "clean text untouched",
			input:    "nothing to see",
			expected: "nothing to see",
		},
		{
			name:     "empty text untouched",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, mod.Censor(tt.input))
		})
	}
}

func TestLoadWords(t *testing.T) {
	t.Run("reads unique trimmed lines", func(t *testing.T) {
		req := require.New(t)
		path := filepath.Join(t.TempDir(), "words.txt")
		req.NoError(os.WriteFile(path, []byte("badger\r\n snake \n\nbadger\n"), 0o600))

		words, err := LoadWords(path)
		req.NoError(err)
		req.ElementsMatch([]string{"badger", "snake"}, words)
	})

	t.Run("rejects an empty file", func(t *testing.T) {
		req := require.New(t)
		path := filepath.Join(t.TempDir(), "words.txt")
		req.NoError(os.WriteFile(path, []byte("\n \n"), 0o600))

		_, err := LoadWords(path)
		req.ErrorIs(err, errors.ErrEmptyWords)
	})
}
