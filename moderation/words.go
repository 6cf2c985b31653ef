package moderation

import (
	"bufio"
	"chatgraph/errors"
	"os"
	"strings"
)

// LoadWords reads a censored-words file, one word per line, ignoring blank
// lines and duplicates. A configured but empty file is a deployment mistake
// and fails loudly with ErrEmptyWords.
func LoadWords(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	unique := make(map[string]struct{})
	// A scanner handles both \n and \r\n line endings.
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			unique[line] = struct{}{}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(unique) == 0 {
		return nil, errors.ErrEmptyWords
	}

	words := make([]string, 0, len(unique))
	for w := range unique {
		words = append(words, w)
	}
	return words, nil
}
