// Package moderation masks censored words in outgoing message text.
// Matching is resilient to casing, punctuation noise and common leet-speak
// substitutions, while masking only touches the characters of the match.
package moderation

import (
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
)

// Moderator holds a prebuilt Aho-Corasick automaton over the normalized
// word list. A nil *Moderator means moderation is disabled.
type Moderator struct {
	machine *goahocorasick.Machine
	mask    rune
}

// NewModerator compiles the censored word list. The list must not be empty;
// an unconfigured deployment simply passes nil to the mutation service.
func NewModerator(words []string, mask rune) (*Moderator, error) {
	patterns := make([][]rune, 0, len(words))
	for _, w := range words {
		if p, _ := foldRunes([]rune(w)); len(p) > 0 {
			patterns = append(patterns, p)
		}
	}

	machine := new(goahocorasick.Machine)
	if err := machine.Build(patterns); err != nil {
		return nil, err
	}
	return &Moderator{machine: machine, mask: mask}, nil
}

// Censor replaces every censored occurrence in text with the mask rune,
// preserving length and spacing of the original. Text without matches is
// returned unchanged.
func (m *Moderator) Censor(text string) string {
	original := []rune(text)
	folded, origin := foldRunes(original)
	if len(folded) == 0 {
		return text
	}

	hits := m.machine.MultiPatternSearch(folded, false)
	if len(hits) == 0 {
		return text
	}

	for _, hit := range hits {
		start := hit.Pos
		end := start + len(hit.Word)
		if start < 0 || end > len(origin) {
			continue
		}
		// origin maps folded positions back to the raw rune positions, so
		// only the matched characters are masked.
		for i := origin[start]; i <= origin[end-1]; i++ {
			original[i] = m.mask
		}
	}
	return string(original)
}

// foldRunes lowercases, de-leets and strips noise runes, returning the
// folded text together with the original index of each kept rune.
func foldRunes(input []rune) ([]rune, []int) {
	folded := make([]rune, 0, len(input))
	origin := make([]int, 0, len(input))
	for i, r := range input {
		r = deleet(r)
		if unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r) {
			continue
		}
		folded = append(folded, unicode.ToLower(r))
		origin = append(origin, i)
	}
	return folded, origin
}

// deleet maps the usual digit/symbol substitutions back to letters.
func deleet(r rune) rune {
	switch r {
	case '4', '@':
		return 'a'
	case '3':
		return 'e'
	case '1', '!', '|':
		return 'i'
	case '0':
		return 'o'
	case '5', '$':
		return 's'
	default:
		return r
	}
}
