package search

import "strings"

const (
	// maxPrefixLength caps how many leading characters get prefix postings.
	maxPrefixLength = 30
	// ngramSize is the fixed n-gram width.
	ngramSize = 3
	// minWordLength drops single-character tokens.
	minWordLength = 2
)

// Tokenize lowercases the text, splits on every non-alphanumeric rune and
// drops tokens shorter than two characters.
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !isAlphanumeric(r)
	})
	words := fields[:0]
	for _, f := range fields {
		if len([]rune(f)) >= minWordLength {
			words = append(words, f)
		}
	}
	return words
}

func isAlphanumeric(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9'
}

// Prefixes returns every leading substring of the text, from one character
// up to min(len, 30). The text is lowercased first.
func Prefixes(text string) []string {
	runes := []rune(strings.ToLower(text))
	limit := len(runes)
	if limit > maxPrefixLength {
		limit = maxPrefixLength
	}
	prefixes := make([]string, 0, limit)
	for i := 1; i <= limit; i++ {
		prefixes = append(prefixes, string(runes[:i]))
	}
	return prefixes
}

// NGrams returns the sliding 3-grams of the lowercased text. Text shorter
// than three characters yields itself as the single gram.
func NGrams(text string) []string {
	lower := strings.ToLower(text)
	runes := []rune(lower)
	if len(runes) < ngramSize {
		return []string{lower}
	}
	grams := make([]string, 0, len(runes)-ngramSize+1)
	for i := 0; i+ngramSize <= len(runes); i++ {
		grams = append(grams, string(runes[i:i+ngramSize]))
	}
	return grams
}

// Metaphone reduces the text to a simplified phonetic code. Consonants map
// to classes, vowels and the near-silent letters y/w/h vanish, and a code
// letter never immediately repeats. x expands to KS without collapse.
func Metaphone(text string) string {
	var b strings.Builder
	var prev rune

	for _, r := range strings.ToLower(text) {
		var code string
		switch r {
		case 'b', 'p', 'f', 'v':
			code = "B"
		case 'c', 'k', 'q':
			code = "K"
		case 'd', 't':
			code = "T"
		case 'g', 'j':
			code = "J"
		case 'l':
			code = "L"
		case 'm', 'n':
			code = "M"
		case 'r':
			code = "R"
		case 's', 'z':
			code = "S"
		case 'x':
			code = "KS"
		default:
			continue
		}

		if len(code) == 1 {
			c := rune(code[0])
			if prev != c {
				b.WriteRune(c)
				prev = c
			}
		} else {
			b.WriteString(code)
			prev = rune(code[0])
		}
	}
	return b.String()
}
