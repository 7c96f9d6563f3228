package model

import (
	"strings"
	"unicode"
)

// DefaultLabeler turns a field name into a label: camelCase, snake_case and
// kebab-case boundaries become spaces and each word is title cased.
func DefaultLabeler(name string) string {
	var words []string
	var current []rune

	flush := func() {
		if len(current) > 0 {
			words = append(words, titleCase(string(current)))
			current = current[:0]
		}
	}

	runes := []rune(name)
	for i, r := range runes {
		switch {
		case r == '_' || r == '-' || unicode.IsSpace(r):
			flush()
			continue
		case i > 0 && isBoundary(runes[i-1], r):
			flush()
		}
		current = append(current, r)
	}
	flush()
	return strings.Join(words, " ")
}

func isBoundary(prev, r rune) bool {
	switch {
	case unicode.IsLower(prev) && unicode.IsUpper(r):
		return true
	case unicode.IsLetter(prev) && unicode.IsDigit(r):
		return true
	case unicode.IsDigit(prev) && unicode.IsLetter(r):
		return true
	}
	return false
}

func titleCase(word string) string {
	lower := []rune(strings.ToLower(word))
	if len(lower) == 0 {
		return ""
	}
	lower[0] = unicode.ToUpper(lower[0])
	return string(lower)
}
