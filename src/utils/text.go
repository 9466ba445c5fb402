package utils

import (
	"strings"
	"unicode"
)

// ContainsArabic reports whether the string has at least one Arabic letter.
func ContainsArabic(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Arabic, r) {
			return true
		}
	}
	return false
}

// Highlight wraps every case-insensitive occurrence of term in <mark> tags.
// The original casing of the matched text is preserved. Matching works on
// runes so case folds that change byte length (İ, ẞ) cannot split a character.
func Highlight(text, term string) string {
	if term == "" || text == "" {
		return text
	}
	textRunes := []rune(text)
	folded := make([]rune, len(textRunes))
	for i, r := range textRunes {
		folded[i] = unicode.ToLower(r)
	}
	termRunes := []rune(strings.ToLower(term))

	var b strings.Builder
	start := 0
	for {
		idx := indexRunes(folded, termRunes, start)
		if idx < 0 {
			b.WriteString(string(textRunes[start:]))
			return b.String()
		}
		b.WriteString(string(textRunes[start:idx]))
		b.WriteString("<mark>")
		b.WriteString(string(textRunes[idx : idx+len(termRunes)]))
		b.WriteString("</mark>")
		start = idx + len(termRunes)
	}
}

func indexRunes(haystack, needle []rune, from int) int {
	for i := from; i+len(needle) <= len(haystack); i++ {
		match := true
		for j := range needle {
			if haystack[i+j] != needle[j] {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}

// Truncate shortens text to max runes, appending an ellipsis when clipped.
func Truncate(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max]) + "..."
}
