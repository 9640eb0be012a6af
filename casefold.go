package headword

import (
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// lowercase folds s to lower case. ASCII input without upper case letters
// is returned as is.
//
// A Caser is stateful, so a fresh one is created for every call that needs
// one. This keeps lookups on a shared Lexicon free of data races.
func lowercase(s string) string {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= utf8.RuneSelf || ('A' <= c && c <= 'Z') {
			return cases.Lower(language.Und).String(s)
		}
	}
	return s
}

// initial returns the first rune of word, or utf8.RuneError for an empty word.
func initial(word string) rune {
	r, _ := utf8.DecodeRuneInString(word)
	return r
}
