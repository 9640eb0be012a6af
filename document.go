package headword

import (
	"errors"
	"fmt"
	"io"
	"regexp"
)

// ErrInconsistentLexicon is returned if a word of a lexicon's vocabulary
// cannot be resolved by the same lexicon. This indicates a broken index, not
// bad input.
var ErrInconsistentLexicon = errors.New("valid word has no headword")

// a token is a maximal run of lower case ASCII letters and hyphens
var tokenPattern = regexp.MustCompile(`[a-z-]+`)

// Tokenize lower-cases text and splits it into candidate words.
//
// Example:
//
//	"Well-known fact: cats meow!" => [ "well-known", "fact", "cats", "meow" ].
func Tokenize(text string) []string {
	return tokenPattern.FindAllString(lowercase(text), -1)
}

// Headwords tokenizes text, drops every token which is not a valid word of
// lex and replaces the remaining ones by their headwords, keeping document
// order.
func Headwords(lex *Lexicon, text string) ([]string, error) {
	assert(lex != nil, "document processing needs a lexicon")
	tokens := Tokenize(text)
	stream := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if !lex.vocabulary.Contains(token) {
			continue
		}
		hw, ok := lex.Resolve(token)
		if !ok {
			tracer().Errorf("%s: cannot resolve valid word %q", lex.Identifier, token)
			return nil, fmt.Errorf("%w: %q in %s", ErrInconsistentLexicon, token, lex.Identifier)
		}
		stream = append(stream, hw)
	}
	tracer().Debugf("%d tokens, %d valid words", len(tokens), len(stream))
	return stream, nil
}

// Process counts headword occurrences in text.
// A text without any valid words yields an empty table.
func Process(lex *Lexicon, text string) (*Frequencies, error) {
	stream, err := Headwords(lex, text)
	if err != nil {
		return nil, err
	}
	freq := NewFrequencies()
	for _, hw := range stream {
		freq.Add(hw)
	}
	return freq, nil
}

// ProcessReader reads a document completely and counts headword
// occurrences in it.
func ProcessReader(lex *Lexicon, reader io.Reader) (*Frequencies, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	return Process(lex, string(data))
}
