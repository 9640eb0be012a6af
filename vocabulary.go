package headword

import (
	"sort"

	"github.com/derekparker/trie"
)

// Vocabulary is the set of valid words of a lexicon: every headword plus
// every related form. It is used as a membership filter for document tokens.
//
// Words are kept in a prefix trie. A Vocabulary is read-only once its
// lexicon has been built.
type Vocabulary struct {
	words *trie.Trie
	size  int
}

func newVocabulary() *Vocabulary {
	return &Vocabulary{words: trie.New()}
}

func (v *Vocabulary) add(word string) {
	if word == "" {
		return
	}
	if _, found := v.words.Find(word); found {
		return
	}
	v.words.Add(word, nil)
	v.size++
}

// Contains reports whether word is a valid word. word is expected to be
// lower case already.
func (v *Vocabulary) Contains(word string) bool {
	if v == nil || word == "" {
		return false
	}
	_, found := v.words.Find(word)
	return found
}

// Len returns the number of distinct valid words.
func (v *Vocabulary) Len() int {
	if v == nil {
		return 0
	}
	return v.size
}

// WithPrefix returns all valid words starting with prefix, sorted.
func (v *Vocabulary) WithPrefix(prefix string) []string {
	if v == nil || v.size == 0 {
		return nil
	}
	words := v.words.PrefixSearch(prefix)
	sort.Strings(words)
	return words
}
