package headword

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// Entry is one lexicon line: a headword and its related (inflected or
// irregular) forms. Related may be empty.
type Entry struct {
	Headword string
	Related  []string
}

// EntryReader yields lexicon entries one-by-one.
// It should return io.EOF when the stream is exhausted.
type EntryReader interface {
	Next() (headword string, related []string, err error)
}

// formSet holds the related forms of a headword. A nil set means the
// headword has no related forms and resolves only to itself.
type formSet map[string]struct{}

func newFormSet(forms []string) formSet {
	if len(forms) == 0 {
		return nil
	}
	fs := make(formSet, len(forms))
	for _, f := range forms {
		fs[f] = struct{}{}
	}
	return fs
}

func (fs formSet) contains(word string) bool {
	_, ok := fs[word]
	return ok
}

func (fs formSet) sorted() []string {
	forms := make([]string, 0, len(fs))
	for f := range fs {
		forms = append(forms, f)
	}
	sort.Strings(forms)
	return forms
}

type indexEntry struct {
	headword string
	related  formSet
}

// table is an insertion-ordered map from headword to related forms.
// Scans run in lexicon order, so the first headword listing a form wins.
type table struct {
	position map[string]int
	entries  []indexEntry
}

func newTable() *table {
	return &table{position: make(map[string]int)}
}

func (t *table) put(headword string, related formSet) {
	assert(t.position != nil, "table not initialized")
	t.position[headword] = len(t.entries)
	t.entries = append(t.entries, indexEntry{headword: headword, related: related})
}

func (t *table) lookup(headword string) (formSet, bool) {
	if t == nil {
		return nil, false
	}
	i, ok := t.position[headword]
	if !ok {
		return nil, false
	}
	return t.entries[i].related, true
}

// Lexicon maps surface words to their headwords.
//
// Entries whose related forms all share the headword's initial letter are
// stored in the regular index, bucketed by that letter. Entries with at
// least one related form starting with a different letter ("went" for
// "go") are stored in the irregular index. Every headword lives in exactly
// one of the two.
//
// A Lexicon is immutable after construction and may be shared between
// goroutines.
type Lexicon struct {
	regular    map[rune]*table // initial letter => bucket
	irregular  *table
	vocabulary *Vocabulary
	Identifier string // Identifies the lexicon
}

// LexiconStats reports the shape of a lexicon's indices.
type LexiconStats struct {
	Regular       int // headwords in the regular index
	Irregular     int // headwords in the irregular index
	Buckets       int // populated initial-letter buckets
	LargestBucket int // entries in the largest bucket
	Vocabulary    int // distinct valid words
}

// LoadLexicon builds a lexicon from a streaming, format-agnostic source.
//
// File format parsing is intentionally outside the base package. Use
// adapters like package lemmatxt to parse concrete formats and feed this API.
func LoadLexicon(name string, reader EntryReader) (*Lexicon, error) {
	entries := make([]Entry, 0, 1024)
	for {
		hw, related, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		forms := make([]string, len(related)) // readers may reuse their slices
		copy(forms, related)
		entries = append(entries, Entry{Headword: hw, Related: forms})
	}
	return NewLexicon(name, entries), nil
}

// NewLexicon builds a lexicon from an in-memory list of entries.
//
// Headwords and related forms are lower-cased. Entries without a headword
// are skipped. If a headword occurs more than once, the last occurrence
// provides the related forms while the first one determines its position.
func NewLexicon(name string, entries []Entry) *Lexicon {
	lex := &Lexicon{
		regular:    make(map[rune]*table),
		irregular:  newTable(),
		vocabulary: newVocabulary(),
		Identifier: fmt.Sprintf("lexicon: %s", name),
	}
	merged := make([]Entry, 0, len(entries))
	seen := make(map[string]int, len(entries))
	for _, e := range entries {
		hw := lowercase(strings.TrimSpace(e.Headword))
		if hw == "" {
			tracer().Debugf("skipping lexicon entry without headword")
			continue
		}
		related := make([]string, 0, len(e.Related))
		for _, f := range e.Related {
			if f = lowercase(strings.TrimSpace(f)); f != "" {
				related = append(related, f)
			}
		}
		if i, dup := seen[hw]; dup {
			tracer().Debugf("duplicate headword %q replaces earlier entry", hw)
			merged[i].Related = related
			continue
		}
		seen[hw] = len(merged)
		merged = append(merged, Entry{Headword: hw, Related: related})
	}
	for _, e := range merged {
		lex.insert(e.Headword, e.Related)
	}
	st := lex.Stats()
	tracer().Infof("%s regular=%d irregular=%d buckets=%d largest=%d vocabulary=%d",
		lex.Identifier, st.Regular, st.Irregular, st.Buckets, st.LargestBucket, st.Vocabulary)
	return lex
}

func (lex *Lexicon) insert(headword string, related []string) {
	lex.vocabulary.add(headword)
	for _, f := range related {
		lex.vocabulary.add(f)
	}
	if isIrregular(headword, related) {
		lex.irregular.put(headword, newFormSet(related))
		return
	}
	c := initial(headword)
	bucket := lex.regular[c]
	if bucket == nil {
		bucket = newTable()
		lex.regular[c] = bucket
	}
	bucket.put(headword, newFormSet(related))
}

// isIrregular is true if any related form starts with a letter other than
// the headword's initial.
func isIrregular(headword string, related []string) bool {
	c := initial(headword)
	for _, f := range related {
		if initial(f) != c {
			return true
		}
	}
	return false
}

// Resolve returns the headword for a surface word.
// Lookup is case-insensitive. The second return value is false if word is
// neither a headword nor a related form of one.
//
// Example:
//
//	"went" => "go", true
func (lex *Lexicon) Resolve(word string) (string, bool) {
	if lex == nil {
		return "", false
	}
	word = lowercase(word)
	if word == "" {
		return "", false
	}
	if bucket := lex.regular[initial(word)]; bucket != nil {
		if _, ok := bucket.position[word]; ok {
			return word, true
		}
		for _, e := range bucket.entries {
			if e.related.contains(word) {
				return e.headword, true
			}
		}
	}
	for _, e := range lex.irregular.entries {
		if e.headword == word {
			return word, true
		}
		if e.related.contains(word) {
			return e.headword, true
		}
	}
	return "", false
}

// Related returns the sorted related forms of a headword. The slice is empty
// for a headword without related forms. The second return value is false if
// headword is not a headword of this lexicon.
func (lex *Lexicon) Related(headword string) ([]string, bool) {
	if lex == nil {
		return nil, false
	}
	headword = lowercase(headword)
	if related, ok := lex.regular[initial(headword)].lookup(headword); ok {
		return related.sorted(), true
	}
	if related, ok := lex.irregular.lookup(headword); ok {
		return related.sorted(), true
	}
	return nil, false
}

// IsIrregular reports whether headword is filed in the irregular index.
func (lex *Lexicon) IsIrregular(headword string) bool {
	if lex == nil {
		return false
	}
	_, ok := lex.irregular.lookup(lowercase(headword))
	return ok
}

// Contains reports whether word is a headword or a related form.
func (lex *Lexicon) Contains(word string) bool {
	if lex == nil {
		return false
	}
	return lex.vocabulary.Contains(lowercase(word))
}

// Vocabulary returns the set of valid words of this lexicon.
func (lex *Lexicon) Vocabulary() *Vocabulary {
	if lex == nil {
		return nil
	}
	return lex.vocabulary
}

// Len returns the number of headwords.
func (lex *Lexicon) Len() int {
	st := lex.Stats()
	return st.Regular + st.Irregular
}

// Stats reports density metrics for the lexicon's indices.
func (lex *Lexicon) Stats() LexiconStats {
	var st LexiconStats
	if lex == nil {
		return st
	}
	for _, bucket := range lex.regular {
		n := len(bucket.entries)
		st.Regular += n
		st.Buckets++
		st.LargestBucket = max(st.LargestBucket, n)
	}
	st.Irregular = len(lex.irregular.entries)
	st.Vocabulary = lex.vocabulary.Len()
	return st
}
