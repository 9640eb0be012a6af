/*
Package lemmatxt reads lexicons in the line-oriented lemma list format.

Every line holds one headword, optionally followed by a tab and a
space-separated list of related forms:

	abandon	abandons abandoned abandoning
	abeam
	although	altho tho though

Blank lines are ignored, as are tab-separated fields after the second one.
*/
package lemmatxt

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/edsrzf/mmap-go"
	"github.com/npillmayer/headword"
)

const maxLineLength = 1024 * 1024

// Reader streams lexicon entries from a lemma list.
type Reader struct {
	scanner *bufio.Scanner
	line    int
	related []string
}

// LoadLexicon parses a lemma list from reader and returns a ready-to-use
// lexicon.
func LoadLexicon(name string, reader io.Reader) (*headword.Lexicon, error) {
	return headword.LoadLexicon(name, NewReader(reader))
}

// LoadFile memory-maps a lemma list file and builds a lexicon from it.
// The mapping is released before LoadFile returns.
func LoadFile(path string) (*headword.Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	name := filepath.Base(path)
	if info.Size() == 0 { // empty files cannot be mapped
		return headword.NewLexicon(name, nil), nil
	}
	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("cannot map lexicon %s: %w", path, err)
	}
	defer m.Unmap()
	return LoadLexicon(name, bytes.NewReader(m))
}

// ReadFile reads a lemma list file into memory and builds a lexicon from it.
// Use it where memory mapping is not available.
func ReadFile(path string) (*headword.Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return LoadLexicon(filepath.Base(path), bytes.NewReader(data))
}

func NewReader(reader io.Reader) *Reader {
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	return &Reader{
		scanner: scanner,
		related: make([]string, 0, 16),
	}
}

// Line returns the number of the line most recently read.
func (r *Reader) Line() int {
	return r.line
}

// Next returns the next entry as (headword, related forms).
// It returns io.EOF when exhausted.
// The returned slice is reused by subsequent calls.
func (r *Reader) Next() (string, []string, error) {
	for r.scanner.Scan() {
		r.line++
		line := strings.TrimSpace(r.scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		hw := strings.TrimSpace(fields[0])
		if hw == "" {
			continue
		}
		r.related = r.related[:0]
		if len(fields) > 1 {
			r.related = append(r.related, strings.Fields(fields[1])...)
		}
		return hw, r.related, nil
	}
	if err := r.scanner.Err(); err != nil {
		return "", nil, fmt.Errorf("lemma list line %d: %w", r.line+1, err)
	}
	return "", nil, io.EOF
}
