package lemmatxt

import (
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/npillmayer/headword"
)

func TestReader(t *testing.T) {
	src := strings.NewReader("run\trunning ran runs\n\n  cat  \ngo\tgoes  went\tignored\n")
	r := NewReader(src)
	hw, related, err := r.Next()
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if hw != "run" || !reflect.DeepEqual(related, []string{"running", "ran", "runs"}) {
		t.Fatalf("entry mismatch: got %q %v", hw, related)
	}
	hw, related, err = r.Next()
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if hw != "cat" || len(related) != 0 {
		t.Fatalf("entry mismatch: got %q %v", hw, related)
	}
	if r.Line() != 3 {
		t.Fatalf("expected to be at line 3, am at %d", r.Line())
	}
	hw, related, err = r.Next()
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if hw != "go" || !reflect.DeepEqual(related, []string{"goes", "went"}) {
		t.Fatalf("entry mismatch: got %q %v", hw, related)
	}
	_, _, err = r.Next()
	if err != io.EOF {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}

func TestLoadLexicon(t *testing.T) {
	lex, err := LoadLexicon("inline", strings.NewReader("although\taltho tho though\nthe\n"))
	if err != nil {
		t.Fatal(err)
	}
	if hw, ok := lex.Resolve("tho"); !ok || hw != "although" {
		t.Fatalf("tho should resolve to although, is %q", hw)
	}
	if !lex.IsIrregular("although") {
		t.Fatalf("although should be filed as irregular")
	}
}

func TestLoadFileFixture(t *testing.T) {
	path := filepath.Join("..", "testdata", "lemmas.txt")
	loaders := map[string]func(string) (*headword.Lexicon, error){
		"mmap": LoadFile,
		"read": ReadFile,
	}
	for name, load := range loaders {
		lex, err := load(path)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if lex.Len() != 10 {
			t.Fatalf("%s: expected 10 headwords, have %d", name, lex.Len())
		}
		tests := []struct {
			word string
			want string
		}{
			{word: "went", want: "go"},
			{word: "Ran", want: "run"},
			{word: "i", want: "i"},
			{word: "worse", want: "bad"},
		}
		for _, tt := range tests {
			if got, _ := lex.Resolve(tt.word); got != tt.want {
				t.Fatalf("%s: resolve mismatch for %q: got %q, want %q", name, tt.word, got, tt.want)
			}
		}
	}
}

func TestLoadFileEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	lex, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if lex.Len() != 0 {
		t.Fatalf("expected empty lexicon, have %d headwords", lex.Len())
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatalf("expected error for missing lexicon")
	}
	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatalf("expected error for missing lexicon")
	}
}
