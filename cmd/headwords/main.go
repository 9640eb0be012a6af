// Command headwords counts the headwords of the words in a text document.
//
// Usage:
//
//	headwords --input book.txt [--output report.txt] [--lexicon lemmas.txt]
//
// Every output line holds a count and a headword, most frequent first.
package main

import (
	"errors"
	"flag"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/npillmayer/headword"
	"github.com/npillmayer/headword/internal/config"
	"github.com/npillmayer/headword/lemmatxt"
	"github.com/npillmayer/headword/report"
)

type options struct {
	input   string
	output  string
	lexicon string
	mapped  bool
}

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logger.SetOutput(os.Stderr)
	entry := logger.WithField("service", "headwords")

	cfg := config.Load()
	if level, err := logrus.ParseLevel(cfg.Log.Level); err == nil {
		logger.SetLevel(level)
	} else {
		entry.Warnf("Ignoring log level %q: %v", cfg.Log.Level, err)
	}

	opts, err := parseFlags(os.Args[1:], cfg, os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		entry.Fatalf("Invalid arguments: %v", err)
	}
	if err := run(opts, os.Stdout, entry); err != nil {
		entry.Fatalf("%v", err)
	}
}

func parseFlags(args []string, cfg *config.Config, usage io.Writer) (options, error) {
	opts := options{mapped: cfg.Lexicon.Mapped}
	fs := flag.NewFlagSet("headwords", flag.ContinueOnError)
	fs.SetOutput(usage)
	fs.StringVar(&opts.input, "input", "", "text document to analyze")
	fs.StringVar(&opts.input, "i", "", "shorthand for --input")
	fs.StringVar(&opts.output, "output", "", "report file (default: standard output)")
	fs.StringVar(&opts.output, "o", "", "shorthand for --output")
	fs.StringVar(&opts.lexicon, "lexicon", cfg.Lexicon.Path, "lemma list with one headword per line")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if opts.input == "" {
		return opts, errors.New("missing --input")
	}
	return opts, nil
}

func run(opts options, stdout io.Writer, log *logrus.Entry) (err error) {
	lex, err := loadLexicon(opts)
	if err != nil {
		return err
	}
	log.WithField("lexicon", opts.lexicon).Debugf("Loaded %d headwords", lex.Len())

	doc, err := os.Open(opts.input)
	if err != nil {
		return err
	}
	defer doc.Close()
	freq, err := headword.ProcessReader(lex, doc)
	if err != nil {
		return err
	}
	log.WithField("input", opts.input).Debugf("Counted %d occurrences of %d headwords",
		freq.Total(), freq.Len())

	out := stdout
	if opts.output != "" {
		f, ferr := os.Create(opts.output)
		if ferr != nil {
			return ferr
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		out = f
	}
	return report.Write(out, freq.Sorted(), report.LineSeparator())
}

func loadLexicon(opts options) (*headword.Lexicon, error) {
	if opts.mapped {
		return lemmatxt.LoadFile(opts.lexicon)
	}
	return lemmatxt.ReadFile(opts.lexicon)
}
