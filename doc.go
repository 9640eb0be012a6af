/*
Package headword resolves surface words to their dictionary headword (lemma)
and counts headword frequencies in text documents.

A lexicon is loaded once from a streaming, format-agnostic source of
(headword, related forms) pairs. Entries whose related forms all start with
the headword's first letter are kept in per-letter buckets; entries with at
least one irregular form ("went" for "go") are kept in a separate fallback
table. Lookup first tries the bucket of the word's initial letter and only
then scans the irregular entries.

The set of all headwords and related forms (the valid vocabulary) is stored
in a prefix trie and used to filter document tokens before resolution.

Only ASCII letters and hyphens are significant for tokenization; there is no
stemming and no part-of-speech disambiguation.

Further Reading

	https://en.wikipedia.org/wiki/Lemma_(morphology)
	http://wordlist.aspell.net/12dicts/   (2+2+3lem, a headword list of this shape)

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package headword

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'headword'
func tracer() tracing.Trace {
	return tracing.Select("headword")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
