package headword

import "sort"

// Count is the number of occurrences of one headword.
type Count struct {
	Headword string
	N        int
}

// Frequencies tallies headword occurrences.
type Frequencies struct {
	counts map[string]int
	order  []string // headwords in order of first occurrence
	total  int
}

// NewFrequencies creates an empty frequency table.
func NewFrequencies() *Frequencies {
	return &Frequencies{counts: make(map[string]int)}
}

// Add counts one occurrence of headword.
func (f *Frequencies) Add(headword string) {
	if f.counts == nil {
		f.counts = make(map[string]int)
	}
	if _, seen := f.counts[headword]; !seen {
		f.order = append(f.order, headword)
	}
	f.counts[headword]++
	f.total++
}

// Count returns the number of occurrences of headword.
func (f *Frequencies) Count(headword string) int {
	return f.counts[headword]
}

// Len returns the number of distinct headwords.
func (f *Frequencies) Len() int {
	return len(f.order)
}

// Total returns the number of counted occurrences.
func (f *Frequencies) Total() int {
	return f.total
}

// Headwords returns the counted headwords in order of first occurrence.
func (f *Frequencies) Headwords() []string {
	hh := make([]string, len(f.order))
	copy(hh, f.order)
	return hh
}

// Sorted returns all counts, highest first. Equal counts are ordered
// alphabetically by headword.
func (f *Frequencies) Sorted() []Count {
	cc := make([]Count, 0, len(f.order))
	for _, hw := range f.order {
		cc = append(cc, Count{Headword: hw, N: f.counts[hw]})
	}
	sort.Slice(cc, func(i, j int) bool {
		if cc[i].N != cc[j].N {
			return cc[i].N > cc[j].N
		}
		return cc[i].Headword < cc[j].Headword
	})
	return cc
}
