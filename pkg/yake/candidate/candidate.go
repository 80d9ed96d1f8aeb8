package candidate

import (
	"strings"

	"github.com/cognicore/yake/pkg/yake/ingest"
)

// Candidate groups every occurrence of one lexical form. The three
// occurrence slices are parallel: index i of each describes one occurrence.
type Candidate struct {
	Lexical      []string   // lowercase stems
	SurfaceForms [][]string // original-case words per occurrence
	SentenceIDs  []int
	Offsets      []int // document offset of the first word
}

// Key returns the space-joined lexical form.
func (c *Candidate) Key() string {
	return strings.Join(c.Lexical, " ")
}

// Frequency returns the number of recorded occurrences.
func (c *Candidate) Frequency() int {
	return len(c.SurfaceForms)
}

// Set holds candidates keyed by lexical form, iterating in first-insertion
// order so every downstream stage is deterministic.
type Set struct {
	index map[string]int
	items []*Candidate
}

// NewSet creates an empty candidate set
func NewSet() *Set {
	return &Set{index: make(map[string]int)}
}

// Len returns the number of distinct lexical forms.
func (s *Set) Len() int {
	return len(s.items)
}

// Get looks a candidate up by its lexical form key.
func (s *Set) Get(key string) (*Candidate, bool) {
	i, ok := s.index[key]
	if !ok {
		return nil, false
	}
	return s.items[i], true
}

// All returns the candidates in insertion order.
func (s *Set) All() []*Candidate {
	return s.items
}

// Filter returns a new set with the candidates for which keep returns true.
func (s *Set) Filter(keep func(*Candidate) bool) *Set {
	out := NewSet()
	for _, c := range s.items {
		if keep(c) {
			out.index[c.Key()] = len(out.items)
			out.items = append(out.items, c)
		}
	}
	return out
}

func (s *Set) add(stems, words []string, sentenceID, offset int) {
	key := strings.Join(stems, " ")
	if i, ok := s.index[key]; ok {
		c := s.items[i]
		c.SurfaceForms = append(c.SurfaceForms, words)
		c.SentenceIDs = append(c.SentenceIDs, sentenceID)
		c.Offsets = append(c.Offsets, offset)
		return
	}
	s.index[key] = len(s.items)
	s.items = append(s.items, &Candidate{
		Lexical:      stems,
		SurfaceForms: [][]string{words},
		SentenceIDs:  []int{sentenceID},
		Offsets:      []int{offset},
	})
}

// Generate enumerates every contiguous span of 1..n tokens inside each
// sentence and groups the spans by lexical form. Spans never cross a
// sentence boundary.
func Generate(sentences []ingest.Sentence, n int) *Set {
	set := NewSet()
	shift := 0
	for idx, sentence := range sentences {
		length := sentence.Len()
		for j := 0; j < length; j++ {
			end := min(j+n, length)
			for k := j + 1; k <= end; k++ {
				set.add(sentence.Stems[j:k:k], sentence.Words[j:k:k], idx, shift+j)
			}
		}
		shift += length
	}
	return set
}
