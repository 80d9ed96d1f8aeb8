package rank

import (
	"cmp"
	"slices"
)

// Selector picks the best phrases from a scored list.
type Selector struct {
	dedupe    bool
	threshold float64
}

// NewSelector creates a selector. With dedupe enabled, a phrase whose
// similarity Ratio to an already selected phrase exceeds threshold is
// skipped.
func NewSelector(dedupe bool, threshold float64) *Selector {
	return &Selector{dedupe: dedupe, threshold: threshold}
}

// Select sorts phrases by ascending score and returns at most topN of them.
// Ties are broken by keyword so the order is stable across runs.
func (s *Selector) Select(phrases []Phrase, topN int) []Phrase {
	if topN <= 0 || len(phrases) == 0 {
		return nil
	}

	sorted := slices.Clone(phrases)
	slices.SortStableFunc(sorted, cmpPhrase)

	if !s.dedupe {
		return sorted[:min(topN, len(sorted))]
	}

	selected := make([]Phrase, 0, min(topN, len(sorted)))
	for _, p := range sorted {
		if s.redundant(p, selected) {
			continue
		}
		selected = append(selected, p)
		if len(selected) >= topN {
			break
		}
	}
	return selected
}

func (s *Selector) redundant(p Phrase, selected []Phrase) bool {
	for _, prev := range selected {
		if Ratio(p.Keyword, prev.Keyword) > s.threshold {
			return true
		}
	}
	return false
}

func cmpPhrase(a, b Phrase) int {
	if c := cmp.Compare(a.Score, b.Score); c != 0 {
		return c
	}
	return cmp.Compare(a.Keyword, b.Keyword)
}
