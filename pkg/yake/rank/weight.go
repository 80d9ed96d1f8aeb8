package rank

import (
	"strings"

	"github.com/cognicore/yake/pkg/yake/candidate"
	"github.com/cognicore/yake/pkg/yake/cooc"
	"github.com/cognicore/yake/pkg/yake/features"
)

// sumFloor replaces a running sum of exactly -1, which would zero the score.
const sumFloor = 0.999999999

// Phrase is a scored keyphrase.
type Phrase struct {
	Keyword string  // lowercase surface text
	Lexical string  // space-joined lexical form
	Raw     string  // most frequent original-case surface text
	Score   float64 // lower is more significant
}

// Weigher combines term weights into phrase scores.
type Weigher struct {
	terms    map[string]*features.Term
	contexts *cooc.Contexts
}

// NewWeigher creates a weigher over the given term features and contexts
func NewWeigher(terms map[string]*features.Term, contexts *cooc.Contexts) *Weigher {
	return &Weigher{terms: terms, contexts: contexts}
}

// Score computes the score of one phrase given its lowercase tokens and the
// number of times the phrase occurs.
//
// Non-stopword tokens contribute their term weight to a running product and
// sum. A stopword contributes according to how strongly it is bound to its
// neighbours: with prob = P(stop | left) * P(right | stop), the product is
// multiplied by 2-prob and 1-prob is taken off the sum. Tokens without
// features are skipped.
func (w *Weigher) Score(tokens []string, frequency int) float64 {
	prod, sum := 1.0, 0.0
	for j, token := range tokens {
		term, ok := w.terms[token]
		if !ok {
			continue
		}
		if !term.IsStop {
			prod *= term.Weight
			sum += term.Weight
			continue
		}

		var probLeft, probRight float64
		if j > 0 {
			left := tokens[j-1]
			if lt, ok := w.terms[left]; ok && lt.TF > 0 {
				probLeft = float64(w.contexts.Get(left).Right.Count(token)) / lt.TF
			}
		}
		if j+1 < len(tokens) {
			right := tokens[j+1]
			if rt, ok := w.terms[right]; ok && rt.TF > 0 {
				probRight = float64(w.contexts.Get(token).Left.Count(right)) / rt.TF
			}
		}

		prob := probLeft * probRight
		prod *= 1 + (1 - prob)
		sum -= 1 - prob
	}

	if sum == -1 {
		sum = sumFloor
	}
	return prod / float64(frequency) * (1 + sum)
}

// Weigh scores every surface form of every candidate. Phrases are keyed by
// lowercase surface text in first-seen order; when two candidates produce the
// same key, the later one's score wins.
func (w *Weigher) Weigh(set *candidate.Set) []Phrase {
	var phrases []Phrase
	index := make(map[string]int)
	variants := make(map[string]*surfaceCounter)

	for _, c := range set.All() {
		lexical := c.Key()
		frequency := c.Frequency()
		for _, surface := range c.SurfaceForms {
			raw := strings.Join(surface, " ")
			tokens := make([]string, len(surface))
			for i, s := range surface {
				tokens[i] = strings.ToLower(s)
			}
			key := strings.Join(tokens, " ")

			p := Phrase{Keyword: key, Lexical: lexical, Score: w.Score(tokens, frequency)}
			if i, ok := index[key]; ok {
				phrases[i] = p
			} else {
				index[key] = len(phrases)
				phrases = append(phrases, p)
				variants[key] = &surfaceCounter{counts: make(map[string]int)}
			}
			variants[key].add(raw)
		}
	}

	for i := range phrases {
		phrases[i].Raw = variants[phrases[i].Keyword].best()
	}
	return phrases
}

// surfaceCounter tracks how often each casing of a phrase was seen.
type surfaceCounter struct {
	counts map[string]int
	order  []string
}

func (s *surfaceCounter) add(raw string) {
	if _, ok := s.counts[raw]; !ok {
		s.order = append(s.order, raw)
	}
	s.counts[raw]++
}

// best returns the most frequent variant, the first seen on ties.
func (s *surfaceCounter) best() string {
	best := ""
	for _, raw := range s.order {
		if best == "" || s.counts[raw] > s.counts[best] {
			best = raw
		}
	}
	return best
}
