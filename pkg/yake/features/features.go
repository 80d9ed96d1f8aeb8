// Package features computes the per-term statistics that drive keyword
// scoring: casing, position, frequency, context relatedness and sentence
// dispersion, folded into a single weight. Lower weights mark more
// significant terms.
package features

import (
	"math"
	"sort"
	"unicode"
	"unicode/utf8"

	"github.com/cognicore/yake/pkg/yake/cooc"
	"github.com/cognicore/yake/pkg/yake/stoplist"
	"gonum.org/v1/gonum/stat"
)

// Term holds the features of one normalized word.
type Term struct {
	IsStop bool

	TF        float64 // occurrences
	TFAcronym float64 // all-uppercase occurrences
	TFUpper   float64 // capitalized, not sentence-initial occurrences

	Casing    float64
	Position  float64
	Frequency float64

	WL, WR float64 // left/right context diversity
	PL, PR float64 // left/right context spread relative to the max tf

	Relatedness float64
	Different   float64 // share of sentences containing the term
	Weight      float64
}

// Extractor computes term features against a stoplist
type Extractor struct {
	stops *stoplist.Manager
}

// New creates a feature extractor
func New(stops *stoplist.Manager) *Extractor {
	return &Extractor{stops: stops}
}

// docStats are the document-wide frequency statistics shared by all terms.
type docStats struct {
	meanTF float64 // over non-stopwords
	stdTF  float64 // population std-dev over non-stopwords
	maxTF  float64 // over all words
}

// Extract computes the features of every word in the vocabulary.
// sentenceCount is the number of sentences in the document.
func (e *Extractor) Extract(vocab *cooc.Vocabulary, contexts *cooc.Contexts, sentenceCount int) map[string]*Term {
	terms := vocab.Terms()
	out := make(map[string]*Term, len(terms))
	if len(terms) == 0 {
		return out
	}

	ds := e.stats(vocab)
	for _, word := range terms {
		out[word] = e.term(word, vocab.Occurrences(word), contexts.Get(word), ds, sentenceCount)
	}
	return out
}

func (e *Extractor) stats(vocab *cooc.Vocabulary) docStats {
	var ds docStats
	var nonStop []float64
	for _, word := range vocab.Terms() {
		tf := float64(vocab.Frequency(word))
		ds.maxTF = math.Max(ds.maxTF, tf)
		if !e.stops.IsStop(word) {
			nonStop = append(nonStop, tf)
		}
	}
	if len(nonStop) > 0 {
		ds.meanTF, ds.stdTF = stat.PopMeanStdDev(nonStop, nil)
	}
	return ds
}

func (e *Extractor) term(word string, occurrences []cooc.Occurrence, ctx *cooc.Context, ds docStats, sentenceCount int) *Term {
	t := &Term{
		IsStop: e.stops.IsStop(word) || utf8.RuneCountInString(word) < 3,
		TF:     float64(len(occurrences)),
	}

	sentenceIDs := make(map[int]struct{})
	for _, o := range occurrences {
		if isAcronym(o.Word) {
			t.TFAcronym++
		}
		if startsUpper(o.Word) && !o.SentenceInitial() {
			t.TFUpper++
		}
		sentenceIDs[o.SentenceID] = struct{}{}
	}

	t.Casing = math.Max(t.TFAcronym, t.TFUpper) / (1 + math.Log1p(t.TF))

	ids := make([]float64, 0, len(sentenceIDs))
	for id := range sentenceIDs {
		ids = append(ids, float64(id))
	}
	t.Position = math.Log(math.Log(3 + median(ids)))

	if denom := ds.meanTF + ds.stdTF; denom > 0 {
		t.Frequency = t.TF / denom
	}

	t.WL, t.PL = diversity(&ctx.Left, ds.maxTF)
	t.WR, t.PR = diversity(&ctx.Right, ds.maxTF)

	t.Relatedness = 1 + (t.WL+t.WR)*(t.TF/ds.maxTF)

	if sentenceCount > 0 {
		t.Different = float64(len(sentenceIDs)) / float64(sentenceCount)
	}

	denom := t.Casing + t.Frequency/t.Relatedness + t.Different/t.Relatedness
	if denom > 0 {
		t.Weight = (t.Relatedness * t.Position) / denom
	}
	return t
}

// diversity returns distinct/total observations (0 when empty) and
// distinct/maxTF.
func diversity(m *cooc.Multiset, maxTF float64) (w, p float64) {
	distinct := float64(m.Distinct())
	if m.Total() > 0 {
		w = distinct / float64(m.Total())
	}
	if maxTF > 0 {
		p = distinct / maxTF
	}
	return w, p
}

func isAcronym(word string) bool {
	if utf8.RuneCountInString(word) < 2 {
		return false
	}
	for _, r := range word {
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

func startsUpper(word string) bool {
	r, _ := utf8.DecodeRuneInString(word)
	return unicode.IsUpper(r)
}

// median of xs; the mean of the two middle values for even lengths, 0 when
// empty. xs is sorted in place.
func median(xs []float64) float64 {
	n := len(xs)
	if n == 0 {
		return 0
	}
	sort.Float64s(xs)
	if n%2 == 1 {
		return xs[n/2]
	}
	return (xs[n/2-1] + xs[n/2]) / 2
}
