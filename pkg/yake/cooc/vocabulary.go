package cooc

import (
	"strings"

	"github.com/cognicore/yake/pkg/yake/ingest"
	"github.com/cognicore/yake/pkg/yake/stoplist"
)

// Occurrence is one appearance of a normalized word in the document.
type Occurrence struct {
	SentenceID     int
	Offset         int    // word offset from the start of the document
	SentenceOffset int    // word offset of the sentence's first token
	Word           string // surface text, original case
}

// SentenceInitial reports whether the occurrence opens its sentence.
func (o Occurrence) SentenceInitial() bool {
	return o.Offset == o.SentenceOffset
}

// Vocabulary maps every indexable normalized word to its occurrences.
type Vocabulary struct {
	occurrences map[string][]Occurrence
	order       []string
}

// BuildVocabulary indexes the words of the given sentences. A token is
// indexed only if it is alphanumeric once the allowed characters are removed
// and it contains no other punctuation mark.
func BuildVocabulary(sentences []ingest.Sentence, stops *stoplist.Manager, allowed string) *Vocabulary {
	v := &Vocabulary{occurrences: make(map[string][]Occurrence)}

	shift := 0
	for idx, sentence := range sentences {
		for i, word := range sentence.Words {
			if !ingest.IsAlphanumeric(word, allowed) || stops.ContainsPunct(word, allowed) {
				continue
			}
			key := strings.ToLower(word)
			if _, ok := v.occurrences[key]; !ok {
				v.order = append(v.order, key)
			}
			v.occurrences[key] = append(v.occurrences[key], Occurrence{
				SentenceID:     idx,
				Offset:         shift + i,
				SentenceOffset: shift,
				Word:           word,
			})
		}
		shift += sentence.Len()
	}

	return v
}

// Terms returns the indexed words in first-seen order.
func (v *Vocabulary) Terms() []string {
	return v.order
}

// Occurrences returns every occurrence of word.
func (v *Vocabulary) Occurrences(word string) []Occurrence {
	return v.occurrences[word]
}

// Frequency returns the number of occurrences of word.
func (v *Vocabulary) Frequency(word string) int {
	return len(v.occurrences[word])
}

// Len returns the number of distinct indexed words.
func (v *Vocabulary) Len() int {
	return len(v.order)
}
