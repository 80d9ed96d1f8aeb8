package cooc

import "github.com/cognicore/yake/pkg/yake/ingest"

// Multiset counts repeated observations of neighbouring words.
type Multiset struct {
	counts map[string]int
	total  int
}

// Add records one observation of word.
func (m *Multiset) Add(word string) {
	if m.counts == nil {
		m.counts = make(map[string]int)
	}
	m.counts[word]++
	m.total++
}

// Count returns how many times word was observed.
func (m *Multiset) Count(word string) int {
	return m.counts[word]
}

// Distinct returns the number of different words observed.
func (m *Multiset) Distinct() int {
	return len(m.counts)
}

// Total returns the number of observations.
func (m *Multiset) Total() int {
	return m.total
}

// Context holds the neighbours seen to the left and to the right of a word.
type Context struct {
	Left  Multiset
	Right Multiset
}

// Contexts maps each lowercase word to its co-occurrence context.
type Contexts struct {
	entries map[string]*Context
}

// BuildContexts slides a window of the given size over each sentence. For
// every word, the previous window words of the same sentence become its left
// context, and the word joins the right context of each of them. The window
// is reset only at sentence boundaries.
func BuildContexts(sentences []ingest.Sentence, window int) *Contexts {
	c := &Contexts{entries: make(map[string]*Context)}

	for _, sentence := range sentences {
		buffer := make([]string, 0, sentence.Len())
		for _, word := range sentence.Stems {
			start := max(0, len(buffer)-window)
			for _, neighbour := range buffer[start:] {
				c.entry(word).Left.Add(neighbour)
				c.entry(neighbour).Right.Add(word)
			}
			buffer = append(buffer, word)
		}
	}

	return c
}

func (c *Contexts) entry(word string) *Context {
	ctx, ok := c.entries[word]
	if !ok {
		ctx = &Context{}
		c.entries[word] = ctx
	}
	return ctx
}

// Get returns the context of word. Words never seen next to another word
// have an empty context.
func (c *Contexts) Get(word string) *Context {
	if ctx, ok := c.entries[word]; ok {
		return ctx
	}
	return &Context{}
}

// Len returns the number of words with a context entry.
func (c *Contexts) Len() int {
	return len(c.entries)
}
