package stoplist

import (
	"sort"
	"strings"
)

// Manager holds the stopword and punctuation sets consulted by the
// extraction pipeline. Both sets store normalized (lowercase) strings.
//
// A Manager is mutable while it is being configured; the extractor takes a
// Clone at construction time and only reads from it afterwards.
type Manager struct {
	stops map[string]struct{}
	punct map[string]struct{}
}

// NewManager creates a manager from the given stopwords and punctuation marks.
func NewManager(stopwords, punctuation []string) *Manager {
	m := &Manager{
		stops: make(map[string]struct{}, len(stopwords)),
		punct: make(map[string]struct{}, len(punctuation)),
	}
	for _, s := range stopwords {
		m.Add(s)
	}
	for _, p := range punctuation {
		if p != "" {
			m.punct[p] = struct{}{}
		}
	}
	return m
}

// Default returns a manager loaded with the English stopword list and the
// ASCII punctuation set.
func Default() *Manager {
	return NewManager(English(), Punctuation())
}

// IsStop checks if a token is a stopword
func (m *Manager) IsStop(token string) bool {
	_, ok := m.stops[token]
	return ok
}

// IsPunct reports whether token is exactly one of the punctuation marks.
func (m *Manager) IsPunct(token string) bool {
	_, ok := m.punct[token]
	return ok
}

// ContainsPunct reports whether any character of token is a punctuation
// mark, ignoring the characters listed in allowed.
func (m *Manager) ContainsPunct(token, allowed string) bool {
	for _, r := range token {
		if strings.ContainsRune(allowed, r) {
			continue
		}
		if _, ok := m.punct[string(r)]; ok {
			return true
		}
	}
	return false
}

// Add adds a token to the stoplist
func (m *Manager) Add(token string) {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" {
		return
	}
	m.stops[token] = struct{}{}
}

// Remove removes a token from the stoplist
func (m *Manager) Remove(token string) {
	delete(m.stops, strings.ToLower(token))
}

// All returns all stopwords in lexical order
func (m *Manager) All() []string {
	result := make([]string, 0, len(m.stops))
	for s := range m.stops {
		result = append(result, s)
	}
	sort.Strings(result)
	return result
}

// Len returns the number of stopwords.
func (m *Manager) Len() int {
	return len(m.stops)
}

// Clone returns an independent copy of the manager.
func (m *Manager) Clone() *Manager {
	c := &Manager{
		stops: make(map[string]struct{}, len(m.stops)),
		punct: make(map[string]struct{}, len(m.punct)),
	}
	for s := range m.stops {
		c.stops[s] = struct{}{}
	}
	for p := range m.punct {
		c.punct[p] = struct{}{}
	}
	return c
}

// Punctuation returns the default punctuation marks: the ASCII punctuation
// characters, each as a one-character string.
func Punctuation() []string {
	const marks = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
	out := make([]string, 0, len(marks))
	for _, r := range marks {
		out = append(out, string(r))
	}
	return out
}
