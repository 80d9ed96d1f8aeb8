package candidate

import (
	"log/slog"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/cognicore/yake/pkg/yake/ingest"
	"github.com/cognicore/yake/pkg/yake/stoplist"
)

// FilterOptions bounds the shape of an acceptable candidate.
type FilterOptions struct {
	MinLength        int    // minimum characters across all words
	MinWordSize      int    // minimum characters of the shortest word
	MaxWords         int    // maximum number of words
	ValidPunctuation string // characters tolerated by OnlyAlphanumeric
	OnlyAlphanumeric bool
}

// DefaultFilterOptions returns the standard candidate bounds.
func DefaultFilterOptions() FilterOptions {
	return FilterOptions{
		MinLength:        3,
		MinWordSize:      2,
		MaxWords:         5,
		ValidPunctuation: "-",
		OnlyAlphanumeric: false,
	}
}

// Filter prunes candidates that cannot be meaningful keyphrases. Both checks
// inspect only the first recorded surface form of a candidate.
type Filter struct {
	stops  *stoplist.Manager
	opts   FilterOptions
	logger *slog.Logger
}

// Option configures a Filter.
type Option func(*Filter)

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(f *Filter) {
		if logger == nil {
			logger = slog.Default()
		}
		f.logger = logger
	}
}

// NewFilter creates a filter backed by the given stoplist
func NewFilter(stops *stoplist.Manager, opts FilterOptions, options ...Option) *Filter {
	f := &Filter{stops: stops, opts: opts, logger: slog.Default()}
	for _, opt := range options {
		opt(f)
	}
	return f
}

// Apply runs the structural filter and then the boundary filter.
func (f *Filter) Apply(set *Set) *Set {
	structural := set.Filter(f.Structural)
	kept := structural.Filter(f.Boundary)
	f.logger.Debug("candidates filtered",
		"generated", set.Len(),
		"structural", structural.Len(),
		"boundary", kept.Len())
	return kept
}

// Structural reports whether a candidate survives the structural checks:
// no stopwords, numbers or bare punctuation, and within the length bounds.
func (f *Filter) Structural(c *Candidate) bool {
	if len(c.SurfaceForms) == 0 || len(c.SurfaceForms[0]) == 0 {
		return false
	}

	total := 0
	shortest := -1
	for _, w := range c.SurfaceForms[0] {
		word := strings.ToLower(w)
		if f.stops.IsStop(word) || f.stops.IsPunct(word) || isNumber(word) {
			return false
		}
		if f.opts.OnlyAlphanumeric && !ingest.IsAlphanumeric(word, f.opts.ValidPunctuation) {
			return false
		}
		size := utf8.RuneCountInString(word)
		total += size
		if shortest < 0 || size < shortest {
			shortest = size
		}
	}

	if total < f.opts.MinLength || shortest < f.opts.MinWordSize {
		return false
	}
	return len(c.Lexical) <= f.opts.MaxWords
}

// Boundary reports whether a candidate's first and last words are both
// non-stopwords of at least three characters.
func (f *Filter) Boundary(c *Candidate) bool {
	if len(c.SurfaceForms) == 0 || len(c.SurfaceForms[0]) == 0 {
		return false
	}
	words := c.SurfaceForms[0]
	first, last := words[0], words[len(words)-1]

	if f.stops.IsStop(strings.ToLower(first)) || f.stops.IsStop(strings.ToLower(last)) {
		return false
	}
	return utf8.RuneCountInString(first) >= 3 && utf8.RuneCountInString(last) >= 3
}

func isNumber(word string) bool {
	_, err := strconv.ParseFloat(word, 64)
	return err == nil
}
