// Package yake extracts keywords and keyphrases from a single document
// without any training corpus. Every signal comes from the text itself:
// term frequency, casing, position and co-occurrence.
package yake

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/cognicore/yake/pkg/yake/candidate"
	"github.com/cognicore/yake/pkg/yake/cooc"
	"github.com/cognicore/yake/pkg/yake/features"
	"github.com/cognicore/yake/pkg/yake/ingest"
	"github.com/cognicore/yake/pkg/yake/internalerr"
	"github.com/cognicore/yake/pkg/yake/rank"
	"github.com/cognicore/yake/pkg/yake/stoplist"
)

// DefaultTop is the number of keywords returned when none is requested.
const DefaultTop = 10

// Options configures an Extractor.
type Options struct {
	NGram           int     // longest candidate phrase, in words
	Window          int     // co-occurrence window size
	Dedupe          bool    // suppress near-identical phrases
	DedupeThreshold float64 // similarity above which a phrase is a duplicate
	// Filter bounds candidate shape. An all-zero Filter takes
	// candidate.DefaultFilterOptions(); otherwise only a zero MaxWords is
	// defaulted and the other fields are used as given, so zero lengths and
	// an empty ValidPunctuation are honored.
	Filter             candidate.FilterOptions
	Stoplist           *stoplist.Manager // nil uses the default English list
	IgnoreURLs         bool
	ExpandContractions bool
}

// DefaultOptions returns the standard configuration: trigrams, a window of
// two, and deduplication at a 0.8 similarity ratio.
func DefaultOptions() Options {
	return Options{
		NGram:              3,
		Window:             2,
		Dedupe:             true,
		DedupeThreshold:    0.8,
		Filter:             candidate.DefaultFilterOptions(),
		IgnoreURLs:         true,
		ExpandContractions: true,
	}
}

// Result is one extracted keyword.
type Result struct {
	Raw     string  `json:"raw"`     // most frequent original-case form
	Keyword string  `json:"keyword"` // lowercase phrase
	Lexical string  `json:"lexical"`
	Score   float64 `json:"score"` // lower is more significant
}

// Extractor runs the extraction pipeline. It holds only read-only
// configuration and is safe for concurrent use.
type Extractor struct {
	opts      Options
	stops     *stoplist.Manager
	tokenizer *ingest.Tokenizer
	filter    *candidate.Filter
	features  *features.Extractor
	selector  *rank.Selector
	logger    *slog.Logger
}

// Option configures an Extractor.
type Option func(*Extractor) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Extractor) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger.With("component", "yake")
		return nil
	}
}

// New validates opts and creates an Extractor. Zero Window, DedupeThreshold
// and Filter.MaxWords values, and an all-zero Filter, take their defaults.
// Invalid settings are reported as internalerr.ErrInvalidConfig.
func New(opts Options, options ...Option) (*Extractor, error) {
	opts = withDefaults(opts)
	if err := validate(opts); err != nil {
		return nil, err
	}

	stops := opts.Stoplist
	if stops == nil {
		stops = stoplist.Default()
	} else {
		stops = stops.Clone()
	}
	opts.Stoplist = stops

	e := &Extractor{
		opts:  opts,
		stops: stops,
		tokenizer: ingest.NewTokenizer(ingest.Options{
			IgnoreURLs:         opts.IgnoreURLs,
			ExpandContractions: opts.ExpandContractions,
		}),
		features: features.New(stops),
		selector: rank.NewSelector(opts.Dedupe, opts.DedupeThreshold),
		logger:   slog.Default().With("component", "yake"),
	}

	for _, opt := range options {
		if err := opt(e); err != nil {
			return nil, err
		}
	}
	e.filter = candidate.NewFilter(stops, opts.Filter, candidate.WithLogger(e.logger))

	return e, nil
}

func withDefaults(opts Options) Options {
	def := DefaultOptions()
	if opts.Window == 0 {
		opts.Window = def.Window
	}
	if opts.DedupeThreshold == 0 {
		opts.DedupeThreshold = def.DedupeThreshold
	}
	if opts.Filter == (candidate.FilterOptions{}) {
		opts.Filter = def.Filter
	}
	if opts.Filter.MaxWords == 0 {
		opts.Filter.MaxWords = def.Filter.MaxWords
	}
	return opts
}

func validate(opts Options) error {
	switch {
	case opts.NGram < 1:
		return fmt.Errorf("ngram must be at least 1, got %d: %w", opts.NGram, internalerr.ErrInvalidConfig)
	case opts.Window < 1:
		return fmt.Errorf("window must be at least 1, got %d: %w", opts.Window, internalerr.ErrInvalidConfig)
	case opts.DedupeThreshold <= 0 || opts.DedupeThreshold > 1:
		return fmt.Errorf("dedupe threshold must be in (0, 1], got %v: %w", opts.DedupeThreshold, internalerr.ErrInvalidConfig)
	case opts.Filter.MinLength < 0 || opts.Filter.MinWordSize < 0:
		return fmt.Errorf("filter lengths must not be negative: %w", internalerr.ErrInvalidConfig)
	case opts.Filter.MaxWords < 1:
		return fmt.Errorf("filter max words must be at least 1, got %d: %w", opts.Filter.MaxWords, internalerr.ErrInvalidConfig)
	}
	return nil
}

// Options returns the effective configuration.
func (e *Extractor) Options() Options {
	opts := e.opts
	opts.Stoplist = e.stops.Clone()
	return opts
}

// Extract returns up to topN keywords of text ordered by ascending score.
// A topN of zero or less requests DefaultTop results. Empty text, or text
// with no surviving candidate, yields nil.
func (e *Extractor) Extract(text string, topN int) []Result {
	if topN <= 0 {
		topN = DefaultTop
	}

	sentences := e.tokenizer.Sentences(text)
	if len(sentences) == 0 {
		return nil
	}

	e.logger.Debug("text segmented", "sentences", len(sentences))
	candidates := e.filter.Apply(candidate.Generate(sentences, e.opts.NGram))
	if candidates.Len() == 0 {
		return nil
	}

	vocab := cooc.BuildVocabulary(sentences, e.stops, e.opts.Filter.ValidPunctuation)
	contexts := cooc.BuildContexts(sentences, e.opts.Window)
	terms := e.features.Extract(vocab, contexts, len(sentences))

	phrases := rank.NewWeigher(terms, contexts).Weigh(candidates)
	selected := e.selector.Select(phrases, topN)
	e.logger.Debug("keywords selected",
		"vocabulary", vocab.Len(),
		"phrases", len(phrases),
		"selected", len(selected))

	results := make([]Result, len(selected))
	for i, p := range selected {
		results[i] = Result{
			Raw:     p.Raw,
			Keyword: p.Keyword,
			Lexical: p.Lexical,
			Score:   p.Score,
		}
	}
	return results
}

// ExtractHTML strips markup from r and extracts keywords from the visible
// text. Unparseable input is reported as internalerr.ErrInvalidInput.
func (e *Extractor) ExtractHTML(r io.Reader, topN int) ([]Result, error) {
	text, err := ingest.StripHTML(r)
	if err != nil {
		return nil, fmt.Errorf("strip html: %w: %w", internalerr.ErrInvalidInput, err)
	}
	return e.Extract(text, topN), nil
}
