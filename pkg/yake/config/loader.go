package config

import (
	"fmt"
	"path/filepath"

	"github.com/cognicore/yake/pkg/yake"
	"github.com/cognicore/yake/pkg/yake/stoplist"
)

// Loader loads the configuration files and constructs extractor options
type Loader struct {
	ConfigPath   string
	StoplistPath string // overrides the stoplist named in the config file
}

// Components holds the loaded configuration
type Components struct {
	Options yake.Options
	Top     int
}

// Load reads the configuration files and returns ready extractor options.
// Without any file the defaults are returned.
func (l *Loader) Load() (*Components, error) {
	comp := &Components{
		Options: yake.DefaultOptions(),
		Top:     yake.DefaultTop,
	}

	file := &File{}
	if l.ConfigPath != "" {
		f, err := LoadFile(l.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		file = f
	}

	stoplistPath := l.StoplistPath
	if stoplistPath == "" && file.Stoplist != "" {
		stoplistPath = file.Stoplist
		// Relative stoplist paths are resolved against the config file
		if !filepath.IsAbs(stoplistPath) {
			stoplistPath = filepath.Join(filepath.Dir(l.ConfigPath), stoplistPath)
		}
	}

	stopwords := stoplist.English()
	if stoplistPath != "" {
		sl, err := LoadStoplist(stoplistPath)
		if err != nil {
			return nil, fmt.Errorf("load stoplist: %w", err)
		}
		stopwords = sl.Terms
	}
	punctuation := stoplist.Punctuation()
	if len(file.Punctuation) > 0 {
		punctuation = file.Punctuation
	}
	stops := stoplist.NewManager(stopwords, punctuation)
	for _, term := range file.ExtraStopwords {
		stops.Add(term)
	}
	comp.Options.Stoplist = stops

	file.apply(comp)
	return comp, nil
}

func (f *File) apply(comp *Components) {
	opts := &comp.Options
	if f.NGram != 0 {
		opts.NGram = f.NGram
	}
	if f.Top != 0 {
		comp.Top = f.Top
	}
	if f.Dedupe != nil {
		opts.Dedupe = *f.Dedupe
	}
	if f.DedupeThreshold != 0 {
		opts.DedupeThreshold = f.DedupeThreshold
	}
	if f.Window != 0 {
		opts.Window = f.Window
	}
	if f.IgnoreURLs != nil {
		opts.IgnoreURLs = *f.IgnoreURLs
	}
	if f.ExpandContractions != nil {
		opts.ExpandContractions = *f.ExpandContractions
	}

	if f.Filter.MinLength != nil {
		opts.Filter.MinLength = *f.Filter.MinLength
	}
	if f.Filter.MinWordSize != nil {
		opts.Filter.MinWordSize = *f.Filter.MinWordSize
	}
	if f.Filter.MaxWords != 0 {
		opts.Filter.MaxWords = f.Filter.MaxWords
	}
	if f.Filter.ValidPunctuation != nil {
		opts.Filter.ValidPunctuation = *f.Filter.ValidPunctuation
	}
	if f.Filter.OnlyAlphanumeric != nil {
		opts.Filter.OnlyAlphanumeric = *f.Filter.OnlyAlphanumeric
	}
}
