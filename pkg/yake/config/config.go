package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/yake/pkg/yake/internalerr"
)

// File is the YAML configuration document. Unset fields keep the extractor
// defaults.
type File struct {
	NGram              int      `yaml:"ngram"`
	Top                int      `yaml:"top"`
	Dedupe             *bool    `yaml:"dedupe"`
	DedupeThreshold    float64  `yaml:"dedupe_threshold"`
	Window             int      `yaml:"window"`
	Stoplist           string   `yaml:"stoplist"` // path to a stoplist file
	ExtraStopwords     []string `yaml:"extra_stopwords"`
	Punctuation        []string `yaml:"punctuation"`
	IgnoreURLs         *bool    `yaml:"ignore_urls"`
	ExpandContractions *bool    `yaml:"expand_contractions"`
	Filter             Filter   `yaml:"filter"`
}

// Filter holds the candidate filter settings.
type Filter struct {
	MinLength        *int    `yaml:"min_length"`
	MinWordSize      *int    `yaml:"min_word_size"`
	MaxWords         int     `yaml:"max_words"`
	ValidPunctuation *string `yaml:"valid_punctuation"`
	OnlyAlphanumeric *bool   `yaml:"only_alphanum"`
}

// LoadFile loads the configuration document from a YAML file
func LoadFile(path string) (*File, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return &f, nil
}

// Stoplist represents the stopword list configuration
type Stoplist struct {
	Terms []string `yaml:"terms"`
}

// LoadStoplist loads stopwords from a YAML file
func LoadStoplist(path string) (*Stoplist, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	var sl Stoplist
	if err := yaml.Unmarshal(data, &sl); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return &sl, nil
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", path, internalerr.ErrNotFound)
	}
	return data, err
}
