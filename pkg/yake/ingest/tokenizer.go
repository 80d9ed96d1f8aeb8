package ingest

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"
)

// Sentence is an ordered run of word tokens together with their stems.
// Stems are the lowercase forms of the words; no further stemming is applied.
type Sentence struct {
	Words []string
	Stems []string
}

// Len returns the number of tokens in the sentence.
func (s Sentence) Len() int {
	return len(s.Words)
}

// Options controls the optional normalization steps of the tokenizer.
type Options struct {
	IgnoreURLs         bool // drop http(s):// and www. spans before segmentation
	ExpandContractions bool // "don't" -> "do not", "it's" -> "it is"
}

// Tokenizer splits text into sentences of word tokens using the Unicode
// sentence and word boundary rules (UAX #29).
type Tokenizer struct {
	opts Options
}

// NewTokenizer creates a tokenizer with the given options
func NewTokenizer(opts Options) *Tokenizer {
	return &Tokenizer{opts: opts}
}

var (
	urlPattern = regexp.MustCompile(`(?i)(?:https?://|www\.)[^\s<>"]*[^\s<>".,;:!?)\]'}]`)

	// Line breaks and tabs would otherwise force sentence boundaries in the
	// middle of hard-wrapped prose.
	controlReplacer = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ")

	apostropheReplacer = strings.NewReplacer("’", "'", "ʼ", "'")
	tokenCleaner       = strings.NewReplacer("'s", "", ",", "")
)

// Sentences splits text into sentences. Empty or whitespace-only text yields
// nil. Sentences without any word token are skipped.
func (t *Tokenizer) Sentences(text string) []Sentence {
	text = t.prepare(text)
	if text == "" {
		return nil
	}

	var sentences []Sentence
	rest := text
	state := -1
	for len(rest) > 0 {
		var raw string
		raw, rest, state = uniseg.FirstSentenceInString(rest, state)

		words := t.Words(raw)
		if len(words) == 0 {
			continue
		}
		stems := make([]string, len(words))
		for i, w := range words {
			stems[i] = strings.ToLower(w)
		}
		sentences = append(sentences, Sentence{Words: words, Stems: stems})
	}

	return sentences
}

// Words splits a single sentence into word-boundary tokens. Whitespace tokens
// are discarded; possessive markers and commas are stripped from the rest.
// A bare comma therefore stays in place as an empty token, which keeps word
// offsets and co-occurrence windows aligned with the source text.
func (t *Tokenizer) Words(sentence string) []string {
	var words []string
	rest := sentence
	state := -1
	for len(rest) > 0 {
		var tok string
		tok, rest, state = uniseg.FirstWordInString(rest, state)

		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}

		if t.opts.ExpandContractions {
			if parts, ok := expandContraction(tok); ok {
				for _, p := range parts {
					words = append(words, cleanToken(p))
				}
				continue
			}
		}

		words = append(words, cleanToken(tok))
	}
	return words
}

// prepare applies the text-level normalization that precedes segmentation.
func (t *Tokenizer) prepare(text string) string {
	text = norm.NFC.String(text)
	text = apostropheReplacer.Replace(text)
	if t.opts.IgnoreURLs {
		text = urlPattern.ReplaceAllString(text, " ")
	}
	text = controlReplacer.Replace(text)
	return strings.TrimSpace(text)
}

// cleanToken strips the possessive marker and commas from a token
func cleanToken(token string) string {
	return strings.TrimSpace(tokenCleaner.Replace(token))
}

// IsAlphanumeric reports whether every character of word is a letter or a
// digit once the characters in allowed have been removed.
func IsAlphanumeric(word, allowed string) bool {
	for _, r := range word {
		if strings.ContainsRune(allowed, r) {
			continue
		}
		if !unicode.IsLetter(r) && !unicode.IsNumber(r) {
			return false
		}
	}
	return true
}
