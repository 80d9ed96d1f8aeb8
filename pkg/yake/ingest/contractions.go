package ingest

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// irregular contractions that do not follow a suffix rule.
var irregular = map[string]string{
	"can't":  "can not",
	"won't":  "will not",
	"shan't": "shall not",
	"ain't":  "am not",
	"let's":  "let us",
	"y'all":  "you all",
}

// suffixes maps a contraction suffix to its expansion, checked in order.
var suffixes = []struct {
	suffix string
	word   string
}{
	{"n't", "not"},
	{"'re", "are"},
	{"'ve", "have"},
	{"'ll", "will"},
	{"'m", "am"},
	{"'d", "would"},
}

// Only these bases take "'s" as "is"; everywhere else it is a possessive.
var isBases = map[string]struct{}{
	"it": {}, "that": {}, "there": {}, "here": {}, "what": {}, "who": {},
	"where": {}, "when": {}, "why": {}, "how": {}, "he": {}, "she": {},
}

// expandContraction returns the expanded words for a contracted token. The
// case of the token's first letter is carried over to the first word.
func expandContraction(token string) ([]string, bool) {
	lower := strings.ToLower(token)
	if !strings.Contains(lower, "'") {
		return nil, false
	}

	if exp, ok := irregular[lower]; ok {
		parts := strings.Fields(exp)
		if startsUpper(token) {
			parts[0] = capitalize(parts[0])
		}
		return parts, true
	}

	src := token
	if len(src) != len(lower) {
		src = lower
	}

	for _, s := range suffixes {
		if strings.HasSuffix(lower, s.suffix) && len(lower) > len(s.suffix) {
			base := src[:len(src)-len(s.suffix)]
			return []string{base, s.word}, true
		}
	}

	if strings.HasSuffix(lower, "'s") {
		if _, ok := isBases[strings.TrimSuffix(lower, "'s")]; ok {
			return []string{src[:len(src)-2], "is"}, true
		}
	}

	return nil, false
}

func startsUpper(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r)
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
