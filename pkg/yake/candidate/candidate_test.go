package candidate

import (
	"strings"
	"testing"

	"github.com/cognicore/yake/pkg/yake/ingest"
)

func TestGenerateSpans(t *testing.T) {
	sentences := []ingest.Sentence{
		sentence("Data", "science", "rocks"),
	}

	set := Generate(sentences, 2)

	want := []string{"data", "data science", "science", "science rocks", "rocks"}
	if set.Len() != len(want) {
		t.Fatalf("Expected %d candidates, got %d: %v", len(want), set.Len(), keys(set))
	}
	for i, c := range set.All() {
		if c.Key() != want[i] {
			t.Errorf("candidate %d = %q, want %q", i, c.Key(), want[i])
		}
	}
}

func TestGenerateAccumulatesOccurrences(t *testing.T) {
	sentences := []ingest.Sentence{
		sentence("Kaggle", "wins"),
		sentence("kaggle", "grows"),
	}

	set := Generate(sentences, 3)

	c, ok := set.Get("kaggle")
	if !ok {
		t.Fatal("expected candidate 'kaggle'")
	}
	if c.Frequency() != 2 {
		t.Fatalf("Frequency() = %d, want 2", c.Frequency())
	}
	if c.SurfaceForms[0][0] != "Kaggle" || c.SurfaceForms[1][0] != "kaggle" {
		t.Errorf("surface forms should keep original case, got %v", c.SurfaceForms)
	}
	if c.SentenceIDs[0] != 0 || c.SentenceIDs[1] != 1 {
		t.Errorf("SentenceIDs = %v, want [0 1]", c.SentenceIDs)
	}
	if c.Offsets[0] != 0 || c.Offsets[1] != 2 {
		t.Errorf("Offsets = %v, want [0 2]", c.Offsets)
	}
}

func TestGenerateNeverCrossesSentences(t *testing.T) {
	sentences := []ingest.Sentence{
		sentence("machine", "learning"),
		sentence("competitions", "matter"),
	}

	set := Generate(sentences, 3)

	if _, ok := set.Get("learning competitions"); ok {
		t.Error("spans must not cross sentence boundaries")
	}
	if set.Len() != 6 {
		t.Errorf("Expected 6 candidates, got %d: %v", set.Len(), keys(set))
	}
}

func TestGenerateParallelSlices(t *testing.T) {
	sentences := []ingest.Sentence{
		sentence("apple", "apple", "apple", "."),
	}

	set := Generate(sentences, 3)

	for _, c := range set.All() {
		if len(c.SurfaceForms) != len(c.SentenceIDs) || len(c.SurfaceForms) != len(c.Offsets) {
			t.Errorf("candidate %q has mismatched occurrence slices", c.Key())
		}
	}

	c, _ := set.Get("apple")
	if c.Frequency() != 3 {
		t.Errorf("'apple' frequency = %d, want 3", c.Frequency())
	}
	c, _ = set.Get("apple apple apple")
	if c == nil || c.Frequency() != 1 {
		t.Error("expected a single trigram 'apple apple apple'")
	}
}

func TestGenerateEmpty(t *testing.T) {
	set := Generate(nil, 3)
	if set.Len() != 0 {
		t.Errorf("Expected no candidates, got %d", set.Len())
	}
}

func TestSetFilterKeepsOrder(t *testing.T) {
	set := Generate([]ingest.Sentence{sentence("alpha", "beta", "gamma")}, 1)

	kept := set.Filter(func(c *Candidate) bool { return c.Key() != "beta" })

	got := keys(kept)
	want := []string{"alpha", "gamma"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("Filter() = %v, want %v", got, want)
	}
	if _, ok := kept.Get("gamma"); !ok {
		t.Error("filtered set should index surviving candidates")
	}
}

func sentence(words ...string) ingest.Sentence {
	stems := make([]string, len(words))
	for i, w := range words {
		stems[i] = strings.ToLower(w)
	}
	return ingest.Sentence{Words: words, Stems: stems}
}

func keys(set *Set) []string {
	var out []string
	for _, c := range set.All() {
		out = append(out, c.Key())
	}
	return out
}
