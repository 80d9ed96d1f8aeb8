package cooc

import (
	"strings"
	"testing"

	"github.com/cognicore/yake/pkg/yake/ingest"
)

func TestMultiset(t *testing.T) {
	var m Multiset

	if m.Total() != 0 || m.Distinct() != 0 || m.Count("x") != 0 {
		t.Error("zero Multiset should be empty")
	}

	m.Add("data")
	m.Add("data")
	m.Add("science")

	if m.Total() != 3 {
		t.Errorf("Total() = %d, want 3", m.Total())
	}
	if m.Distinct() != 2 {
		t.Errorf("Distinct() = %d, want 2", m.Distinct())
	}
	if m.Count("data") != 2 {
		t.Errorf("Count(data) = %d, want 2", m.Count("data"))
	}
}

func TestBuildContextsWindow(t *testing.T) {
	ctx := BuildContexts([]ingest.Sentence{sentence("alpha", "beta", "gamma", "delta")}, 2)

	delta := ctx.Get("delta")
	if delta.Left.Total() != 2 || delta.Left.Count("beta") != 1 || delta.Left.Count("gamma") != 1 {
		t.Errorf("delta left context should be {beta, gamma}, got %+v", delta.Left)
	}
	if delta.Left.Count("alpha") != 0 {
		t.Error("alpha is outside the window of delta")
	}

	alpha := ctx.Get("alpha")
	if alpha.Left.Total() != 0 {
		t.Errorf("alpha has no left neighbours, got %d", alpha.Left.Total())
	}
	if alpha.Right.Total() != 2 || alpha.Right.Count("beta") != 1 || alpha.Right.Count("gamma") != 1 {
		t.Errorf("alpha right context should be {beta, gamma}, got %+v", alpha.Right)
	}
}

func TestBuildContextsRepeatedWord(t *testing.T) {
	ctx := BuildContexts([]ingest.Sentence{sentence("data", "science", "data")}, 2)

	data := ctx.Get("data")
	if data.Left.Total() != 2 || data.Left.Distinct() != 2 {
		t.Errorf("data left = %d observations / %d distinct, want 2/2", data.Left.Total(), data.Left.Distinct())
	}
	if data.Right.Total() != 2 || data.Right.Count("science") != 1 || data.Right.Count("data") != 1 {
		t.Errorf("data right context should be {science, data}, got %+v", data.Right)
	}
}

func TestBuildContextsResetsPerSentence(t *testing.T) {
	ctx := BuildContexts([]ingest.Sentence{
		sentence("google", "cloud"),
		sentence("kaggle", "platform"),
	}, 2)

	if ctx.Get("kaggle").Left.Total() != 0 {
		t.Error("context must not leak across sentences")
	}
	if ctx.Get("cloud").Right.Total() != 0 {
		t.Error("cloud ends its sentence and has no right context")
	}
}

func TestContextsUnknownWord(t *testing.T) {
	ctx := BuildContexts(nil, 2)

	if ctx.Len() != 0 {
		t.Errorf("Len() = %d, want 0", ctx.Len())
	}
	unknown := ctx.Get("missing")
	if unknown == nil || unknown.Left.Total() != 0 || unknown.Right.Total() != 0 {
		t.Error("unknown words should have an empty context")
	}
}

func sentence(words ...string) ingest.Sentence {
	stems := make([]string, len(words))
	for i, w := range words {
		stems[i] = strings.ToLower(w)
	}
	return ingest.Sentence{Words: words, Stems: stems}
}
