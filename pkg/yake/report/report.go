package report

import (
	"crypto/rand"
	"strings"
	"sync"
	"time"

	"github.com/cognicore/yake/pkg/yake"
	"github.com/oklog/ulid/v2"
)

// Builder constructs keyword reports with sortable unique IDs
type Builder struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
	now     func() time.Time
}

// New creates a new report builder
func New() *Builder {
	return &Builder{
		entropy: ulid.Monotonic(rand.Reader, 0),
		now:     time.Now,
	}
}

// Report is the keyword extraction result for one source document
type Report struct {
	ID        string        `json:"id"`
	Source    string        `json:"source"`
	Generated time.Time     `json:"generated"`
	Keywords  []yake.Result `json:"keywords"`
	Summary   Summary       `json:"summary"`
}

// Summary describes the keyword list at a glance
type Summary struct {
	Count     int     `json:"count"`
	Phrases   int     `json:"phrases"` // keywords of more than one word
	BestScore float64 `json:"best_score"`
	MeanScore float64 `json:"mean_score"`
}

// Build creates a report for the results extracted from source
func (b *Builder) Build(source string, results []yake.Result) Report {
	b.mu.Lock()
	now := b.now()
	id := ulid.MustNew(ulid.Timestamp(now), b.entropy).String()
	b.mu.Unlock()

	keywords := make([]yake.Result, len(results))
	copy(keywords, results)

	r := Report{
		ID:        id,
		Source:    source,
		Generated: now.UTC(),
		Keywords:  keywords,
		Summary:   Summary{Count: len(keywords)},
	}

	sum := 0.0
	for i, k := range keywords {
		if strings.Contains(k.Keyword, " ") {
			r.Summary.Phrases++
		}
		if i == 0 || k.Score < r.Summary.BestScore {
			r.Summary.BestScore = k.Score
		}
		sum += k.Score
	}

	// Average scores
	if n := float64(len(keywords)); n > 0 {
		r.Summary.MeanScore = sum / n
	}

	return r
}
