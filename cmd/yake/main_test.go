package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/cognicore/yake/pkg/yake/report"
)

const article = `Google is acquiring data science community Kaggle. Sources tell us that Google is acquiring Kaggle,
a platform that hosts data science and machine learning competitions. Kaggle co-founder CEO Anthony Goldbloom
declined to deny that the acquisition is happening. Google itself declined to comment on rumors.
Kaggle, which has about half a million data scientists on its platform, was founded by Goldbloom and Ben Hamner in 2010.`

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	app := newApp()
	var out bytes.Buffer
	app.Writer = &out
	app.ErrWriter = &out
	app.Reader = strings.NewReader(stdin)
	err := app.Run(append([]string{"yake"}, args...))
	return out.String(), err
}

func runJSON(t *testing.T, stdin string, args ...string) []report.Report {
	t.Helper()
	out, err := run(t, stdin, append([]string{"extract", "--format", "json"}, args...)...)
	require.NoError(t, err)

	var reports []report.Report
	require.NoError(t, json.Unmarshal([]byte(out), &reports))
	return reports
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestExtractCommandFlags(t *testing.T) {
	app := newApp()
	require.Len(t, app.Commands, 1)
	cmd := app.Commands[0]
	assert.Equal(t, "extract", cmd.Name)

	flags := make(map[string]cli.Flag)
	for _, f := range cmd.Flags {
		flags[f.Names()[0]] = f
	}

	t.Run("ngram defaults to 3", func(t *testing.T) {
		f, ok := flags["ngram"].(*cli.IntFlag)
		require.True(t, ok)
		assert.Equal(t, 3, f.Value)
		assert.Contains(t, f.Aliases, "n")
		assert.Contains(t, f.EnvVars, "YAKE_NGRAM")
	})

	t.Run("top defaults to 10", func(t *testing.T) {
		f, ok := flags["top"].(*cli.IntFlag)
		require.True(t, ok)
		assert.Equal(t, 10, f.Value)
		assert.Contains(t, f.Aliases, "k")
		assert.Contains(t, f.EnvVars, "YAKE_TOP")
	})

	t.Run("format defaults to text", func(t *testing.T) {
		f, ok := flags["format"].(*cli.StringFlag)
		require.True(t, ok)
		assert.Equal(t, "text", f.Value)
	})

	t.Run("config reads YAKE_CONFIG", func(t *testing.T) {
		f, ok := flags["config"].(*cli.StringFlag)
		require.True(t, ok)
		assert.Contains(t, f.EnvVars, "YAKE_CONFIG")
	})
}

func TestExtractFromStdin(t *testing.T) {
	out, err := run(t, article, "extract", "--top", "5")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[0], "1."))
	assert.Contains(t, out, "Kaggle")
}

func TestExtractJSON(t *testing.T) {
	reports := runJSON(t, article, "-k", "3")
	require.Len(t, reports, 1)

	r := reports[0]
	assert.Equal(t, "-", r.Source)
	assert.NotEmpty(t, r.ID)
	assert.LessOrEqual(t, len(r.Keywords), 3)
	assert.Equal(t, len(r.Keywords), r.Summary.Count)

	for i := 1; i < len(r.Keywords); i++ {
		assert.LessOrEqual(t, r.Keywords[i-1].Score, r.Keywords[i].Score)
	}
}

func TestExtractFiles(t *testing.T) {
	first := writeFile(t, "first.txt", article)
	second := writeFile(t, "second.txt", "")

	out, err := run(t, "", "extract", first, second)
	require.NoError(t, err)

	assert.Contains(t, out, "==> "+first+" <==")
	assert.Contains(t, out, "==> "+second+" <==")
	assert.Contains(t, out, "No keywords found.")
}

func TestExtractMissingFile(t *testing.T) {
	_, err := run(t, "", "extract", filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.txt")
}

func TestExtractHTMLInput(t *testing.T) {
	page := `<html><body><script>var ignored = "scriptword";</script>
<p>Google is acquiring Kaggle.</p><p>Kaggle hosts data science competitions.</p></body></html>`

	reports := runJSON(t, page, "--html")
	require.Len(t, reports, 1)

	var keywords []string
	for _, k := range reports[0].Keywords {
		keywords = append(keywords, k.Keyword)
	}
	assert.Contains(t, keywords, "kaggle")
	for _, k := range keywords {
		assert.NotContains(t, k, "scriptword")
	}
}

func TestExtractConfigFile(t *testing.T) {
	cfg := writeFile(t, "yake.yaml", "ngram: 1\ntop: 4\n")

	reports := runJSON(t, article, "--config", cfg)
	require.Len(t, reports, 1)
	assert.LessOrEqual(t, len(reports[0].Keywords), 4)
	for _, k := range reports[0].Keywords {
		assert.NotContains(t, k.Keyword, " ", "ngram 1 yields single words")
	}

	// Flags take precedence over the file
	reports = runJSON(t, article, "--config", cfg, "--top", "2")
	assert.LessOrEqual(t, len(reports[0].Keywords), 2)
}

func TestExtractEnvironment(t *testing.T) {
	t.Setenv("YAKE_TOP", "2")

	reports := runJSON(t, article)
	require.Len(t, reports, 1)
	assert.Len(t, reports[0].Keywords, 2)
}

func TestExtractStoplistFlag(t *testing.T) {
	stops := writeFile(t, "stops.yaml", "terms:\n  - kaggle\n  - google\n")

	reports := runJSON(t, article, "--stoplist", stops)
	require.Len(t, reports, 1)
	for _, k := range reports[0].Keywords {
		assert.NotEqual(t, "kaggle", k.Keyword)
		assert.NotEqual(t, "google", k.Keyword)
	}
}

func TestExtractInvalidInput(t *testing.T) {
	t.Run("invalid format", func(t *testing.T) {
		_, err := run(t, article, "extract", "--format", "xml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid format")
	})

	t.Run("invalid ngram", func(t *testing.T) {
		_, err := run(t, article, "extract", "--ngram", "0")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ngram")
	})

	t.Run("invalid top", func(t *testing.T) {
		_, err := run(t, article, "extract", "--top", "0")
		require.Error(t, err)
	})
}

func TestSetupLogger(t *testing.T) {
	for _, level := range []string{"debug", "info", "WARN", "error"} {
		t.Run(level, func(t *testing.T) {
			_, err := run(t, "", "--log-level", level, "extract")
			assert.NoError(t, err)
		})
	}

	t.Run("invalid level", func(t *testing.T) {
		_, err := run(t, "", "--log-level", "verbose", "extract")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})
}
