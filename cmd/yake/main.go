package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/cognicore/yake/pkg/yake"
	"github.com/cognicore/yake/pkg/yake/config"
	"github.com/cognicore/yake/pkg/yake/report"
)

func main() {
	// A missing .env file is fine
	_ = godotenv.Load()

	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "yake",
		Usage: "Unsupervised keyword extraction from single documents",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
				EnvVars: []string{"YAKE_LOG_LEVEL"},
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "extract",
				Usage:     "Extract keywords from files, or from stdin when no file is given",
				ArgsUsage: "[files...]",
				Action:    extractCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "ngram",
						Aliases: []string{"n"},
						Usage:   "Longest keyphrase, in words",
						Value:   3,
						EnvVars: []string{"YAKE_NGRAM"},
					},
					&cli.IntFlag{
						Name:    "top",
						Aliases: []string{"k"},
						Usage:   "Number of keywords per document",
						Value:   yake.DefaultTop,
						EnvVars: []string{"YAKE_TOP"},
					},
					&cli.BoolFlag{
						Name:    "no-dedupe",
						Usage:   "Keep near-identical keyphrases",
						EnvVars: []string{"YAKE_NO_DEDUPE"},
					},
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "YAML configuration file",
						EnvVars: []string{"YAKE_CONFIG"},
					},
					&cli.StringFlag{
						Name:  "stoplist",
						Usage: "YAML stoplist file (terms: [...]) replacing the default English list",
					},
					&cli.BoolFlag{
						Name:  "html",
						Usage: "Treat input as HTML and extract from its visible text",
					},
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "Output format (text, json)",
						Value:   "text",
					},
				},
			},
		},
	}
}

func extractCommand(c *cli.Context) error {
	format := strings.ToLower(c.String("format"))
	if format != "text" && format != "json" {
		return fmt.Errorf("invalid format %q: must be one of text, json", format)
	}

	extractor, top, err := buildExtractor(c)
	if err != nil {
		return err
	}

	sources := c.Args().Slice()
	if len(sources) == 0 {
		sources = []string{"-"}
	}

	builder := report.New()
	reports := make([]report.Report, 0, len(sources))
	for _, source := range sources {
		results, err := extractSource(c, extractor, source, top)
		if err != nil {
			return err
		}
		slog.Debug("extracted keywords", "source", source, "count", len(results))
		reports = append(reports, builder.Build(source, results))
	}

	if format == "json" {
		enc := json.NewEncoder(c.App.Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	}
	return writeText(c.App.Writer, reports)
}

// buildExtractor layers flags over the configuration file over defaults.
func buildExtractor(c *cli.Context) (*yake.Extractor, int, error) {
	loader := config.Loader{
		ConfigPath:   c.String("config"),
		StoplistPath: c.String("stoplist"),
	}

	components, err := loader.Load()
	if err != nil {
		return nil, 0, err
	}

	opts := components.Options
	top := components.Top
	if c.IsSet("ngram") {
		opts.NGram = c.Int("ngram")
	}
	if c.IsSet("top") {
		top = c.Int("top")
	}
	if c.Bool("no-dedupe") {
		opts.Dedupe = false
	}
	if top < 1 {
		return nil, 0, fmt.Errorf("top must be at least 1, got %d", top)
	}

	extractor, err := yake.New(opts, yake.WithLogger(slog.Default()))
	if err != nil {
		return nil, 0, fmt.Errorf("create extractor: %w", err)
	}
	return extractor, top, nil
}

func extractSource(c *cli.Context, extractor *yake.Extractor, source string, top int) ([]yake.Result, error) {
	var r io.Reader = c.App.Reader
	if source != "-" {
		f, err := os.Open(source)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", source, err)
		}
		defer f.Close()
		r = f
	}

	if c.Bool("html") {
		results, err := extractor.ExtractHTML(r, top)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", source, err)
		}
		return results, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", source, err)
	}
	return extractor.Extract(string(data), top), nil
}

func writeText(w io.Writer, reports []report.Report) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, r := range reports {
		if len(reports) > 1 {
			if i > 0 {
				fmt.Fprintln(tw)
			}
			fmt.Fprintf(tw, "==> %s <==\n", r.Source)
		}
		if len(r.Keywords) == 0 {
			fmt.Fprintln(tw, "No keywords found.")
			continue
		}
		for j, k := range r.Keywords {
			fmt.Fprintf(tw, "%d.\t%s\t%.6f\n", j+1, k.Raw, k.Score)
		}
	}
	return tw.Flush()
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
