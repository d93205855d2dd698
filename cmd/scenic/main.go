// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/poiesic/scenic"
	"github.com/poiesic/scenic/config"
	"github.com/poiesic/scenic/core"
	"github.com/urfave/cli/v2"
)

// Environment variables read after the optional .env file is loaded.
const (
	envLLMHost  = "SCENIC_LLM_HOST"
	envLLMModel = "SCENIC_LLM_MODEL"
	envLLMToken = "SCENIC_LLM_TOKEN"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "scenic",
		Usage: "Extract visual descriptions from book chapters",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a YAML settings file",
			},
			&cli.StringFlag{
				Name:  "env-file",
				Usage: "Path to a .env file with SCENIC_* variables",
				Value: ".env",
			},
		},
		Before: func(c *cli.Context) error {
			if err := loadEnv(c.String("env-file")); err != nil {
				return err
			}
			return setupLogger(c)
		},
		Commands: []*cli.Command{
			{
				Name:      "extract",
				Usage:     "Extract descriptions from one chapter file (\"-\" reads stdin)",
				ArgsUsage: "<file>",
				Action:    extractCommand,
				Flags: append(processingFlags(),
					&cli.StringFlag{
						Name:  "chapter-id",
						Usage: "Chapter identifier (defaults to the file name)",
					},
				),
			},
			{
				Name:   "batch",
				Usage:  "Extract descriptions from every chapter file in a directory",
				Action: batchCommand,
				Flags: append(processingFlags(),
					&cli.StringFlag{
						Name:     "dir",
						Aliases:  []string{"d"},
						Usage:    "Directory holding chapter files",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "pattern",
						Usage: "Glob pattern selecting chapter files",
						Value: "*.txt",
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Number of chapters processed at once (0 = half the CPUs)",
						Value: 0,
					},
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report progress every N chapters",
						Value: 1,
					},
				),
			},
			{
				Name:   "engines",
				Usage:  "List configured engines and whether they initialize",
				Action: enginesCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "Output format (yaml, json)",
						Value:   formatYAML,
					},
					&cli.BoolFlag{
						Name:  "enable-llm",
						Usage: "Enable the LLM engine",
					},
				},
			},
		},
	}
}

func processingFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "mode",
			Aliases: []string{"m"},
			Usage:   "Processing mode (single, parallel, sequential, ensemble, adaptive)",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Output format (yaml, json)",
			Value:   formatYAML,
		},
		&cli.StringFlag{
			Name:  "language",
			Usage: "Lexicon language (en, ru, auto)",
		},
		&cli.StringFlag{
			Name:  "cache",
			Usage: "Directory of the engine result cache",
		},
		&cli.BoolFlag{
			Name:  "lite",
			Usage: "Allow running with a single engine",
		},
		&cli.BoolFlag{
			Name:  "enable-llm",
			Usage: "Enable the LLM engine",
		},
	}
}

// loadEnv loads a .env file. A missing default file is not an error.
func loadEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

// loadSettings builds settings from the config file, the environment and
// the command flags, in that order of precedence from low to high.
func loadSettings(c *cli.Context) (*config.Settings, error) {
	settings := config.DefaultSettings()
	if path := c.String("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		settings = loaded
	}

	var opts []config.Option
	if v := os.Getenv(envLLMHost); v != "" {
		opts = append(opts, config.WithLLMHost(v))
	}
	if v := os.Getenv(envLLMModel); v != "" {
		opts = append(opts, config.WithLLMModel(v))
	}
	if v := os.Getenv(envLLMToken); v != "" {
		settings.LLM.Token = v
	}
	if c.IsSet("mode") {
		mode, err := core.ParseMode(c.String("mode"))
		if err != nil {
			return nil, err
		}
		opts = append(opts, config.WithMode(mode))
	}
	if v := c.String("language"); v != "" {
		opts = append(opts, config.WithLanguage(v))
	}
	if v := c.String("cache"); v != "" {
		opts = append(opts, config.WithCachePath(v))
	}
	if c.Bool("lite") {
		opts = append(opts, config.WithLiteMode(true))
	}
	if c.Bool("enable-llm") {
		opts = append(opts, config.WithEngineEnabled(config.EngineLLM, true))
	}
	for _, opt := range opts {
		opt(settings)
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

func startService(ctx context.Context, c *cli.Context) (*scenic.Service, error) {
	if err := checkFormat(c.String("format")); err != nil {
		return nil, err
	}
	settings, err := loadSettings(c)
	if err != nil {
		return nil, err
	}
	svc, err := scenic.New(settings)
	if err != nil {
		return nil, err
	}
	if err := svc.Start(ctx); err != nil {
		svc.Close()
		return nil, fmt.Errorf("failed to start engines: %w", err)
	}
	return svc, nil
}

func checkFormat(format string) error {
	switch format {
	case formatYAML, formatJSON:
		return nil
	default:
		return fmt.Errorf("invalid format %q: must be one of yaml, json", format)
	}
}

func extractCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("exactly one chapter file is required")
	}
	path := c.Args().First()
	text, err := readChapter(path, c.App.Reader)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc, err := startService(ctx, c)
	if err != nil {
		return err
	}
	defer svc.Close()

	chapterID := c.String("chapter-id")
	if chapterID == "" {
		chapterID = chapterName(path)
	}
	result, err := svc.Process(ctx, text, chapterID, "")
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}
	return writeReport(c.App.Writer, c.String("format"), newResultReport(result))
}

func batchCommand(c *cli.Context) error {
	if c.Int("report-interval") <= 0 {
		return fmt.Errorf("report-interval must be greater than 0")
	}
	if c.Int("workers") < 0 {
		return fmt.Errorf("workers must not be negative")
	}
	chapters, err := readChapters(c.String("dir"), c.String("pattern"))
	if err != nil {
		return err
	}
	if len(chapters) == 0 {
		return fmt.Errorf("no files matching %q in %s", c.String("pattern"), c.String("dir"))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc, err := startService(ctx, c)
	if err != nil {
		return err
	}
	defer svc.Close()

	errWriter := c.App.ErrWriter
	if errWriter == nil {
		errWriter = os.Stderr
	}
	fmt.Fprintf(errWriter, "Directory: %s\n", c.String("dir"))
	fmt.Fprintf(errWriter, "Chapters: %d\n", len(chapters))
	fmt.Fprintf(errWriter, "Mode: %s\n", svc.Settings().DefaultMode)
	fmt.Fprintln(errWriter)

	tracker := newProgressTracker(errWriter, len(chapters), c.Int("report-interval"))
	tracker.Start()
	results, err := svc.ProcessBatch(ctx, chapters, "", c.Int("workers"), func(r scenic.BatchResult) {
		n := 0
		if r.Result != nil {
			n = len(r.Result.Descriptions)
		}
		tracker.Record(n, r.Err != nil)
	})
	tracker.Finish()
	if err != nil {
		return fmt.Errorf("batch interrupted: %w", err)
	}

	reports := make([]resultReport, 0, len(results))
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			reports = append(reports, resultReport{ChapterID: r.ChapterID, Error: r.Err.Error()})
			continue
		}
		reports = append(reports, newResultReport(r.Result))
	}
	fmt.Fprintf(errWriter, "Processed %d chapters in %s (%d failed)\n", len(results), tracker.Elapsed(), failed)
	return writeReport(c.App.Writer, c.String("format"), reports)
}

func enginesCommand(c *cli.Context) error {
	if err := checkFormat(c.String("format")); err != nil {
		return err
	}
	settings, err := loadSettings(c)
	if err != nil {
		return err
	}
	settings.LiteMode = true
	svc, err := scenic.New(settings)
	if err != nil {
		return err
	}
	defer svc.Close()

	if err := svc.Start(c.Context); err != nil {
		slog.Warn("no engine initialized", "error", err)
	}
	initialized := make(map[string]bool)
	for _, e := range svc.Engines() {
		initialized[e.Name] = true
	}

	reports := make([]engineReport, 0, len(settings.Processors))
	for _, name := range sortedNames(settings.Processors) {
		cfg := settings.Processors[name]
		reports = append(reports, engineReport{
			Name:        name,
			Enabled:     cfg.Enabled,
			Initialized: initialized[name],
			Weight:      cfg.Weight,
			Threshold:   cfg.ConfidenceThreshold,
			MinLength:   cfg.MinLength,
			MaxLength:   cfg.MaxLength,
		})
	}
	return writeReport(c.App.Writer, c.String("format"), reports)
}

func readChapter(path string, stdin io.Reader) (string, error) {
	if path == "-" {
		if stdin == nil {
			stdin = os.Stdin
		}
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read chapter: %w", err)
	}
	return string(data), nil
}

// readChapters loads the matching files of dir sorted by name.
func readChapters(dir, pattern string) ([]scenic.Chapter, error) {
	paths, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}
	sort.Strings(paths)

	chapters := make([]scenic.Chapter, 0, len(paths))
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			continue
		}
		text, err := readChapter(path, nil)
		if err != nil {
			return nil, err
		}
		chapters = append(chapters, scenic.Chapter{ID: chapterName(path), Text: text})
	}
	return chapters, nil
}

func chapterName(path string) string {
	if path == "-" {
		return "stdin"
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

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

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
