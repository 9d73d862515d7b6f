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
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/poiesic/svgscribe/ai"
	"github.com/poiesic/svgscribe/ai/openai"
	"github.com/poiesic/svgscribe/catalog"
	"github.com/poiesic/svgscribe/pipeline"
	"github.com/poiesic/svgscribe/storage/jsonfile"
)

// defaultOutputName is the results file written next to the asset root when
// no explicit output path is given.
const defaultOutputName = "faces_descriptions.json"

func main() {
	// A .env file is optional; explicit environment variables and flags win.
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "svgscribe",
		Usage: "Generate agent-friendly descriptions for SVG avatar assets",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "describe",
				Usage:  "Describe every asset not yet present in the results file",
				Action: describeCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "root",
						Aliases: []string{"r"},
						Usage:   "Asset root directory (one subdirectory per category)",
						Value:   ".",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Path to the results JSON file (default: <root>/" + defaultOutputName + ")",
					},
					&cli.StringFlag{
						Name:    "host",
						Usage:   "Generation service host URL",
						Value:   "http://localhost:11434/v1",
						EnvVars: []string{"SVGSCRIBE_HOST"},
					},
					&cli.StringFlag{
						Name:     "model",
						Usage:    "Model name for description generation",
						Required: true,
						EnvVars:  []string{"SVGSCRIBE_MODEL"},
					},
					&cli.StringFlag{
						Name:    "api-key",
						Usage:   "API key for the generation service",
						Value:   "none",
						EnvVars: []string{"OPENAI_API_KEY"},
					},
					&cli.StringFlag{
						Name:  "ext",
						Usage: "Asset file extension to scan for",
						Value: catalog.DefaultExtension,
					},
					&cli.DurationFlag{
						Name:  "delay",
						Usage: "Pause after each successful describe call",
						Value: 250 * time.Millisecond,
					},
					&cli.IntFlag{
						Name:  "checkpoint-interval",
						Usage: "Persist results every N new descriptions (0 disables)",
						Value: 20,
					},
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report progress every N pairs",
						Value: 10,
					},
				},
			},
			{
				Name:   "scan",
				Usage:  "List discovered categories and pending counts without calling the service",
				Action: scanCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "root",
						Aliases: []string{"r"},
						Usage:   "Asset root directory (one subdirectory per category)",
						Value:   ".",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Path to the results JSON file (default: <root>/" + defaultOutputName + ")",
					},
					&cli.StringFlag{
						Name:  "ext",
						Usage: "Asset file extension to scan for",
						Value: catalog.DefaultExtension,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func describeCommand(c *cli.Context) error {
	ctx := context.Background()

	root := c.String("root")
	output := c.String("output")
	if output == "" {
		output = filepath.Join(root, defaultOutputName)
	}

	aiConfig := ai.NewConfig(
		ai.WithHost(c.String("host")),
		ai.WithModel(c.String("model")),
		ai.WithAPIKey(c.String("api-key")),
	)
	if err := aiConfig.Validate(); err != nil {
		return fmt.Errorf("invalid AI configuration: %w", err)
	}

	describer, err := openai.NewDescriber(aiConfig)
	if err != nil {
		return fmt.Errorf("failed to create describer: %w", err)
	}

	runConfig := &pipeline.Config{
		Delay:              c.Duration("delay"),
		CheckpointInterval: c.Int("checkpoint-interval"),
		ReportInterval:     c.Int("report-interval"),
	}
	if runConfig.CheckpointInterval < 0 {
		return fmt.Errorf("checkpoint-interval must not be negative")
	}
	if runConfig.ReportInterval <= 0 {
		return fmt.Errorf("report-interval must be greater than 0")
	}

	scanner := catalog.NewScanner(catalog.WithExtension(c.String("ext")))
	store := jsonfile.NewStore(output)
	runner := pipeline.NewRunner(scanner, describer, store, runConfig, os.Stderr)

	fmt.Fprintf(os.Stderr, "Asset root: %s\n", root)
	fmt.Fprintf(os.Stderr, "Output: %s\n", output)
	fmt.Fprintf(os.Stderr, "Host: %s\n", aiConfig.Host)
	fmt.Fprintf(os.Stderr, "Model: %s\n", aiConfig.Model)
	fmt.Fprintln(os.Stderr)

	if err := runner.Run(ctx, root); err != nil {
		return fmt.Errorf("description run failed: %w", err)
	}

	return nil
}

func scanCommand(c *cli.Context) error {
	root := c.String("root")
	output := c.String("output")
	if output == "" {
		output = filepath.Join(root, defaultOutputName)
	}

	assets := catalog.NewScanner(catalog.WithExtension(c.String("ext"))).Scan(root)
	if len(assets) == 0 {
		return fmt.Errorf("%w under %s", pipeline.ErrNoCategories, root)
	}

	results, err := jsonfile.NewStore(output).Load(context.Background())
	if err != nil {
		return fmt.Errorf("load results: %w", err)
	}

	total, pending := 0, 0
	for _, category := range catalog.Categories(assets) {
		ids := assets[category]
		missing := 0
		for _, id := range ids {
			if !results.Has(category, id) {
				missing++
			}
		}
		fmt.Printf("%-20s %4d assets, %4d pending\n", category, len(ids), missing)
		total += len(ids)
		pending += missing
	}
	fmt.Printf("\n%d categories, %d assets, %d pending\n", len(assets), total, pending)

	return nil
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
