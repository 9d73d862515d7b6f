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


package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/poiesic/svgscribe/ai"
	"github.com/poiesic/svgscribe/catalog"
	"github.com/poiesic/svgscribe/storage"
)

// Config holds configuration for a description run.
type Config struct {
	// Delay is the pause after each successful describe call, a courtesy
	// rate limit toward the remote service.
	Delay time.Duration

	// CheckpointInterval persists the mapping every N new records so a
	// crashed run loses at most N descriptions. 0 disables checkpointing;
	// the final persist at the end of the run always happens.
	CheckpointInterval int

	// ReportInterval is how often to report progress (number of pairs).
	ReportInterval int
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Delay:              250 * time.Millisecond,
		CheckpointInterval: 20,
		ReportInterval:     10,
	}
}

// Runner orchestrates one full description pass: discover assets, load the
// cached results, describe every pair not yet cached, and persist the grown
// mapping. Reruns are purely additive; an existing record is never
// overwritten or re-described.
type Runner struct {
	scanner   *catalog.Scanner
	describer ai.Describer
	store     storage.ResultsStore
	config    *Config
	progress  io.Writer
	logger    *slog.Logger
}

// NewRunner creates a runner.
// progress: where to write progress output (typically os.Stderr)
func NewRunner(scanner *catalog.Scanner, describer ai.Describer, store storage.ResultsStore, config *Config, progress io.Writer) *Runner {
	if config == nil {
		config = DefaultConfig()
	}

	return &Runner{
		scanner:   scanner,
		describer: describer,
		store:     store,
		config:    config,
		progress:  progress,
		logger:    slog.Default().With("component", "pipeline-runner"),
	}
}

// Run executes one description pass over the asset tree rooted at root.
//
// A failed describe call for one pair is logged and skipped; the pair stays
// undescribed and is retried on the next run. Zero discovered categories is
// fatal (ErrNoCategories) and nothing is written. Cancellation stops the
// pass between pairs; records already checkpointed stay on disk.
func (r *Runner) Run(ctx context.Context, root string) error {
	assets := r.scanner.Scan(root)
	if len(assets) == 0 {
		return fmt.Errorf("%w under %s", ErrNoCategories, root)
	}

	results, err := r.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load results: %w", err)
	}

	pending := results.Missing(assets)
	fmt.Fprintf(r.progress, "Discovered %d categories, %d pairs pending (%d already described)\n",
		len(assets), pending, results.Count())

	tracker := NewProgressTracker(r.progress, pending, r.config.ReportInterval)
	tracker.Start()

	added := 0
	processed := 0
	for _, category := range catalog.Categories(assets) {
		ids := assets[category]
		fmt.Fprintf(r.progress, "=== Category: %s (%d assets) ===\n", category, len(ids))

		for _, id := range ids {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			if results.Has(category, id) {
				r.logger.Debug("skipping described pair", "category", category, "id", id)
				continue
			}

			desc, err := r.describer.Describe(ctx, category, id)
			processed++
			if err != nil {
				r.logDescribeFailure(category, id, err)
				tracker.Update(processed)
				continue
			}

			results.Add(category, id, desc)
			added++
			tracker.Update(processed)

			if r.config.CheckpointInterval > 0 && added%r.config.CheckpointInterval == 0 {
				if err := r.store.Save(ctx, results); err != nil {
					r.logger.Warn("checkpoint save failed", "err", err)
				}
			}

			if err := r.pause(ctx); err != nil {
				return err
			}
		}
	}

	tracker.Finish()

	if err := r.store.Save(ctx, results); err != nil {
		return fmt.Errorf("persist results: %w", err)
	}

	elapsed := tracker.Elapsed()
	fmt.Fprintf(r.progress, "Done. %d new descriptions (%d total) written to %s in %v\n",
		added, results.Count(), r.store.Path(), elapsed.Round(time.Second))

	return nil
}

// logDescribeFailure logs a per-pair failure, including the raw model output
// when the failure was a parse failure.
func (r *Runner) logDescribeFailure(category, id string, err error) {
	var dErr *ai.DescribeError
	if errors.As(err, &dErr) && dErr.Raw != "" {
		r.logger.Warn("describe failed, pair left undescribed",
			"category", category,
			"id", id,
			"raw", dErr.Raw,
			"err", dErr.Err)
		return
	}
	r.logger.Warn("describe failed, pair left undescribed",
		"category", category,
		"id", id,
		"err", err)
}

// pause sleeps for the configured inter-call delay, honoring cancellation.
func (r *Runner) pause(ctx context.Context) error {
	if r.config.Delay <= 0 {
		return nil
	}

	timer := time.NewTimer(r.config.Delay)
	select {
	case <-ctx.Done():
		timer.Stop()
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
