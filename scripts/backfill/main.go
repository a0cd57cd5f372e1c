// scripts/backfill/main.go
//
// One-shot enrichment of the existing Vikunja backlog. Walks every task in
// the store and runs the quick-add pipeline on it. Tasks that already have
// a due date are skipped, so re-running is safe.
//
// Usage: go run scripts/backfill/main.go <path/to/config-dir>

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"taskmagic/config"
	"taskmagic/internal/task"
	"taskmagic/internal/task/repository"
	"taskmagic/internal/task/repository/vikunja"
	"taskmagic/internal/task/usecase"
	"taskmagic/pkg/log"
)

const backfillPageSize = 50

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run scripts/backfill/main.go <path/to/config-dir>")
		fmt.Println("Example: go run scripts/backfill/main.go config")
		os.Exit(1)
	}
	os.Setenv("CONFIG_PATH", os.Args[1])

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        "info",
		Mode:         "development",
		ColorEnabled: true,
	})

	ctx := context.Background()
	runID := uuid.NewString()[:8]

	client := vikunja.NewClient(ctx, cfg.Vikunja.URL, cfg.Vikunja.Token,
		time.Duration(cfg.Vikunja.TimeoutSeconds)*time.Second)
	store := vikunja.New(client, logger)

	// The calendar mirror stays off during backfill runs.
	uc := usecase.New(logger, store, nil, usecase.CalendarOptions{},
		time.Duration(cfg.Enrich.CacheTTLMinutes)*time.Minute)

	logger.Infof(ctx, "Backfill run %s starting against %s", runID, cfg.Vikunja.URL)

	var enriched, scheduled, plain, failed, total int
	for page := 1; ; page++ {
		tasks, err := store.ListTasks(ctx, repository.ListTasksOptions{Page: page, PerPage: backfillPageSize})
		if err != nil {
			logger.Fatalf(ctx, "Failed to list tasks (page %d): %v", page, err)
		}

		for _, t := range tasks {
			total++
			res, err := uc.EnrichCreated(ctx, t)
			if err != nil {
				logger.Errorf(ctx, "Failed to enrich task %d: %v", t.ID, err)
				failed++
				continue
			}
			switch {
			case res.Applied:
				logger.Infof(ctx, "Enriched task %d: %q", t.ID, t.Title)
				enriched++
			case res.SkipReason == task.SkipAlreadyScheduled:
				scheduled++
			default:
				plain++
			}
		}

		if len(tasks) < backfillPageSize {
			break
		}
	}

	logger.Infof(ctx, "Backfill run %s complete! %d/%d tasks enriched (%d already scheduled, %d without markers, %d failed)",
		runID, enriched, total, scheduled, plain, failed)
}
