package backfill

import (
	"context"
	"fmt"

	"github.com/fortuna/gridiron/internal/ingest/pro"
)

// seasonWeeks lists every week slug for a season type, in schedule order.
func seasonWeeks(seasonType string) []string {
	if seasonType == "POST" {
		return []string{"1", "2", "3", "4"}
	}
	weeks := make([]string, 0, 18)
	for i := 1; i <= 18; i++ {
		weeks = append(weeks, fmt.Sprintf("WEEK_%d", i))
	}
	return weeks
}

// Runner executes backfill specs against the vendor ingester.
type Runner struct {
	ingester *pro.Ingester
}

// NewRunner constructs a runner.
func NewRunner(ingester *pro.Ingester) *Runner {
	return &Runner{ingester: ingester}
}

// Run executes the job spec, reporting progress via the Reporter if provided.
func (r *Runner) Run(ctx context.Context, spec JobSpec, reporter Reporter) error {
	if reporter != nil {
		reporter.OnJobStart(spec)
	}

	var err error
	switch spec.Type {
	case JobTypeGame:
		err = r.runGame(ctx, spec, reporter)
	case JobTypeWeek:
		err = r.runWeeks(ctx, spec, []string{spec.Week}, reporter)
	case JobTypeSeason:
		err = r.runWeeks(ctx, spec, seasonWeeks(spec.SeasonType), reporter)
	default:
		err = fmt.Errorf("unsupported job type %s", spec.Type)
	}

	if err != nil {
		if reporter != nil {
			reporter.OnJobError(err)
		}
		return err
	}

	if reporter != nil {
		reporter.OnJobComplete()
	}
	return nil
}

func (r *Runner) runGame(ctx context.Context, spec JobSpec, reporter Reporter) error {
	if spec.GameID == "" || spec.Week == "" {
		return fmt.Errorf("game job requires week and game id")
	}

	if err := r.ingester.IngestGame(ctx, spec.Season, spec.SeasonType, spec.Week, spec.GameID); err != nil {
		return fmt.Errorf("ingesting game %s: %w", spec.GameID, err)
	}

	if reporter != nil {
		reporter.OnProgress(1, 1, 0)
	}
	return nil
}

// runWeeks walks the week list. A failing week is recorded but does not
// stop the job; its games simply count as failed.
func (r *Runner) runWeeks(ctx context.Context, spec JobSpec, weeks []string, reporter Reporter) error {
	var total, done, failed int

	for idx, week := range weeks {
		if err := ctx.Err(); err != nil {
			return err
		}

		if reporter != nil {
			reporter.OnWeekStart(week, idx, len(weeks))
		}

		result, err := r.ingester.IngestWeek(ctx, spec.Season, spec.SeasonType, week)
		if err != nil {
			if reporter != nil {
				reporter.OnJobError(fmt.Errorf("week %s: %w", week, err))
			}
			failed++
			continue
		}

		total += result.Total
		done += result.Saved
		failed += result.Failed

		if reporter != nil {
			reporter.OnProgress(total, done, failed)
		}
	}

	return nil
}
