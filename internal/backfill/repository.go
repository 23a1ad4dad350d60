package backfill

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fortuna/gridiron/internal/store"
)

// Repository handles persistence for backfill jobs.
type Repository struct {
	db *store.Database
}

// NewRepository constructs a Repository.
func NewRepository(db *store.Database) *Repository {
	return &Repository{db: db}
}

const jobColumns = `job_id, job_type, season, season_type, week, game_id,
	status, games_total, games_done, games_failed, error_message,
	created_at, started_at, finished_at`

// CreateJob inserts a new job row and returns the stored record.
func (r *Repository) CreateJob(ctx context.Context, job *Job) (*Job, error) {
	query := `
		INSERT INTO backfill_jobs (
			job_id, job_type, season, season_type, week, game_id, status, games_total
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING ` + jobColumns

	row := r.db.DB().QueryRowContext(ctx, query,
		job.JobID, job.JobType, job.Season, job.SeasonType, job.Week, job.GameID,
		job.Status, job.GamesTotal,
	)

	return scanJob(row)
}

// UpdateStatus updates the lifecycle state; terminal states also stamp
// finished_at.
func (r *Repository) UpdateStatus(ctx context.Context, jobID string, status JobStatus, lastErr error) error {
	query := `
		UPDATE backfill_jobs
		SET status = $2::varchar,
			error_message = $3,
			finished_at = CASE WHEN $2::varchar IN ('completed','failed','cancelled') THEN NOW() ELSE finished_at END
		WHERE job_id = $1
	`

	var errText sql.NullString
	if lastErr != nil {
		errText = sql.NullString{String: lastErr.Error(), Valid: true}
	}

	if _, err := r.db.DB().ExecContext(ctx, query, jobID, string(status), errText); err != nil {
		return fmt.Errorf("updating job status: %w", err)
	}
	return nil
}

// UpdateProgress updates the per-game counters.
func (r *Repository) UpdateProgress(ctx context.Context, jobID string, total, done, failed int) error {
	query := `
		UPDATE backfill_jobs
		SET games_total = $2,
			games_done = $3,
			games_failed = $4
		WHERE job_id = $1
	`

	if _, err := r.db.DB().ExecContext(ctx, query, jobID, total, done, failed); err != nil {
		return fmt.Errorf("updating job progress: %w", err)
	}
	return nil
}

// ResetStuckJobs moves running jobs back to queued (used during service restarts).
func (r *Repository) ResetStuckJobs(ctx context.Context) error {
	_, err := r.db.DB().ExecContext(ctx, `
		UPDATE backfill_jobs
		SET status = 'queued',
			error_message = 'reset after service restart'
		WHERE status = 'running'
	`)
	if err != nil {
		return fmt.Errorf("resetting stuck jobs: %w", err)
	}
	return nil
}

// MarkNextJobRunning atomically claims the next queued job.
func (r *Repository) MarkNextJobRunning(ctx context.Context) (*Job, error) {
	query := `
		WITH next_job AS (
			SELECT job_id
			FROM backfill_jobs
			WHERE status = 'queued'
			ORDER BY created_at
			LIMIT 1
			FOR UPDATE SKIP LOCKED
		)
		UPDATE backfill_jobs
		SET status = 'running',
			started_at = COALESCE(started_at, NOW())
		FROM next_job
		WHERE backfill_jobs.job_id = next_job.job_id
		RETURNING backfill_jobs.job_id, backfill_jobs.job_type, backfill_jobs.season,
			backfill_jobs.season_type, backfill_jobs.week, backfill_jobs.game_id,
			backfill_jobs.status, backfill_jobs.games_total, backfill_jobs.games_done,
			backfill_jobs.games_failed, backfill_jobs.error_message,
			backfill_jobs.created_at, backfill_jobs.started_at, backfill_jobs.finished_at
	`

	row := r.db.DB().QueryRowContext(ctx, query)
	job, err := scanJob(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return job, nil
}

// GetActiveJob returns the currently running job, if any.
func (r *Repository) GetActiveJob(ctx context.Context) (*Job, error) {
	query := `
		SELECT ` + jobColumns + `
		FROM backfill_jobs
		WHERE status = 'running'
		ORDER BY started_at DESC
		LIMIT 1
	`

	row := r.db.DB().QueryRowContext(ctx, query)
	job, err := scanJob(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetching active job: %w", err)
	}
	return job, nil
}

// ListRecentJobs returns the most recently created jobs.
func (r *Repository) ListRecentJobs(ctx context.Context, limit int) ([]*Job, error) {
	query := `
		SELECT ` + jobColumns + `
		FROM backfill_jobs
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.db.DB().QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing recent jobs: %w", err)
	}
	defer rows.Close()

	var jobs []*Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}

	return jobs, rows.Err()
}

func scanJob(scanner interface {
	Scan(dest ...interface{}) error
}) (*Job, error) {
	job := &Job{}
	err := scanner.Scan(
		&job.JobID,
		&job.JobType,
		&job.Season,
		&job.SeasonType,
		&job.Week,
		&job.GameID,
		&job.Status,
		&job.GamesTotal,
		&job.GamesDone,
		&job.GamesFailed,
		&job.ErrorMessage,
		&job.CreatedAt,
		&job.StartedAt,
		&job.FinishedAt,
	)
	if err != nil {
		return nil, err
	}
	return job, nil
}
