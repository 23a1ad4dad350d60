package backfill

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fortuna/gridiron/internal/store"
)

// Request represents a backfill invocation request.
type Request struct {
	Season     int
	SeasonType string
	Week       string
	GameID     string
}

// DeriveType infers the job type based on populated fields.
func (r Request) DeriveType() (JobType, error) {
	if r.GameID != "" {
		return JobTypeGame, nil
	}
	if r.Week != "" {
		return JobTypeWeek, nil
	}
	if r.Season > 0 {
		return JobTypeSeason, nil
	}
	return "", fmt.Errorf("unable to determine job type from request")
}

// Service coordinates job persistence, execution, and status reporting.
type Service struct {
	repo   *Repository
	runner *Runner

	historyLimit int

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *log.Logger
}

// NewService constructs a Service. Call Start to launch the worker.
func NewService(db *store.Database, runner *Runner, logger *log.Logger) *Service {
	ctx, cancel := context.WithCancel(context.Background())

	if logger == nil {
		logger = log.New(log.Writer(), "[backfill] ", log.LstdFlags)
	}

	return &Service{
		repo:         NewRepository(db),
		runner:       runner,
		historyLimit: 10,
		ctx:          ctx,
		cancel:       cancel,
		logger:       logger,
	}
}

// Start launches the background worker loop.
func (s *Service) Start() {
	if err := s.repo.ResetStuckJobs(s.ctx); err != nil {
		s.logger.Printf("failed to reset jobs: %v", err)
	}

	s.wg.Add(1)
	go s.worker()
}

// Shutdown stops the worker and waits for completion.
func (s *Service) Shutdown(ctx context.Context) error {
	s.cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		s.wg.Wait()
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
		return nil
	}
}

// Enqueue creates a new job from the provided request.
func (s *Service) Enqueue(ctx context.Context, req Request) (*Job, error) {
	jobType, err := req.DeriveType()
	if err != nil {
		return nil, err
	}

	if req.Season <= 0 {
		return nil, fmt.Errorf("backfill request requires a season")
	}
	if req.SeasonType == "" {
		req.SeasonType = "REG"
	}
	if jobType == JobTypeGame && req.Week == "" {
		return nil, fmt.Errorf("game job requires a week")
	}

	job := &Job{
		JobID:      uuid.NewString(),
		JobType:    jobType,
		Season:     sql.NullInt32{Int32: int32(req.Season), Valid: true},
		SeasonType: sql.NullString{String: req.SeasonType, Valid: true},
		Status:     JobStatusQueued,
	}
	if req.Week != "" {
		job.Week = sql.NullString{String: req.Week, Valid: true}
	}
	if req.GameID != "" {
		job.GameID = sql.NullString{String: req.GameID, Valid: true}
	}

	return s.repo.CreateJob(ctx, job)
}

// GetStatus returns the currently running job plus recent history.
func (s *Service) GetStatus(ctx context.Context) (*StatusSummary, error) {
	active, err := s.repo.GetActiveJob(ctx)
	if err != nil {
		return nil, err
	}

	history, err := s.repo.ListRecentJobs(ctx, s.historyLimit)
	if err != nil {
		return nil, err
	}

	return &StatusSummary{
		ActiveJob: active,
		History:   history,
	}, nil
}

func (s *Service) worker() {
	defer s.wg.Done()

	ticker := time.NewTicker(3 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return
		default:
			job, err := s.repo.MarkNextJobRunning(s.ctx)
			if err != nil {
				s.logger.Printf("claim job error: %v", err)
				time.Sleep(time.Second)
				continue
			}
			if job == nil {
				select {
				case <-s.ctx.Done():
					return
				case <-ticker.C:
					continue
				}
			}

			s.executeJob(job)
		}
	}
}

func (s *Service) executeJob(job *Job) {
	spec := JobSpec{
		Type:       job.JobType,
		Season:     int(job.Season.Int32),
		SeasonType: job.SeasonType.String,
		Week:       job.Week.String,
		GameID:     job.GameID.String,
	}

	reporter := &jobReporter{
		ctx:    s.ctx,
		repo:   s.repo,
		jobID:  job.JobID,
		logger: s.logger,
	}

	if err := s.runner.Run(s.ctx, spec, reporter); err != nil {
		s.logger.Printf("job %s failed: %v", job.JobID, err)
		_ = s.repo.UpdateStatus(s.ctx, job.JobID, JobStatusFailed, err)
		return
	}

	_ = s.repo.UpdateStatus(s.ctx, job.JobID, JobStatusCompleted, nil)
}

type jobReporter struct {
	ctx    context.Context
	repo   *Repository
	jobID  string
	logger *log.Logger
}

func (r *jobReporter) OnJobStart(spec JobSpec) {
	r.logger.Printf("job %s starting: %s %d %s %s", r.jobID, spec.Type, spec.Season, spec.SeasonType, spec.Week)
}

func (r *jobReporter) OnWeekStart(week string, index, total int) {
	r.logger.Printf("job %s: week %s (%d/%d)", r.jobID, week, index+1, total)
}

func (r *jobReporter) OnProgress(total, done, failed int) {
	_ = r.repo.UpdateProgress(r.ctx, r.jobID, total, done, failed)
}

func (r *jobReporter) OnJobComplete() {
	r.logger.Printf("job %s ✓ complete", r.jobID)
}

func (r *jobReporter) OnJobError(err error) {
	r.logger.Printf("job %s error: %v", r.jobID, err)
}
