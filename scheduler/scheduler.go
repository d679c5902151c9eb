package scheduler

import (
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
)

var (
	ErrNotInitialized = errors.New("scheduler not initialized")
	ErrEmptyJobName   = errors.New("job name is required")
	ErrEmptyCronExpr  = errors.New("cron expression is required")
)

// Service wraps a gocron scheduler for the background maintenance jobs.
type Service struct {
	scheduler gocron.Scheduler
	logger    *slog.Logger
	stopOnce  sync.Once
	stopErr   error
}

func New() (*Service, error) {
	logger := slog.Default().With("component", "scheduler")

	sched, err := gocron.NewScheduler(
		gocron.WithGlobalJobOptions(
			gocron.WithEventListeners(
				gocron.AfterJobRunsWithPanic(func(jobID uuid.UUID, jobName string, recoverData any) {
					logger.Error("scheduler job panicked", "job_id", jobID.String(), "job_name", jobName, "panic", recoverData)
				}),
				gocron.AfterJobRunsWithError(func(jobID uuid.UUID, jobName string, err error) {
					logger.Error("scheduler job failed", "job_id", jobID.String(), "job_name", jobName, "err", err)
				}),
			),
		),
	)
	if err != nil {
		return nil, err
	}

	return &Service{scheduler: sched, logger: logger}, nil
}

func (s *Service) Start() {
	if s == nil {
		return
	}
	s.logger.Info("scheduler starting")
	s.scheduler.Start()
}

// Stop shuts down the scheduler and waits for running jobs.
func (s *Service) Stop() error {
	if s == nil {
		return ErrNotInitialized
	}
	s.stopOnce.Do(func() {
		s.logger.Info("scheduler stopping")
		s.stopErr = s.scheduler.Shutdown()
	})
	return s.stopErr
}

// AddJob registers a cron-based (five field) job. A task error is reported
// through the scheduler's event listeners.
func (s *Service) AddJob(name, cronExpr string, task func() error) (gocron.Job, error) {
	if s == nil {
		return nil, ErrNotInitialized
	}
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyJobName
	}
	if strings.TrimSpace(cronExpr) == "" {
		return nil, ErrEmptyCronExpr
	}

	jobLogger := s.logger.With("job_name", name, "cron", cronExpr)

	wrappedTask := func() error {
		jobLogger.Debug("scheduler job started")
		if err := task(); err != nil {
			return err
		}
		jobLogger.Debug("scheduler job completed")
		return nil
	}

	job, err := s.scheduler.NewJob(
		gocron.CronJob(cronExpr, false),
		gocron.NewTask(wrappedTask),
		gocron.WithName(name),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		jobLogger.Error("failed to register scheduler job", "err", err)
		return nil, err
	}
	jobLogger.Info("scheduler job registered")
	return job, nil
}

func (s *Service) Jobs() []gocron.Job {
	if s == nil {
		return nil
	}
	return s.scheduler.Jobs()
}
