package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/tomide-adesanmi/company-enricher/internal/async"
	"github.com/tomide-adesanmi/company-enricher/internal/common"
	"github.com/tomide-adesanmi/company-enricher/internal/queue"
	"github.com/tomide-adesanmi/company-enricher/internal/repository"
	"github.com/tomide-adesanmi/company-enricher/internal/utils"
)

// Dispatcher hands an admitted job to a worker. Satisfied by *async.Pool; tests
// substitute a synchronous implementation.
type Dispatcher interface {
	Enqueue(ctx context.Context, job async.Job) error
}

type Config struct {
	TickInterval    time.Duration // admission cadence (default 2m)
	ReclaimInterval time.Duration // stale-job scan cadence (default 5m)
	StaleTimeout    time.Duration // no-progress window before reclamation (default 30m)
}

// Scheduler drives the queue manager on a cadence: each tick admits eligible
// uploads and dispatches queued jobs; an independent reclaim schedule converts
// silently stuck jobs into visible failures. Retry decisions are made here,
// centrally, never inside the pipeline.
type Scheduler struct {
	manager    *queue.Manager
	jobs       repository.JobRepository
	uploads    repository.UploadRepository
	dispatcher Dispatcher
	cfg        Config
	logger     *slog.Logger
	cron       *cron.Cron
}

func New(
	manager *queue.Manager,
	jobs repository.JobRepository,
	uploads repository.UploadRepository,
	dispatcher Dispatcher,
	cfg Config,
	logger *slog.Logger,
) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = 2 * time.Minute
	}
	if cfg.ReclaimInterval <= 0 {
		cfg.ReclaimInterval = 5 * time.Minute
	}
	if cfg.StaleTimeout <= 0 {
		cfg.StaleTimeout = 30 * time.Minute
	}
	return &Scheduler{
		manager:    manager,
		jobs:       jobs,
		uploads:    uploads,
		dispatcher: dispatcher,
		cfg:        cfg,
		logger:     logger,
		cron:       cron.New(),
	}
}

// Start registers the two schedules and starts the cron driver.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc("@every "+s.cfg.TickInterval.String(), func() {
		if err := s.Tick(context.Background()); err != nil {
			s.logger.Error("scheduler tick failed", "error", err)
		}
	}); err != nil {
		return fmt.Errorf("register tick schedule: %w", err)
	}
	if _, err := s.cron.AddFunc("@every "+s.cfg.ReclaimInterval.String(), func() {
		if err := s.Reclaim(context.Background()); err != nil {
			s.logger.Error("stale job reclamation failed", "error", err)
		}
	}); err != nil {
		return fmt.Errorf("register reclaim schedule: %w", err)
	}
	s.cron.Start()
	s.logger.Info("scheduler started",
		"tick_interval", s.cfg.TickInterval,
		"reclaim_interval", s.cfg.ReclaimInterval,
		"stale_timeout", s.cfg.StaleTimeout,
	)
	return nil
}

// Stop halts the cron driver; runs already dispatched keep going.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("scheduler stopped")
}

// Tick is one scheduling cycle: settle failed jobs (retry or finalize),
// dispatch whatever is queued, then admit new work per user. Errors for one
// user never halt the cycle for the others.
func (s *Scheduler) Tick(ctx context.Context) error {
	s.retryPass(ctx)
	s.dispatchQueued(ctx)

	owners, err := s.manager.OwnersWithPendingWork(ctx)
	if err != nil {
		return fmt.Errorf("scan pending owners: %w", err)
	}
	for _, owner := range owners {
		if err := s.admitFor(ctx, owner); err != nil {
			s.logger.Error("admission failed for user", "owner_id", owner, "error", err)
		}
	}
	return nil
}

func (s *Scheduler) admitFor(ctx context.Context, ownerID string) error {
	upload, err := s.manager.NextEligible(ctx, ownerID)
	if err != nil {
		return err
	}
	if upload == nil {
		return nil
	}
	job, err := s.manager.Admit(ctx, upload)
	if err != nil {
		// Lost a race with a manual process-now request; nothing to do.
		if err == common.ErrAdmissionConflict {
			s.logger.Debug("admission raced, skipping", "owner_id", ownerID, "upload_id", upload.ID)
			return nil
		}
		return err
	}
	return s.dispatcher.Enqueue(ctx, async.Job{
		JobID:       job.ID,
		OwnerID:     job.OwnerID,
		SubmittedAt: time.Now().UTC(),
	})
}

// retryPass settles failed jobs whose upload is still unresolved: requeue when
// the failure kind is retryable and retries remain, otherwise fail the upload
// permanently. Exhausted retries are therefore user-visible as a failed upload
// with the last error text, distinguishable from "still retrying".
func (s *Scheduler) retryPass(ctx context.Context) {
	failed, err := s.jobs.ListFailedUnresolved(ctx)
	if err != nil {
		s.logger.Error("failed-job scan failed", "error", err)
		return
	}
	for _, row := range failed {
		job := utils.ToProcessingJob(row)
		kind := common.KindUnknown
		if job.ErrorKind != nil {
			kind = *job.ErrorKind
		}
		if common.IsRetryable(kind) && !job.RetriesExhausted() {
			if err := s.jobs.ResetForRetry(ctx, job.ID); err != nil {
				s.logger.Error("retry reset failed", "job_id", job.ID, "error", err)
			}
			continue
		}
		msg := "processing failed"
		if job.ErrorMessage != nil {
			msg = *job.ErrorMessage
		}
		if !common.IsRetryable(kind) {
			s.logger.Info("terminal failure, not retrying", "job_id", job.ID, "kind", kind)
		} else {
			s.logger.Warn("retries exhausted", "job_id", job.ID, "retries", job.RetryCount)
			msg = fmt.Sprintf("%s (retries exhausted after %d attempts)", msg, job.RetryCount)
		}
		if err := s.uploads.MarkFailed(ctx, job.UploadID, msg); err != nil {
			s.logger.Error("could not finalize failed upload", "upload_id", job.UploadID, "error", err)
		}
	}
}

func (s *Scheduler) dispatchQueued(ctx context.Context) {
	queued, err := s.jobs.ListQueued(ctx)
	if err != nil {
		s.logger.Error("queued-job scan failed", "error", err)
		return
	}
	for _, job := range queued {
		err := s.dispatcher.Enqueue(ctx, async.Job{
			JobID:       job.ID,
			OwnerID:     job.OwnerID,
			SubmittedAt: time.Now().UTC(),
		})
		if err != nil {
			s.logger.Error("dispatch failed", "job_id", job.ID, "error", err)
		}
	}
}

// Reclaim force-fails processing jobs with no progress update inside the stale
// window, freeing the owner's admission slot. This is the sole recovery path
// after a crash mid-pipeline; there is no heartbeat or lease renewal.
func (s *Scheduler) Reclaim(ctx context.Context) error {
	cutoff := time.Now().UTC().Add(-s.cfg.StaleTimeout)
	stale, err := s.jobs.ListStale(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("stale-job scan: %w", err)
	}
	if len(stale) == 0 {
		return nil
	}
	s.logger.Warn("reclaiming stale jobs", "count", len(stale), "stale_timeout", s.cfg.StaleTimeout)
	for _, job := range stale {
		msg := fmt.Sprintf("%v: no progress for more than %s", common.ErrStaleTimeout, s.cfg.StaleTimeout)
		if err := s.jobs.Fail(ctx, job.ID, msg, common.KindStaleTimeout); err != nil {
			s.logger.Error("could not reclaim stale job", "job_id", job.ID, "error", err)
		}
	}
	return nil
}
