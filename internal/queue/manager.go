package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/tomide-adesanmi/company-enricher/constants"
	"github.com/tomide-adesanmi/company-enricher/gen/ent"
	"github.com/tomide-adesanmi/company-enricher/internal/common"
	"github.com/tomide-adesanmi/company-enricher/internal/entity"
	"github.com/tomide-adesanmi/company-enricher/internal/repository"
	"github.com/tomide-adesanmi/company-enricher/internal/utils"
)

// Manager is the admission gatekeeper: per user, at most one job may sit in
// {queued, processing} at any instant. Admit is the single critical section of
// the system; the check-then-insert runs inside one storage transaction, and a
// process-local mutex additionally serializes admissions so two concurrent
// callers in this process cannot interleave (single-scheduler deployment; see
// DESIGN.md for the scaling note).
type Manager struct {
	uploads    repository.UploadRepository
	jobs       repository.JobRepository
	maxRetries int
	logger     *slog.Logger

	admitMu sync.Mutex
}

func NewManager(uploads repository.UploadRepository, jobs repository.JobRepository, maxRetries int, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	if maxRetries < 0 {
		maxRetries = 0
	}
	return &Manager{
		uploads:    uploads,
		jobs:       jobs,
		maxRetries: maxRetries,
		logger:     logger,
	}
}

// ActiveJobs returns the user's jobs in {queued, processing}. No side effects.
func (m *Manager) ActiveJobs(ctx context.Context, ownerID string) ([]*entity.ProcessingJob, error) {
	rows, err := m.jobs.ActiveForOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.ProcessingJob, len(rows))
	for i, r := range rows {
		out[i] = utils.ToProcessingJob(r)
	}
	return out, nil
}

// NextEligible returns the user's oldest pending upload iff the user has no
// active job; (nil, nil) otherwise. Strict FIFO by upload timestamp.
func (m *Manager) NextEligible(ctx context.Context, ownerID string) (*ent.Upload, error) {
	active, err := m.jobs.ActiveForOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if len(active) > 0 {
		return nil, nil
	}
	upload, err := m.uploads.OldestPending(ctx, ownerID)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return upload, nil
}

// Admit atomically checks eligibility and creates the queued job. Returns
// common.ErrAdmissionConflict when the user already holds an active job.
func (m *Manager) Admit(ctx context.Context, upload *ent.Upload) (*ent.ProcessingJob, error) {
	m.admitMu.Lock()
	defer m.admitMu.Unlock()
	return m.jobs.AdmitForUpload(ctx, upload, m.maxRetries)
}

// AdmitUpload is the manual "process now" path: admit a specific pending
// upload immediately, subject to the same single-active-job check.
func (m *Manager) AdmitUpload(ctx context.Context, uploadID uuid.UUID) (*ent.ProcessingJob, error) {
	upload, err := m.uploads.GetByID(ctx, uploadID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	if upload.ProcessingStatus != string(constants.UploadStatusPending) {
		return nil, fmt.Errorf("%w: upload is %s, only pending uploads can be queued",
			common.ErrInvalidInput, upload.ProcessingStatus)
	}
	return m.Admit(ctx, upload)
}

// OwnersWithPendingWork is the scheduler's per-tick scan: distinct users that
// have at least one pending upload.
func (m *Manager) OwnersWithPendingWork(ctx context.Context) ([]string, error) {
	return m.uploads.OwnersWithPending(ctx)
}
