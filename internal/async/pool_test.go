package async

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingRunner struct {
	mu   sync.Mutex
	seen []uuid.UUID
}

func (r *countingRunner) ProcessJob(_ context.Context, jobID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seen = append(r.seen, jobID)
	return nil
}

func (r *countingRunner) ids() []uuid.UUID {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]uuid.UUID(nil), r.seen...)
}

func TestPoolRunsEveryEnqueuedJob(t *testing.T) {
	runner := &countingRunner{}
	pool := NewPool(runner, slog.Default(), WithWorkers(3), WithQueueSize(8))

	want := make([]uuid.UUID, 20)
	for i := range want {
		want[i] = uuid.New()
		require.NoError(t, pool.Enqueue(context.Background(), Job{
			JobID:       want[i],
			OwnerID:     "user-a",
			SubmittedAt: time.Now().UTC(),
		}))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	pool.Shutdown(ctx)

	assert.ElementsMatch(t, want, runner.ids())
}

func TestPoolShutdownIsIdempotentAndRejectsLateJobs(t *testing.T) {
	runner := &countingRunner{}
	pool := NewPool(runner, slog.Default(), WithWorkers(1))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	pool.Shutdown(ctx)
	pool.Shutdown(ctx) // second call is a no-op

	// Enqueue after shutdown is dropped, not a panic on a closed channel.
	require.NoError(t, pool.Enqueue(context.Background(), Job{JobID: uuid.New()}))
	assert.Empty(t, runner.ids())
}
