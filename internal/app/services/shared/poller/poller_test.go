package poller

import (
	"context"
	"sync"
	"testing"
	"time"

	"acuity-dashboard/internal/app/models"
	"acuity-dashboard/internal/pkg/dto/responses"
	"acuity-dashboard/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubScheduleUsecase struct {
	mu                sync.Mutex
	scheduleRefreshes int
	diffRefreshes     int
	err               error
}

func (s *stubScheduleUsecase) RefreshSchedule(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scheduleRefreshes++
	return s.err
}

func (s *stubScheduleUsecase) RefreshDiff(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.diffRefreshes++
	return s.err
}

func (s *stubScheduleUsecase) CurrentSchedule(ctx context.Context) *responses.ScheduleView {
	return nil
}

func (s *stubScheduleUsecase) CurrentDiff(ctx context.Context) []models.HourlyDiff {
	return nil
}

func (s *stubScheduleUsecase) SnapshotStatus(ctx context.Context) responses.SnapshotStatus {
	return responses.SnapshotStatus{}
}

func (s *stubScheduleUsecase) counts() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scheduleRefreshes, s.diffRefreshes
}

func TestPollerRefreshesImmediatelyThenOnTicks(t *testing.T) {
	usecase := &stubScheduleUsecase{}
	stop := New(usecase, 10*time.Millisecond, zap.NewNop()).Start(context.Background())
	defer stop()

	assert.Eventually(t, func() bool {
		schedules, diffs := usecase.counts()
		return schedules == 1 && diffs >= 3
	}, time.Second, 5*time.Millisecond, "expected one schedule fetch and repeated diff refreshes")
}

func TestPollerStopHaltsTheLoop(t *testing.T) {
	usecase := &stubScheduleUsecase{}
	stop := New(usecase, 10*time.Millisecond, zap.NewNop()).Start(context.Background())

	assert.Eventually(t, func() bool {
		_, diffs := usecase.counts()
		return diffs >= 2
	}, time.Second, 5*time.Millisecond)

	stop()
	time.Sleep(25 * time.Millisecond)
	_, after := usecase.counts()
	time.Sleep(50 * time.Millisecond)
	_, later := usecase.counts()
	assert.Equal(t, after, later)

	// Stopping twice is a no-op.
	stop()
}

func TestPollerKeepsRunningThroughFailures(t *testing.T) {
	usecase := &stubScheduleUsecase{err: exceptions.ErrBackendBadStatus(502)}
	stop := New(usecase, 10*time.Millisecond, zap.NewNop()).Start(context.Background())
	defer stop()

	assert.Eventually(t, func() bool {
		_, diffs := usecase.counts()
		return diffs >= 3
	}, time.Second, 5*time.Millisecond, "failed refreshes must not stop the loop")
}
