package contracts

import (
	"context"

	"acuity-dashboard/internal/app/models"
	"acuity-dashboard/internal/pkg/dto/responses"
)

// ScheduleUsecase owns the latest fetched schedule and diff state and the
// derived hourly views.
type ScheduleUsecase interface {
	// RefreshSchedule fetches the schedule and, on success, replaces the
	// stored state wholesale. On failure the previous state is untouched.
	RefreshSchedule(ctx context.Context) error
	// RefreshDiff does the same for the diff payload.
	RefreshDiff(ctx context.Context) error
	// CurrentSchedule returns the derived hourly views, or nil when no fetch
	// has succeeded yet. An empty schedule yields empty (non-nil) views.
	CurrentSchedule(ctx context.Context) *responses.ScheduleView
	// CurrentDiff returns the last fetched diff, nil when never fetched.
	CurrentDiff(ctx context.Context) []models.HourlyDiff
	// SnapshotStatus reports whether backend snapshot data is expected to be
	// populated as of now, and today's snapshot time for display.
	SnapshotStatus(ctx context.Context) responses.SnapshotStatus
}
