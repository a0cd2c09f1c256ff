package contracts

import (
	"context"

	"acuity-dashboard/internal/app/models"
	"acuity-dashboard/internal/pkg/dto/requests"

	"github.com/goccy/go-json"
)

// ScheduleBackendClient fetches schedule state from the scheduling backend.
type ScheduleBackendClient interface {
	GetSchedule(ctx context.Context) ([]models.Appointment, error)
	GetScheduleDiff(ctx context.Context) ([]models.HourlyDiff, error)
}

// AcuityBackendClient drives the backend's Acuity-facing operations. Snapshot
// and create responses are opaque JSON passed through to the caller.
type AcuityBackendClient interface {
	TakeSnapshot(ctx context.Context) (json.RawMessage, error)
	GetDummyOpenings(ctx context.Context, query *requests.DummyOpeningsQuery) ([]models.DummyOpening, error)
	CreateDummyAppointments(ctx context.Context, request *requests.CreateDummyAppointments) (json.RawMessage, error)
}
