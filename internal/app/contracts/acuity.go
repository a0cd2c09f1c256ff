package contracts

import (
	"context"

	"acuity-dashboard/internal/pkg/dto/requests"
	"acuity-dashboard/internal/pkg/dto/responses"

	"github.com/goccy/go-json"
)

type AcuityUsecase interface {
	TakeSnapshot(ctx context.Context) (json.RawMessage, error)
	ListDummyOpenings(ctx context.Context, query *requests.DummyOpeningsQuery) ([]responses.DummyOpening, error)
	CreateDummyAppointments(ctx context.Context, request *requests.CreateDummyAppointments) (*responses.CreateDummiesResult, error)
}
