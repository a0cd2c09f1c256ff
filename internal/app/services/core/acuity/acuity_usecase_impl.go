package acuity

import (
	"context"
	"strconv"
	"sync"
	"time"

	"acuity-dashboard/internal/app/contracts"
	"acuity-dashboard/internal/app/models"
	"acuity-dashboard/internal/pkg/constvars"
	"acuity-dashboard/internal/pkg/dto/requests"
	"acuity-dashboard/internal/pkg/dto/responses"
	"acuity-dashboard/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	acuityUsecaseInstance contracts.AcuityUsecase
	onceAcuityUsecase     sync.Once
)

type acuityUsecase struct {
	AcuityClient contracts.AcuityBackendClient
	Location     *time.Location
	Log          *zap.Logger
}

func NewAcuityUsecase(
	acuityClient contracts.AcuityBackendClient,
	location *time.Location,
	logger *zap.Logger,
) contracts.AcuityUsecase {
	onceAcuityUsecase.Do(func() {
		acuityUsecaseInstance = &acuityUsecase{
			AcuityClient: acuityClient,
			Location:     location,
			Log:          logger,
		}
	})
	return acuityUsecaseInstance
}

func (u *acuityUsecase) TakeSnapshot(ctx context.Context) (json.RawMessage, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	u.Log.Info("acuityUsecase.TakeSnapshot called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	result, err := u.AcuityClient.TakeSnapshot(ctx)
	if err != nil {
		u.Log.Error("acuityUsecase.TakeSnapshot error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	u.Log.Info("acuityUsecase.TakeSnapshot succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return result, nil
}

func (u *acuityUsecase) ListDummyOpenings(ctx context.Context, query *requests.DummyOpeningsQuery) ([]responses.DummyOpening, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	u.Log.Info("acuityUsecase.ListDummyOpenings called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	openings, err := u.AcuityClient.GetDummyOpenings(ctx, query)
	if err != nil {
		u.Log.Error("acuityUsecase.ListDummyOpenings error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	decorated := make([]responses.DummyOpening, 0, len(openings))
	for _, opening := range openings {
		localTime := opening.Time.In(u.Location)
		decorated = append(decorated, responses.DummyOpening{
			Time:             localTime,
			Hour:             strconv.Itoa(localTime.Hour()),
			SlotsAvailable:   opening.SlotsAvailable,
			SuggestedDummies: suggestedDummies(opening.SlotsAvailable),
		})
	}

	u.Log.Info("acuityUsecase.ListDummyOpenings succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingOpeningCountKey, len(decorated)),
	)
	return decorated, nil
}

func (u *acuityUsecase) CreateDummyAppointments(ctx context.Context, request *requests.CreateDummyAppointments) (*responses.CreateDummiesResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	u.Log.Info("acuityUsecase.CreateDummyAppointments called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDateTimeKey, request.DateTime),
		zap.Int(constvars.LoggingNumAppointmentsKey, request.NumAppointments),
	)

	requestedAt, err := u.parseDateTime(request.DateTime)
	if err != nil {
		u.Log.Error("acuityUsecase.CreateDummyAppointments error parsing date_time",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCannotParseTime(err)
	}

	opening, err := u.findOpening(ctx, requestedAt)
	if err != nil {
		u.Log.Error("acuityUsecase.CreateDummyAppointments error resolving opening",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	numToCreate := request.NumAppointments
	if limit := suggestedDummies(opening.SlotsAvailable); numToCreate > limit {
		numToCreate = limit
	}

	backendResponse, err := u.AcuityClient.CreateDummyAppointments(ctx, &requests.CreateDummyAppointments{
		DateTime:        request.DateTime,
		NumAppointments: numToCreate,
	})
	if err != nil {
		u.Log.Error("acuityUsecase.CreateDummyAppointments error creating appointments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	u.Log.Info("acuityUsecase.CreateDummyAppointments succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingNumAppointmentsKey, numToCreate),
	)
	return &responses.CreateDummiesResult{
		DateTime:        request.DateTime,
		NumRequested:    request.NumAppointments,
		NumCreated:      numToCreate,
		BackendResponse: backendResponse,
	}, nil
}

// findOpening fetches the requested day's openings and returns the one whose
// slot time matches the requested instant.
func (u *acuityUsecase) findOpening(ctx context.Context, requestedAt time.Time) (*models.DummyOpening, error) {
	query := &requests.DummyOpeningsQuery{}
	requestedDay := requestedAt.In(u.Location)
	today := time.Now().In(u.Location)
	if requestedDay.Year() == today.Year() && requestedDay.YearDay() == today.YearDay() {
		query.Today = true
	} else {
		query.Date = requestedDay.Format(constvars.TimeLayoutDateOnly)
	}

	openings, err := u.AcuityClient.GetDummyOpenings(ctx, query)
	if err != nil {
		return nil, err
	}

	for index := range openings {
		if openings[index].Time.Equal(requestedAt) {
			return &openings[index], nil
		}
	}
	return nil, exceptions.ErrNoOpeningAtHour(requestedAt.Format(time.RFC3339))
}

// parseDateTime accepts the same timestamp variants the backend emits.
// Zone-less values are interpreted in the dashboard's configured location.
func (u *acuityUsecase) parseDateTime(value string) (time.Time, error) {
	parsed, err := time.Parse(time.RFC3339, value)
	if err == nil {
		return parsed, nil
	}
	parsed, err = time.Parse(constvars.TimeLayoutAcuity, value)
	if err == nil {
		return parsed, nil
	}
	return time.ParseInLocation(constvars.TimeLayoutNaive, value, u.Location)
}

// suggestedDummies caps placeholder creation at the per-slot maximum without
// exceeding the slots the backend says are open.
func suggestedDummies(slotsAvailable int) int {
	if slotsAvailable < 0 {
		return 0
	}
	if slotsAvailable > constvars.MaxDummyAppointmentsPerSlot {
		return constvars.MaxDummyAppointmentsPerSlot
	}
	return slotsAvailable
}
