package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"acuity-dashboard/internal/pkg/dto/requests"
	"acuity-dashboard/internal/pkg/dto/responses"
	"acuity-dashboard/internal/pkg/exceptions"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubAcuityUsecase struct {
	snapshotBody json.RawMessage
	openings     []responses.DummyOpening
	createResult *responses.CreateDummiesResult
	err          error

	lastQuery   *requests.DummyOpeningsQuery
	lastRequest *requests.CreateDummyAppointments
}

func (s *stubAcuityUsecase) TakeSnapshot(ctx context.Context) (json.RawMessage, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.snapshotBody, nil
}

func (s *stubAcuityUsecase) ListDummyOpenings(ctx context.Context, query *requests.DummyOpeningsQuery) ([]responses.DummyOpening, error) {
	s.lastQuery = query
	if s.err != nil {
		return nil, s.err
	}
	return s.openings, nil
}

func (s *stubAcuityUsecase) CreateDummyAppointments(ctx context.Context, request *requests.CreateDummyAppointments) (*responses.CreateDummiesResult, error) {
	s.lastRequest = request
	if s.err != nil {
		return nil, s.err
	}
	return s.createResult, nil
}

func newAcuityController(usecase *stubAcuityUsecase) *AcuityController {
	return NewAcuityController(usecase, validator.New(), zap.NewNop())
}

func TestAcuityControllerTakeSnapshot(t *testing.T) {
	t.Run("RelaysBackendBody", func(t *testing.T) {
		controller := newAcuityController(&stubAcuityUsecase{snapshotBody: json.RawMessage(`{"status":"ok"}`)})

		rr := httptest.NewRecorder()
		controller.TakeSnapshot(rr, httptest.NewRequest("POST", "/api/v1/acuity/snapshot", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		body := decodeBody(t, rr)
		assert.JSONEq(t, `{"status":"ok"}`, string(body["data"]))
	})

	t.Run("RelaysBackendFailure", func(t *testing.T) {
		controller := newAcuityController(&stubAcuityUsecase{err: exceptions.ErrBackendBadStatus(503)})

		rr := httptest.NewRecorder()
		controller.TakeSnapshot(rr, httptest.NewRequest("POST", "/api/v1/acuity/snapshot", nil))

		assert.Equal(t, http.StatusBadGateway, rr.Code)
	})
}

func TestAcuityControllerGetDummyOpenings(t *testing.T) {
	t.Run("DefaultsToToday", func(t *testing.T) {
		usecase := &stubAcuityUsecase{openings: []responses.DummyOpening{}}
		controller := newAcuityController(usecase)

		rr := httptest.NewRecorder()
		controller.GetDummyOpenings(rr, httptest.NewRequest("GET", "/api/v1/acuity/openings/dummy", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.True(t, usecase.lastQuery.Today)
		assert.Empty(t, usecase.lastQuery.Date)
	})

	t.Run("ExplicitDateIsPassedThrough", func(t *testing.T) {
		usecase := &stubAcuityUsecase{openings: []responses.DummyOpening{}}
		controller := newAcuityController(usecase)

		rr := httptest.NewRecorder()
		controller.GetDummyOpenings(rr, httptest.NewRequest("GET", "/api/v1/acuity/openings/dummy?date=2025-06-07", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "2025-06-07", usecase.lastQuery.Date)
		assert.False(t, usecase.lastQuery.Today)
	})

	t.Run("MalformedTodayFlagIsRejected", func(t *testing.T) {
		controller := newAcuityController(&stubAcuityUsecase{})

		rr := httptest.NewRecorder()
		controller.GetDummyOpenings(rr, httptest.NewRequest("GET", "/api/v1/acuity/openings/dummy?today=banana", nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestAcuityControllerCreateDummyAppointments(t *testing.T) {
	t.Run("CreatesThroughUsecase", func(t *testing.T) {
		usecase := &stubAcuityUsecase{createResult: &responses.CreateDummiesResult{
			DateTime:     "2025-06-02T16:00:00-06:00",
			NumRequested: 2,
			NumCreated:   2,
		}}
		controller := newAcuityController(usecase)

		payload := `{"date_time":"2025-06-02T16:00:00-06:00","num_appointments":2}`
		rr := httptest.NewRecorder()
		controller.CreateDummyAppointments(rr, httptest.NewRequest("POST", "/api/v1/acuity/openings/dummy", strings.NewReader(payload)))

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Equal(t, 2, usecase.lastRequest.NumAppointments)
	})

	t.Run("RejectsMalformedJSON", func(t *testing.T) {
		controller := newAcuityController(&stubAcuityUsecase{})

		rr := httptest.NewRecorder()
		controller.CreateDummyAppointments(rr, httptest.NewRequest("POST", "/api/v1/acuity/openings/dummy", strings.NewReader("{not json")))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("RejectsMissingFields", func(t *testing.T) {
		usecase := &stubAcuityUsecase{}
		controller := newAcuityController(usecase)

		rr := httptest.NewRecorder()
		controller.CreateDummyAppointments(rr, httptest.NewRequest("POST", "/api/v1/acuity/openings/dummy", strings.NewReader(`{"date_time":"2025-06-02T16:00:00-06:00"}`)))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Nil(t, usecase.lastRequest)
	})

	t.Run("RejectsZeroAppointments", func(t *testing.T) {
		controller := newAcuityController(&stubAcuityUsecase{})

		rr := httptest.NewRecorder()
		controller.CreateDummyAppointments(rr, httptest.NewRequest("POST", "/api/v1/acuity/openings/dummy", strings.NewReader(`{"date_time":"2025-06-02T16:00:00-06:00","num_appointments":0}`)))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
