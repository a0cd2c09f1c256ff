package controllers

import (
	"net/http"
	"strconv"

	"acuity-dashboard/internal/app/contracts"
	"acuity-dashboard/internal/pkg/constvars"
	"acuity-dashboard/internal/pkg/dto/requests"
	"acuity-dashboard/internal/pkg/exceptions"
	"acuity-dashboard/internal/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AcuityController struct {
	Usecase  contracts.AcuityUsecase
	Validate *validator.Validate
	Log      *zap.Logger
}

func NewAcuityController(usecase contracts.AcuityUsecase, validate *validator.Validate, log *zap.Logger) *AcuityController {
	return &AcuityController{
		Usecase:  usecase,
		Validate: validate,
		Log:      log,
	}
}

// TakeSnapshot asks the backend to record its daily schedule snapshot and
// relays the backend's own response body.
func (c *AcuityController) TakeSnapshot(w http.ResponseWriter, r *http.Request) {
	result, err := c.Usecase.TakeSnapshot(r.Context())
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSnapshotTaken, result)
}

// GetDummyOpenings lists the open dummy slots for today, or for an explicit
// ?date=YYYY-MM-DD.
func (c *AcuityController) GetDummyOpenings(w http.ResponseWriter, r *http.Request) {
	query := &requests.DummyOpeningsQuery{
		Date: r.URL.Query().Get(constvars.QueryParamDate),
	}
	if rawToday := r.URL.Query().Get(constvars.QueryParamToday); rawToday != "" {
		today, err := strconv.ParseBool(rawToday)
		if err != nil {
			utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
			return
		}
		query.Today = today
	}
	if query.Date == "" {
		query.Today = true
	}

	openings, err := c.Usecase.ListDummyOpenings(r.Context(), query)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseDummyOpeningsFetched, openings)
}

// CreateDummyAppointments books placeholder appointments into one open slot.
func (c *AcuityController) CreateDummyAppointments(w http.ResponseWriter, r *http.Request) {
	var request requests.CreateDummyAppointments
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := c.Validate.Struct(&request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	result, err := c.Usecase.CreateDummyAppointments(r.Context(), &request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ResponseDummiesCreated, result)
}
