package controllers

import (
	"net/http"

	"acuity-dashboard/internal/app/contracts"
	"acuity-dashboard/internal/pkg/constvars"
	"acuity-dashboard/internal/pkg/exceptions"
	"acuity-dashboard/internal/pkg/utils"

	"go.uber.org/zap"
)

type ScheduleController struct {
	Usecase contracts.ScheduleUsecase
	Log     *zap.Logger
}

func NewScheduleController(usecase contracts.ScheduleUsecase, log *zap.Logger) *ScheduleController {
	return &ScheduleController{
		Usecase: usecase,
		Log:     log,
	}
}

// GetSchedule serves the latest hourly views. Before the first successful
// backend fetch there is nothing to show and the endpoint reports 503.
func (c *ScheduleController) GetSchedule(w http.ResponseWriter, r *http.Request) {
	view := c.Usecase.CurrentSchedule(r.Context())
	if view == nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrScheduleNotReady())
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseScheduleFetched, view)
}

// GetScheduleDiff serves the last polled diff. A null payload means the
// poller has not completed a diff fetch yet.
func (c *ScheduleController) GetScheduleDiff(w http.ResponseWriter, r *http.Request) {
	diff := c.Usecase.CurrentDiff(r.Context())
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseScheduleDiffFetched, diff)
}

func (c *ScheduleController) GetSnapshotStatus(w http.ResponseWriter, r *http.Request) {
	status := c.Usecase.SnapshotStatus(r.Context())
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSnapshotStatusFetched, status)
}

// RefreshSchedule forces a synchronous schedule fetch outside the polling
// cadence.
func (c *ScheduleController) RefreshSchedule(w http.ResponseWriter, r *http.Request) {
	err := c.Usecase.RefreshSchedule(r.Context())
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseScheduleRefreshed, c.Usecase.CurrentSchedule(r.Context()))
}
