package routers

import (
	"acuity-dashboard/internal/app/delivery/http/controllers"
	"acuity-dashboard/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachScheduleRoutes(router chi.Router, m *middlewares.Middlewares, c *controllers.ScheduleController) {
	router.Get("/", c.GetSchedule)
	router.Get("/diff", c.GetScheduleDiff)
	router.Get("/snapshot-status", c.GetSnapshotStatus)
	router.With(m.RequireDashboardAPIKey).Post("/refresh", c.RefreshSchedule)
}
