package routers

import (
	"time"

	"acuity-dashboard/internal/app/delivery/http/controllers"
	"acuity-dashboard/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAcuityRoutes(router chi.Router, m *middlewares.Middlewares, c *controllers.AcuityController) {
	// Writes pass through to the scheduling backend, so they sit behind the
	// API key guard and a stricter per-IP limiter than the global one.
	writeLimiter := middlewares.NewRateLimiter(m.InternalConfig.App.DashboardAPIKeyRateLimit, time.Minute, 5*time.Minute)

	router.Get("/openings/dummy", c.GetDummyOpenings)
	router.With(m.RequireDashboardAPIKey, writeLimiter.Limit).Post("/openings/dummy", c.CreateDummyAppointments)
	router.With(m.RequireDashboardAPIKey, writeLimiter.Limit).Post("/snapshot", c.TakeSnapshot)
}
