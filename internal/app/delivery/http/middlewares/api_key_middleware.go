package middlewares

import (
	"net/http"

	"acuity-dashboard/internal/pkg/constvars"
	"acuity-dashboard/internal/pkg/exceptions"
	"acuity-dashboard/internal/pkg/utils"

	"go.uber.org/zap"
)

// RequireDashboardAPIKey guards the dashboard's own endpoints. When no key is
// configured the guard is disabled and every request passes.
func (m *Middlewares) RequireDashboardAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		configuredKey := m.InternalConfig.App.DashboardAPIKey
		if configuredKey == "" {
			next.ServeHTTP(w, r)
			return
		}

		apiKey := r.Header.Get(constvars.HeaderXAPIKey)
		if apiKey == "" {
			m.Log.Warn("request rejected, API key missing",
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
				zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrAPIKeyRequired(nil))
			return
		}

		if apiKey != configuredKey {
			m.Log.Warn("request rejected, API key mismatch",
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
				zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrInvalidAPIKey(nil))
			return
		}

		next.ServeHTTP(w, r)
	})
}
