package config

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Router         *chi.Mux
	Logger         *zap.Logger
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
	// PollerStop, if set, is called during shutdown to stop the background
	// polling loops before the HTTP server drains.
	PollerStop func()
}
