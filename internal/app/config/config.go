package config

import (
	"acuity-dashboard/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                      utils.GetEnvString("APP_ENV", "development"),
			Port:                     utils.GetEnvString("APP_PORT", ":3000"),
			Version:                  utils.GetEnvString("APP_VERSION", "v1"),
			Address:                  utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:                 utils.GetEnvString("APP_TIMEZONE", "America/Denver"),
			EndpointPrefix:           utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:              utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeout:          utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			DashboardAPIKey:          utils.GetEnvString("APP_DASHBOARD_API_KEY", ""),
			DashboardAPIKeyRateLimit: utils.GetEnvInt("APP_DASHBOARD_API_KEY_RATE_LIMIT", 30),
		},
		Backend: Backend{
			BaseUrl:                   utils.GetEnvString("BACKEND_BASE_URL", "http://localhost:8000"),
			APIKey:                    utils.GetEnvString("BACKEND_API_KEY", ""),
			DiffPollIntervalInSeconds: utils.GetEnvInt("BACKEND_DIFF_POLL_INTERVAL_IN_SECONDS", 120),
		},
	}
}
