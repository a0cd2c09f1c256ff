package config

type InternalConfig struct {
	App     App
	Backend Backend
}

type App struct {
	Env            string
	Port           string
	Version        string
	Address        string
	Timezone       string
	EndpointPrefix string
	// MaxRequests is the per-IP request budget per second for the dashboard API.
	MaxRequests     int
	ShutdownTimeout int
	// DashboardAPIKey guards the mutating dashboard endpoints. Empty disables the guard.
	DashboardAPIKey          string
	DashboardAPIKeyRateLimit int
}

type Backend struct {
	BaseUrl string
	APIKey  string
	// DiffPollIntervalInSeconds sets how often the diff poller refires after
	// its immediate first fetch.
	DiffPollIntervalInSeconds int
}
