package constvars

const (
	LoggingRequestIDKey        = "request_id"
	LoggingMethodKey           = "method"
	LoggingEndpointKey         = "endpoint"
	LoggingRemoteAddrKey       = "remote_addr"
	LoggingUserAgentKey        = "user_agent"
	LoggingQueryKey            = "query"
	LoggingStatusCodeKey       = "status_code"
	LoggingDurationKey         = "duration"
	LoggingSuccessKey          = "success"
	LoggingBackendUrlKey       = "backend_url"
	LoggingAppointmentCountKey = "appointment_count"
	LoggingDiffHourCountKey    = "diff_hour_count"
	LoggingOpeningCountKey     = "opening_count"
	LoggingHourKey             = "hour"
	LoggingDateTimeKey         = "date_time"
	LoggingNumAppointmentsKey  = "num_appointments"
	LoggingPollIntervalKey     = "poll_interval"
	LoggingOperationKey        = "operation"
	LoggingErrorCodeKey        = "error_code"
	LoggingErrorMessageKey     = "error_message"
)
