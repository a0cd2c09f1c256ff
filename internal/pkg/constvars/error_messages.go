package constvars

// Client-facing messages. Kept deliberately generic; the dev message carries
// the detail.
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "Cannot process your request, please check your input"
	ErrClientScheduleBackendUnavailable    = "The scheduling backend could not be reached, please try again later"
	ErrClientNotAuthorized                 = "You are not authorized to perform this action"
	ErrClientScheduleNotReady              = "Schedule data has not been fetched yet"
)

// Developer-facing messages.
const (
	ErrDevBuildHTTPRequest         = "Failed to build HTTP request"
	ErrDevSendHTTPRequest          = "Failed to send HTTP request"
	ErrDevBackendBadStatus         = "Backend responded with non-2xx status: %d"
	ErrDevDecodeResponse           = "Failed to decode %s response body"
	ErrDevCannotMarshalJSON        = "Failed to marshal JSON"
	ErrDevCannotParseJSON          = "Failed to parse JSON request body"
	ErrDevCannotParseTime          = "Failed to parse timestamp"
	ErrDevValidationFailed         = "Request validation failed"
	ErrDevInvalidInput             = "Invalid input"
	ErrDevScheduleNeverFetched     = "Schedule state requested before any successful fetch"
	ErrDevNoOpeningAtRequestedHour = "No dummy opening available at the requested time"
)

var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"min":      "must be at least %s",
	"max":      "must be at most %s",
	"datetime": "must be a valid timestamp",
	"gte":      "must be greater than or equal to %s",
}
