package exceptions

import (
	"fmt"

	"acuity-dashboard/internal/pkg/constvars"
)

var (
	// Backend HTTP client failures. Transport errors, non-2xx statuses and
	// decode failures all collapse into these at the call site.
	ErrBuildHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevBuildHTTPRequest)
	}
	ErrSendHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientScheduleBackendUnavailable, constvars.ErrDevSendHTTPRequest)
	}
	ErrBackendBadStatus = func(statusCode int) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadGateway, constvars.ErrClientScheduleBackendUnavailable, fmt.Sprintf(constvars.ErrDevBackendBadStatus, statusCode))
	}
	ErrDecodeResponse = func(err error, resource string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientScheduleBackendUnavailable, fmt.Sprintf(constvars.ErrDevDecodeResponse, resource))
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}

	// Request parsing and validation.
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotParseTime = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseTime)
	}
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}

	// Dashboard state.
	ErrScheduleNotReady = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusServiceUnavailable, constvars.ErrClientScheduleNotReady, constvars.ErrDevScheduleNeverFetched)
	}
	ErrNoOpeningAtHour = func(dateTime string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusConflict, constvars.ErrClientCannotProcessRequest, fmt.Sprintf("%s: %s", constvars.ErrDevNoOpeningAtRequestedHour, dateTime))
	}
)
