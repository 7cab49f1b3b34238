// Package error defines domain-specific errors for the Carbon Tracker application.
package error

import "errors"

// Footprint API domain errors.
var (
	// ErrFootprintUnavailable is returned when the footprint API cannot be reached.
	ErrFootprintUnavailable = errors.New("footprint api unavailable")

	// ErrFootprintRequestFailed is returned when the footprint API rejects a request.
	ErrFootprintRequestFailed = errors.New("footprint api request failed")

	// ErrFootprintItemNotFound is returned when the remote item no longer exists.
	ErrFootprintItemNotFound = errors.New("footprint item not found")

	// ErrDrillDownFailed is returned when a drill-down path does not resolve
	// to a data item.
	ErrDrillDownFailed = errors.New("drill-down path did not resolve")
)

// FootprintErrorCode defines error codes for footprint API errors.
// Format: FPT-XXYYYY where XX is category and YYYY is specific error.
type FootprintErrorCode string

const (
	// Transport errors (01XXXX)
	ErrCodeFootprintUnavailable FootprintErrorCode = "FPT-010001"

	// Remote rejection errors (02XXXX)
	ErrCodeFootprintRequestFailed FootprintErrorCode = "FPT-020001"
	ErrCodeFootprintItemNotFound  FootprintErrorCode = "FPT-020002"
	ErrCodeDrillDownFailed        FootprintErrorCode = "FPT-020003"
)

// FootprintError represents a footprint API error with code and message.
type FootprintError struct {
	Code    FootprintErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *FootprintError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *FootprintError) Unwrap() error {
	return e.Err
}

// NewFootprintError creates a new FootprintError with the given code and message.
func NewFootprintError(code FootprintErrorCode, message string, err error) *FootprintError {
	return &FootprintError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
