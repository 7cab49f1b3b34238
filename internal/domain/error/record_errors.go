// Package error defines domain-specific errors for the Carbon Tracker application.
package error

import "errors"

// Carbon record domain errors.
var (
	// ErrRecordNotFound is returned when a carbon record is not found in the system.
	ErrRecordNotFound = errors.New("carbon record not found")

	// ErrUnknownRecordType is returned when no configuration exists for a record type.
	ErrUnknownRecordType = errors.New("unknown record type")

	// ErrInvalidAmount is returned when the supplied amount is not numeric.
	ErrInvalidAmount = errors.New("amount must be numeric")

	// ErrInvalidUnit is returned when no category field accepts the supplied unit.
	ErrInvalidUnit = errors.New("unit is not valid for this record type")

	// ErrMissingDates is returned when date-range mode is enabled and either date is missing.
	ErrMissingDates = errors.New("start and end dates are required")

	// ErrInvalidDateRange is returned when the end date does not follow the start date.
	ErrInvalidDateRange = errors.New("end date must be after start date")

	// ErrDateRangeOverlap is returned when a record's date range overlaps another
	// active record with the same name.
	ErrDateRangeOverlap = errors.New("date range overlaps an existing record with the same name")

	// ErrDuplicateSingularRecord is returned when a second record of a singular
	// record type is created for the same profile.
	ErrDuplicateSingularRecord = errors.New("a record of this type already exists for the profile")

	// ErrNotAuthorizedToModifyRecord is returned when the record belongs to another profile.
	ErrNotAuthorizedToModifyRecord = errors.New("not authorized to modify record")
)

// RecordErrorCode defines error codes for carbon record errors.
// Format: CRB-XXYYYY where XX is category and YYYY is specific error.
type RecordErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeUnknownRecordType       RecordErrorCode = "CRB-010001"
	ErrCodeInvalidAmount           RecordErrorCode = "CRB-010002"
	ErrCodeInvalidUnit             RecordErrorCode = "CRB-010003"
	ErrCodeMissingDates            RecordErrorCode = "CRB-010004"
	ErrCodeInvalidDateRange        RecordErrorCode = "CRB-010005"
	ErrCodeDateRangeOverlap        RecordErrorCode = "CRB-010006"
	ErrCodeDuplicateSingularRecord RecordErrorCode = "CRB-010007"
	ErrCodeMissingRecordFields     RecordErrorCode = "CRB-010008"

	// Resource errors (02XXXX)
	ErrCodeRecordNotFound      RecordErrorCode = "CRB-020001"
	ErrCodeNotAuthorizedRecord RecordErrorCode = "CRB-020002"
)

// RecordError represents a carbon record error with code and message.
type RecordError struct {
	Code    RecordErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RecordError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *RecordError) Unwrap() error {
	return e.Err
}

// NewRecordError creates a new RecordError with the given code and message.
func NewRecordError(code RecordErrorCode, message string, err error) *RecordError {
	return &RecordError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
