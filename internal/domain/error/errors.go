package error

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidRequest       = 4000
	CodeInvalidUnit          = 4001
	CodeInvalidQuantity      = 4002
	CodeInvalidPrecision     = 4003
	CodeBatchTooLarge        = 4004
	CodeConversionNotFound   = 4040
	CodeConversionIDRequired = 4041

	// 5xxx - Server errors
	CodeInternalServer     = 5000
	CodeDatabaseConnection = 5030
	CodeHistoryDisabled    = 5031
)

// Base error types
var (
	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInvalidUnit is returned when the unit is not one of ms, s, m, h, d, w, y
	ErrInvalidUnit = errors.New("invalid time unit")

	// ErrInvalidQuantity is returned when the quantity is NaN or infinite
	ErrInvalidQuantity = errors.New("quantity must be a finite number")

	// ErrInvalidPrecision is returned when the number of decimals is out of range
	ErrInvalidPrecision = errors.New("decimals out of range")

	// ErrBatchTooLarge is returned when a batch holds more items than allowed
	ErrBatchTooLarge = errors.New("batch exceeds maximum size")

	// ErrConversionNotFound is returned when the requested conversion record doesn't exist
	ErrConversionNotFound = errors.New("conversion not found")

	// ErrInvalidConversionID is returned when a conversion ID is empty or malformed
	ErrInvalidConversionID = errors.New("invalid conversion ID")

	// ErrHistoryDisabled is returned when history is queried while no store is configured
	ErrHistoryDisabled = errors.New("conversion history is disabled")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrCacheUnavailable is returned when the result cache cannot be reached
	ErrCacheUnavailable = errors.New("cache unavailable")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidUnit):
		return CodeInvalidUnit
	case errors.Is(err, ErrInvalidQuantity):
		return CodeInvalidQuantity
	case errors.Is(err, ErrInvalidPrecision):
		return CodeInvalidPrecision
	case errors.Is(err, ErrBatchTooLarge):
		return CodeBatchTooLarge
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrConversionNotFound):
		return CodeConversionNotFound
	case errors.Is(err, ErrInvalidConversionID):
		return CodeConversionIDRequired
	case errors.Is(err, ErrDatabaseConnection):
		return CodeDatabaseConnection
	case errors.Is(err, ErrHistoryDisabled):
		return CodeHistoryDisabled
	default:
		return CodeInternalServer
	}
}

// HTTPStatus maps a domain error to the HTTP status code returned by the API
func HTTPStatus(err error) int {
	code := ErrorCode(err)
	switch {
	case code == CodeConversionNotFound:
		return http.StatusNotFound
	case code >= 4000 && code < 5000:
		return http.StatusBadRequest
	case code == CodeDatabaseConnection, code == CodeHistoryDisabled:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// ConversionError describes a rejected conversion request
type ConversionError struct {
	Unit     string
	Quantity float64
	Decimals int
	Reason   string
	Err      error
}

// Error implements the error interface for ConversionError
func (e *ConversionError) Error() string {
	return fmt.Sprintf("conversion of %v %s at %d decimals failed: %s: %v",
		e.Quantity, e.Unit, e.Decimals, e.Reason, e.Err)
}

// Unwrap returns the underlying error
func (e *ConversionError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *ConversionError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "conversion_error",
		"unit":       e.Unit,
		"quantity":   fmt.Sprint(e.Quantity),
		"decimals":   e.Decimals,
		"reason":     e.Reason,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewConversionError creates a detailed conversion error
func NewConversionError(unit string, quantity float64, decimals int, reason string, err error) error {
	return &ConversionError{
		Unit:     unit,
		Quantity: quantity,
		Decimals: decimals,
		Reason:   reason,
		Err:      err,
	}
}

// BatchError reports that a batch request was rejected as a whole
type BatchError struct {
	Size    int
	MaxSize int
}

// Error implements the error interface
func (e *BatchError) Error() string {
	return fmt.Sprintf("batch of %d items exceeds the maximum of %d", e.Size, e.MaxSize)
}

// Is checks if the target error is an ErrBatchTooLarge
func (e *BatchError) Is(target error) bool {
	return target == ErrBatchTooLarge
}

// LogFields returns a map of fields for structured logging
func (e *BatchError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "batch_too_large",
		"size":       e.Size,
		"max_size":   e.MaxSize,
		"error_code": CodeBatchTooLarge,
	}
}

// NewBatchError creates a new batch size error
func NewBatchError(size, maxSize int) error {
	return &BatchError{Size: size, MaxSize: maxSize}
}

// IsValidationError checks if the error was caused by invalid client input
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidUnit) ||
		errors.Is(err, ErrInvalidQuantity) ||
		errors.Is(err, ErrInvalidPrecision) ||
		errors.Is(err, ErrInvalidRequest) ||
		errors.Is(err, ErrBatchTooLarge)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrConversionNotFound)
}
