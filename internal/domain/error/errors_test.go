package error

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestBaseErrorTypes(t *testing.T) {
	if ErrInvalidUnit.Error() != "invalid time unit" {
		t.Errorf("ErrInvalidUnit has unexpected message: %s", ErrInvalidUnit.Error())
	}
	if ErrInvalidQuantity.Error() != "quantity must be a finite number" {
		t.Errorf("ErrInvalidQuantity has unexpected message: %s", ErrInvalidQuantity.Error())
	}
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"InvalidRequest", ErrInvalidRequest, 4000},
		{"InvalidUnit", ErrInvalidUnit, 4001},
		{"InvalidQuantity", ErrInvalidQuantity, 4002},
		{"InvalidPrecision", ErrInvalidPrecision, 4003},
		{"BatchTooLarge", ErrBatchTooLarge, 4004},
		{"ConversionNotFound", ErrConversionNotFound, 4040},
		{"InvalidConversionID", ErrInvalidConversionID, 4041},
		{"DatabaseConnection", ErrDatabaseConnection, 5030},
		{"HistoryDisabled", ErrHistoryDisabled, 5031},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrInvalidUnit), 4001},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestHTTPStatus(t *testing.T) {
	testCases := []struct {
		err      error
		expected int
	}{
		{ErrInvalidUnit, http.StatusBadRequest},
		{ErrBatchTooLarge, http.StatusBadRequest},
		{ErrInvalidConversionID, http.StatusBadRequest},
		{ErrConversionNotFound, http.StatusNotFound},
		{ErrDatabaseConnection, http.StatusServiceUnavailable},
		{ErrHistoryDisabled, http.StatusServiceUnavailable},
		{ErrInternalServer, http.StatusInternalServerError},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		if got := HTTPStatus(tc.err); got != tc.expected {
			t.Errorf("HTTPStatus(%v) = %d, want %d", tc.err, got, tc.expected)
		}
	}
}

func TestConversionError(t *testing.T) {
	convErr := &ConversionError{
		Unit:     "h",
		Quantity: 2,
		Decimals: 4,
		Reason:   "unit check",
		Err:      ErrInvalidUnit,
	}

	expectedErrMsg := "conversion of 2 h at 4 decimals failed: unit check: invalid time unit"
	if convErr.Error() != expectedErrMsg {
		t.Errorf("ConversionError.Error() = %s, want %s", convErr.Error(), expectedErrMsg)
	}

	if !errors.Is(convErr, ErrInvalidUnit) {
		t.Error("errors.Is(convErr, ErrInvalidUnit) should be true")
	}

	fields := convErr.LogFields()
	if fields["error_type"] != "conversion_error" {
		t.Errorf("LogFields()[\"error_type\"] = %v, want conversion_error", fields["error_type"])
	}
	if fields["error_code"] != CodeInvalidUnit {
		t.Errorf("LogFields()[\"error_code\"] = %v, want %d", fields["error_code"], CodeInvalidUnit)
	}

	created := NewConversionError("y", 1, 2, "bad", ErrInvalidQuantity)
	if !errors.Is(created, ErrInvalidQuantity) {
		t.Error("NewConversionError should wrap the given error")
	}
}

func TestBatchError(t *testing.T) {
	err := NewBatchError(150, 100)

	if err.Error() != "batch of 150 items exceeds the maximum of 100" {
		t.Errorf("BatchError.Error() = %s", err.Error())
	}
	if !errors.Is(err, ErrBatchTooLarge) {
		t.Error("errors.Is(err, ErrBatchTooLarge) should be true")
	}
	if ErrorCode(err) != CodeBatchTooLarge {
		t.Errorf("ErrorCode(batchErr) = %d, want %d", ErrorCode(err), CodeBatchTooLarge)
	}

	var batchErr *BatchError
	if !errors.As(err, &batchErr) || batchErr.LogFields()["max_size"] != 100 {
		t.Error("BatchError should expose its sizes through LogFields")
	}
}

func TestErrorPredicates(t *testing.T) {
	if !IsValidationError(fmt.Errorf("ctx: %w", ErrInvalidPrecision)) {
		t.Error("IsValidationError should match wrapped ErrInvalidPrecision")
	}
	if IsValidationError(ErrDatabaseConnection) {
		t.Error("IsValidationError should not match ErrDatabaseConnection")
	}
	if !IsNotFoundError(ErrConversionNotFound) {
		t.Error("IsNotFoundError should match ErrConversionNotFound")
	}
}
