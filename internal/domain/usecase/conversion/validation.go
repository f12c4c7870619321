package conversion

import (
	"github.com/amirhossein-jamali/timeconv/internal/domain/entity"
	errs "github.com/amirhossein-jamali/timeconv/internal/domain/error"
	"github.com/amirhossein-jamali/timeconv/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/timeconv/pkg/timedata"
)

// ConversionValidator validates conversion requests before any work is done
type ConversionValidator struct {
	defaultDecimals int
	maxDecimals     int
}

// NewConversionValidator creates a new ConversionValidator
func NewConversionValidator(defaultDecimals, maxDecimals int) *ConversionValidator {
	return &ConversionValidator{
		defaultDecimals: defaultDecimals,
		maxDecimals:     maxDecimals,
	}
}

// ValidatedRequest is a request whose fields have been checked and normalized
type ValidatedRequest struct {
	Unit     timedata.Unit
	Quantity float64
	Decimals int
}

// Validate checks unit, quantity and precision, filling in the default precision.
// Failures are returned as *errs.ConversionError wrapping the domain error.
func (v *ConversionValidator) Validate(req usecase.ConversionRequest) (ValidatedRequest, error) {
	decimals := v.defaultDecimals
	if req.Decimals != nil {
		decimals = *req.Decimals
	}

	unit, err := entity.ParseUnit(req.Unit)
	if err != nil {
		return ValidatedRequest{}, errs.NewConversionError(req.Unit, req.Quantity, decimals, "unknown unit", err)
	}

	if err := entity.ValidateQuantity(req.Quantity); err != nil {
		return ValidatedRequest{}, errs.NewConversionError(req.Unit, req.Quantity, decimals, "non-finite quantity", err)
	}

	if err := entity.ValidatePrecision(decimals, v.maxDecimals); err != nil {
		return ValidatedRequest{}, errs.NewConversionError(req.Unit, req.Quantity, decimals, "precision out of range", err)
	}

	return ValidatedRequest{Unit: unit, Quantity: req.Quantity, Decimals: decimals}, nil
}
