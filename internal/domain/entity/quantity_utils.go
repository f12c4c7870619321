package entity

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	errs "github.com/amirhossein-jamali/timeconv/internal/domain/error"
	"github.com/amirhossein-jamali/timeconv/pkg/timedata"
)

// ParseUnit resolves a unit name into a timedata.Unit, mapping failures to ErrInvalidUnit
func ParseUnit(unit string) (timedata.Unit, error) {
	u, err := timedata.ParseUnit(unit)
	if err != nil {
		if errors.Is(err, timedata.ErrUnknownUnit) {
			return "", fmt.Errorf("%w: %q", errs.ErrInvalidUnit, unit)
		}
		return "", err
	}
	return u, nil
}

// ParseQuantity parses a decimal quantity as received in a query string.
// Empty values, NaN and infinities are rejected.
func ParseQuantity(value string) (float64, error) {
	value = strings.TrimSpace(value)
	if len(value) == 0 {
		return 0, fmt.Errorf("%w: empty value", errs.ErrInvalidQuantity)
	}

	quantity, err := strconv.ParseFloat(value, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: %s is out of range", errs.ErrInvalidQuantity, value)
		}
		return 0, fmt.Errorf("%w: %s", errs.ErrInvalidQuantity, err.Error())
	}

	if err := ValidateQuantity(quantity); err != nil {
		return 0, err
	}
	return quantity, nil
}

// ValidateQuantity rejects NaN and infinite quantities
func ValidateQuantity(quantity float64) error {
	if math.IsNaN(quantity) || math.IsInf(quantity, 0) {
		return fmt.Errorf("%w: got %v", errs.ErrInvalidQuantity, quantity)
	}
	return nil
}

// ParsePrecision parses the decimals parameter; an empty value yields defaultDecimals
func ParsePrecision(value string, defaultDecimals, maxDecimals int) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return defaultDecimals, nil
	}

	decimals, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", errs.ErrInvalidPrecision, value)
	}
	if err := ValidatePrecision(decimals, maxDecimals); err != nil {
		return 0, err
	}
	return decimals, nil
}

// ValidatePrecision checks that decimals lies within [0, maxDecimals].
// maxDecimals itself never exceeds timedata.MaxDecimals.
func ValidatePrecision(decimals, maxDecimals int) error {
	if maxDecimals <= 0 || maxDecimals > timedata.MaxDecimals {
		maxDecimals = timedata.MaxDecimals
	}
	if decimals < 0 || decimals > maxDecimals {
		return fmt.Errorf("%w: %d not in [0, %d]", errs.ErrInvalidPrecision, decimals, maxDecimals)
	}
	return nil
}
