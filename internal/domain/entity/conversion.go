package entity

import (
	"math"
	"time"

	"github.com/google/uuid"

	errs "github.com/amirhossein-jamali/timeconv/internal/domain/error"
	coreport "github.com/amirhossein-jamali/timeconv/internal/domain/port/core"
	"github.com/amirhossein-jamali/timeconv/pkg/timedata"
)

// Conversion represents one performed conversion and its result
type Conversion struct {
	ID        string            // Random UUID assigned at creation
	Unit      timedata.Unit     // Home unit of Quantity
	Quantity  float64           // Input quantity as supplied by the caller
	Decimals  int               // Precision applied to every field of Result
	Result    timedata.TimeData // Quantity expressed in all units
	CreatedAt time.Time
}

// NewConversion validates the input and computes the conversion result
func NewConversion(unit string, quantity float64, decimals, maxDecimals int, timeProvider coreport.TimeProvider) (*Conversion, error) {
	u, err := ParseUnit(unit)
	if err != nil {
		return nil, err
	}
	if err := ValidateQuantity(quantity); err != nil {
		return nil, err
	}
	if err := ValidatePrecision(decimals, maxDecimals); err != nil {
		return nil, err
	}

	result, err := timedata.Convert(u, quantity, decimals)
	if err != nil {
		return nil, errs.NewConversionError(unit, quantity, decimals, "convert", errs.ErrInvalidUnit)
	}
	if !finite(result) {
		return nil, errs.NewConversionError(unit, quantity, decimals, "result overflows", errs.ErrInvalidQuantity)
	}

	return &Conversion{
		ID:        uuid.NewString(),
		Unit:      u,
		Quantity:  quantity,
		Decimals:  decimals,
		Result:    result,
		CreatedAt: timeProvider.Now(),
	}, nil
}

func finite(d timedata.TimeData) bool {
	for _, u := range timedata.Units() {
		v := d.Get(u)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Value returns the result expressed in the given unit
func (c *Conversion) Value(u timedata.Unit) float64 {
	return c.Result.Get(u)
}

// NewCachedConversion builds a conversion around a previously computed result.
// The caller is responsible for having validated unit, quantity and decimals.
func NewCachedConversion(unit timedata.Unit, quantity float64, decimals int, result timedata.TimeData, timeProvider coreport.TimeProvider) *Conversion {
	return &Conversion{
		ID:        uuid.NewString(),
		Unit:      unit,
		Quantity:  quantity,
		Decimals:  decimals,
		Result:    result,
		CreatedAt: timeProvider.Now(),
	}
}
