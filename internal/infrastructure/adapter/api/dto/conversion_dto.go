package dto

import (
	"time"

	"github.com/amirhossein-jamali/timeconv/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/timeconv/pkg/timedata"
)

// ConvertRequest represents the API request body for a single conversion
type ConvertRequest struct {
	Unit     string   `json:"unit" binding:"required"`
	Value    *float64 `json:"value" binding:"required"`
	Decimals *int     `json:"decimals"`
}

// ToUseCase maps the request to the use case input
func (r ConvertRequest) ToUseCase() usecase.ConversionRequest {
	return usecase.ConversionRequest{
		Unit:     r.Unit,
		Quantity: *r.Value,
		Decimals: r.Decimals,
	}
}

// BatchRequest represents the API request body for a batch conversion
type BatchRequest struct {
	Items []ConvertRequest `json:"items" binding:"required,dive"`
}

// ConversionResponse represents a converted duration
type ConversionResponse struct {
	ID        string            `json:"id"`
	Unit      string            `json:"unit"`
	Value     float64           `json:"value"`
	Decimals  int               `json:"decimals"`
	Result    timedata.TimeData `json:"result"`
	Cached    bool              `json:"cached"`
	CreatedAt time.Time         `json:"createdAt"`
}

// NewConversionResponse maps a use case result to its API representation
func NewConversionResponse(r *usecase.ConversionResult) ConversionResponse {
	return ConversionResponse{
		ID:        r.ID,
		Unit:      string(r.Unit),
		Value:     r.Quantity,
		Decimals:  r.Decimals,
		Result:    r.Result,
		Cached:    r.Cached,
		CreatedAt: r.CreatedAt,
	}
}

// BatchItemResponse holds either the result or the error of one batch item
type BatchItemResponse struct {
	Index  int                 `json:"index"`
	Result *ConversionResponse `json:"result,omitempty"`
	Error  *ErrorResponse      `json:"error,omitempty"`
}

// BatchResponse represents the API response for a batch conversion
type BatchResponse struct {
	Results []BatchItemResponse `json:"results"`
	Failed  int                 `json:"failed"`
}

// ConversionListResponse represents a page of recorded conversions
type ConversionListResponse struct {
	Conversions []ConversionResponse `json:"conversions"`
	Count       int                  `json:"count"`
}

// StatsResponse represents per-unit conversion counts
type StatsResponse struct {
	Total  int64            `json:"total"`
	ByUnit map[string]int64 `json:"byUnit"`
}

// UnitResponse describes a supported unit
type UnitResponse struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// UnitsResponse lists the supported units
type UnitsResponse struct {
	Units []UnitResponse `json:"units"`
}

// HealthResponse reports the status of the service and its dependencies
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}
