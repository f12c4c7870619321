package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/timeconv/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/timeconv/internal/domain/error"
	coreport "github.com/amirhossein-jamali/timeconv/internal/domain/port/core"
	"github.com/amirhossein-jamali/timeconv/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/timeconv/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/timeconv/pkg/timedata"
)

// ConversionHandler handles conversion-related HTTP requests
type ConversionHandler struct {
	conversionUseCase usecase.ConversionUseCase
	logger            coreport.Logger
}

// NewConversionHandler creates a new conversion handler instance
func NewConversionHandler(
	conversionUseCase usecase.ConversionUseCase,
	logger coreport.Logger,
) *ConversionHandler {
	return &ConversionHandler{
		conversionUseCase: conversionUseCase,
		logger:            logger,
	}
}

// ConvertQuery handles the GET /convert/{unit}?value=&decimals= endpoint
func (h *ConversionHandler) ConvertQuery(c *gin.Context) {
	value, err := entity.ParseQuantity(c.Query("value"))
	if err != nil {
		respondError(c, err)
		return
	}

	req := usecase.ConversionRequest{
		Unit:     c.Param("unit"),
		Quantity: value,
	}

	if raw := c.Query("decimals"); raw != "" {
		decimals, err := entity.ParsePrecision(raw, timedata.DefaultDecimals, timedata.MaxDecimals)
		if err != nil {
			respondError(c, err)
			return
		}
		req.Decimals = &decimals
	}

	h.convert(c, req)
}

// Convert handles the POST /convert endpoint
func (h *ConversionHandler) Convert(c *gin.Context) {
	var body dto.ConvertRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, fmt.Errorf("%w: %s", domainerr.ErrInvalidRequest, err.Error()))
		return
	}

	h.convert(c, body.ToUseCase())
}

func (h *ConversionHandler) convert(c *gin.Context, req usecase.ConversionRequest) {
	result, err := h.conversionUseCase.Convert(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewConversionResponse(result))
}

// ConvertBatch handles the POST /convert/batch endpoint
func (h *ConversionHandler) ConvertBatch(c *gin.Context) {
	var body dto.BatchRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, fmt.Errorf("%w: %s", domainerr.ErrInvalidRequest, err.Error()))
		return
	}

	reqs := make([]usecase.ConversionRequest, len(body.Items))
	for i, item := range body.Items {
		reqs[i] = item.ToUseCase()
	}

	items, err := h.conversionUseCase.ConvertBatch(c.Request.Context(), reqs)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := dto.BatchResponse{Results: make([]dto.BatchItemResponse, len(items))}
	for i, item := range items {
		out := dto.BatchItemResponse{Index: item.Index}
		if item.Err != nil {
			_, body := errorResponse(item.Err)
			out.Error = &body
			resp.Failed++
		} else {
			r := dto.NewConversionResponse(item.Result)
			out.Result = &r
		}
		resp.Results[i] = out
	}

	c.JSON(http.StatusOK, resp)
}

// GetConversion handles the GET /conversions/{id} endpoint
func (h *ConversionHandler) GetConversion(c *gin.Context) {
	result, err := h.conversionUseCase.GetConversion(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewConversionResponse(result))
}

// ListConversions handles the GET /conversions?limit= endpoint
func (h *ConversionHandler) ListConversions(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			respondError(c, fmt.Errorf("%w: limit must be an integer", domainerr.ErrInvalidRequest))
			return
		}
		limit = parsed
	}

	results, err := h.conversionUseCase.ListConversions(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := dto.ConversionListResponse{
		Conversions: make([]dto.ConversionResponse, 0, len(results)),
		Count:       len(results),
	}
	for _, r := range results {
		resp.Conversions = append(resp.Conversions, dto.NewConversionResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

// Stats handles the GET /conversions/stats endpoint
func (h *ConversionHandler) Stats(c *gin.Context) {
	stats, err := h.conversionUseCase.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.StatsResponse{
		Total:  stats.Total,
		ByUnit: stats.ByUnit,
	})
}

// Units handles the GET /units endpoint
func (h *ConversionHandler) Units(c *gin.Context) {
	units := timedata.Units()
	resp := dto.UnitsResponse{Units: make([]dto.UnitResponse, 0, len(units))}
	for _, u := range units {
		resp.Units = append(resp.Units, dto.UnitResponse{Symbol: string(u), Name: u.Name()})
	}

	c.JSON(http.StatusOK, resp)
}
