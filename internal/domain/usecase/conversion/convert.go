package conversion

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/timeconv/internal/domain/entity"
	errs "github.com/amirhossein-jamali/timeconv/internal/domain/error"
	coreport "github.com/amirhossein-jamali/timeconv/internal/domain/port/core"
	"github.com/amirhossein-jamali/timeconv/internal/domain/port/usecase"
)

// Convert validates the request, serves it from the cache when possible and
// records the conversion in the history store when enabled
func (s *Service) Convert(ctx context.Context, req usecase.ConversionRequest) (*usecase.ConversionResult, error) {
	start := s.timeProvider.Now()

	valid, err := s.validator.Validate(req)
	if err != nil {
		s.logRejected(err)
		s.recordError(err)
		return nil, err
	}

	key := CacheKey(valid.Unit, valid.Quantity, valid.Decimals)
	var conversion *entity.Conversion
	cached := false

	if s.cache != nil {
		data, found, cacheErr := s.cache.Get(ctx, key)
		if cacheErr != nil {
			s.logger.Warn("Cache lookup failed, computing conversion", map[string]any{
				"key":   key,
				"error": cacheErr.Error(),
			})
		} else if found {
			conversion = entity.NewCachedConversion(valid.Unit, valid.Quantity, valid.Decimals, data, s.timeProvider)
			cached = true
		}
	}

	if conversion == nil {
		conversion, err = entity.NewConversion(string(valid.Unit), valid.Quantity, valid.Decimals, s.settings.MaxDecimals, s.timeProvider)
		if err != nil {
			s.recordError(err)
			return nil, err
		}

		if s.cache != nil {
			if err := s.cache.Set(ctx, key, conversion.Result, s.settings.CacheTTL); err != nil {
				s.logger.Warn("Failed to store conversion in cache", map[string]any{
					"key":   key,
					"error": err.Error(),
				})
			}
		}
	}

	if s.settings.RecordHistory && s.repo != nil {
		if err := s.repo.Create(ctx, conversion); err != nil {
			s.logger.Warn("Failed to record conversion history", map[string]any{
				"conversion_id": conversion.ID,
				"error":         err.Error(),
			})
		}
	}

	source := coreport.SourceComputed
	if cached {
		source = coreport.SourceCache
	}
	if s.metrics != nil {
		s.metrics.ObserveConversion(string(valid.Unit), source, s.timeProvider.Since(start))
	}

	s.logger.Debug("Conversion completed", map[string]any{
		"conversion_id": conversion.ID,
		"unit":          string(conversion.Unit),
		"decimals":      conversion.Decimals,
		"source":        source,
	})

	return toResult(conversion, cached), nil
}

func (s *Service) logRejected(err error) {
	var convErr *errs.ConversionError
	if errors.As(err, &convErr) {
		s.logger.Warn("Conversion request rejected", convErr.LogFields())
		return
	}
	s.logger.Warn("Conversion request rejected", map[string]any{"error": err.Error()})
}

func (s *Service) recordError(err error) {
	if s.metrics != nil {
		s.metrics.IncError(errs.ErrorCode(err))
	}
}

func toResult(conversion *entity.Conversion, cached bool) *usecase.ConversionResult {
	return &usecase.ConversionResult{
		ID:        conversion.ID,
		Unit:      conversion.Unit,
		Quantity:  conversion.Quantity,
		Decimals:  conversion.Decimals,
		Result:    conversion.Result,
		Cached:    cached,
		CreatedAt: conversion.CreatedAt,
	}
}
