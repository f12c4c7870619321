package conversion

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/timeconv/internal/domain/entity"
	errs "github.com/amirhossein-jamali/timeconv/internal/domain/error"
	"github.com/amirhossein-jamali/timeconv/pkg/timedata"
	mockpersistence "github.com/amirhossein-jamali/timeconv/mocks/port/persistence"
)

func TestService_HistoryDisabled(t *testing.T) {
	s := NewConversionService(nil, nil, nil, newTestTimeProvider(t), newTestLogger(t), Settings{})
	ctx := context.Background()

	_, err := s.GetConversion(ctx, uuid.NewString())
	assert.ErrorIs(t, err, errs.ErrHistoryDisabled)

	_, err = s.ListConversions(ctx, 10)
	assert.ErrorIs(t, err, errs.ErrHistoryDisabled)

	_, err = s.Stats(ctx)
	assert.ErrorIs(t, err, errs.ErrHistoryDisabled)
}

func TestService_GetConversion(t *testing.T) {
	ctx := context.Background()
	id := uuid.NewString()

	t.Run("found", func(t *testing.T) {
		repo := mockpersistence.NewMockConversionRepository(t)
		repo.On("GetByID", ctx, id).Return(&entity.Conversion{
			ID:        id,
			Unit:      timedata.Day,
			Quantity:  2,
			Decimals:  2,
			Result:    timedata.D(2),
			CreatedAt: fixedTime,
		}, nil).Once()

		s := NewConversionService(repo, nil, nil, newTestTimeProvider(t), newTestLogger(t), Settings{})
		result, err := s.GetConversion(ctx, id)

		require.NoError(t, err)
		assert.Equal(t, id, result.ID)
		assert.Equal(t, 48.0, result.Result.H)
		assert.False(t, result.Cached)
	})

	t.Run("not found", func(t *testing.T) {
		repo := mockpersistence.NewMockConversionRepository(t)
		repo.On("GetByID", ctx, id).Return(nil, errs.ErrConversionNotFound).Once()

		s := NewConversionService(repo, nil, nil, newTestTimeProvider(t), newTestLogger(t), Settings{})
		_, err := s.GetConversion(ctx, id)

		assert.ErrorIs(t, err, errs.ErrConversionNotFound)
	})

	t.Run("malformed id", func(t *testing.T) {
		repo := mockpersistence.NewMockConversionRepository(t)

		s := NewConversionService(repo, nil, nil, newTestTimeProvider(t), newTestLogger(t), Settings{})
		_, err := s.GetConversion(ctx, "not-a-uuid")

		assert.ErrorIs(t, err, errs.ErrInvalidConversionID)
	})
}

func TestService_ListConversions_ClampsLimit(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"default", 0, DefaultListLimit},
		{"negative", -3, DefaultListLimit},
		{"within range", 5, 5},
		{"above maximum", 1000, MaxListLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mockpersistence.NewMockConversionRepository(t)
			repo.On("ListRecent", ctx, tt.want).Return([]*entity.Conversion{
				{ID: "a", Unit: timedata.Second, Result: timedata.S(1)},
			}, nil).Once()

			s := NewConversionService(repo, nil, nil, newTestTimeProvider(t), newTestLogger(t), Settings{})
			results, err := s.ListConversions(ctx, tt.limit)

			require.NoError(t, err)
			require.Len(t, results, 1)
			assert.Equal(t, "a", results[0].ID)
		})
	}
}

func TestService_Stats(t *testing.T) {
	ctx := context.Background()

	repo := mockpersistence.NewMockConversionRepository(t)
	repo.On("CountByUnit", ctx).Return(map[string]int64{"s": 3, "h": 2}, nil).Once()

	s := NewConversionService(repo, nil, nil, newTestTimeProvider(t), newTestLogger(t), Settings{})
	stats, err := s.Stats(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(5), stats.Total)
	assert.Equal(t, int64(3), stats.ByUnit["s"])
	assert.Equal(t, int64(2), stats.ByUnit["h"])
}
