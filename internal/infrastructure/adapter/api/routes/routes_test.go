package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/amirhossein-jamali/timeconv/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/timeconv/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/timeconv/pkg/timedata"
	mockcore "github.com/amirhossein-jamali/timeconv/mocks/port/core"
	mockusecase "github.com/amirhossein-jamali/timeconv/mocks/port/usecase"
)

func newTestRouter(t *testing.T, metrics MetricsEndpoint) (*gin.Engine, *mockusecase.MockConversionUseCase) {
	gin.SetMode(gin.TestMode)

	logger := mockcore.NewMockLogger(t)
	logger.On("Info", mock.Anything, mock.Anything).Maybe()
	logger.On("Warn", mock.Anything, mock.Anything).Maybe()
	logger.On("Error", mock.Anything, mock.Anything).Maybe()

	uc := mockusecase.NewMockConversionUseCase(t)
	router := NewRouter(
		logger,
		nil,
		handler.NewConversionHandler(uc, logger),
		handler.NewHealthHandler(nil, logger),
		metrics,
	)
	return router, uc
}

func TestRoutes(t *testing.T) {
	router, uc := newTestRouter(t, MetricsEndpoint{})
	uc.On("Convert", mock.Anything, usecase.ConversionRequest{Unit: "d", Quantity: 1}).
		Return(&usecase.ConversionResult{Unit: timedata.Day, Quantity: 1, Decimals: 2, Result: timedata.D(1)}, nil).Once()

	tests := []struct {
		method string
		target string
		status int
	}{
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/units", http.StatusOK},
		{http.MethodGet, "/convert/d?value=1", http.StatusOK},
		{http.MethodGet, "/metrics", http.StatusNotFound},
		{http.MethodGet, "/nowhere", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, nil))
			assert.Equal(t, tt.status, rec.Code)
			assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
		})
	}
}

func TestRoutes_MetricsEndpoint(t *testing.T) {
	router, _ := newTestRouter(t, MetricsEndpoint{
		Path: "/metrics",
		Handler: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("timeconv_conversions_total 0\n"))
		}),
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "timeconv_conversions_total")
}
