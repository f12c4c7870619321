package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domainerr "github.com/amirhossein-jamali/timeconv/internal/domain/error"
	"github.com/amirhossein-jamali/timeconv/internal/infrastructure/adapter/api/dto"
	mockcore "github.com/amirhossein-jamali/timeconv/mocks/port/core"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestErrorHandler_RecoversPanic(t *testing.T) {
	logger := mockcore.NewMockLogger(t)
	logger.On("Error", "Panic recovered in API request", mock.MatchedBy(func(f map[string]any) bool {
		return f["path"] == "/boom" && f["error"] == "boom"
	})).Once()

	router := gin.New()
	router.Use(ErrorHandler(logger))
	router.GET("/boom", func(*gin.Context) { panic("boom") })

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, domainerr.CodeInternalServer, body.Code)
}

func TestNotFound(t *testing.T) {
	router := gin.New()
	router.NoRoute(NotFound())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "GET /nowhere")
}

func TestLogger(t *testing.T) {
	t.Run("generates a request id", func(t *testing.T) {
		logger := mockcore.NewMockLogger(t)
		logger.On("Info", "Request processed", mock.MatchedBy(func(f map[string]any) bool {
			return f["status"] == http.StatusOK && f["path"] == "/ok"
		})).Once()

		router := gin.New()
		router.Use(Logger(logger))
		router.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok", nil))

		_, err := uuid.Parse(rec.Header().Get(RequestIDHeader))
		assert.NoError(t, err)
	})

	t.Run("propagates the caller's request id", func(t *testing.T) {
		logger := mockcore.NewMockLogger(t)
		logger.On("Info", "Request processed", mock.MatchedBy(func(f map[string]any) bool {
			return f["request_id"] == "abc-123"
		})).Once()

		router := gin.New()
		router.Use(Logger(logger))
		router.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })

		req := httptest.NewRequest(http.MethodGet, "/ok", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
	})

	t.Run("client errors are logged as warnings", func(t *testing.T) {
		logger := mockcore.NewMockLogger(t)
		logger.On("Warn", "Request rejected", mock.Anything).Once()

		router := gin.New()
		router.Use(Logger(logger))
		router.GET("/bad", func(c *gin.Context) { c.Status(http.StatusBadRequest) })

		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/bad", nil))
	})

	t.Run("server errors are logged as errors", func(t *testing.T) {
		logger := mockcore.NewMockLogger(t)
		logger.On("Error", "Request failed", mock.Anything).Once()

		router := gin.New()
		router.Use(Logger(logger))
		router.GET("/fail", func(c *gin.Context) { c.Status(http.StatusServiceUnavailable) })

		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/fail", nil))
	})
}

func TestCORS(t *testing.T) {
	newRouter := func(origins ...string) *gin.Engine {
		router := gin.New()
		router.Use(CORS(origins...))
		router.GET("/units", func(c *gin.Context) { c.Status(http.StatusOK) })
		return router
	}

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/units", nil)
		req.Header.Set("Origin", "https://example.com")
		rec := httptest.NewRecorder()
		newRouter().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("listed origin is echoed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/units", nil)
		req.Header.Set("Origin", "https://app.example.com")
		rec := httptest.NewRecorder()
		newRouter("https://app.example.com").ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "https://app.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("unlisted origin gets no allow header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/units", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		rec := httptest.NewRecorder()
		newRouter("https://app.example.com").ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})
}
