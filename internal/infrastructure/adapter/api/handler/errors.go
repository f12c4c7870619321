package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/timeconv/internal/domain/error"
	"github.com/amirhossein-jamali/timeconv/internal/infrastructure/adapter/api/dto"
)

// errorResponse maps a domain error to its status and body.
// Server-side failures are reported with a generic message.
func errorResponse(err error) (int, dto.ErrorResponse) {
	status := domainerr.HTTPStatus(err)
	message := err.Error()

	if status == http.StatusInternalServerError {
		message = "Internal server error"
	}

	return status, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: message,
	}
}

func respondError(c *gin.Context, err error) {
	status, body := errorResponse(err)
	_ = c.Error(err)
	c.JSON(status, body)
}
