package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/InsightsLog/Insights-sub001/internal/http/dto"
	"github.com/InsightsLog/Insights-sub001/internal/service"
)

const invalidBodyMessage = "Invalid request body"

func respond(c *gin.Context, status int, data any) {
	c.JSON(status, dto.OK(data))
}

// respondError writes the failure envelope for err. Only sentinel messages
// reach the client; anything else is logged and reported generically.
func respondError(c *gin.Context, err error) {
	kind, msg := service.Classify(err)
	status := statusForKind(kind)

	if status >= http.StatusInternalServerError {
		slog.ErrorContext(c.Request.Context(), "request failed",
			"error", err,
			"method", c.Request.Method,
			"route", c.FullPath())
	}
	_ = c.Error(err)

	c.AbortWithStatusJSON(status, dto.Fail(msg))
}

func statusForKind(kind service.ErrorKind) int {
	switch kind {
	case service.KindInvalidInput:
		return http.StatusBadRequest
	case service.KindUnauthenticated:
		return http.StatusUnauthorized
	case service.KindForbidden:
		return http.StatusForbidden
	case service.KindNotFound:
		return http.StatusNotFound
	case service.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func respondInvalidBody(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.Fail(invalidBodyMessage))
}
