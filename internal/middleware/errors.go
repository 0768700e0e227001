package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/conversor/internal/domain/dto"
	"github.com/guttosm/conversor/internal/logger"
)

// ErrorHandler renders errors attached with c.Error() when the handler did
// not write a response itself.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	last := c.Errors.Last()
	logger.L().Error().
		Str("request_id", c.GetString(RequestIDKey)).
		Err(last.Err).
		Msg("unhandled request error")

	status := c.Writer.Status()
	if status < http.StatusBadRequest {
		status = http.StatusInternalServerError
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(http.StatusText(status), last.Err))
}

// AbortWithError stops the chain and writes a standardized error body.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}
