package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Answer sends 200 with the assistant's answer.
func Answer(c *gin.Context, text string) {
	c.JSON(http.StatusOK, AnswerResp{Answer: text})
}

// WithError sends the given status with an error body.
func WithError(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResp{Error: message})
}

// BadRequest sends 400 with an error body.
func BadRequest(c *gin.Context, message string) {
	WithError(c, http.StatusBadRequest, message)
}

// InternalError sends 500 with an error body.
func InternalError(c *gin.Context, message string) {
	WithError(c, http.StatusInternalServerError, message)
}

// TooManyRequests sends 429, used by the rate-limit middleware.
func TooManyRequests(c *gin.Context) {
	WithError(c, http.StatusTooManyRequests, "Rate limit exceeded")
}
