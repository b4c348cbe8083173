package http

import (
	"github.com/gin-gonic/gin"

	"assistant-relay/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// The chat route is rate limited per client IP.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/chat", mw.RateLimit(), h.Chat)
}
