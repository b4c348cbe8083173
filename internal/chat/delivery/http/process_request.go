package http

import (
	"github.com/gin-gonic/gin"

	"assistant-relay/internal/chat"
)

type chatReq struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

func (r chatReq) validate() error {
	if r.Message == "" {
		return chat.ErrMessageRequired
	}
	return nil
}

// processChatReq binds and validates the chat request body. An unbindable
// body is reported the same way as a missing message.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, chat.ErrMessageRequired
	}
	return req, req.validate()
}
