package http

import (
	"github.com/gin-gonic/gin"

	"assistant-relay/pkg/response"
)

// Chat godoc
// @Summary     Send a chat message
// @Description Forwards the message to the assistant and returns its reply.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Chat message"
// @Success     200 {object} response.AnswerResp
// @Failure     400 {object} response.ErrorResp "Message is required"
// @Failure     429 {object} response.ErrorResp "Rate limit exceeded"
// @Failure     500 {object} response.ErrorResp "Assistant or upstream failure"
// @Router      /api/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()
	h.l.Infof(ctx, "chat handler: received request to /api/chat")

	req, err := h.processChatReq(c)
	if err != nil {
		status, msg := mapError(err)
		response.WithError(c, status, msg)
		return
	}

	output, err := h.uc.Chat(ctx, req.toScope(), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "chat handler: uc.Chat: %v", err)
		status, msg := mapError(err)
		response.WithError(c, status, msg)
		return
	}

	response.Answer(c, output.Answer)
}
