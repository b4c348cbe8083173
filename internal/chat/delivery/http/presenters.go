package http

import (
	"assistant-relay/internal/chat"
	"assistant-relay/internal/model"
)

func (r chatReq) toInput() chat.ChatInput {
	return chat.ChatInput{Message: r.Message}
}

func (r chatReq) toScope() model.Scope {
	return model.Scope{UserID: r.UserID}
}
