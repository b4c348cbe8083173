package chat

// ChatInput is the input for UseCase.Chat.
type ChatInput struct {
	Message string
}

// ChatOutput is the output of UseCase.Chat.
type ChatOutput struct {
	Answer string
}
