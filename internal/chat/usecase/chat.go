package usecase

import (
	"context"
	"sort"
	"time"

	"assistant-relay/internal/chat"
	"assistant-relay/internal/model"
	"assistant-relay/pkg/openai"
)

const anonymousUserID = "anonymous"

// Chat forwards one user message to the assistant, waits for the run to
// finish, selects the newest assistant reply, and appends the exchange to the
// conversation log.
func (uc *implUseCase) Chat(ctx context.Context, sc model.Scope, input chat.ChatInput) (chat.ChatOutput, error) {
	if input.Message == "" {
		return chat.ChatOutput{}, chat.ErrMessageRequired
	}

	if uc.cfg.APIKey == "" || uc.cfg.AssistantID == "" {
		return chat.ChatOutput{}, chat.ErrMissingCredentials
	}

	userID := sc.UserID
	if userID == "" {
		userID = anonymousUserID
	}

	threadID, err := uc.sessions.ResolveOrCreate(ctx, userID)
	if err != nil {
		return chat.ChatOutput{}, err
	}
	uc.l.Infof(ctx, "chat: user=%s thread=%s", userID, threadID)

	outcome, err := uc.submitAndWait(ctx, threadID, input.Message)
	if err != nil {
		return chat.ChatOutput{}, err
	}

	switch outcome {
	case outcomeFailed:
		uc.l.Errorf(ctx, "chat: assistant run failed for thread %s", threadID)
		return chat.ChatOutput{}, chat.ErrRunFailed
	case outcomeTimedOut:
		uc.l.Errorf(ctx, "chat: run still pending after poll budget for thread %s", threadID)
		return chat.ChatOutput{}, chat.ErrNoResponse
	}

	messages, err := uc.assistant.ListMessages(ctx, threadID)
	if err != nil {
		return chat.ChatOutput{}, err
	}
	uc.l.Debugf(ctx, "chat: retrieved %d messages for thread %s", len(messages), threadID)

	answer, found := uc.selectAnswer(ctx, userID, messages)
	if !found {
		uc.l.Errorf(ctx, "chat: no valid assistant response among %d messages for thread %s",
			len(messages), threadID)
		return chat.ChatOutput{}, chat.ErrNoResponse
	}

	exchange := model.Exchange{
		User:      input.Message,
		Bot:       answer,
		Timestamp: float64(time.Now().UnixNano()) / float64(time.Second),
	}
	if err := uc.store.Append(ctx, userID, exchange); err != nil {
		return chat.ChatOutput{}, err
	}

	return chat.ChatOutput{Answer: answer}, nil
}

// selectAnswer scans assistant-role messages most recent first, skipping the
// recorded instruction message for the user, and returns the first non-empty
// extracted text.
func (uc *implUseCase) selectAnswer(ctx context.Context, userID string, messages []openai.Message) (string, bool) {
	sorted := make([]openai.Message, len(messages))
	copy(sorted, messages)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt > sorted[j].CreatedAt
	})

	instructionID, _ := uc.sessions.InstructionMessageID(userID)

	for _, msg := range sorted {
		if msg.Role != openai.RoleAssistant {
			continue
		}
		if instructionID != "" && msg.ID == instructionID {
			continue
		}

		uc.l.Debugf(ctx, "chat: processing assistant message %s", msg.ID)
		if text, ok := uc.extractText(ctx, msg); ok {
			return text, true
		}
	}

	return "", false
}
