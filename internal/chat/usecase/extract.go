package usecase

import (
	"context"

	"assistant-relay/pkg/openai"
)

// extractText pulls a plain text answer out of one assistant message.
// It returns false when no non-empty text is found and never lets a parsing
// anomaly escape: any panic degrades to not-found plus a diagnostic record.
func (uc *implUseCase) extractText(ctx context.Context, msg openai.Message) (text string, found bool) {
	defer func() {
		if r := recover(); r != nil {
			uc.l.Errorf(ctx, "chat: error parsing assistant message %s: %v", msg.ID, r)
			text, found = "", false
		}
	}()

	switch msg.Content.Kind {
	case openai.ContentText:
		if msg.Content.Text != "" {
			return msg.Content.Text, true
		}
		uc.l.Warnf(ctx, "chat: message %s has empty text content", msg.ID)
		return "", false

	case openai.ContentParts:
		for i, part := range msg.Content.Parts {
			uc.l.Debugf(ctx, "chat: message %s part %d type=%s", msg.ID, i, part.Type)
			if part.Text != "" {
				return part.Text, true
			}
		}
		uc.l.Warnf(ctx, "chat: message %s has no part with usable text", msg.ID)
		return "", false

	default:
		uc.l.Warnf(ctx, "chat: message %s has unparseable content", msg.ID)
		return "", false
	}
}
