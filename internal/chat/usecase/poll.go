package usecase

import (
	"context"
	"time"

	"assistant-relay/pkg/openai"
)

// runOutcome is the result of submitting a message and waiting for its run.
type runOutcome int

const (
	outcomeCompleted runOutcome = iota
	outcomeFailed
	outcomeTimedOut
)

// submitAndWait appends the user's message to the thread, starts a run, and
// polls with exponential backoff until the run leaves the pending state or
// the attempt budget is spent. Remote errors are not retried here; they
// propagate to the caller as-is.
func (uc *implUseCase) submitAndWait(ctx context.Context, threadID, text string) (runOutcome, error) {
	if _, err := uc.assistant.CreateMessage(ctx, threadID, openai.RoleUser, text); err != nil {
		return 0, err
	}

	run, err := uc.assistant.CreateRun(ctx, threadID, uc.cfg.AssistantID)
	if err != nil {
		return 0, err
	}

	wait := uc.cfg.PollInitialWait
	attempts := 0
	for run.Status.Pending() && attempts < uc.cfg.PollMaxAttempts {
		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return 0, ctx.Err()
		}

		run, err = uc.assistant.GetRun(ctx, threadID, run.ID)
		if err != nil {
			return 0, err
		}
		uc.l.Debugf(ctx, "chat: run %s status: %s", run.ID, run.Status)

		wait *= 2
		attempts++
	}

	switch {
	case run.Status == openai.RunStatusFailed:
		return outcomeFailed, nil
	case run.Status.Pending():
		// Attempt budget spent; the remote run may still finish later, but
		// the caller gives up here rather than returning stale data.
		return outcomeTimedOut, nil
	default:
		return outcomeCompleted, nil
	}
}
