package http

import (
	"errors"
	"fmt"
	"net/http"

	"assistant-relay/internal/chat"
	"assistant-relay/pkg/openai"
)

// mapError translates domain and upstream errors into an HTTP status and
// response body. Every upstream client failure surfaces with its detail;
// anything unrecognized falls through as an unexpected error.
func mapError(err error) (int, string) {
	switch {
	case errors.Is(err, chat.ErrMessageRequired):
		return http.StatusBadRequest, chat.ErrMessageRequired.Error()
	case errors.Is(err, chat.ErrMissingCredentials):
		return http.StatusInternalServerError, chat.ErrMissingCredentials.Error()
	case errors.Is(err, chat.ErrRunFailed):
		return http.StatusInternalServerError, chat.ErrRunFailed.Error()
	case errors.Is(err, chat.ErrNoResponse):
		return http.StatusInternalServerError, chat.ErrNoResponse.Error()
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return http.StatusInternalServerError, fmt.Sprintf("OpenAI API error: %s", apiErr.Error())
	}

	return http.StatusInternalServerError, fmt.Sprintf("Unexpected error: %s", err.Error())
}
