package openai

import "fmt"

// APIError is any failure surfaced by the Assistants API client: a non-2xx
// protocol response, a transport failure, or an undecodable body. StatusCode
// is 0 when no HTTP response was received.
type APIError struct {
	Op         string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("openai %s error %d: %s", e.Op, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("openai %s: %s", e.Op, e.Message)
}
