package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Client is the HTTP wrapper for the OpenAI Assistants API (threads, messages, runs).
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new Assistants API client with the given API key.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{},
	}
}

// SetBaseURL overrides the API base URL (used by tests and proxies).
func (c *Client) SetBaseURL(baseURL string) {
	c.baseURL = baseURL
}

// CreateThread creates a new empty thread via POST /threads.
func (c *Client) CreateThread(ctx context.Context) (*Thread, error) {
	const op = "create thread"
	url := fmt.Sprintf("%s/threads", c.baseURL)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBufferString("{}"))
	if err != nil {
		return nil, &APIError{Op: op, Message: fmt.Sprintf("failed to build request: %v", err)}
	}
	c.setHeaders(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &APIError{Op: op, Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, &APIError{Op: op, StatusCode: resp.StatusCode, Message: string(raw)}
	}

	var thread Thread
	if err := json.NewDecoder(resp.Body).Decode(&thread); err != nil {
		return nil, &APIError{Op: op, Message: fmt.Sprintf("failed to decode response: %v", err)}
	}
	return &thread, nil
}

// CreateMessage appends a message to a thread via POST /threads/{id}/messages.
func (c *Client) CreateMessage(ctx context.Context, threadID, role, content string) (*Message, error) {
	const op = "create message"
	url := fmt.Sprintf("%s/threads/%s/messages", c.baseURL, threadID)

	body, err := json.Marshal(createMessageRequest{Role: role, Content: content})
	if err != nil {
		return nil, &APIError{Op: op, Message: fmt.Sprintf("failed to marshal request: %v", err)}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, &APIError{Op: op, Message: fmt.Sprintf("failed to build request: %v", err)}
	}
	c.setHeaders(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &APIError{Op: op, Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, &APIError{Op: op, StatusCode: resp.StatusCode, Message: string(raw)}
	}

	var msg Message
	if err := json.NewDecoder(resp.Body).Decode(&msg); err != nil {
		return nil, &APIError{Op: op, Message: fmt.Sprintf("failed to decode response: %v", err)}
	}
	return &msg, nil
}

// CreateRun starts an assistant run via POST /threads/{id}/runs.
func (c *Client) CreateRun(ctx context.Context, threadID, assistantID string) (*Run, error) {
	const op = "create run"
	url := fmt.Sprintf("%s/threads/%s/runs", c.baseURL, threadID)

	body, err := json.Marshal(createRunRequest{AssistantID: assistantID})
	if err != nil {
		return nil, &APIError{Op: op, Message: fmt.Sprintf("failed to marshal request: %v", err)}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, &APIError{Op: op, Message: fmt.Sprintf("failed to build request: %v", err)}
	}
	c.setHeaders(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &APIError{Op: op, Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, &APIError{Op: op, StatusCode: resp.StatusCode, Message: string(raw)}
	}

	var run Run
	if err := json.NewDecoder(resp.Body).Decode(&run); err != nil {
		return nil, &APIError{Op: op, Message: fmt.Sprintf("failed to decode response: %v", err)}
	}
	return &run, nil
}

// GetRun fetches run state via GET /threads/{id}/runs/{run_id}.
func (c *Client) GetRun(ctx context.Context, threadID, runID string) (*Run, error) {
	const op = "get run"
	url := fmt.Sprintf("%s/threads/%s/runs/%s", c.baseURL, threadID, runID)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &APIError{Op: op, Message: fmt.Sprintf("failed to build request: %v", err)}
	}
	c.setHeaders(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &APIError{Op: op, Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, &APIError{Op: op, StatusCode: resp.StatusCode, Message: string(raw)}
	}

	var run Run
	if err := json.NewDecoder(resp.Body).Decode(&run); err != nil {
		return nil, &APIError{Op: op, Message: fmt.Sprintf("failed to decode response: %v", err)}
	}
	return &run, nil
}

// ListMessages lists thread messages via GET /threads/{id}/messages.
// The API returns messages most recent first.
func (c *Client) ListMessages(ctx context.Context, threadID string) ([]Message, error) {
	const op = "list messages"
	url := fmt.Sprintf("%s/threads/%s/messages", c.baseURL, threadID)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &APIError{Op: op, Message: fmt.Sprintf("failed to build request: %v", err)}
	}
	c.setHeaders(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &APIError{Op: op, Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, &APIError{Op: op, StatusCode: resp.StatusCode, Message: string(raw)}
	}

	var listResp listMessagesResponse
	if err := json.NewDecoder(resp.Body).Decode(&listResp); err != nil {
		return nil, &APIError{Op: op, Message: fmt.Sprintf("failed to decode response: %v", err)}
	}
	return listResp.Data, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))
	req.Header.Set(betaHeaderKey, betaHeaderValue)
}
