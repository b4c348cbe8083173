package response

// AnswerResp is the success body for chat responses.
type AnswerResp struct {
	Answer string `json:"answer"`
}

// ErrorResp is the error body returned on every non-2xx response.
type ErrorResp struct {
	Error string `json:"error"`
}
