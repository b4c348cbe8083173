package model

// Exchange is one user/assistant turn in the conversation log.
// Timestamp is unix seconds; kept as float64 for parity with the persisted
// conversations.json format.
type Exchange struct {
	User      string  `json:"user"`
	Bot       string  `json:"bot"`
	Timestamp float64 `json:"timestamp"`
}
