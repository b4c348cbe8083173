package model

// Scope carries the identity of the caller through the request path.
type Scope struct {
	UserID string
}
