package models

// ErrorResponse is the body of every failed HTTP request.
type ErrorResponse struct {
	// Error is the machine-readable error kind, e.g. "NotFound".
	Error string `json:"error"`
	// Message is a human-readable reason safe to show to the caller.
	Message string `json:"message"`
}

// SuccessResponse acknowledges operations that return no document.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// LoginResponse carries a freshly issued session token.
type LoginResponse struct {
	Token string `json:"token"`
}
