package models

// Error carries a machine-readable code alongside the human-readable message.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the envelope for all non-2xx responses.
type ErrorResponse struct {
	Success bool       `json:"success"`
	Error   Error      `json:"error"`
	Errors  []RowError `json:"errors,omitempty"`
}
