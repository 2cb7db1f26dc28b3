package models

// ChatRequest is the body of POST /api/chat. Message is a pointer so an
// absent field can be told apart from an empty one.
type ChatRequest struct {
	Message *string `json:"message"`
}

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Error codes returned in ErrorResponse.
const (
	ErrCodeRateLimited      = "rate_limited"
	ErrCodeBadRequest       = "bad_request"
	ErrCodePayloadTooLarge  = "payload_too_large"
	ErrCodeMethodNotAllowed = "method_not_allowed"
	ErrCodeNotFound         = "not_found"
	ErrCodeInternal         = "internal_error"
)

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status string `json:"status"`
}
