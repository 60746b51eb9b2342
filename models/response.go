package models

// APIError carries a human-readable failure message
type APIError struct {
	Message string `json:"message"`
}

// APIResponse is the envelope returned by every endpoint
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

// NewSuccessResponse wraps data in a successful response envelope
func NewSuccessResponse(data interface{}) *APIResponse {
	return &APIResponse{Success: true, Data: data}
}

// NewErrorResponse wraps a failure message in a response envelope
func NewErrorResponse(message string) *APIResponse {
	return &APIResponse{Success: false, Error: &APIError{Message: message}}
}
