package handlers

// ErrorDetail is the inner error object returned by the API.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the envelope for all error responses.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// MessageResponse is a simple confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}
