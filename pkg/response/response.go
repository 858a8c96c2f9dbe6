package response

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the uniform success body for operations with no payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// FieldError names one invalid question or field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResponse carries per-field validation errors.
type ValidationResponse struct {
	Error  string       `json:"error"`
	Fields []FieldError `json:"fields"`
}
