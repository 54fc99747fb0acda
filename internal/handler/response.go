package handler

// Response is the envelope every endpoint answers with. Status is
// "success" or "error"; Message carries the error text, Data the
// payload. Handlers never write raw bodies outside this shape.
type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// NewSuccessResponse wraps payload data for a 2xx answer.
func NewSuccessResponse(data interface{}) *Response {
	return &Response{
		Status: "success",
		Data:   data,
	}
}

// NewErrorResponse wraps a caller-facing error message.
func NewErrorResponse(message string) *Response {
	return &Response{
		Status:  "error",
		Message: message,
	}
}
