package dto

// Response is the uniform envelope returned by every endpoint.
// Count is a pointer so list responses can show a count of zero while
// single-record responses omit the field entirely.
type Response struct {
	Success bool        `json:"success" example:"true"`
	Message string      `json:"message,omitempty" example:"Student created successfully"`
	Count   *int        `json:"count,omitempty" example:"3"`
	Data    interface{} `json:"data,omitempty"`
}

// NewDataResponse creates a success envelope around a single record
func NewDataResponse(data interface{}) Response {
	return Response{
		Success: true,
		Data:    data,
	}
}

// NewMessageResponse creates a success envelope with a message and a record
func NewMessageResponse(message string, data interface{}) Response {
	return Response{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// NewListResponse creates a success envelope around a list with its count
func NewListResponse(count int, data interface{}) Response {
	return Response{
		Success: true,
		Count:   &count,
		Data:    data,
	}
}

// NewErrorResponse creates a failure envelope with a message
func NewErrorResponse(message string) Response {
	return Response{
		Success: false,
		Message: message,
	}
}
