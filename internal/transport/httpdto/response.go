package httpdto

// ErrorResponse is the body of every failed request. Detail carries a
// fixed per-endpoint message; underlying causes are logged, never returned.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

func NewErrorResponse(detail string) ErrorResponse {
	return ErrorResponse{Detail: detail}
}

// MessageResponse is the body of operations that only acknowledge.
type MessageResponse struct {
	Message string `json:"message"`
}
