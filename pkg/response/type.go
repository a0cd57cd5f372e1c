package response

// Resp is the standard JSON response body.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

const (
	// MessageSuccess is attached to successful responses.
	MessageSuccess = "Success"

	// MessageAccepted acknowledges work queued for background processing.
	MessageAccepted = "Accepted"

	// DefaultErrorMessage hides internal error details from clients.
	DefaultErrorMessage = "Something went wrong"

	// InternalServerErrorCode marks errors the client cannot act on.
	InternalServerErrorCode = 500
)
