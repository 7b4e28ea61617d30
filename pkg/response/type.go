package response

const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Something went wrong"

	// Error codes carried in Resp.ErrorCode. Zero means success.
	CodeBadRequest      = 1
	CodeUnauthorized    = 401
	CodeNotFound        = 404
	CodeTooManyRequests = 429
	CodeInternal        = 500
)

// Resp is the JSON envelope of every non-raw response.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
}
