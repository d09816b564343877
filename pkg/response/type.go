package response

// Resp is the standard JSON response body. RequestID echoes the id the request was logged under.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}
