package handlers

// Error messages returned in ErrorResponse.Error.
const (
	MsgNotFound        = "not found"
	MsgMalformedModule = "malformed module"
	MsgInternal        = "internal server error"
)

// ErrorResponse is the standard format for API error responses.
type ErrorResponse struct {
	Error string `json:"error"`
	// Detail is only filled in debug mode.
	Detail string `json:"detail,omitempty"`
}
