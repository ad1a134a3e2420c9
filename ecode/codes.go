package ecode

// Envelope error codes carried in resp.ErrorInfo.Code.
const (
	OK              = "OK"
	ValidationErr   = "VALIDATION_ERROR"
	InvalidRequest  = "INVALID_REQUEST"
	ScriptErr       = "SCRIPT_ERROR"
	UnexpectedShape = "UNEXPECTED_SHAPE"
	NotFound        = "NOT_FOUND"
	InternalErr     = "INTERNAL_ERROR"
)

var messages = map[string]string{
	OK:              "ok",
	ValidationErr:   "Request validation failed",
	InvalidRequest:  "Invalid request",
	ScriptErr:       "Automation script reported an error",
	UnexpectedShape: "Script result did not contain the expected payload",
	NotFound:        "Item not found",
	InternalErr:     "Internal error",
}

// Text returns the default message for code, or the code itself when unknown.
func Text(code string) string {
	if msg, ok := messages[code]; ok {
		return msg
	}
	return code
}
