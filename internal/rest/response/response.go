package response

const (
	StatusSuccess = "success"
	StatusFail    = "fail"
	StatusError   = "error"
)

// Envelope is the body of every response.
type Envelope struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func Success(data any) Envelope {
	return Envelope{Status: StatusSuccess, Data: data}
}

// Failure builds a fail envelope for client errors and an error envelope
// for server errors.
func Failure(code int, message string) Envelope {
	if code >= 500 {
		return Envelope{Status: StatusError, Message: message}
	}
	return Envelope{Status: StatusFail, Message: message}
}
