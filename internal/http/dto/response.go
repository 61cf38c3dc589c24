package dto

// Response is the envelope of every JSON body: data on success, a single
// human-readable message on failure.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func OK(data any) Response {
	return Response{Success: true, Data: data}
}

func Fail(message string) Response {
	return Response{Success: false, Error: message}
}
