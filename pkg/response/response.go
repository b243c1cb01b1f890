package response

// Body is the envelope used by middleware and a few older handlers.
type Body struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func Error(status, message string, data any) Body {
	return Body{
		Status:  status,
		Message: message,
		Data:    data,
	}
}

func Success(message string, data any) Body {
	return Body{
		Status:  "OK",
		Message: message,
		Data:    data,
	}
}
