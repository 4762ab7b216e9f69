package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// messageResponse acknowledges operations that return no resource body.
type messageResponse struct {
	Message string `json:"message"`
}
