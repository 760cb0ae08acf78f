package handler

// errorResponse is the standard error envelope returned on 4xx/5xx responses
// outside the authorization path.
type errorResponse struct {
	Error string `json:"error"`
}

// messageResponse is a bare informational reply, used where clients expect
// 200 with a message body (duplicate registration).
type messageResponse struct {
	Message string `json:"message"`
}
