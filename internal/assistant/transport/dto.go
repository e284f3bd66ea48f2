package transport

// ChatRequest is a storefront chat message.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is the assistant's annotated reply.
type ChatResponse struct {
	Response string `json:"response"`
}
