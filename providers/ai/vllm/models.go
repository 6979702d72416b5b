package vllm

/*
	VLLM API - RESPONSE TYPES

	Requests are built as a plain map so caller options merge into the body
	verbatim; only the response needs typed decoding.
*/

// chatCompletionResponse represents the OpenAI-compatible completion reply.
type chatCompletionResponse struct {
	Choices []choice `json:"choices"`
}

// choice represents a single completion choice.
type choice struct {
	Message choiceMessage `json:"message"`
}

// choiceMessage carries the generated message content.
type choiceMessage struct {
	Content string `json:"content"`
}

// listModelsResponse represents the reply from the /v1/models endpoint.
type listModelsResponse struct {
	Data []modelInfo `json:"data"`
}

// modelInfo describes a single served model.
type modelInfo struct {
	ID string `json:"id"`
}
