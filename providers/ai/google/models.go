package google

/*
	GOOGLE API - REQUEST TYPES
*/

// generateContentRequest represents the request to the generateContent endpoint.
type generateContentRequest struct {
	Contents          []content          `json:"contents"`
	SystemInstruction *systemInstruction `json:"systemInstruction,omitempty"`
	GenerationConfig  map[string]any     `json:"generationConfig,omitempty"` // Passthrough options, sent verbatim
}

// systemInstruction represents the system instruction block.
type systemInstruction struct {
	Parts []part `json:"parts"`
}

// content represents a content block with role and parts.
type content struct {
	Role  string `json:"role,omitempty"` // "user" or "model"
	Parts []part `json:"parts"`
}

// Role tags used by the structured-content protocol. Google only knows
// "user" and "model"; system and user turns collapse into "user".
const (
	roleUser  = "user"
	roleModel = "model"
)

// part is a tagged variant: exactly one of Text, FunctionCall or
// FunctionResponse is set. Use the constructors below rather than building
// parts by hand.
type part struct {
	Text             string            `json:"text,omitempty"`
	FunctionCall     *functionCall     `json:"functionCall,omitempty"`
	FunctionResponse *functionResponse `json:"functionResponse,omitempty"`
}

// functionCall represents a function call issued by the model.
type functionCall struct {
	Name string         `json:"name"`
	Args map[string]any `json:"args,omitempty"`
}

// functionResponse represents the result of a function call, fed back to the
// model as structured data.
type functionResponse struct {
	Name     string         `json:"name"`
	Response map[string]any `json:"response"`
}

// textPart builds a part carrying plain text.
func textPart(text string) part {
	return part{Text: text}
}

// functionCallPart builds a part carrying a function call.
func functionCallPart(name string, args map[string]any) part {
	return part{FunctionCall: &functionCall{Name: name, Args: args}}
}

// functionResponsePart builds a part carrying a function result.
func functionResponsePart(name string, response map[string]any) part {
	return part{FunctionResponse: &functionResponse{Name: name, Response: response}}
}

/*
	GOOGLE API - RESPONSE TYPES
*/

// generateContentResponse represents the response from the generateContent endpoint.
type generateContentResponse struct {
	Candidates []candidate `json:"candidates,omitempty"`
}

// candidate represents a response candidate.
type candidate struct {
	Content      *content `json:"content,omitempty"`
	FinishReason string   `json:"finishReason,omitempty"`
}

// listModelsResponse represents the response from the model listing endpoint.
type listModelsResponse struct {
	Models []modelInfo `json:"models,omitempty"`
}

// modelInfo describes a single available model.
type modelInfo struct {
	Name string `json:"name"`
}
