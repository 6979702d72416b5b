package ai

/*
	##### PROVIDER INPUT #####
*/

// Message represents a single message in a conversation. It is the canonical,
// provider-agnostic shape; adapters translate it to their native format.
type Message struct {
	Role    MessageRole `json:"role"`
	Content string      `json:"content,omitempty"` // Canonical null content maps to the empty string

	// Tool calling fields
	ToolCalls []ToolCall `json:"tool_calls,omitempty"` // For role=assistant requesting tools
	Name      string     `json:"name,omitempty"`       // For role=tool, name of the tool that produced this result
}

// ToolCall represents a function/tool call request from the LLM.
type ToolCall struct {
	ID       string           `json:"id,omitempty"` // Identifier for this tool call
	Type     string           `json:"type"`         // "function"
	Function ToolCallFunction `json:"function"`
}

type ToolCallFunction struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"` // JSON string
}

/*
	##### PROVIDER OUTPUT #####
*/

// ChatCompletionResponse represents the normalized response from a chat
// completion. Adapters always produce exactly one choice; the slice exists
// for wire compatibility with the OpenAI schema.
type ChatCompletionResponse struct {
	Choices []Choice `json:"choices"`
}

// Choice holds a single completion candidate and the reason generation ended.
type Choice struct {
	Message      Message `json:"message"`
	FinishReason string  `json:"finish_reason,omitempty"`
}

/*
	##### ENUMS #####
*/

// MessageRole represents the role of a message; compatible with string
type MessageRole string

const (
	RoleSystem    MessageRole = "system"    // System instructions/configuration
	RoleUser      MessageRole = "user"      // End-user message
	RoleAssistant MessageRole = "assistant" // Model response
	RoleTool      MessageRole = "tool"      // Tool/function output
)

// Finish reasons reported in [Choice.FinishReason].
const (
	FinishReasonStop      = "stop"       // Model produced a plain text reply
	FinishReasonToolCalls = "tool_calls" // Model requested a tool invocation
)
