package google

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/kaptinlin/jsonrepair"
	"github.com/leofalp/aibridge/providers/ai"
)

// convertRequest converts canonical messages to Google content blocks.
// A leading system message is extracted and returned separately as the system
// instruction; only the first message is considered, later system messages
// are passed through as user turns. Output order matches input order after
// the extraction.
func convertRequest(messages []ai.Message) (string, []content, error) {
	var system string
	if len(messages) > 0 && messages[0].Role == ai.RoleSystem {
		system = messages[0].Content
		messages = messages[1:]
	}

	contents := make([]content, 0, len(messages))
	for _, msg := range messages {
		var c content
		var err error

		switch msg.Role {
		case ai.RoleTool:
			c, err = convertToolMessage(msg)
		case ai.RoleAssistant:
			c, err = convertAssistantMessage(msg)
		default: // user, or system messages past the first
			c = content{Role: roleUser, Parts: []part{textPart(msg.Content)}}
		}
		if err != nil {
			return "", nil, err
		}
		contents = append(contents, c)
	}

	return system, contents, nil
}

// convertToolMessage converts a tool result into a functionResponse part.
// The content must be a JSON object so the model receives structured data.
func convertToolMessage(msg ai.Message) (content, error) {
	if msg.Content == "" {
		return content{}, &ai.ValidationError{Message: "tool result message must have a content field"}
	}

	var response map[string]any
	if err := json.Unmarshal([]byte(msg.Content), &response); err != nil {
		return content{}, &ai.ValidationError{Message: "tool result message must be valid JSON"}
	}

	return content{Role: roleModel, Parts: []part{functionResponsePart(msg.Name, response)}}, nil
}

// convertAssistantMessage converts an assistant turn. A turn carrying tool
// calls becomes a functionCall part; only the first call is honored. Any
// other assistant turn becomes a text part.
func convertAssistantMessage(msg ai.Message) (content, error) {
	if len(msg.ToolCalls) == 0 {
		return content{Role: roleModel, Parts: []part{textPart(msg.Content)}}, nil
	}

	call := msg.ToolCalls[0].Function
	args, err := parseArguments(call.Arguments)
	if err != nil {
		return content{}, fmt.Errorf("tool call %q has malformed arguments: %w", call.Name, err)
	}

	return content{Role: roleModel, Parts: []part{functionCallPart(call.Name, args)}}, nil
}

// parseArguments decodes model-emitted tool call arguments. Models
// occasionally produce slightly broken JSON, so a repair pass is attempted
// before giving up.
func parseArguments(arguments string) (map[string]any, error) {
	var args map[string]any
	if err := json.Unmarshal([]byte(arguments), &args); err == nil {
		return args, nil
	}

	repaired, err := jsonrepair.JSONRepair(arguments)
	if err != nil {
		return nil, fmt.Errorf("arguments are not valid JSON: %w", err)
	}
	if err := json.Unmarshal([]byte(repaired), &args); err != nil {
		return nil, fmt.Errorf("arguments are not a JSON object: %w", err)
	}
	return args, nil
}

// convertResponse normalizes a generateContent reply into the canonical
// response shape, with exactly one choice.
//
// Only the first part of the first candidate is inspected: a reply that mixes
// leading text with a trailing function call loses the call. This mirrors
// the behavior the rest of the layer is calibrated against.
func convertResponse(resp generateContentResponse) (*ai.ChatCompletionResponse, error) {
	if len(resp.Candidates) == 0 {
		return nil, errors.New("response has no candidates")
	}
	cand := resp.Candidates[0]
	if cand.Content == nil || len(cand.Content.Parts) == 0 {
		return nil, errors.New("response candidate has no content parts")
	}

	first := cand.Content.Parts[0]
	choice := ai.Choice{
		Message:      ai.Message{Role: ai.RoleAssistant},
		FinishReason: ai.FinishReasonStop,
	}

	if first.FunctionCall != nil {
		args := make(map[string]any, len(first.FunctionCall.Args))
		for key, value := range first.FunctionCall.Args {
			args[key] = value
		}
		encoded, err := json.Marshal(args)
		if err != nil {
			return nil, fmt.Errorf("encoding function call arguments: %w", err)
		}

		choice.Message.ToolCalls = []ai.ToolCall{{
			ID:   toolCallID(first.FunctionCall.Name),
			Type: "function",
			Function: ai.ToolCallFunction{
				Name:      first.FunctionCall.Name,
				Arguments: string(encoded),
			},
		}}
		choice.FinishReason = ai.FinishReasonToolCalls
	} else {
		choice.Message.Content = first.Text
	}

	return &ai.ChatCompletionResponse{Choices: []ai.Choice{choice}}, nil
}

// toolCallID derives a stable identifier from the function name, so repeated
// calls to the same function produce the same id.
func toolCallID(name string) string {
	return "call_" + uuid.NewSHA1(uuid.NameSpaceOID, []byte(name)).String()
}
