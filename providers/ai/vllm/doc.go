// Package vllm implements the ai.Provider interface for a vLLM server's
// OpenAI-compatible HTTP endpoint.
//
// The canonical message schema is already wire-compatible with the endpoint,
// so no translation happens beyond forcing stream:false; requests are POSTed
// to {base}/v1/chat/completions on a configurable base URL (VLLM_API_URL,
// default http://localhost:8000) with a fixed per-request timeout.
//
// This adapter does not interpret tool calls in the reply; it only extracts
// the first choice's message content.
package vllm
