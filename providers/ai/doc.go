// Package ai defines the canonical chat-completion schema shared by all
// provider adapters: messages, tool calls, the completion response, the
// [Provider] capability interface, and the error types every adapter reports
// through.
//
// The schema follows the OpenAI chat-completions shape (roles, tool_calls,
// choices) so that OpenAI-compatible endpoints can consume it unchanged, while
// providers with a different native representation translate it in their own
// package.
package ai
