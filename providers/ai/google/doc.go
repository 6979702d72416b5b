// Package google implements the ai.Provider interface for Google's
// generative language models via their structured-content protocol
// (role + typed parts).
//
// Two authentication modes are supported, selected at construction time:
//
//   - Direct API key (Gemini developer API): requires an API key from the
//     config or the GEMINI_API_KEY environment variable.
//   - Vertex AI (managed platform): requires a project id (GOOGLE_PROJECT_ID)
//     and a region (GOOGLE_REGION, default us-central1), and authenticates
//     with an OAuth2 token source (Application Default Credentials unless a
//     token source is supplied explicitly).
//
// Canonical messages are converted into Google content blocks before sending
// and the structured reply is converted back, distinguishing plain text
// replies from tool invocations.
package google
