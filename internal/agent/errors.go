package agent

import "errors"

// Error kinds from spec §7 that are specific to the conversational agent.
// The agent side is strictly recoverable: both of these produce a
// user-visible apology, never an exception that reaches the transport.
var (
	// ErrAgentToolFail: the search backend failed. Conversation context is
	// not advanced.
	ErrAgentToolFail = errors.New("agent: search backend failed")

	// ErrAgentLLMTimeout: the LLM hint call didn't return in time; the
	// controller proceeds with rule-based handlers only.
	ErrAgentLLMTimeout = errors.New("agent: llm hint timed out")
)
