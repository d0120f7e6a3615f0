package domain

import "strings"

// Chat roles accepted on the wire.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// ChatMessage is the provider-agnostic chat message shape used by the handler
// and LLM integrations.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// LastUserMessage returns the content of the most recent user message, or ""
// when the history holds none.
func LastUserMessage(messages []ChatMessage) string {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == RoleUser {
			return messages[i].Content
		}
	}
	return ""
}

// Source identifies which path produced a chat reply.
type Source string

const (
	// SourceRules is a reply from a matched rule (repair table, VIN, direct
	// questions, booking dialogue, shortcuts).
	SourceRules Source = "rules"
	// SourceLLM is a reply generated by the hosted model.
	SourceLLM Source = "llm"
	// SourceFallback is the canned keyword reply used when the model was not
	// consulted or failed.
	SourceFallback Source = "fallback"
)

// DegradedReason explains why a fallback reply was served.
type DegradedReason string

const (
	ReasonNone                DegradedReason = ""
	ReasonAPIKeyNotConfigured DegradedReason = "api_key_not_configured"
	ReasonAPIError            DegradedReason = "api_error"
)

// Outcome is the result of one chat turn.
type Outcome struct {
	Message   string
	Source    Source
	Reason    DegradedReason
	SessionID string
}

// UsingFallback reports whether the canned keyword responder answered.
func (o Outcome) UsingFallback() bool {
	return o.Source == SourceFallback
}

// Turns prepares a history for providers that require alternating
// user/assistant turns starting with the user. System and blank messages are
// dropped, leading assistant messages are skipped and consecutive messages
// from the same role are merged.
func Turns(history []ChatMessage) []ChatMessage {
	out := make([]ChatMessage, 0, len(history))
	for _, m := range history {
		if m.Role != RoleUser && m.Role != RoleAssistant {
			continue
		}
		content := strings.TrimSpace(m.Content)
		if content == "" {
			continue
		}
		if len(out) == 0 && m.Role != RoleUser {
			continue
		}
		if n := len(out); n > 0 && out[n-1].Role == m.Role {
			out[n-1].Content += "\n\n" + content
			continue
		}
		out = append(out, ChatMessage{Role: m.Role, Content: content})
	}
	return out
}
