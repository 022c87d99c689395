package ai

import "context"

// Turn is one prior message already normalized to the provider's role
// vocabulary ("user" or "model").
type Turn struct {
	Role string
	Text string
}

const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Provider is a hosted chat-completion service: a system instruction
// seeds the session, the normalized history replays the conversation and
// the new message becomes the next user turn. Implementations return the
// generated text for exactly one completion — no streaming, no retries.
type Provider interface {
	Generate(ctx context.Context, system string, history []Turn, message string) (string, error)
}
