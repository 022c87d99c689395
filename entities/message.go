package entities

// Turn roles as seen from the guest client.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatTurn is one prior message of the conversation. Turns live only in
// the guest's page session; the server sees them as request context and
// never stores them.
type ChatTurn struct {
	ID   string `json:"id,omitempty"`
	Role string `json:"role"`
	Text string `json:"content"`
}

// ChatResult is the uniform chat envelope. On failure Response carries a
// human-readable message, never an empty string.
type ChatResult struct {
	Success  bool   `json:"success"`
	Response string `json:"response"`
}
