package xanalyzer

import "fmt"

// Role identifies the author of a chat message.
type Role int

const (
	// System marks the hidden preamble message that seeds a conversation.
	System Role = iota
	// User marks a message typed by the user.
	User
	// Assistant marks a reply produced by the model.
	Assistant
)

func (r Role) String() string {
	switch r {
	case System:
		return "system"
	case User:
		return "user"
	case Assistant:
		return "assistant"
	default:
		return "unknown"
	}
}

// ParseRole parses a string into a Role.
func ParseRole(s string) (Role, error) {
	switch s {
	case "system":
		return System, nil
	case "user":
		return User, nil
	case "assistant":
		return Assistant, nil
	default:
		return 0, fmt.Errorf("unknown role: %q", s)
	}
}

// Message is a single utterance in a conversation.
type Message struct {
	Role    Role
	Content string
}
