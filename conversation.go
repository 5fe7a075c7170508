package xanalyzer

import "slices"

// Preamble is the system instruction seeding every conversation. It sets the
// assistant persona and the JSON payload contract used for charts.
const Preamble = `You are a helpful financial assistant. Provide advice on budgeting, saving, investing, and personal finance.
When users provide financial data (like expenses, income, budgets, investments), respond with both advice AND a JSON object
for visualization. Format: {"chart_type": "pie|bar|line", "title": "Chart Title", "data": {"labels": [], "values": []}}
Always remind users to consult with licensed financial advisors for important decisions.`

// Conversation represents the message history of a chat session.
//
// In a Conversation messages are always in insertion order, and the first
// message is always the system preamble.
type Conversation struct {
	messages []Message
}

// NewConversation creates a conversation holding only the system preamble.
func NewConversation() *Conversation {
	return &Conversation{
		messages: []Message{{Role: System, Content: Preamble}},
	}
}

// Append adds a message at the end of the conversation.
func (c *Conversation) Append(m Message) {
	c.messages = append(c.messages, m)
}

// Messages returns a copy of all messages in order, preamble included.
// This is the exact payload a completion request carries.
func (c *Conversation) Messages() []Message {
	return slices.Clone(c.messages)
}

// History returns a copy of the visible messages, excluding the preamble.
func (c *Conversation) History() []Message {
	return slices.Clone(c.messages[1:])
}

// Len returns the number of visible messages. The preamble is not counted.
func (c *Conversation) Len() int { return len(c.messages) - 1 }

// Reset truncates the conversation back to the preamble alone.
func (c *Conversation) Reset() {
	c.messages = c.messages[:1]
}
