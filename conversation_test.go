package xanalyzer

import "testing"

func TestNewConversation(t *testing.T) {
	c := NewConversation()

	if got := c.Len(); got != 0 {
		t.Errorf("Len() = %d, want 0 for a fresh conversation", got)
	}
	if got := len(c.History()); got != 0 {
		t.Errorf("History() holds %d messages, want 0", got)
	}

	msgs := c.Messages()
	if len(msgs) != 1 {
		t.Fatalf("Messages() holds %d messages, want the preamble alone", len(msgs))
	}
	if msgs[0].Role != System {
		t.Errorf("Messages()[0].Role = %s, want system", msgs[0].Role)
	}
	if msgs[0].Content != Preamble {
		t.Errorf("Messages()[0].Content = %.40q, want the preamble", msgs[0].Content)
	}
}

func TestConversation_Append(t *testing.T) {
	c := NewConversation()
	c.Append(Message{Role: User, Content: "I earn $3000 a month."})
	c.Append(Message{Role: Assistant, Content: "A solid base to budget from."})
	c.Append(Message{Role: User, Content: "How much should I save?"})

	if got := c.Len(); got != 3 {
		t.Errorf("Len() = %d, want 3", got)
	}

	history := c.History()
	expected := []Message{
		{Role: User, Content: "I earn $3000 a month."},
		{Role: Assistant, Content: "A solid base to budget from."},
		{Role: User, Content: "How much should I save?"},
	}
	if len(history) != len(expected) {
		t.Fatalf("History() holds %d messages, want %d", len(history), len(expected))
	}
	for i := range expected {
		if history[i] != expected[i] {
			t.Errorf("History()[%d] = %v, want %v", i, history[i], expected[i])
		}
	}

	// Messages carries the preamble in front of the same exchange.
	msgs := c.Messages()
	if len(msgs) != 4 {
		t.Fatalf("Messages() holds %d messages, want 4", len(msgs))
	}
	if msgs[0].Role != System {
		t.Errorf("Messages()[0].Role = %s, want system", msgs[0].Role)
	}
}

func TestConversation_Reset(t *testing.T) {
	c := NewConversation()
	c.Append(Message{Role: User, Content: "hello"})
	c.Append(Message{Role: Assistant, Content: "hi"})
	c.Reset()

	if got := c.Len(); got != 0 {
		t.Errorf("Len() = %d after Reset, want 0", got)
	}
	msgs := c.Messages()
	if len(msgs) != 1 || msgs[0].Role != System || msgs[0].Content != Preamble {
		t.Errorf("Messages() after Reset = %v, want the preamble alone", msgs)
	}

	// The conversation keeps working after a reset.
	c.Append(Message{Role: User, Content: "fresh start"})
	if got := c.Len(); got != 1 {
		t.Errorf("Len() = %d after Reset and Append, want 1", got)
	}
}

func TestConversation_copies(t *testing.T) {
	c := NewConversation()
	c.Append(Message{Role: User, Content: "original"})

	// Mutating a returned slice must not reach the conversation.
	c.Messages()[1] = Message{Role: User, Content: "tampered"}
	c.History()[0] = Message{Role: User, Content: "tampered"}

	if got := c.History()[0].Content; got != "original" {
		t.Errorf("History()[0].Content = %q, want %q", got, "original")
	}
}
