// Package line is a thin client for the LINE Messaging API: webhook payload
// types, signature verification and the reply endpoint. Conversation logic
// lives elsewhere; this package only moves messages.
package line

// WebhookRequest is the body of a webhook POST from the platform.
type WebhookRequest struct {
	Destination string  `json:"destination"`
	Events      []Event `json:"events"`
}

// Event is one webhook event. Only message events carry a Message.
type Event struct {
	Type       string  `json:"type"`
	ReplyToken string  `json:"replyToken"`
	Source     Source  `json:"source"`
	Message    Message `json:"message"`
}

// Source identifies the sender.
type Source struct {
	Type   string `json:"type"`
	UserID string `json:"userId"`
}

// Message is the message part of a message event.
type Message struct {
	Type string `json:"type"`
	ID   string `json:"id"`
	Text string `json:"text"`
}

// IsTextMessage reports whether the event is a text message we can handle.
func (e Event) IsTextMessage() bool {
	return e.Type == "message" && e.Message.Type == "text"
}
