// Package messaging delivers topic-addressed push notifications to the
// companion apps and the thing device.
package messaging

import "context"

// Notification is the optional human-visible part of a push message.
type Notification struct {
	Title       string `json:"title"`
	Body        string `json:"body"`
	ClickAction string `json:"click_action,omitempty"`
}

// Message is a topic push payload. Data values must already be strings;
// numeric and boolean fields are stringified by the caller before dispatch.
type Message struct {
	Notification *Notification     `json:"notification,omitempty"`
	Data         map[string]string `json:"data,omitempty"`
}

// Messenger fans a message out to every subscriber of a topic. Exactly one
// dispatch attempt is made per call; delivery is best-effort and the returned
// message ID is only used for logging.
type Messenger interface {
	SendToTopic(ctx context.Context, topic string, msg Message) (string, error)
}
