package service

import (
	"context"
	"time"
)

// Event types carried in the "event_type" message attribute.
const (
	EventTypeMessageSent     = "message.sent"
	EventTypeSearchPerformed = "search.performed"
)

// MessageSentEvent lets a downstream consumer notify the recipient.
type MessageSentEvent struct {
	RequestID   string    `json:"request_id,omitempty"`
	MessageID   string    `json:"message_id"`
	ChatID      string    `json:"chat_id"`
	SenderType  string    `json:"sender_type"`
	SenderID    string    `json:"sender_id"`
	RecipientID string    `json:"recipient_id"`
	Preview     string    `json:"preview"`
	SentAt      time.Time `json:"sent_at"`
}

// SearchPerformedEvent mirrors a search log row for analytics consumers.
type SearchPerformedEvent struct {
	RequestID    string    `json:"request_id,omitempty"`
	Term         string    `json:"term"`
	EntityType   string    `json:"entity_type"`
	ProductCount int       `json:"product_count"`
	StallCount   int       `json:"stall_count"`
	Latitude     *float64  `json:"latitude,omitempty"`
	Longitude    *float64  `json:"longitude,omitempty"`
	SearchedAt   time.Time `json:"searched_at"`
}

// EventPublisher publishes domain events to a message queue. Delivery is
// best effort: callers log failures and carry on.
type EventPublisher interface {
	PublishMessageSent(ctx context.Context, event *MessageSentEvent) error
	PublishSearchPerformed(ctx context.Context, event *SearchPerformedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
