package entity

import (
	"time"

	"github.com/google/uuid"
)

// Chat is the private conversation between one user and one supplier.
type Chat struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	SupplierID uuid.UUID
	CreatedAt  time.Time
	UpdatedAt  time.Time // bumped on every new message
}

// HasParticipant reports whether id is either side of the chat.
func (c *Chat) HasParticipant(id uuid.UUID) bool {
	return c.UserID == id || c.SupplierID == id
}

// RoleOf returns the side id plays in the chat.
func (c *Chat) RoleOf(id uuid.UUID) SenderType {
	if c.SupplierID == id {
		return SenderSupplier
	}

	return SenderUser
}

// OtherParty returns the participant that is not id.
func (c *Chat) OtherParty(id uuid.UUID) uuid.UUID {
	if c.UserID == id {
		return c.SupplierID
	}

	return c.UserID
}

// Message is one entry of a chat.
type Message struct {
	ID         uuid.UUID
	ChatID     uuid.UUID
	SenderType SenderType
	SenderID   uuid.UUID
	Content    string
	IsRead     bool
	CreatedAt  time.Time
}

// ChatSummary is a chat as listed for one participant.
type ChatSummary struct {
	Chat            *Chat
	OtherPartyID    uuid.UUID
	Role            SenderType
	LastMessage     string
	LastMessageTime *time.Time
	UnreadCount     int64
}
