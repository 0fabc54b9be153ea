package repository

import (
	"context"
	"time"

	"feira/internal/domain/entity"

	"github.com/google/uuid"
)

// ChatRepository persists buyer/vendor conversations.
type ChatRepository interface {
	Create(ctx context.Context, chat *entity.Chat) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Chat, error)
	FindByParticipants(ctx context.Context, userID, supplierID uuid.UUID) (*entity.Chat, error)

	// ListByParticipant returns chats where id is either side, most
	// recently active first.
	ListByParticipant(ctx context.Context, id uuid.UUID) ([]*entity.Chat, error)
	Touch(ctx context.Context, id uuid.UUID, at time.Time) error
}

// MessageRepository persists chat messages.
type MessageRepository interface {
	Create(ctx context.Context, message *entity.Message) error

	// ListByChat returns messages oldest first.
	ListByChat(ctx context.Context, chatID uuid.UUID) ([]*entity.Message, error)

	// Last returns ErrMessageNotFound for an empty chat.
	Last(ctx context.Context, chatID uuid.UUID) (*entity.Message, error)

	// CountUnread counts messages not sent by readerID and not yet read.
	CountUnread(ctx context.Context, chatID, readerID uuid.UUID) (int64, error)

	// MarkRead flags as read every message not sent by readerID.
	MarkRead(ctx context.Context, chatID, readerID uuid.UUID) (int64, error)
}
