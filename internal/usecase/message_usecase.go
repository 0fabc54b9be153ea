package usecase

import (
	"context"

	"feira/internal/domain/entity"

	"github.com/google/uuid"
)

// SendMessageInput appends a message to a chat. An empty SenderType is
// taken from the sender's side of the chat.
type SendMessageInput struct {
	ChatID     uuid.UUID
	SenderType entity.SenderType
	SenderID   uuid.UUID
	Content    string
}

// MessageUsecase manages buyer/vendor chats.
type MessageUsecase interface {
	GetOrCreateChat(ctx context.Context, userID, supplierID uuid.UUID) (*entity.Chat, error)
	SendMessage(ctx context.Context, input SendMessageInput) (*entity.Message, error)
	// GetChatMessages returns the chat's messages oldest first. The caller
	// must be a participant.
	GetChatMessages(ctx context.Context, chatID, callerID uuid.UUID) ([]*entity.Message, error)
	ListChats(ctx context.Context, participantID uuid.UUID) ([]*entity.ChatSummary, error)
	// MarkRead flags the messages the reader received as read and returns
	// how many changed.
	MarkRead(ctx context.Context, chatID, readerID uuid.UUID) (int64, error)
}
