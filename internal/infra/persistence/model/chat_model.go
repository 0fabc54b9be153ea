package model

import (
	"time"

	"github.com/google/uuid"
)

// ChatModel mirrors the 'chats' table; one row per (user, supplier) pair.
type ChatModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_chats_participants"`
	SupplierID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_chats_participants;index:idx_chats_supplier"`
	CreatedAt  time.Time
	UpdatedAt  time.Time `gorm:"index:idx_chats_updated_at"`
}

func (ChatModel) TableName() string {
	return "chats"
}

// MessageModel mirrors the 'messages' table.
type MessageModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ChatID     uuid.UUID `gorm:"type:uuid;not null;index:idx_messages_chat_created,priority:1"`
	SenderType string    `gorm:"type:varchar(20);not null"`
	SenderID   uuid.UUID `gorm:"type:uuid;not null"`
	Content    string    `gorm:"type:text;not null"`
	IsRead     bool      `gorm:"not null;default:false"`
	CreatedAt  time.Time `gorm:"index:idx_messages_chat_created,priority:2"`
}

func (MessageModel) TableName() string {
	return "messages"
}

// All lists every model in dependency order, for AutoMigrate.
func All() []any {
	return []any{
		&UserModel{},
		&SupplierModel{},
		&AddressModel{},
		&StallModel{},
		&ProductModel{},
		&SearchLogModel{},
		&ChatModel{},
		&MessageModel{},
	}
}
