package postgres

import (
	"context"

	"feira/internal/domain/entity"
	domainerrors "feira/internal/domain/errors"
	"feira/internal/domain/repository"
	"feira/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository returns a gorm-backed MessageRepository.
func NewMessageRepository(db *gorm.DB) repository.MessageRepository {
	return &messageRepository{db: db}
}

func (repo *messageRepository) Create(ctx context.Context, message *entity.Message) error {
	messageM := fromMessageDomain(message)

	if err := repo.db.WithContext(ctx).Create(messageM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrChatNotFound.WrapMessage("message chat does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create message")
	}

	message.CreatedAt = messageM.CreatedAt

	return nil
}

func (repo *messageRepository) ListByChat(ctx context.Context, chatID uuid.UUID) ([]*entity.Message, error) {
	var rows []*model.MessageModel
	err := repo.db.WithContext(ctx).
		Where("chat_id = ?", chatID).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list messages")
	}

	messages := make([]*entity.Message, 0, len(rows))
	for _, row := range rows {
		messages = append(messages, toMessageDomain(row))
	}

	return messages, nil
}

func (repo *messageRepository) Last(ctx context.Context, chatID uuid.UUID) (*entity.Message, error) {
	var messageM model.MessageModel
	err := repo.db.WithContext(ctx).
		Where("chat_id = ?", chatID).
		Order("created_at DESC").
		First(&messageM).Error
	if err != nil {
		return nil, notFound(err, repository.ErrMessageNotFound, "failed to find last message")
	}

	return toMessageDomain(&messageM), nil
}

func (repo *messageRepository) CountUnread(ctx context.Context, chatID, readerID uuid.UUID) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.MessageModel{}).
		Where("chat_id = ? AND sender_id <> ? AND is_read = ?", chatID, readerID, false).
		Count(&count).Error
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count unread messages")
	}

	return count, nil
}

func (repo *messageRepository) MarkRead(ctx context.Context, chatID, readerID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.MessageModel{}).
		Where("chat_id = ? AND sender_id <> ? AND is_read = ?", chatID, readerID, false).
		UpdateColumn("is_read", true)
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark messages as read")
	}

	return result.RowsAffected, nil
}

func toMessageDomain(data *model.MessageModel) *entity.Message {
	if data == nil {
		return nil
	}

	return &entity.Message{
		ID:         data.ID,
		ChatID:     data.ChatID,
		SenderType: entity.SenderType(data.SenderType),
		SenderID:   data.SenderID,
		Content:    data.Content,
		IsRead:     data.IsRead,
		CreatedAt:  data.CreatedAt,
	}
}

func fromMessageDomain(data *entity.Message) *model.MessageModel {
	if data == nil {
		return nil
	}

	return &model.MessageModel{
		ID:         data.ID,
		ChatID:     data.ChatID,
		SenderType: string(data.SenderType),
		SenderID:   data.SenderID,
		Content:    data.Content,
		IsRead:     data.IsRead,
		CreatedAt:  data.CreatedAt,
	}
}
