package postgres

import (
	"context"
	"time"

	"feira/internal/domain/entity"
	domainerrors "feira/internal/domain/errors"
	"feira/internal/domain/repository"
	"feira/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type chatRepository struct {
	db *gorm.DB
}

// NewChatRepository returns a gorm-backed ChatRepository.
func NewChatRepository(db *gorm.DB) repository.ChatRepository {
	return &chatRepository{db: db}
}

func (repo *chatRepository) Create(ctx context.Context, chat *entity.Chat) error {
	chatM := fromChatDomain(chat)

	if err := repo.db.WithContext(ctx).Create(chatM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create chat")
	}

	chat.CreatedAt = chatM.CreatedAt
	chat.UpdatedAt = chatM.UpdatedAt

	return nil
}

func (repo *chatRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Chat, error) {
	var chatM model.ChatModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&chatM).Error; err != nil {
		return nil, notFound(err, repository.ErrChatNotFound, "failed to find chat by id")
	}

	return toChatDomain(&chatM), nil
}

func (repo *chatRepository) FindByParticipants(ctx context.Context, userID, supplierID uuid.UUID) (*entity.Chat, error) {
	var chatM model.ChatModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND supplier_id = ?", userID, supplierID).
		First(&chatM).Error
	if err != nil {
		return nil, notFound(err, repository.ErrChatNotFound, "failed to find chat by participants")
	}

	return toChatDomain(&chatM), nil
}

func (repo *chatRepository) ListByParticipant(ctx context.Context, id uuid.UUID) ([]*entity.Chat, error) {
	var rows []*model.ChatModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? OR supplier_id = ?", id, id).
		Order("updated_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list chats")
	}

	chats := make([]*entity.Chat, 0, len(rows))
	for _, row := range rows {
		chats = append(chats, toChatDomain(row))
	}

	return chats, nil
}

// Touch sets updated_at explicitly; gorm would otherwise stamp time.Now.
func (repo *chatRepository) Touch(ctx context.Context, id uuid.UUID, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ChatModel{}).
		Where("id = ?", id).
		UpdateColumn("updated_at", at)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to touch chat")
	}
	if result.RowsAffected == 0 {
		return repository.ErrChatNotFound
	}

	return nil
}

func toChatDomain(data *model.ChatModel) *entity.Chat {
	if data == nil {
		return nil
	}

	return &entity.Chat{
		ID:         data.ID,
		UserID:     data.UserID,
		SupplierID: data.SupplierID,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromChatDomain(data *entity.Chat) *model.ChatModel {
	if data == nil {
		return nil
	}

	return &model.ChatModel{
		ID:         data.ID,
		UserID:     data.UserID,
		SupplierID: data.SupplierID,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
