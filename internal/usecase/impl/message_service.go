package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	deliverycontext "feira/internal/delivery/context"
	"feira/internal/domain/constants"
	"feira/internal/domain/entity"
	domainerrors "feira/internal/domain/errors"
	"feira/internal/domain/repository"
	"feira/internal/domain/service"
	"feira/internal/errors"
	"feira/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const messagePreviewRunes = 80

type messageService struct {
	txManager   repository.TransactionManager
	chatRepo    repository.ChatRepository
	messageRepo repository.MessageRepository
	publisher   service.EventPublisher
	now         func() time.Time
	logger      *slog.Logger
}

// MessageServiceParams holds dependencies for MessageService, injected by Fx.
type MessageServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ChatRepo    repository.ChatRepository
	MessageRepo repository.MessageRepository
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// NewMessageService is the constructor for messageService.
func NewMessageService(params MessageServiceParams) usecase.MessageUsecase {
	return &messageService{
		txManager:   params.TxManager,
		chatRepo:    params.ChatRepo,
		messageRepo: params.MessageRepo,
		publisher:   params.Publisher,
		now:         time.Now,
		logger:      params.Logger,
	}
}

func (srv *messageService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetOrCreateChat returns the pair's chat, creating it on first contact.
func (srv *messageService) GetOrCreateChat(ctx context.Context, userID, supplierID uuid.UUID) (*entity.Chat, error) {
	if userID == supplierID {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "a chat needs two different participants")
	}

	chat, err := srv.chatRepo.FindByParticipants(ctx, userID, supplierID)
	if err == nil {
		return chat, nil
	}
	if !errors.Is(err, repository.ErrChatNotFound) {
		return nil, errors.Wrap(err, "failed to find chat")
	}

	now := srv.now()
	chat = &entity.Chat{
		ID:         uuid.New(),
		UserID:     userID,
		SupplierID: supplierID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := srv.chatRepo.Create(ctx, chat); err != nil {
		// Lost a race with a concurrent first message; the other writer's chat wins.
		if existing, findErr := srv.chatRepo.FindByParticipants(ctx, userID, supplierID); findErr == nil {
			return existing, nil
		}

		return nil, errors.Wrap(err, "failed to create chat")
	}

	srv.log(ctx).Info("Chat created",
		slog.String("chatID", chat.ID.String()),
		slog.String("userID", userID.String()),
		slog.String("supplierID", supplierID.String()),
	)

	return chat, nil
}

// SendMessage appends to the chat and bumps its activity time. Read state is
// never touched here.
func (srv *messageService) SendMessage(ctx context.Context, input usecase.SendMessageInput) (*entity.Message, error) {
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "message content is empty")
	}

	var (
		message *entity.Message
		chat    *entity.Chat
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		chatRepo := repoFactory.ChatRepo()

		found, err := chatRepo.FindByID(ctx, input.ChatID)
		if err != nil {
			return errors.Wrap(err, "failed to find chat")
		}
		if !found.HasParticipant(input.SenderID) {
			return errors.Wrap(domainerrors.ErrForbidden, "sender is not part of the chat")
		}
		chat = found

		senderType := input.SenderType
		if senderType == "" {
			senderType = chat.RoleOf(input.SenderID)
		}
		if !senderType.IsValid() {
			return errors.Wrapf(domainerrors.ErrValidationFailed, "unknown sender type %q", senderType)
		}

		message = &entity.Message{
			ID:         uuid.New(),
			ChatID:     chat.ID,
			SenderType: senderType,
			SenderID:   input.SenderID,
			Content:    content,
			CreatedAt:  srv.now(),
		}
		if err := repoFactory.MessageRepo().Create(ctx, message); err != nil {
			return errors.Wrap(err, "failed to create message")
		}

		if err := chatRepo.Touch(ctx, chat.ID, message.CreatedAt); err != nil {
			return errors.Wrap(err, "failed to touch chat")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to send message")
	}

	srv.publishMessageSent(ctx, chat, message)

	return message, nil
}

func (srv *messageService) GetChatMessages(ctx context.Context, chatID, callerID uuid.UUID) ([]*entity.Message, error) {
	if _, err := srv.participantChat(ctx, chatID, callerID); err != nil {
		return nil, err
	}

	messages, err := srv.messageRepo.ListByChat(ctx, chatID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list messages")
	}

	return messages, nil
}

// ListChats summarizes every chat of the participant, most recent first.
func (srv *messageService) ListChats(ctx context.Context, participantID uuid.UUID) ([]*entity.ChatSummary, error) {
	chats, err := srv.chatRepo.ListByParticipant(ctx, participantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list chats")
	}

	summaries := make([]*entity.ChatSummary, 0, len(chats))
	for _, chat := range chats {
		summary, err := srv.summarize(ctx, chat, participantID)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}

	return summaries, nil
}

func (srv *messageService) summarize(ctx context.Context, chat *entity.Chat, participantID uuid.UUID) (*entity.ChatSummary, error) {
	summary := &entity.ChatSummary{
		Chat:         chat,
		OtherPartyID: chat.OtherParty(participantID),
		Role:         chat.RoleOf(participantID),
		LastMessage:  constants.DefaultLastMessage,
	}

	last, err := srv.messageRepo.Last(ctx, chat.ID)
	switch {
	case errors.Is(err, repository.ErrMessageNotFound):
	case err != nil:
		return nil, errors.Wrap(err, "failed to load last message")
	default:
		summary.LastMessage = last.Content
		summary.LastMessageTime = &last.CreatedAt
	}

	unread, err := srv.messageRepo.CountUnread(ctx, chat.ID, participantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count unread messages")
	}
	summary.UnreadCount = unread

	return summary, nil
}

func (srv *messageService) MarkRead(ctx context.Context, chatID, readerID uuid.UUID) (int64, error) {
	if _, err := srv.participantChat(ctx, chatID, readerID); err != nil {
		return 0, err
	}

	updated, err := srv.messageRepo.MarkRead(ctx, chatID, readerID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to mark messages as read")
	}

	srv.log(ctx).Debug("Messages marked as read",
		slog.String("chatID", chatID.String()),
		slog.Int64("count", updated),
	)

	return updated, nil
}

// participantChat loads the chat and checks that id takes part in it.
func (srv *messageService) participantChat(ctx context.Context, chatID, id uuid.UUID) (*entity.Chat, error) {
	chat, err := srv.chatRepo.FindByID(ctx, chatID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find chat")
	}

	if !chat.HasParticipant(id) {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "caller is not part of the chat")
	}

	return chat, nil
}

func (srv *messageService) publishMessageSent(ctx context.Context, chat *entity.Chat, message *entity.Message) {
	if srv.publisher == nil {
		return
	}

	event := &service.MessageSentEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		MessageID:   message.ID.String(),
		ChatID:      chat.ID.String(),
		SenderType:  string(message.SenderType),
		SenderID:    message.SenderID.String(),
		RecipientID: chat.OtherParty(message.SenderID).String(),
		Preview:     preview(message.Content),
		SentAt:      message.CreatedAt,
	}

	if err := srv.publisher.PublishMessageSent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish message event",
			slog.String("messageID", event.MessageID),
			slog.Any("error", err),
		)
	}
}

func preview(content string) string {
	if utf8.RuneCountInString(content) <= messagePreviewRunes {
		return content
	}

	runes := []rune(content)

	return string(runes[:messagePreviewRunes]) + "…"
}
