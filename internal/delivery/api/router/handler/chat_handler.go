package handler

import (
	"log/slog"
	"net/http"

	"feira/internal/delivery/api/middleware"
	"feira/internal/delivery/api/response"
	"feira/internal/domain/entity"
	domainerrors "feira/internal/domain/errors"
	"feira/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ChatHandlerParams holds dependencies for ChatHandler, injected by Fx.
type ChatHandlerParams struct {
	fx.In

	MessageUC usecase.MessageUsecase
	Logger    *slog.Logger
}

// ChatHandler serves /api/v1/chats. Every route runs behind the auth
// middleware and acts on behalf of the token subject.
type ChatHandler struct {
	messageUC usecase.MessageUsecase
	logger    *slog.Logger
}

func NewChatHandler(params ChatHandlerParams) *ChatHandler {
	return &ChatHandler{
		messageUC: params.MessageUC,
		logger:    params.Logger,
	}
}

// OpenChatRequest names the other side of the chat. Suppliers send
// user_id, everyone else sends supplier_id.
type OpenChatRequest struct {
	UserID     *uuid.UUID `json:"user_id"`
	SupplierID *uuid.UUID `json:"supplier_id"`
}

type SendMessageRequest struct {
	Content string `json:"content" validate:"required,max=2000"`
}

type MarkReadResponse struct {
	Updated int64 `json:"updated"`
}

type caller struct {
	id       uuid.UUID
	userType string
}

func currentCaller(c echo.Context) (caller, bool) {
	id, ok := middleware.GetUserID(c)
	if !ok {
		return caller{}, false
	}
	userType, _ := middleware.GetUserType(c)

	return caller{id: id, userType: userType}, true
}

func (cl caller) isSupplier() bool {
	return cl.userType == entity.UserTypeSupplier.String()
}

func unauthenticated(c echo.Context) error {
	return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), domainerrors.ErrUnauthorized.Message())
}

// OpenChat returns the chat between the caller and the other party,
// creating it on first contact.
func (h *ChatHandler) OpenChat(c echo.Context) error {
	cl, ok := currentCaller(c)
	if !ok {
		return unauthenticated(c)
	}

	var req OpenChatRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	userID, supplierID := cl.id, req.SupplierID
	if cl.isSupplier() {
		userID, supplierID = uuid.Nil, &cl.id
		if req.UserID != nil {
			userID = *req.UserID
		}
	}
	if userID == uuid.Nil || supplierID == nil || *supplierID == uuid.Nil {
		return response.BadRequest(c, domainerrors.ErrValidationFailed.ErrorCode(), "Informe o outro participante da conversa.")
	}

	chat, err := h.messageUC.GetOrCreateChat(c.Request().Context(), userID, *supplierID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toChatResponse(chat))
}

func (h *ChatHandler) ListChats(c echo.Context) error {
	cl, ok := currentCaller(c)
	if !ok {
		return unauthenticated(c)
	}

	chats, err := h.messageUC.ListChats(c.Request().Context(), cl.id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, mapAll(chats, toChatSummaryResponse))
}

func (h *ChatHandler) GetMessages(c echo.Context) error {
	cl, ok := currentCaller(c)
	if !ok {
		return unauthenticated(c)
	}
	chatID, ok := pathID(c, "id")
	if !ok {
		return invalidID(c)
	}

	messages, err := h.messageUC.GetChatMessages(c.Request().Context(), chatID, cl.id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, mapAll(messages, toMessageResponse))
}

func (h *ChatHandler) SendMessage(c echo.Context) error {
	cl, ok := currentCaller(c)
	if !ok {
		return unauthenticated(c)
	}
	chatID, ok := pathID(c, "id")
	if !ok {
		return invalidID(c)
	}

	var req SendMessageRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	message, err := h.messageUC.SendMessage(c.Request().Context(), usecase.SendMessageInput{
		ChatID:   chatID,
		SenderID: cl.id,
		Content:  req.Content,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toMessageResponse(message))
}

func (h *ChatHandler) MarkRead(c echo.Context) error {
	cl, ok := currentCaller(c)
	if !ok {
		return unauthenticated(c)
	}
	chatID, ok := pathID(c, "id")
	if !ok {
		return invalidID(c)
	}

	updated, err := h.messageUC.MarkRead(c.Request().Context(), chatID, cl.id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, MarkReadResponse{Updated: updated})
}
