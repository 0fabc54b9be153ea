package handler

import (
	"time"

	"feira/internal/domain/entity"
	"feira/internal/usecase"

	"github.com/google/uuid"
)

// UserResponse is the public shape of a user. The password hash never leaves
// the service.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SupplierResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	City        string    `json:"city"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type AddressResponse struct {
	ID         uuid.UUID `json:"id"`
	Street     string    `json:"street"`
	Number     string    `json:"number"`
	Complement *string   `json:"complement"`
	District   string    `json:"district"`
	City       string    `json:"city"`
	State      string    `json:"state"`
	ZipCode    string    `json:"zip_code"`
	Latitude   *float64  `json:"latitude"`
	Longitude  *float64  `json:"longitude"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type StallResponse struct {
	ID             uuid.UUID        `json:"id"`
	SupplierID     uuid.UUID        `json:"supplier_id"`
	AddressID      uuid.UUID        `json:"address_id"`
	Name           string           `json:"name"`
	Description    *string          `json:"description"`
	OperatingHours *string          `json:"operating_hours"`
	Address        *AddressResponse `json:"address,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

type ProductResponse struct {
	ID        uuid.UUID `json:"id"`
	StallID   uuid.UUID `json:"stall_id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Image     *string   `json:"image"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ChatResponse struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	SupplierID uuid.UUID `json:"supplier_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type MessageResponse struct {
	ID         uuid.UUID `json:"id"`
	ChatID     uuid.UUID `json:"chat_id"`
	SenderType string    `json:"sender_type"`
	SenderID   uuid.UUID `json:"sender_id"`
	Content    string    `json:"content"`
	IsRead     bool      `json:"is_read"`
	CreatedAt  time.Time `json:"created_at"`
}

// ChatSummaryResponse is one row of the caller's inbox.
type ChatSummaryResponse struct {
	ChatID          uuid.UUID  `json:"chat_id"`
	OtherPartyID    uuid.UUID  `json:"other_party_id"`
	Role            string     `json:"role"`
	LastMessage     string     `json:"last_message"`
	LastMessageTime *time.Time `json:"last_message_time"`
	UnreadCount     int64      `json:"unread_count"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type SearchResponse struct {
	Query    string             `json:"query"`
	Products []*ProductResponse `json:"products"`
	Stalls   []*StallResponse   `json:"stalls"`
}

type TermCountResponse struct {
	Term  string `json:"term"`
	Count int64  `json:"count"`
}

type SearchLogResponse struct {
	ID        uuid.UUID `json:"id"`
	Term      string    `json:"term"`
	Latitude  *float64  `json:"latitude"`
	Longitude *float64  `json:"longitude"`
	CreatedAt time.Time `json:"created_at"`
}

type SearchReportResponse struct {
	TotalSearches int64                `json:"total_searches"`
	TopTerms      []TermCountResponse  `json:"top_terms"`
	Recent        []*SearchLogResponse `json:"recent"`
}

type LoginResponse struct {
	AccessToken string        `json:"access_token"`
	TokenType   string        `json:"token_type"`
	ExpiresAt   time.Time     `json:"expires_at"`
	User        *UserResponse `json:"user"`
}

func toUserResponse(u *entity.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Type:      u.Type.String(),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toSupplierResponse(s *entity.Supplier) *SupplierResponse {
	return &SupplierResponse{
		ID:          s.ID,
		Name:        s.Name,
		Email:       s.Email,
		City:        s.City,
		Description: s.Description,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func toAddressResponse(a *entity.Address) *AddressResponse {
	if a == nil {
		return nil
	}

	return &AddressResponse{
		ID:         a.ID,
		Street:     a.Street,
		Number:     a.Number,
		Complement: a.Complement,
		District:   a.District,
		City:       a.City,
		State:      a.State,
		ZipCode:    a.ZipCode,
		Latitude:   a.Latitude,
		Longitude:  a.Longitude,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

func toStallResponse(s *entity.Stall) *StallResponse {
	return &StallResponse{
		ID:             s.ID,
		SupplierID:     s.SupplierID,
		AddressID:      s.AddressID,
		Name:           s.Name,
		Description:    s.Description,
		OperatingHours: s.OperatingHours,
		Address:        toAddressResponse(s.Address),
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

func toProductResponse(p *entity.Product) *ProductResponse {
	return &ProductResponse{
		ID:        p.ID,
		StallID:   p.StallID,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func toChatResponse(c *entity.Chat) *ChatResponse {
	return &ChatResponse{
		ID:         c.ID,
		UserID:     c.UserID,
		SupplierID: c.SupplierID,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

func toMessageResponse(m *entity.Message) *MessageResponse {
	return &MessageResponse{
		ID:         m.ID,
		ChatID:     m.ChatID,
		SenderType: string(m.SenderType),
		SenderID:   m.SenderID,
		Content:    m.Content,
		IsRead:     m.IsRead,
		CreatedAt:  m.CreatedAt,
	}
}

func toChatSummaryResponse(s *entity.ChatSummary) *ChatSummaryResponse {
	return &ChatSummaryResponse{
		ChatID:          s.Chat.ID,
		OtherPartyID:    s.OtherPartyID,
		Role:            string(s.Role),
		LastMessage:     s.LastMessage,
		LastMessageTime: s.LastMessageTime,
		UnreadCount:     s.UnreadCount,
		UpdatedAt:       s.Chat.UpdatedAt,
	}
}

func toSearchResponse(r *usecase.SearchResult) *SearchResponse {
	return &SearchResponse{
		Query:    r.Query,
		Products: mapAll(r.Products, toProductResponse),
		Stalls:   mapAll(r.Stalls, toStallResponse),
	}
}

func toSearchReportResponse(r *usecase.SearchReport) *SearchReportResponse {
	terms := make([]TermCountResponse, 0, len(r.TopTerms))
	for _, t := range r.TopTerms {
		terms = append(terms, TermCountResponse{Term: t.Term, Count: t.Count})
	}

	return &SearchReportResponse{
		TotalSearches: r.TotalSearches,
		TopTerms:      terms,
		Recent: mapAll(r.Recent, func(e *entity.SearchLogEntry) *SearchLogResponse {
			return &SearchLogResponse{
				ID:        e.ID,
				Term:      e.Term,
				Latitude:  e.Latitude,
				Longitude: e.Longitude,
				CreatedAt: e.CreatedAt,
			}
		}),
	}
}

// mapAll never returns nil, so empty lists encode as [].
func mapAll[S, D any](items []S, fn func(S) D) []D {
	out := make([]D, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}

	return out
}
