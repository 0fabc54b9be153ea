package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims are the custom JWT claims of an access token.
type Claims struct {
	UserID   uuid.UUID
	UserType string
	jwt.RegisteredClaims
}

// TokenService issues and validates access tokens.
type TokenService interface {
	GenerateAccessToken(userID uuid.UUID, userType string) (token string, expiresAt time.Time, err error)
	ValidateToken(tokenString string) (*Claims, error)
}
