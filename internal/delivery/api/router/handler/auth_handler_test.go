package handler

import (
	"net/http"
	"testing"
	"time"

	"feira/internal/domain/entity"
	domainerrors "feira/internal/domain/errors"
	"feira/internal/errors"
	mockUC "feira/internal/mocks/usecase"
	"feira/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthHandler(t *testing.T) (*AuthHandler, *mockUC.MockAuthUsecase) {
	authUC := mockUC.NewMockAuthUsecase(t)

	return &AuthHandler{authUC: authUC, logger: newDiscardLogger()}, authUC
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		h, authUC := newAuthHandler(t)
		expiresAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		authUC.EXPECT().
			Login(mock.Anything, usecase.LoginInput{Email: "ana@feira.br", Password: "segredo"}).
			Return(&usecase.LoginOutput{
				AccessToken: "token",
				ExpiresAt:   expiresAt,
				User:        &entity.User{ID: uuid.New(), Email: "ana@feira.br", PasswordHash: "$2a$10$hash", Type: entity.UserTypeSupplier},
			}, nil)

		c, rec := newJSONContext(http.MethodPost, "/api/v1/auth/login", `{"email":"ana@feira.br","password":"segredo"}`)

		require.NoError(t, h.Login(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, rec.Body.String(), "hash")

		out := decodeData[LoginResponse](t, rec)
		assert.Equal(t, "token", out.AccessToken)
		assert.Equal(t, "Bearer", out.TokenType)
		assert.True(t, out.ExpiresAt.Equal(expiresAt))
		require.NotNil(t, out.User)
		assert.Equal(t, "supplier", out.User.Type)
	})

	errorTests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{name: "unknown email", err: domainerrors.ErrEmailNotFound, wantCode: http.StatusNotFound, wantBody: "EMAIL_NOT_FOUND"},
		{name: "wrong password", err: domainerrors.ErrInvalidCredentials, wantCode: http.StatusUnauthorized, wantBody: "INVALID_CREDENTIALS"},
	}
	for _, tt := range errorTests {
		t.Run(tt.name, func(t *testing.T) {
			h, authUC := newAuthHandler(t)
			authUC.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, errors.Wrap(tt.err, "login failed"))

			c, rec := newJSONContext(http.MethodPost, "/api/v1/auth/login", `{"email":"ana@feira.br","password":"errada"}`)

			require.NoError(t, h.Login(c))
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantBody, decodeEnvelope(t, rec).Error.Code)
		})
	}

	t.Run("missing password", func(t *testing.T) {
		h, _ := newAuthHandler(t)
		c, rec := newJSONContext(http.MethodPost, "/api/v1/auth/login", `{"email":"ana@feira.br"}`)

		require.NoError(t, h.Login(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
