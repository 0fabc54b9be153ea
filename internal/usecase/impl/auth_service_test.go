package impl

import (
	"context"
	"testing"
	"time"

	"feira/internal/domain/entity"
	domainerrors "feira/internal/domain/errors"
	"feira/internal/domain/repository"
	mockRepo "feira/internal/mocks/repository"
	mockSvc "feira/internal/mocks/service"
	"feira/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authServiceFixtures struct {
	service      usecase.AuthUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	return authServiceFixtures{
		service: NewAuthService(AuthServiceParams{
			UserRepo:     userRepo,
			Hasher:       hasher,
			TokenService: tokenService,
			Logger:       newDiscardLogger(),
		}),
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "ana@feira.com", PasswordHash: "hash", Type: entity.UserTypeSupplier}
	expiresAt := fixedNow.Add(time.Hour)

	fx.userRepo.EXPECT().FindByEmail(ctx, "ana@feira.com").Return(user, nil)
	fx.hasher.EXPECT().Check("Segredo123", "hash").Return(true)
	fx.tokenService.EXPECT().GenerateAccessToken(user.ID, "supplier").Return("jwt", expiresAt, nil)

	out, err := fx.service.Login(ctx, usecase.LoginInput{Email: "Ana@Feira.com ", Password: "Segredo123"})

	require.NoError(t, err)
	assert.Equal(t, "jwt", out.AccessToken)
	assert.Equal(t, expiresAt, out.ExpiresAt)
	assert.Same(t, user, out.User)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "ninguem@feira.com").Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Login(ctx, usecase.LoginInput{Email: "ninguem@feira.com", Password: "x"})

	assert.ErrorIs(t, err, domainerrors.ErrEmailNotFound)
	assert.NotErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), PasswordHash: "hash", Type: entity.UserTypeUser}

	fx.userRepo.EXPECT().FindByEmail(ctx, "ana@feira.com").Return(user, nil)
	fx.hasher.EXPECT().Check("errada", "hash").Return(false)

	_, err := fx.service.Login(ctx, usecase.LoginInput{Email: "ana@feira.com", Password: "errada"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}
