package impl

import (
	"context"
	"testing"
	"time"

	"feira/internal/domain/entity"
	domainerrors "feira/internal/domain/errors"
	"feira/internal/domain/patch"
	"feira/internal/domain/repository"
	"feira/internal/errors"
	mockRepo "feira/internal/mocks/repository"
	mockSvc "feira/internal/mocks/service"
	"feira/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service  usecase.UserUsecase
	userRepo *mockRepo.MockUserRepository
	hasher   *mockSvc.MockPasswordHasher
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)

	service := NewUserService(UserServiceParams{
		UserRepo: userRepo,
		Hasher:   hasher,
		Logger:   newDiscardLogger(),
	})

	return userServiceFixtures{
		service:  service,
		userRepo: userRepo,
		hasher:   hasher,
	}
}

func TestUserService_CreateUser_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "ana@feira.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("Segredo123").Return("hashed", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Email == "ana@feira.com" && u.PasswordHash == "hashed" && u.Type == entity.UserTypeUser
		})).
		Return(nil)

	user, err := fx.service.CreateUser(ctx, usecase.CreateUserInput{
		Name:     " Ana ",
		Email:    " Ana@Feira.com",
		Password: "Segredo123",
	})

	require.NoError(t, err)
	assert.Equal(t, "Ana", user.Name)
	assert.NotEqual(t, uuid.Nil, user.ID)
}

func TestUserService_CreateUser_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "ana@feira.com").Return(&entity.User{ID: uuid.New()}, nil)

	_, err := fx.service.CreateUser(ctx, usecase.CreateUserInput{
		Name:     "Ana",
		Email:    "ana@feira.com",
		Password: "Segredo123",
	})

	assert.ErrorIs(t, err, domainerrors.ErrDuplicateEmail)
}

func TestUserService_CreateUser_UnknownType(t *testing.T) {
	fx := createTestUserService(t)

	_, err := fx.service.CreateUser(context.Background(), usecase.CreateUserInput{
		Name:     "Ana",
		Email:    "ana@feira.com",
		Password: "Segredo123",
		Type:     entity.UserType("robot"),
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserService_CreateUser_HashFailure(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "ana@feira.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("x").Return("", domainerrors.ErrPasswordHashFailed)

	_, err := fx.service.CreateUser(ctx, usecase.CreateUserInput{Name: "Ana", Email: "ana@feira.com", Password: "x"})

	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
}

func TestUserService_UpdateUser(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name    string
		input   usecase.UpdateUserInput
		setup   func(fx userServiceFixtures, ctx context.Context)
		wantErr error
	}{
		{
			name:  "name only",
			input: usecase.UpdateUserInput{Name: patch.Set("Ana Maria")},
			setup: func(fx userServiceFixtures, ctx context.Context) {
				fx.userRepo.EXPECT().
					Update(ctx, id, entity.UserPatch{Name: patch.Set("Ana Maria")}).
					Return(nil)
				fx.userRepo.EXPECT().FindByID(ctx, id).Return(&entity.User{ID: id, Name: "Ana Maria"}, nil)
			},
		},
		{
			name:  "keeping own e-mail is allowed",
			input: usecase.UpdateUserInput{Email: patch.Set("ANA@feira.com")},
			setup: func(fx userServiceFixtures, ctx context.Context) {
				fx.userRepo.EXPECT().FindByEmail(ctx, "ana@feira.com").Return(&entity.User{ID: id}, nil)
				fx.userRepo.EXPECT().
					Update(ctx, id, entity.UserPatch{Email: patch.Set("ana@feira.com")}).
					Return(nil)
				fx.userRepo.EXPECT().FindByID(ctx, id).Return(&entity.User{ID: id}, nil)
			},
		},
		{
			name:  "e-mail taken by someone else",
			input: usecase.UpdateUserInput{Email: patch.Set("bia@feira.com")},
			setup: func(fx userServiceFixtures, ctx context.Context) {
				fx.userRepo.EXPECT().FindByEmail(ctx, "bia@feira.com").Return(&entity.User{ID: uuid.New()}, nil)
			},
			wantErr: domainerrors.ErrDuplicateEmail,
		},
		{
			name:  "new password is rehashed",
			input: usecase.UpdateUserInput{Password: patch.Set("Nova123")},
			setup: func(fx userServiceFixtures, ctx context.Context) {
				fx.hasher.EXPECT().Hash("Nova123").Return("rehashed", nil)
				fx.userRepo.EXPECT().
					Update(ctx, id, entity.UserPatch{PasswordHash: patch.Set("rehashed")}).
					Return(nil)
				fx.userRepo.EXPECT().FindByID(ctx, id).Return(&entity.User{ID: id}, nil)
			},
		},
		{
			name:  "missing user",
			input: usecase.UpdateUserInput{Name: patch.Set("x")},
			setup: func(fx userServiceFixtures, ctx context.Context) {
				fx.userRepo.EXPECT().Update(ctx, id, mock.Anything).Return(repository.ErrUserNotFound)
			},
			wantErr: domainerrors.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestUserService(t)
			ctx := context.Background()
			tt.setup(fx, ctx)

			user, err := fx.service.UpdateUser(ctx, id, tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, id, user.ID)
		})
	}
}

func TestUserService_GetListDelete(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), CreatedAt: time.Now()}

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.userRepo.EXPECT().List(ctx).Return([]*entity.User{user}, nil)
	fx.userRepo.EXPECT().Delete(ctx, user.ID).Return(nil)

	got, err := fx.service.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Same(t, user, got)

	users, err := fx.service.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)

	require.NoError(t, fx.service.DeleteUser(ctx, user.ID))
}

func TestUserService_DeleteUser_StorageError(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	id := uuid.New()
	dbErr := errors.New("connection reset")

	fx.userRepo.EXPECT().Delete(ctx, id).Return(dbErr)

	err := fx.service.DeleteUser(ctx, id)

	assert.ErrorIs(t, err, dbErr)
}
