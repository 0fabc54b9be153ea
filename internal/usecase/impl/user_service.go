// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "feira/internal/delivery/context"
	"feira/internal/domain/entity"
	domainerrors "feira/internal/domain/errors"
	"feira/internal/domain/patch"
	"feira/internal/domain/repository"
	"feira/internal/domain/service"
	"feira/internal/errors"
	"feira/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	logger   *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
	Logger   *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo: params.UserRepo,
		hasher:   params.Hasher,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateUser rejects an e-mail already in use and stores a bcrypt hash of the password.
func (srv *userService) CreateUser(ctx context.Context, input usecase.CreateUserInput) (*entity.User, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Debug("Creating user", slog.String("email", email))

	userType := input.Type
	if userType == "" {
		userType = entity.UserTypeUser
	}
	if !userType.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown user type %q", userType)
	}

	if err := srv.ensureEmailFree(ctx, email, uuid.Nil); err != nil {
		return nil, err
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	user := &entity.User{
		ID:           uuid.New(),
		Name:         strings.TrimSpace(input.Name),
		Email:        email,
		PasswordHash: hash,
		Type:         userType,
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User created", slog.String("userID", user.ID.String()))

	return user, nil
}

func (srv *userService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user")
	}

	return user, nil
}

func (srv *userService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// UpdateUser applies a partial update. A new e-mail must not belong to
// another user; a new password is rehashed.
func (srv *userService) UpdateUser(ctx context.Context, id uuid.UUID, input usecase.UpdateUserInput) (*entity.User, error) {
	srv.log(ctx).Debug("Updating user", slog.String("userID", id.String()))

	changes := entity.UserPatch{Name: input.Name, Type: input.Type}

	if userType, ok := input.Type.Get(); ok && !userType.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown user type %q", userType)
	}

	if email, ok := input.Email.Get(); ok {
		email = normalizeEmail(email)
		if err := srv.ensureEmailFree(ctx, email, id); err != nil {
			return nil, err
		}
		changes.Email = patch.Set(email)
	}

	if password, ok := input.Password.Get(); ok {
		hash, err := srv.hasher.Hash(password)
		if err != nil {
			return nil, errors.Wrap(err, "failed to hash password")
		}
		changes.PasswordHash = patch.Set(hash)
	}

	if err := srv.userRepo.Update(ctx, id, changes); err != nil {
		return nil, errors.Wrap(err, "failed to update user")
	}

	return srv.GetUser(ctx, id)
}

func (srv *userService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if err := srv.userRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete user")
	}

	srv.log(ctx).Info("User deleted", slog.String("userID", id.String()))

	return nil
}

// ensureEmailFree fails with ErrDuplicateEmail when email belongs to a user
// other than self.
func (srv *userService) ensureEmailFree(ctx context.Context, email string, self uuid.UUID) error {
	existing, err := srv.userRepo.FindByEmail(ctx, email)
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		return nil
	case err != nil:
		return errors.Wrap(err, "failed to check e-mail")
	case existing.ID != self:
		return errors.Wrap(domainerrors.ErrDuplicateEmail, "e-mail already registered")
	default:
		return nil
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
