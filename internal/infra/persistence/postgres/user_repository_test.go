package postgres

import (
	"testing"

	"feira/internal/domain/entity"
	domainerrors "feira/internal/domain/errors"
	"feira/internal/domain/patch"
	"feira/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUser(email string) *entity.User {
	return &entity.User{
		ID:           uuid.New(),
		Name:         "Maria",
		Email:        email,
		PasswordHash: "$2a$10$hash",
		Type:         entity.UserTypeUser,
	}
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := t.Context()

	user := newUser("maria@feira.com")
	require.NoError(t, repo.Create(ctx, user))
	assert.False(t, user.CreatedAt.IsZero())

	byID, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "maria@feira.com", byID.Email)
	assert.Equal(t, entity.UserTypeUser, byID.Type)

	byEmail, err := repo.FindByEmail(ctx, "maria@feira.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	_, err = repo.FindByEmail(ctx, "nobody@feira.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	require.NoError(t, repo.Create(t.Context(), newUser("dup@feira.com")))

	err := repo.Create(t.Context(), newUser("dup@feira.com"))
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateEmail)
}

func TestUserRepository_UpdateOnlyPresentFields(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := t.Context()

	user := newUser("joao@feira.com")
	require.NoError(t, repo.Create(ctx, user))

	err := repo.Update(ctx, user.ID, entity.UserPatch{
		Name:  patch.Set("João"),
		Email: patch.Null[string](),
	})
	require.NoError(t, err)

	got, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "João", got.Name)
	assert.Equal(t, "joao@feira.com", got.Email)
	assert.Equal(t, user.PasswordHash, got.PasswordHash)
}

func TestUserRepository_UpdateAndDeleteMissing(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := t.Context()

	err := repo.Update(ctx, uuid.New(), entity.UserPatch{Name: patch.Set("x")})
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	err = repo.Update(ctx, uuid.New(), entity.UserPatch{})
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	err = repo.Delete(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_ListAndDelete(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := t.Context()

	first := newUser("a@feira.com")
	first.CreatedAt = at(0)
	second := newUser("b@feira.com")
	second.CreatedAt = at(1)
	require.NoError(t, repo.Create(ctx, second))
	require.NoError(t, repo.Create(ctx, first))

	users, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, first.ID, users[0].ID)

	require.NoError(t, repo.Delete(ctx, first.ID))

	users, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestSupplierRepository_ListByCityIgnoresCase(t *testing.T) {
	db := newTestDB(t)
	repo := NewSupplierRepository(db)
	ctx := t.Context()

	for i, city := range []string{"Campinas", "campinas", "Santos"} {
		require.NoError(t, repo.Create(ctx, &entity.Supplier{
			ID:        uuid.New(),
			Name:      "Sítio " + city,
			Email:     uuid.NewString() + "@feira.com",
			City:      city,
			CreatedAt: at(i),
		}))
	}

	suppliers, err := repo.ListByCity(ctx, " CAMPINAS ")
	require.NoError(t, err)
	assert.Len(t, suppliers, 2)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestSupplierRepository_UpdateDescription(t *testing.T) {
	db := newTestDB(t)
	repo := NewSupplierRepository(db)
	ctx := t.Context()

	supplier := &entity.Supplier{ID: uuid.New(), Name: "Horta", Email: "horta@feira.com", City: "Santos"}
	require.NoError(t, repo.Create(ctx, supplier))

	require.NoError(t, repo.Update(ctx, supplier.ID, entity.SupplierPatch{Description: patch.Set("orgânicos")}))

	got, err := repo.FindByID(ctx, supplier.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Description)
	assert.Equal(t, "orgânicos", *got.Description)
	assert.Equal(t, "Santos", got.City)
}
