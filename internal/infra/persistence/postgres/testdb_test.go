package postgres

import (
	"log/slog"
	"testing"
	"time"

	"feira/internal/domain/entity"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB opens a private in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         newGormSlogLogger(slog.New(slog.DiscardHandler), nil),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, AutoMigrate(db))

	return db
}

var baseTime = time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

func at(minutes int) time.Time {
	return baseTime.Add(time.Duration(minutes) * time.Minute)
}

func ptr[T any](v T) *T {
	return &v
}

func seedAddress(t *testing.T, db *gorm.DB, lat, lon *float64) *entity.Address {
	t.Helper()

	address := &entity.Address{
		ID:        uuid.New(),
		Street:    "Rua das Flores",
		Number:    "10",
		District:  "Centro",
		City:      "Campinas",
		State:     "SP",
		ZipCode:   "13010-000",
		Latitude:  lat,
		Longitude: lon,
	}
	require.NoError(t, NewAddressRepository(db).Create(t.Context(), address))

	return address
}

func seedStall(t *testing.T, db *gorm.DB, supplierID uuid.UUID, name string, created time.Time) *entity.Stall {
	t.Helper()

	address := seedAddress(t, db, ptr(-22.9), ptr(-47.06))
	stall := &entity.Stall{
		ID:         uuid.New(),
		SupplierID: supplierID,
		AddressID:  address.ID,
		Name:       name,
		CreatedAt:  created,
		UpdatedAt:  created,
	}
	require.NoError(t, NewStallRepository(db).Create(t.Context(), stall))

	return stall
}
