package model

import (
	"time"

	"github.com/google/uuid"
)

// StallModel mirrors the 'stalls' table.
type StallModel struct {
	ID             uuid.UUID     `gorm:"type:uuid;primaryKey"`
	SupplierID     uuid.UUID     `gorm:"type:uuid;not null;index:idx_stalls_supplier"`
	AddressID      uuid.UUID     `gorm:"type:uuid;not null"`
	Name           string        `gorm:"type:varchar(100);not null"`
	Description    *string       `gorm:"type:text"`
	OperatingHours *string       `gorm:"type:varchar(255)"`
	Address        *AddressModel `gorm:"foreignKey:AddressID"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (StallModel) TableName() string {
	return "stalls"
}

// ProductModel mirrors the 'products' table.
type ProductModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	StallID   uuid.UUID `gorm:"type:uuid;not null;index:idx_products_stall"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Price     float64   `gorm:"type:numeric(10,2);not null;check:chk_products_price,price >= 0"`
	Image     *string   `gorm:"type:varchar(512)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ProductModel) TableName() string {
	return "products"
}
