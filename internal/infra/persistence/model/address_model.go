package model

import (
	"time"

	"github.com/google/uuid"
)

// AddressModel mirrors the 'addresses' table. Coordinates stay NULL until
// the address is geocoded.
type AddressModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Street     string    `gorm:"type:varchar(255);not null"`
	Number     string    `gorm:"type:varchar(20);not null"`
	Complement *string   `gorm:"type:varchar(255)"`
	District   string    `gorm:"type:varchar(100);not null"`
	City       string    `gorm:"type:varchar(100);not null"`
	State      string    `gorm:"type:varchar(50);not null"`
	ZipCode    string    `gorm:"type:varchar(20);not null"`
	Latitude   *float64  `gorm:"type:decimal(10,8)"`
	Longitude  *float64  `gorm:"type:decimal(11,8)"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (AddressModel) TableName() string {
	return "addresses"
}
