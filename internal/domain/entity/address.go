// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Address is the physical location of a stall. Latitude and Longitude are
// nil until the address has been geocoded.
type Address struct {
	ID         uuid.UUID
	Street     string
	Number     string
	Complement *string
	District   string
	City       string
	State      string
	ZipCode    string
	Latitude   *float64 // decimal degrees
	Longitude  *float64 // decimal degrees
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Coordinates reports the geocoded position, if both halves are present.
func (a *Address) Coordinates() (lat, lon float64, ok bool) {
	if a == nil || a.Latitude == nil || a.Longitude == nil {
		return 0, 0, false
	}

	return *a.Latitude, *a.Longitude, true
}
