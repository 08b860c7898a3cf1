package models

import (
	"casadelpuente/src/types"

	"github.com/google/uuid"
)

// Guest is deduplicated by email: repeat bookings with the same address
// overwrite the contact fields instead of creating a second row.
type Guest struct {
	ID              uuid.UUID `gorm:"primarykey;type:uuid;default:gen_random_uuid()" json:"id"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	Email           string    `gorm:"uniqueIndex" json:"email"`
	Phone           *string   `json:"phone,omitempty"`
	Country         *string   `json:"country,omitempty"`
	SpecialRequests *string   `json:"specialRequests,omitempty"`

	Bookings []Booking `gorm:"foreignKey:GuestID" json:"bookings,omitempty"`

	types.Timestamps
}
