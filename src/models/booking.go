package models

import (
	"casadelpuente/src/types"
	"time"

	"github.com/google/uuid"
)

// Booking reserves the whole house for a date range. All price columns are
// computed server-side and stored as two-decimal strings.
type Booking struct {
	ID             uuid.UUID           `gorm:"primarykey;type:uuid;default:gen_random_uuid()" json:"id"`
	GuestID        uuid.UUID           `gorm:"type:uuid" json:"guestId"`
	CheckInDate    time.Time           `json:"checkInDate"`
	CheckOutDate   time.Time           `json:"checkOutDate"`
	NumberOfGuests int                 `json:"numberOfGuests"`
	NumberOfNights int                 `json:"numberOfNights"`
	BasePrice      string              `gorm:"type:decimal(10,2)" json:"basePrice"`
	Taxes          string              `gorm:"type:decimal(10,2);default:0" json:"taxes"`
	Fees           string              `gorm:"type:decimal(10,2);default:0" json:"fees"`
	TotalPrice     string              `gorm:"type:decimal(10,2)" json:"totalPrice"`
	Status         types.BookingStatus `gorm:"default:'pending'" json:"status"`
	IsPaid         bool                `gorm:"default:false" json:"isPaid"`
	Notes          *string             `json:"notes,omitempty"`
	Amenities      types.StringArray   `gorm:"type:jsonb" json:"amenities,omitempty"`
	ConfirmedAt    *time.Time          `json:"confirmedAt,omitempty"`

	Guest    *Guest    `gorm:"foreignKey:GuestID" json:"guest,omitempty"`
	Payments []Payment `gorm:"foreignKey:BookingID" json:"-"`
	Reviews  []Review  `gorm:"foreignKey:BookingID" json:"-"`

	// Payment is the most recent payment row, attached on reads that join it.
	Payment *Payment `gorm:"-" json:"payment,omitempty"`

	types.Timestamps
}
