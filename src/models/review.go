package models

import (
	"time"

	"github.com/google/uuid"
)

type Review struct {
	ID        uuid.UUID `gorm:"primarykey;type:uuid;default:gen_random_uuid()" json:"id"`
	BookingID uuid.UUID `gorm:"type:uuid" json:"bookingId"`
	GuestID   uuid.UUID `gorm:"type:uuid" json:"guestId"`
	Rating    int       `json:"rating"`
	Title     *string   `json:"title,omitempty"`
	Comment   *string   `json:"comment,omitempty"`
	IsPublic  bool      `gorm:"default:true" json:"isPublic"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`

	Booking Booking `gorm:"foreignKey:BookingID" json:"-"`
	Guest   Guest   `gorm:"foreignKey:GuestID" json:"-"`
}
