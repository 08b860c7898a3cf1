package models

import (
	"casadelpuente/src/types"
	"time"

	"github.com/google/uuid"
)

type Payment struct {
	ID            uuid.UUID           `gorm:"primarykey;type:uuid;default:gen_random_uuid()" json:"id"`
	BookingID     uuid.UUID           `gorm:"type:uuid" json:"bookingId"`
	Amount        string              `gorm:"type:decimal(10,2)" json:"amount"`
	Currency      string              `gorm:"default:'USD'" json:"currency"`
	PaymentMethod string              `json:"paymentMethod"`
	TransactionID *string             `json:"transactionId,omitempty"`
	Status        types.PaymentStatus `gorm:"default:'pending'" json:"status"`
	ProcessedAt   *time.Time          `json:"processedAt,omitempty"`
	CreatedAt     time.Time           `gorm:"autoCreateTime" json:"createdAt"`

	Booking Booking `gorm:"foreignKey:BookingID" json:"-"`
}
