package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

type Timestamps struct {
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// StringArray is stored as a jsonb column.
type StringArray []string

func (a StringArray) Value() (driver.Value, error) {
	valueString, err := json.Marshal(a)
	return string(valueString), err
}
func (a *StringArray) Scan(value any) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	return nil
}

type BookingStatus string

const (
	BOOKING_PENDING   BookingStatus = "pending"
	BOOKING_CONFIRMED BookingStatus = "confirmed"
	BOOKING_CANCELLED BookingStatus = "cancelled"
	BOOKING_COMPLETED BookingStatus = "completed"
)

type PaymentStatus string

const (
	PAYMENT_PENDING   PaymentStatus = "pending"
	PAYMENT_COMPLETED PaymentStatus = "completed"
)

type GuestInput struct {
	FirstName       string  `json:"firstName" binding:"required"`
	LastName        string  `json:"lastName" binding:"required"`
	Email           string  `json:"email" binding:"required,email"`
	Phone           *string `json:"phone,omitempty"`
	Country         *string `json:"country,omitempty"`
	SpecialRequests *string `json:"specialRequests,omitempty"`
}

type BookingInput struct {
	CheckInDate    string   `json:"checkInDate" binding:"required"`
	CheckOutDate   string   `json:"checkOutDate" binding:"required"`
	NumberOfGuests int      `json:"numberOfGuests" binding:"required,min=1,max=20"`
	Notes          *string  `json:"notes,omitempty"`
	Amenities      []string `json:"amenities,omitempty"`
}

type CreateBookingRequestBody struct {
	Guest   GuestInput   `json:"guest" binding:"required"`
	Booking BookingInput `json:"booking" binding:"required"`
}

type DateRangeRequestBody struct {
	CheckInDate  string `json:"checkInDate" binding:"required"`
	CheckOutDate string `json:"checkOutDate" binding:"required"`
}

type UpdateBookingStatusRequestBody struct {
	Status BookingStatus `json:"status" binding:"required,oneof=pending confirmed cancelled completed"`
}

type CreatePaymentRequestBody struct {
	BookingID     string  `json:"bookingId" binding:"required,uuid"`
	Amount        string  `json:"amount" binding:"required,money"`
	Currency      string  `json:"currency,omitempty"`
	PaymentMethod string  `json:"paymentMethod" binding:"required,oneof=credit_card paypal bank_transfer cash"`
	TransactionID *string `json:"transactionId,omitempty"`
}

type UpdatePaymentStatusRequestBody struct {
	Status        PaymentStatus `json:"status" binding:"required"`
	TransactionID *string       `json:"transactionId,omitempty"`
}

type CreateReviewRequestBody struct {
	BookingID string  `json:"bookingId" binding:"required,uuid"`
	GuestID   string  `json:"guestId" binding:"required,uuid"`
	Rating    int     `json:"rating" binding:"required,min=1,max=5"`
	Title     *string `json:"title,omitempty"`
	Comment   *string `json:"comment,omitempty"`
	IsPublic  *bool   `json:"isPublic,omitempty"`
}

type IDRequestParams struct {
	ID string `uri:"id" binding:"required,uuid"`
}

type EmailRequestParams struct {
	Email string `uri:"email" binding:"required,email"`
}

type DateRangeQueryParams struct {
	StartDate string `form:"startDate" binding:"required"`
	EndDate   string `form:"endDate" binding:"required"`
}

type PricingBreakdown struct {
	NumberOfNights int    `json:"numberOfNights"`
	BasePrice      string `json:"basePrice"`
	Taxes          string `json:"taxes"`
	Fees           string `json:"fees"`
	TotalPrice     string `json:"totalPrice"`
}

type BookingStats struct {
	TotalBookings     int64  `json:"totalBookings"`
	ConfirmedBookings int64  `json:"confirmedBookings"`
	PendingBookings   int64  `json:"pendingBookings"`
	TotalRevenue      string `json:"totalRevenue"`
}
