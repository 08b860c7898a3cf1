package common

import (
	"casadelpuente/src/db"
	"casadelpuente/src/models"
	"casadelpuente/src/types"
	"casadelpuente/src/utils"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// guestUpsertColumns are overwritten on a repeat booking with a known email.
// created_at is deliberately absent so the original row keeps its age.
var guestUpsertColumns = []string{"first_name", "last_name", "phone", "country", "special_requests", "updated_at"}

func checkOverlap(tx *gorm.DB, checkIn, checkOut time.Time) (bool, error) {
	var count int64
	err := tx.
		Model(&models.Booking{}).
		Where("status = ?", types.BOOKING_CONFIRMED).
		Where("check_in_date <= ? AND check_out_date >= ?", checkOut, checkIn).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// CheckAvailability reports whether the house is free for the range. Only
// confirmed bookings block dates; boundaries are inclusive, so a confirmed
// check-out on the requested check-in day counts as a conflict.
func CheckAvailability(checkIn, checkOut time.Time) (bool, error) {
	conflict, err := checkOverlap(db.GetDb(), checkIn, checkOut)
	if err != nil {
		return false, err
	}
	return !conflict, nil
}

// CreateBookingWithGuest validates the stay, recomputes pricing from the date
// range (client-supplied price fields are never read), upserts the guest by
// email and inserts the pending booking, all in one transaction.
func CreateBookingWithGuest(body *types.CreateBookingRequestBody, checkIn, checkOut time.Time) (*models.Guest, *models.Booking, error) {
	if err := ValidateStayDates(checkIn, checkOut); err != nil {
		return nil, nil, err
	}
	pricing, err := ComputePricing(checkIn, checkOut)
	if err != nil {
		return nil, nil, err
	}

	guest := models.Guest{
		FirstName:       body.Guest.FirstName,
		LastName:        body.Guest.LastName,
		Email:           body.Guest.Email,
		Phone:           body.Guest.Phone,
		Country:         body.Guest.Country,
		SpecialRequests: body.Guest.SpecialRequests,
	}
	booking := models.Booking{
		CheckInDate:    checkIn,
		CheckOutDate:   checkOut,
		NumberOfGuests: body.Booking.NumberOfGuests,
		NumberOfNights: pricing.NumberOfNights,
		BasePrice:      pricing.BasePrice,
		Taxes:          pricing.Taxes,
		Fees:           pricing.Fees,
		TotalPrice:     pricing.TotalPrice,
		Status:         types.BOOKING_PENDING,
		IsPaid:         false,
		Notes:          body.Booking.Notes,
		Amenities:      body.Booking.Amenities,
	}

	err = db.GetDb().Transaction(func(tx *gorm.DB) error {
		conflict, err := checkOverlap(tx, checkIn, checkOut)
		if err != nil {
			return err
		}
		if conflict {
			return ErrDatesUnavailable
		}
		if err := tx.
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "email"}},
				DoUpdates: clause.AssignmentColumns(guestUpsertColumns),
			}).
			Create(&guest).
			Error; err != nil {
			return err
		}
		// Re-read so the response carries the stored row, not the insert values.
		if err := tx.Where("email = ?", guest.Email).First(&guest).Error; err != nil {
			return err
		}
		booking.GuestID = guest.ID
		if err := tx.Create(&booking).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return &guest, &booking, nil
}

// UpdateBookingStatus sets any of the four statuses; no transition table is
// enforced. Moving to confirmed stamps confirmed_at, re-confirming re-stamps it.
func UpdateBookingStatus(id uuid.UUID, status types.BookingStatus) (*models.Booking, error) {
	var booking models.Booking
	err := db.GetDb().Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&booking).Error; err != nil {
			return err
		}
		updates := map[string]any{"status": status}
		if status == types.BOOKING_CONFIRMED {
			now := time.Now()
			updates["confirmed_at"] = now
			booking.ConfirmedAt = &now
		}
		if err := tx.Model(&booking).Updates(updates).Error; err != nil {
			return err
		}
		booking.Status = status
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func CancelBooking(id uuid.UUID) (*models.Booking, error) {
	return UpdateBookingStatus(id, types.BOOKING_CANCELLED)
}

func attachLatestPayment(bookings []models.Booking) {
	for i := range bookings {
		if len(bookings[i].Payments) > 0 {
			bookings[i].Payment = &bookings[i].Payments[0]
		}
	}
}

func withGuestAndPayments(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Guest").
		Preload("Payments", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("created_at DESC")
		})
}

func GetBooking(id uuid.UUID) (*models.Booking, error) {
	var booking models.Booking
	err := withGuestAndPayments(db.GetDb()).
		Where("id = ?", id).
		First(&booking).
		Error
	if err != nil {
		return nil, err
	}
	if len(booking.Payments) > 0 {
		booking.Payment = &booking.Payments[0]
	}
	return &booking, nil
}

func GetBookingsByGuest(guestID uuid.UUID) ([]models.Booking, error) {
	bookings := []models.Booking{}
	err := withGuestAndPayments(db.GetDb()).
		Where("guest_id = ?", guestID).
		Order("created_at DESC").
		Find(&bookings).
		Error
	if err != nil {
		return nil, err
	}
	attachLatestPayment(bookings)
	return bookings, nil
}

func GetBookingsByDateRange(startDate, endDate time.Time) ([]models.Booking, error) {
	bookings := []models.Booking{}
	err := withGuestAndPayments(db.GetDb()).
		Where("check_in_date >= ? AND check_out_date <= ?", startDate, endDate).
		Order("check_in_date DESC").
		Find(&bookings).
		Error
	if err != nil {
		return nil, err
	}
	attachLatestPayment(bookings)
	return bookings, nil
}

func GetAllBookings(limit, offset int) ([]models.Booking, error) {
	bookings := []models.Booking{}
	err := withGuestAndPayments(db.GetDb()).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&bookings).
		Error
	if err != nil {
		return nil, err
	}
	attachLatestPayment(bookings)
	return bookings, nil
}

func GetGuest(id uuid.UUID) (*models.Guest, error) {
	var guest models.Guest
	if err := db.GetDb().Where("id = ?", id).First(&guest).Error; err != nil {
		return nil, err
	}
	return &guest, nil
}

func GetGuestByEmail(email string) (*models.Guest, error) {
	var guest models.Guest
	if err := db.GetDb().Where("email = ?", email).First(&guest).Error; err != nil {
		return nil, err
	}
	return &guest, nil
}

// GetBookingStats aggregates booking counts and the revenue of confirmed
// bookings only; cancelled, pending and completed stays are excluded from
// revenue.
func GetBookingStats() (*types.BookingStats, error) {
	stats := types.BookingStats{}
	d := db.GetDb()
	err := d.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Booking{}).Count(&stats.TotalBookings).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Booking{}).Where("status = ?", types.BOOKING_CONFIRMED).Count(&stats.ConfirmedBookings).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Booking{}).Where("status = ?", types.BOOKING_PENDING).Count(&stats.PendingBookings).Error; err != nil {
			return err
		}
		var revenue float64
		if err := tx.Model(&models.Booking{}).
			Where("status = ?", types.BOOKING_CONFIRMED).
			Select("COALESCE(SUM(total_price), 0)").
			Scan(&revenue).
			Error; err != nil {
			return err
		}
		stats.TotalRevenue = utils.FormatAmount(revenue)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
