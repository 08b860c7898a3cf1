package common

import (
	"casadelpuente/src/db"
	"casadelpuente/src/models"
	"casadelpuente/src/types"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func CreatePayment(payment *models.Payment) (*models.Payment, error) {
	if payment.Currency == "" {
		payment.Currency = "USD"
	}
	if payment.Status == "" {
		payment.Status = types.PAYMENT_PENDING
	}
	if err := db.GetDb().Create(payment).Error; err != nil {
		return nil, err
	}
	return payment, nil
}

func GetPaymentsByBooking(bookingID uuid.UUID) ([]models.Payment, error) {
	payments := []models.Payment{}
	err := db.GetDb().
		Where("booking_id = ?", bookingID).
		Order("created_at DESC").
		Find(&payments).
		Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

// UpdatePaymentStatus sets the payment status and, when it completes, stamps
// processed_at and flips the owning booking's paid flag in the same
// transaction. This is the only write that crosses entity boundaries.
func UpdatePaymentStatus(id uuid.UUID, status types.PaymentStatus, transactionID *string) (*models.Payment, error) {
	var payment models.Payment
	err := db.GetDb().Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&payment).Error; err != nil {
			return err
		}
		updates := map[string]any{"status": status}
		if transactionID != nil {
			updates["transaction_id"] = *transactionID
			payment.TransactionID = transactionID
		}
		if status == types.PAYMENT_COMPLETED {
			now := time.Now()
			updates["processed_at"] = now
			payment.ProcessedAt = &now
		}
		if err := tx.Model(&payment).Updates(updates).Error; err != nil {
			return err
		}
		payment.Status = status
		if status == types.PAYMENT_COMPLETED {
			if err := tx.
				Model(&models.Booking{}).
				Where("id = ?", payment.BookingID).
				Update("is_paid", true).
				Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &payment, nil
}
