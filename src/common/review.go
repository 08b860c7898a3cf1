package common

import (
	"casadelpuente/src/db"
	"casadelpuente/src/models"

	"github.com/google/uuid"
)

func CreateReview(review *models.Review) (*models.Review, error) {
	if err := db.GetDb().Create(review).Error; err != nil {
		return nil, err
	}
	return review, nil
}

func GetReviewsByBooking(bookingID uuid.UUID) ([]models.Review, error) {
	reviews := []models.Review{}
	err := db.GetDb().
		Where("booking_id = ?", bookingID).
		Order("created_at DESC").
		Find(&reviews).
		Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func GetPublicReviews(limit int) ([]models.Review, error) {
	reviews := []models.Review{}
	err := db.GetDb().
		Where("is_public = ?", true).
		Order("created_at DESC").
		Limit(limit).
		Find(&reviews).
		Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}
