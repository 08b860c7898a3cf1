package common

import (
	"casadelpuente/src/config"
	"casadelpuente/src/types"
	"casadelpuente/src/utils"
	"errors"
	"math"
	"time"
)

var (
	ErrInvalidDateRange = errors.New("check-out date must be after check-in date")
	ErrCheckInPast      = errors.New("check-in date cannot be in the past")
	ErrDatesUnavailable = errors.New("selected dates are not available")
)

// ComputePricing derives the full price breakdown for a stay. Pure: the same
// date pair always yields the same breakdown.
func ComputePricing(checkIn, checkOut time.Time) (*types.PricingBreakdown, error) {
	nights := int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
	if nights <= 0 {
		return nil, ErrInvalidDateRange
	}

	basePrice := float64(nights) * config.NIGHTLY_RATE
	taxes := basePrice * config.TAX_RATE
	total := basePrice + taxes + config.CLEANING_FEE

	return &types.PricingBreakdown{
		NumberOfNights: nights,
		BasePrice:      utils.FormatAmount(basePrice),
		Taxes:          utils.FormatAmount(taxes),
		Fees:           utils.FormatAmount(config.CLEANING_FEE),
		TotalPrice:     utils.FormatAmount(total),
	}, nil
}

// ValidateStayDates enforces the creation-time invariants: check-out strictly
// after check-in, check-in not before now.
func ValidateStayDates(checkIn, checkOut time.Time) error {
	if !checkOut.After(checkIn) {
		return ErrInvalidDateRange
	}
	if checkIn.Before(time.Now()) {
		return ErrCheckInPast
	}
	return nil
}
