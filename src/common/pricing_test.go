package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	assert.Nil(t, err)
	return parsed
}

func TestComputePricing(t *testing.T) {
	pricing, err := ComputePricing(date(t, "2025-06-01"), date(t, "2025-06-04"))
	assert.Nil(t, err)
	assert.Equal(t, 3, pricing.NumberOfNights)
	assert.Equal(t, "750.00", pricing.BasePrice)
	assert.Equal(t, "90.00", pricing.Taxes)
	assert.Equal(t, "50.00", pricing.Fees)
	assert.Equal(t, "890.00", pricing.TotalPrice)
}

func TestComputePricingSingleNight(t *testing.T) {
	pricing, err := ComputePricing(date(t, "2025-06-01"), date(t, "2025-06-02"))
	assert.Nil(t, err)
	assert.Equal(t, 1, pricing.NumberOfNights)
	assert.Equal(t, "250.00", pricing.BasePrice)
	assert.Equal(t, "30.00", pricing.Taxes)
	assert.Equal(t, "50.00", pricing.Fees)
	assert.Equal(t, "330.00", pricing.TotalPrice)
}

func TestComputePricingRoundsPartialDaysUp(t *testing.T) {
	checkIn, _ := time.Parse(time.RFC3339, "2025-06-01T22:00:00Z")
	checkOut, _ := time.Parse(time.RFC3339, "2025-06-03T10:00:00Z")

	pricing, err := ComputePricing(checkIn, checkOut)
	assert.Nil(t, err)
	assert.Equal(t, 2, pricing.NumberOfNights)
	assert.Equal(t, "500.00", pricing.BasePrice)
}

func TestComputePricingRejectsNonPositiveStays(t *testing.T) {
	_, err := ComputePricing(date(t, "2025-06-04"), date(t, "2025-06-04"))
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	_, err = ComputePricing(date(t, "2025-06-04"), date(t, "2025-06-01"))
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestComputePricingIsDeterministic(t *testing.T) {
	first, err := ComputePricing(date(t, "2025-06-01"), date(t, "2025-06-08"))
	assert.Nil(t, err)
	second, err := ComputePricing(date(t, "2025-06-01"), date(t, "2025-06-08"))
	assert.Nil(t, err)
	assert.Equal(t, first, second)
}

func TestValidateStayDates(t *testing.T) {
	future := time.Now().AddDate(1, 0, 0)

	assert.Nil(t, ValidateStayDates(future, future.AddDate(0, 0, 3)))
	assert.ErrorIs(t, ValidateStayDates(future, future), ErrInvalidDateRange)
	assert.ErrorIs(t, ValidateStayDates(future.AddDate(0, 0, 3), future), ErrInvalidDateRange)

	past := time.Now().AddDate(0, 0, -10)
	assert.ErrorIs(t, ValidateStayDates(past, past.AddDate(0, 0, 3)), ErrCheckInPast)
}
