package utils

import (
	"casadelpuente/src/config"
	"os"
	"strconv"
	"time"
)

// ParseISODate accepts full RFC 3339 timestamps as well as bare dates,
// matching what the booking widget sends.
func ParseISODate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse(config.DATE_PARSE_FORMAT, value)
}

// FormatAmount renders a monetary value with exactly two fractional digits.
func FormatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', 2, 64)
}

func IsProd() bool {
	return os.Getenv("API_ENV") == "production"
}
