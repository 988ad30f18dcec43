package utils

import (
	"net/mail"
	"strconv"
	"strings"
	"time"
	"unicode"
)

func IsValidEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

// IsDigitsOnly reports whether s is non-empty and consists of digits.
func IsDigitsOnly(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// IsValidCardNumber accepts exactly 16 digits, spaces stripped.
func IsValidCardNumber(number string) bool {
	number = strings.ReplaceAll(number, " ", "")
	return len(number) == 16 && IsDigitsOnly(number)
}

// IsValidExpiry parses MM/YY and checks the card has not expired. A card is
// valid through the last day of its expiry month.
func IsValidExpiry(expiry string, now time.Time) bool {
	parts := strings.Split(expiry, "/")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return false
	}
	month, err := strconv.Atoi(parts[0])
	if err != nil || month < 1 || month > 12 {
		return false
	}
	year, err := strconv.Atoi(parts[1])
	if err != nil {
		return false
	}
	year += 2000

	// First moment of the month after expiry.
	cutoff := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	return now.Before(cutoff)
}

func IsValidCVV(cvv string) bool {
	return len(cvv) >= 3 && IsDigitsOnly(cvv)
}

func IsValidValueOfConstant(value string, allowed []string) bool {
	for _, v := range allowed {
		if v == value {
			return true
		}
	}
	return false
}
