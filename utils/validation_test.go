package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsValidCardNumber(t *testing.T) {
	assert.True(t, IsValidCardNumber("4111111111111111"))
	assert.True(t, IsValidCardNumber("4111 1111 1111 1111"))
	assert.False(t, IsValidCardNumber("411111111111111"))   // 15 digits
	assert.False(t, IsValidCardNumber("41111111111111111")) // 17 digits
	assert.False(t, IsValidCardNumber("4111-1111-1111-1111"))
	assert.False(t, IsValidCardNumber(""))
}

func TestIsValidExpiry(t *testing.T) {
	now := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)

	assert.True(t, IsValidExpiry("08/26", now), "valid through the end of the expiry month")
	assert.True(t, IsValidExpiry("12/30", now))
	assert.False(t, IsValidExpiry("07/26", now))
	assert.False(t, IsValidExpiry("13/26", now))
	assert.False(t, IsValidExpiry("00/26", now))
	assert.False(t, IsValidExpiry("8/26", now))
	assert.False(t, IsValidExpiry("2026-08", now))
	assert.False(t, IsValidExpiry("", now))
}

func TestIsValidCVV(t *testing.T) {
	assert.True(t, IsValidCVV("123"))
	assert.True(t, IsValidCVV("1234"))
	assert.False(t, IsValidCVV("12"))
	assert.False(t, IsValidCVV("12a"))
	assert.False(t, IsValidCVV(""))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("user@example.com"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail(""))
}

func TestIsDigitsOnly(t *testing.T) {
	assert.True(t, IsDigitsOnly("0123456789"))
	assert.False(t, IsDigitsOnly("123 "))
	assert.False(t, IsDigitsOnly(""))
}
