package helper

import (
	"testing"
	"time"

	"movie_booking/constants"
	"movie_booking/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bookingAt(code string, start time.Time, status string) model.Booking {
	return model.Booking{
		PublicCode: code,
		Status:     status,
		Showtime:   model.Showtime{StartTime: start},
	}
}

func TestSplitBookings(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	bookings := []model.Booking{
		bookingAt("BKG-1", now.Add(48*time.Hour), constants.BOOKING_CONFIRMED),
		bookingAt("BKG-2", now.Add(-24*time.Hour), constants.BOOKING_COMPLETED),
		bookingAt("BKG-3", now.Add(2*time.Hour), constants.BOOKING_CONFIRMED),
		bookingAt("BKG-4", now.Add(24*time.Hour), constants.BOOKING_CANCELLED),
		bookingAt("BKG-5", now.Add(-48*time.Hour), constants.BOOKING_COMPLETED),
	}

	upcoming, history := SplitBookings(bookings, now)

	require.Len(t, upcoming, 2)
	assert.Equal(t, "BKG-3", upcoming[0].PublicCode)
	assert.Equal(t, "BKG-1", upcoming[1].PublicCode)

	require.Len(t, history, 3)
	assert.Equal(t, "BKG-4", history[0].PublicCode)
	assert.Equal(t, "BKG-2", history[1].PublicCode)
	assert.Equal(t, "BKG-5", history[2].PublicCode)
}

func TestSplitBookingsCancelledUpcomingGoesToHistory(t *testing.T) {
	now := time.Now()
	bookings := []model.Booking{
		bookingAt("BKG-1", now.Add(time.Hour), constants.BOOKING_CANCELLED),
	}

	upcoming, history := SplitBookings(bookings, now)

	assert.Empty(t, upcoming)
	require.Len(t, history, 1)
}

func TestSplitBookingsEmpty(t *testing.T) {
	upcoming, history := SplitBookings(nil, time.Now())
	assert.NotNil(t, upcoming)
	assert.NotNil(t, history)
	assert.Empty(t, upcoming)
	assert.Empty(t, history)
}
