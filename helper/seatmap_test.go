package helper

import (
	"testing"
	"time"

	"movie_booking/model"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSeatLabels(t *testing.T) {
	got := NormalizeSeatLabels([]string{" a1", "A1", "b3 ", "", "B3", "c10"})
	assert.Equal(t, []string{"A1", "B3", "C10"}, got)
}

func TestParseRowList(t *testing.T) {
	assert.Equal(t, []string{"A", "B"}, ParseRowList("A,B"))
	assert.Equal(t, []string{"A"}, ParseRowList(" a "))
	assert.Empty(t, ParseRowList(""))
}

func TestIsVipRow(t *testing.T) {
	theater := model.Theater{VipRows: "A,B"}

	assert.True(t, IsVipRow(theater, "A5"))
	assert.True(t, IsVipRow(theater, "b1"))
	assert.False(t, IsVipRow(theater, "C1"))
	assert.False(t, IsVipRow(theater, ""))
}

func TestUnreservableSeatsNamesConflicts(t *testing.T) {
	rows := []model.ShowtimeSeat{
		{Label: "A1", Status: SeatAvailable},
		{Label: "A2", Status: SeatBooked},
		{Label: "A3", Status: SeatAvailable},
	}

	unavailable := UnreservableSeats(rows, []string{"A1", "A2", "A3"}, "")

	assert.Equal(t, []string{"A2"}, unavailable)
}

func TestUnreservableSeatsMissingLabel(t *testing.T) {
	rows := []model.ShowtimeSeat{{Label: "A1", Status: SeatAvailable}}

	unavailable := UnreservableSeats(rows, []string{"A1", "Z9"}, "")

	assert.Equal(t, []string{"Z9"}, unavailable)
}

func TestUnreservableSeatsHeldByOther(t *testing.T) {
	future := time.Now().Add(5 * time.Minute)
	rows := []model.ShowtimeSeat{
		{Label: "A1", Status: SeatHeld, HeldBy: "USER_2", ExpiredAt: &future},
	}

	assert.Equal(t, []string{"A1"}, UnreservableSeats(rows, []string{"A1"}, "USER_1"))
	assert.Empty(t, UnreservableSeats(rows, []string{"A1"}, "USER_2"))
}

func TestUnreservableSeatsExpiredHoldIsFree(t *testing.T) {
	past := time.Now().Add(-time.Minute)
	rows := []model.ShowtimeSeat{
		{Label: "A1", Status: SeatHeld, HeldBy: "USER_2", ExpiredAt: &past},
	}

	assert.Empty(t, UnreservableSeats(rows, []string{"A1"}, "USER_1"))
}

func TestSeatsHeldBy(t *testing.T) {
	future := time.Now().Add(5 * time.Minute)
	past := time.Now().Add(-time.Minute)
	seats := []model.ShowtimeSeat{
		{Label: "A1", Status: SeatHeld, HeldBy: "USER_1", ExpiredAt: &future},
		{Label: "A2", Status: SeatHeld, HeldBy: "USER_2", ExpiredAt: &future},
		{Label: "A3", Status: SeatHeld, HeldBy: "USER_1", ExpiredAt: &past},
		{Label: "A4", Status: SeatAvailable},
		{Label: "B1", Status: SeatHeld, HeldBy: "USER_1", ExpiredAt: &future},
	}

	assert.Equal(t, []string{"A1", "B1"}, SeatsHeldBy(seats, "USER_1", time.Now()))
	assert.Equal(t, []string{"A2"}, SeatsHeldBy(seats, "USER_2", time.Now()))
	assert.Empty(t, SeatsHeldBy(seats, "", time.Now()))
}

func TestSeatConflictErrorMessage(t *testing.T) {
	err := &SeatConflictError{Unavailable: []string{"A2", "B1"}}
	assert.Equal(t, "seats not available: A2, B1", err.Error())
}
