package helper

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"movie_booking/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	SeatAvailable = "AVAILABLE"
	SeatHeld      = "HELD"
	SeatBooked    = "BOOKED"
)

const HoldTimeout = 10 * time.Minute

// SeatConflictError names exactly which requested seats could not be taken.
type SeatConflictError struct {
	Unavailable []string
}

func (e *SeatConflictError) Error() string {
	return fmt.Sprintf("seats not available: %s", strings.Join(e.Unavailable, ", "))
}

// ParseRowList splits a comma-separated row list ("A,B") into row letters.
func ParseRowList(rowStr string) []string {
	rowStr = strings.TrimSpace(rowStr)
	if rowStr == "" {
		return []string{}
	}
	parts := strings.Split(rowStr, ",")
	for i := range parts {
		parts[i] = strings.ToUpper(strings.TrimSpace(parts[i]))
	}
	return parts
}

// IsVipRow reports whether the seat's row letter belongs to the theater's
// configured VIP row set.
func IsVipRow(theater model.Theater, label string) bool {
	if label == "" {
		return false
	}
	row := strings.ToUpper(label[:1])
	for _, vip := range ParseRowList(theater.VipRows) {
		if vip == row {
			return true
		}
	}
	return false
}

// NormalizeSeatLabels upper-cases, trims and deduplicates while preserving
// request order.
func NormalizeSeatLabels(labels []string) []string {
	seen := make(map[string]bool, len(labels))
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		l = strings.ToUpper(strings.TrimSpace(l))
		if l == "" || seen[l] {
			continue
		}
		seen[l] = true
		out = append(out, l)
	}
	return out
}

// SeatsHeldBy returns the labels one holder currently has on hold, expired
// holds excluded, in seat-map order.
func SeatsHeldBy(seats []model.ShowtimeSeat, heldBy string, now time.Time) []string {
	labels := []string{}
	if heldBy == "" {
		return labels
	}
	for _, seat := range seats {
		if seat.Status == SeatHeld && seat.HeldBy == heldBy &&
			(seat.ExpiredAt == nil || seat.ExpiredAt.After(now)) {
			labels = append(labels, seat.Label)
		}
	}
	return labels
}

// BuildShowtimeSeats generates the full seat set for a new showtime from the
// theater layout. Rows are labelled A upward.
func BuildShowtimeSeats(tx *gorm.DB, showtime *model.Showtime, theater *model.Theater) error {
	if theater.Rows <= 0 || theater.SeatsPerRow <= 0 {
		return errors.New("theater has no seat layout")
	}

	seats := make([]model.ShowtimeSeat, 0, theater.Rows*theater.SeatsPerRow)
	for i := 0; i < theater.Rows; i++ {
		row := string(rune('A' + i))
		vip := IsVipRow(*theater, row)
		for n := 1; n <= theater.SeatsPerRow; n++ {
			seats = append(seats, model.ShowtimeSeat{
				ShowtimeId: showtime.ID,
				Label:      fmt.Sprintf("%s%d", row, n),
				Row:        row,
				Number:     n,
				IsVip:      vip,
				Status:     SeatAvailable,
			})
		}
	}

	return tx.Create(&seats).Error
}

// UnreservableSeats returns the requested labels that cannot move to BOOKED:
// labels missing from rows, and labels whose seat is neither AVAILABLE nor
// held by the requester.
func UnreservableSeats(rows []model.ShowtimeSeat, requested []string, by string) []string {
	byLabel := make(map[string]model.ShowtimeSeat, len(rows))
	for _, r := range rows {
		byLabel[r.Label] = r
	}

	var unavailable []string
	now := time.Now()
	for _, label := range requested {
		seat, ok := byLabel[label]
		if !ok {
			unavailable = append(unavailable, label)
			continue
		}
		switch seat.Status {
		case SeatAvailable:
		case SeatHeld:
			heldBySelf := by != "" && seat.HeldBy == by
			expired := seat.ExpiredAt != nil && seat.ExpiredAt.Before(now)
			if !heldBySelf && !expired {
				unavailable = append(unavailable, label)
			}
		default:
			unavailable = append(unavailable, label)
		}
	}
	return unavailable
}

// ReserveSeats moves the requested seats to BOOKED, all or nothing. The rows
// are locked FOR UPDATE so overlapping requests on the same showtime cannot
// both succeed. A seat qualifies when AVAILABLE, when held by the requester,
// or when its hold has expired.
func ReserveSeats(tx *gorm.DB, showtimeId uint, labels []string, by string) ([]model.ShowtimeSeat, error) {
	labels = NormalizeSeatLabels(labels)
	if len(labels) == 0 {
		return nil, errors.New("no seats requested")
	}

	var rows []model.ShowtimeSeat
	if err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("showtime_id = ? AND label IN ?", showtimeId, labels).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	if unavailable := UnreservableSeats(rows, labels, by); len(unavailable) > 0 {
		return nil, &SeatConflictError{Unavailable: unavailable}
	}

	if err := tx.Model(&model.ShowtimeSeat{}).
		Where("showtime_id = ? AND label IN ?", showtimeId, labels).
		Updates(map[string]any{
			"status":     SeatBooked,
			"held_by":    "",
			"expired_at": nil,
		}).Error; err != nil {
		return nil, err
	}

	for i := range rows {
		rows[i].Status = SeatBooked
		rows[i].HeldBy = ""
		rows[i].ExpiredAt = nil
	}
	return rows, nil
}

// ReleaseSeats is the inverse of ReserveSeats: every requested seat must
// currently be BOOKED, otherwise nothing is mutated.
func ReleaseSeats(tx *gorm.DB, showtimeId uint, labels []string) error {
	labels = NormalizeSeatLabels(labels)
	if len(labels) == 0 {
		return errors.New("no seats requested")
	}

	var rows []model.ShowtimeSeat
	if err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("showtime_id = ? AND label IN ?", showtimeId, labels).
		Find(&rows).Error; err != nil {
		return err
	}

	var notBooked []string
	byLabel := make(map[string]model.ShowtimeSeat, len(rows))
	for _, r := range rows {
		byLabel[r.Label] = r
	}
	for _, label := range labels {
		seat, ok := byLabel[label]
		if !ok || seat.Status != SeatBooked {
			notBooked = append(notBooked, label)
		}
	}
	if len(notBooked) > 0 {
		return fmt.Errorf("seats not booked: %s", strings.Join(notBooked, ", "))
	}

	return tx.Model(&model.ShowtimeSeat{}).
		Where("showtime_id = ? AND label IN ?", showtimeId, labels).
		Updates(map[string]any{
			"status":     SeatAvailable,
			"held_by":    "",
			"expired_at": nil,
		}).Error
}

// HoldSeats places a short-lived hold so a user can finish checkout without
// losing the seats. Only AVAILABLE (or expired-hold) seats qualify.
func HoldSeats(tx *gorm.DB, showtimeId uint, labels []string, by string) ([]model.ShowtimeSeat, *time.Time, error) {
	labels = NormalizeSeatLabels(labels)
	if len(labels) == 0 {
		return nil, nil, errors.New("no seats requested")
	}

	var rows []model.ShowtimeSeat
	if err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("showtime_id = ? AND label IN ?", showtimeId, labels).
		Find(&rows).Error; err != nil {
		return nil, nil, err
	}

	if unavailable := UnreservableSeats(rows, labels, by); len(unavailable) > 0 {
		return nil, nil, &SeatConflictError{Unavailable: unavailable}
	}

	expiresAt := time.Now().Add(HoldTimeout)
	if err := tx.Model(&model.ShowtimeSeat{}).
		Where("showtime_id = ? AND label IN ?", showtimeId, labels).
		Updates(map[string]any{
			"status":     SeatHeld,
			"held_by":    by,
			"expired_at": expiresAt,
		}).Error; err != nil {
		return nil, nil, err
	}

	for i := range rows {
		rows[i].Status = SeatHeld
		rows[i].HeldBy = by
		rows[i].ExpiredAt = &expiresAt
	}
	return rows, &expiresAt, nil
}

// ReleaseHeldSeats drops a hold. Seats held by someone else are untouched and
// reported as an error.
func ReleaseHeldSeats(tx *gorm.DB, showtimeId uint, labels []string, by string) error {
	labels = NormalizeSeatLabels(labels)
	if len(labels) == 0 {
		return errors.New("no seats requested")
	}

	result := tx.Model(&model.ShowtimeSeat{}).
		Where("showtime_id = ? AND label IN ? AND status = ? AND held_by = ?",
			showtimeId, labels, SeatHeld, by).
		Updates(map[string]any{
			"status":     SeatAvailable,
			"held_by":    "",
			"expired_at": nil,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected != int64(len(labels)) {
		return errors.New("some seats are not held by you")
	}
	return nil
}

// ExpireHeldSeats returns timed-out holds to AVAILABLE and reports the
// affected showtimes so their seat maps can be re-broadcast.
func ExpireHeldSeats(db *gorm.DB) []uint {
	now := time.Now()

	var expired []model.ShowtimeSeat
	if err := db.
		Where("status = ? AND expired_at < ?", SeatHeld, now).
		Find(&expired).Error; err != nil || len(expired) == 0 {
		return nil
	}

	affected := make(map[uint]bool)
	for _, seat := range expired {
		err := db.Model(&model.ShowtimeSeat{}).
			Where("id = ? AND status = ?", seat.ID, SeatHeld).
			Updates(map[string]any{
				"status":     SeatAvailable,
				"held_by":    "",
				"expired_at": nil,
			}).Error
		if err != nil {
			continue
		}
		affected[seat.ShowtimeId] = true
	}

	showtimeIds := make([]uint, 0, len(affected))
	for id := range affected {
		showtimeIds = append(showtimeIds, id)
	}
	return showtimeIds
}
