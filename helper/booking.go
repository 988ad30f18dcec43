package helper

import (
	"log"
	"sort"
	"time"

	"movie_booking/constants"
	"movie_booking/database"
	"movie_booking/model"

	"github.com/robfig/cron/v3"
)

// SplitBookings partitions a user's bookings for the profile view. Upcoming
// holds non-cancelled bookings whose showtime has not started yet, soonest
// first; everything else is history, most recent first.
func SplitBookings(bookings []model.Booking, now time.Time) ([]model.Booking, []model.Booking) {
	upcoming := []model.Booking{}
	history := []model.Booking{}

	for _, b := range bookings {
		if b.Status != constants.BOOKING_CANCELLED && !b.Showtime.StartTime.Before(now) {
			upcoming = append(upcoming, b)
		} else {
			history = append(history, b)
		}
	}

	sort.Slice(upcoming, func(i, j int) bool {
		return upcoming[i].Showtime.StartTime.Before(upcoming[j].Showtime.StartTime)
	})
	sort.Slice(history, func(i, j int) bool {
		return history[i].Showtime.StartTime.After(history[j].Showtime.StartTime)
	})

	return upcoming, history
}

var bookingScheduler *cron.Cron

func StartBookingScheduler() {
	bookingScheduler = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	_, err := bookingScheduler.AddFunc("*/5 * * * *", func() {
		CompleteFinishedBookings()
		ExpireFinishedShowtimes()
	})
	if err != nil {
		log.Printf("failed to start booking scheduler: %v", err)
		return
	}

	bookingScheduler.Start()
	log.Println("Booking scheduler started (every 5 minutes)")
}

func StopBookingScheduler() {
	if bookingScheduler != nil {
		bookingScheduler.Stop()
		log.Println("Booking scheduler stopped")
	}
}

// CompleteFinishedBookings advisory-transitions confirmed bookings whose
// showtime has ended. Completed is terminal.
func CompleteFinishedBookings() {
	now := time.Now()
	result := database.DB.Model(&model.Booking{}).
		Where("status = ? AND showtime_id IN (?)",
			constants.BOOKING_CONFIRMED,
			database.DB.Model(&model.Showtime{}).Select("id").Where("end_time < ?", now)).
		Update("status", constants.BOOKING_COMPLETED)

	if result.Error != nil {
		log.Printf("failed to complete finished bookings: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("Marked %d booking(s) as completed", result.RowsAffected)
	}
}

func ExpireFinishedShowtimes() {
	now := time.Now()
	result := database.DB.Model(&model.Showtime{}).
		Where("status = ? AND end_time < ?", constants.SHOWTIME_SCHEDULED, now).
		Update("status", constants.SHOWTIME_EXPIRED)

	if result.Error != nil {
		log.Printf("failed to expire showtimes: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("Marked %d showtime(s) as expired", result.RowsAffected)
	}
}
