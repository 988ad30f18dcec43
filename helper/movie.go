package helper

import (
	"log"
	"time"

	"movie_booking/constants"
	"movie_booking/database"
	"movie_booking/model"

	"github.com/go-co-op/gocron/v2"
)

var movieScheduler gocron.Scheduler

// AutoUpdateMovieStatus advances every movie through
// COMING_SOON -> NOW_SHOWING -> ENDED based on its release window.
func AutoUpdateMovieStatus() {
	log.Println("[CRON] AutoUpdateMovieStatus triggered")

	db := database.DB
	today := time.Now().UTC().Truncate(24 * time.Hour)

	var movies []model.Movie
	if err := db.Find(&movies).Error; err != nil {
		log.Printf("failed to scan movies: %v", err)
		return
	}

	for _, movie := range movies {
		updated := false

		releaseDate := movie.ReleaseDate.UTC().Truncate(24 * time.Hour)
		if !today.Before(releaseDate) && movie.Status == constants.MOVIE_COMING_SOON {
			movie.Status = constants.MOVIE_NOW_SHOWING
			updated = true
		}

		if movie.EndDate != nil {
			endDate := movie.EndDate.UTC().Truncate(24 * time.Hour)
			if today.After(endDate) && movie.Status == constants.MOVIE_NOW_SHOWING {
				movie.Status = constants.MOVIE_ENDED
				updated = true
			}
		}

		if updated {
			if err := db.Save(&movie).Error; err != nil {
				log.Printf("failed to update movie '%s' status: %v", movie.Title, err)
			} else {
				log.Printf("Movie '%s' status changed to %s", movie.Title, movie.Status)
			}
		}
	}
}

func StartMovieStatusScheduler() {
	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.UTC),
	)
	if err != nil {
		log.Fatal(err)
	}

	movieScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(0, 5, 0),
			),
		),
		gocron.NewTask(AutoUpdateMovieStatus),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("Movie status scheduler started (00:05 UTC)")
}

func StopMovieStatusScheduler() {
	if movieScheduler != nil {
		if err := movieScheduler.Shutdown(); err != nil {
			log.Printf("failed to stop movie status scheduler: %v", err)
		}
	}
}
