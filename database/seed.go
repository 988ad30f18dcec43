package database

import (
	"log"
	"time"

	"movie_booking/constants"
	"movie_booking/model"

	"github.com/gosimple/slug"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func parseDate(dateStr string) time.Time {
	t, _ := time.Parse("2006-01-02", dateStr)
	return t
}

func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("admin123"), 10)
	hashed := string(bytes)
	if err != nil {
		log.Println("failed to hash seed password:", err)
		return
	}

	users := []model.User{
		{Username: "Administrator", Email: "admin@moviebooking.local", Password: hashed, Role: constants.ROLE_ADMIN, IsActive: true},
	}
	for _, user := range users {
		if err := db.Where(model.User{Email: user.Email}).FirstOrCreate(&user).Error; err != nil {
			log.Println("failed to seed user:", user.Email, "error:", err)
		}
	}

	theaters := []model.Theater{
		{
			Name: "Downtown Grand Cinema", Location: "Downtown Cairo",
			Amenities: "IMAX,VIP Seating,Dolby Atmos,Food Court",
			Screens:   6, Rows: 8, SeatsPerRow: 10, VipRows: "A,B", Capacity: 80,
		},
		{
			Name: "Nile View Multiplex", Location: "Zamalek",
			Amenities: "3D,Parking,Snack Bar",
			Screens:   4, Rows: 6, SeatsPerRow: 12, VipRows: "A", Capacity: 72,
		},
	}
	for _, theater := range theaters {
		theater.Slug = slug.Make(theater.Name)
		if err := db.Where(model.Theater{Name: theater.Name}).FirstOrCreate(&theater).Error; err != nil {
			log.Println("failed to seed theater:", theater.Name, "error:", err)
		}
	}

	movies := []model.Movie{
		{Title: "The Last Pharaoh", Genre: "Action", Duration: 142, Language: "Arabic",
			ReleaseDate: parseDate("2026-08-01"), Status: constants.MOVIE_NOW_SHOWING, Attributes: "action"},
		{Title: "Cairo Nights", Genre: "Comedy", Duration: 105, Language: "Arabic",
			ReleaseDate: parseDate("2026-08-15"), Status: constants.MOVIE_NOW_SHOWING, Attributes: "comedy"},
		{Title: "Silent Dunes", Genre: "Drama", Duration: 128, Language: "English",
			ReleaseDate: parseDate("2026-10-01"), Status: constants.MOVIE_COMING_SOON, Attributes: "drama"},
	}
	for _, movie := range movies {
		movie.Slug = slug.Make(movie.Title)
		if err := db.Where(model.Movie{Title: movie.Title}).FirstOrCreate(&movie).Error; err != nil {
			log.Println("failed to seed movie:", movie.Title, "error:", err)
		}
	}

	foodItems := []model.FoodItem{
		{Name: "Popcorn (Large)", Price: 5.0, Category: "snack", IsAvailable: true},
		{Name: "Nachos", Price: 6.0, Category: "snack", IsAvailable: true},
		{Name: "Soft Drink", Price: 3.0, Category: "beverage", IsAvailable: true},
		{Name: "Water", Price: 1.5, Category: "beverage", IsAvailable: true},
		{Name: "Movie Combo", Price: 9.0, Category: "combo", IsAvailable: true},
	}
	for _, item := range foodItems {
		if err := db.Where(model.FoodItem{Name: item.Name}).FirstOrCreate(&item).Error; err != nil {
			log.Println("failed to seed food item:", item.Name, "error:", err)
		}
	}
}
