package main

import (
	"log"

	"movie_booking/config"
	"movie_booking/database"
	"movie_booking/handler"
	"movie_booking/helper"
	"movie_booking/notifier"
	"movie_booking/router"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	app := fiber.New(fiber.Config{
		AppName: "movie_booking",
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.Config("FRONTEND_URL", "http://localhost:5173"),
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	database.ConnectDB()

	notifier.Default.Register(notifier.EmailObserver{})
	notifier.Default.Register(notifier.SMSObserver{})
	notifier.Default.Register(notifier.AdminFeedObserver{DB: database.DB})

	helper.StartBookingScheduler()
	defer helper.StopBookingScheduler()
	helper.StartMovieStatusScheduler()
	defer helper.StopMovieStatusScheduler()
	handler.StartExpireSeatWorker()

	router.SetupRoutes(app)

	log.Fatal(app.Listen(":" + config.Config("PORT", "8002")))
}
