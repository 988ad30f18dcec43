package router

import (
	"movie_booking/handler"
	"movie_booking/middleware"
	"movie_booking/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/register", validate.Register(), handler.Register)
	auth.Post("/login", validate.Login(), handler.Login)
	auth.Post("/logout", handler.Logout)
	auth.Post("/refresh-token", handler.RefreshToken)
	auth.Get("/me", middleware.Protected(), handler.Me)
	auth.Post("/change-password", middleware.Protected(), validate.ChangePassword(), handler.ChangePassword)
	auth.Post("/forgot-password", validate.ForgotPassword(), handler.ForgotPassword)
	auth.Post("/reset-password", validate.ResetPassword(), handler.ResetPassword)

	user := v1.Group("/users", logger.New())
	user.Get("/", middleware.Protected(), middleware.AdminOnly(), handler.GetUsers)
	user.Get("/:userId", middleware.Protected(), middleware.AdminOnly(), validate.GetById("userId"), handler.GetUserById)
	user.Patch("/:userId/active", middleware.Protected(), middleware.AdminOnly(), validate.GetById("userId"), handler.ToggleUserActive)
	user.Get("/:userId/bookings", middleware.Protected(), validate.GetById("userId"), handler.GetUserBookings)

	movie := v1.Group("/movies", logger.New())
	movie.Get("/", handler.GetMovies)
	movie.Get("/:slug", handler.GetMovieBySlug)
	movie.Post("/", middleware.Protected(), middleware.AdminOnly(), validate.CreateMovie(), handler.CreateMovie)
	movie.Put("/:movieId", middleware.Protected(), middleware.AdminOnly(), validate.EditMovie("movieId"), handler.EditMovie)
	movie.Delete("/:movieId", middleware.Protected(), middleware.AdminOnly(), validate.GetById("movieId"), handler.DeleteMovie)

	theater := v1.Group("/theaters", logger.New())
	theater.Get("/", handler.GetTheaters)
	theater.Get("/:slug", handler.GetTheaterBySlug)
	theater.Post("/", middleware.Protected(), middleware.AdminOnly(), validate.CreateTheater(), handler.CreateTheater)
	theater.Put("/:theaterId", middleware.Protected(), middleware.AdminOnly(), validate.EditTheater("theaterId"), handler.EditTheater)
	theater.Patch("/:theaterId/deactivate", middleware.Protected(), middleware.AdminOnly(), validate.GetById("theaterId"), handler.DeactivateTheater)

	showtime := v1.Group("/showtimes", logger.New())
	showtime.Get("/", handler.GetShowtimes)
	showtime.Get("/:code", handler.GetShowtimeByCode)
	showtime.Get("/:code/seats", middleware.OptionalJWT(), handler.GetShowtimeSeats)
	showtime.Post("/", middleware.Protected(), middleware.AdminOnly(), validate.CreateShowtime(), handler.CreateShowtime)
	showtime.Put("/:showtimeId", middleware.Protected(), middleware.AdminOnly(), validate.EditShowtime("showtimeId"), handler.EditShowtime)
	showtime.Patch("/:showtimeId/cancel", middleware.Protected(), middleware.AdminOnly(), validate.GetById("showtimeId"), handler.CancelShowtime)
	showtime.Post("/:code/hold", middleware.Protected(), validate.HoldSeats(), handler.HoldSeats)
	showtime.Post("/:code/release", middleware.Protected(), validate.HoldSeats(), handler.ReleaseHeldSeats)

	// Live seat map stream.
	v1.Get("/ws/showtimes/:id/seats", websocket.New(handler.SeatWebsocket))

	booking := v1.Group("/bookings", logger.New())
	booking.Get("/", middleware.Protected(), middleware.AdminOnly(), handler.GetBookings)
	booking.Get("/my", middleware.Protected(), handler.MyBookings)
	booking.Get("/:code", middleware.Protected(), handler.GetBookingByCode)
	booking.Post("/", middleware.Protected(), validate.CreateBooking(), handler.CreateBooking)
	booking.Patch("/:code/cancel", middleware.Protected(), validate.CancelBooking(), handler.CancelBooking)
	booking.Delete("/:bookingId", middleware.Protected(), middleware.AdminOnly(), validate.GetById("bookingId"), handler.DeleteBooking)

	payment := v1.Group("/payments", logger.New())
	payment.Get("/methods", handler.GetPaymentMethods)
	payment.Get("/", middleware.Protected(), middleware.AdminOnly(), handler.GetPayments)
	payment.Post("/:paymentId/refund", middleware.Protected(), middleware.AdminOnly(), validate.GetById("paymentId"), handler.RefundPayment)

	food := v1.Group("/food", logger.New())
	food.Get("/", handler.GetFoodItems)
	food.Post("/", middleware.Protected(), middleware.AdminOnly(), validate.CreateFoodItem(), handler.CreateFoodItem)
	food.Put("/:foodId", middleware.Protected(), middleware.AdminOnly(), validate.EditFoodItem("foodId"), handler.EditFoodItem)
	food.Delete("/:foodId", middleware.Protected(), middleware.AdminOnly(), validate.GetById("foodId"), handler.DeleteFoodItem)

	notification := v1.Group("/notifications", logger.New())
	notification.Get("/", middleware.Protected(), handler.GetNotifications)
	notification.Patch("/:notificationId/read", middleware.Protected(), validate.GetById("notificationId"), handler.MarkNotificationRead)
}
