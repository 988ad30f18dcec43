package handler

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"movie_booking/constants"
	"movie_booking/database"
	"movie_booking/helper"
	"movie_booking/model"
	"movie_booking/notifier"
	"movie_booking/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func joinFoodIds(ids []uint) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatUint(uint64(id), 10)
	}
	return strings.Join(parts, ",")
}

// CreateBooking runs the whole purchase in one transaction: reserve the
// seats, price the selection, settle the payment, persist booking and payment
// rows. Any failure rolls everything back; a declined payment additionally
// leaves a FAILED payment attempt on record.
func CreateBooking(c *fiber.Ctx) error {
	db := database.DB

	input, ok := c.Locals("inputCreateBooking").(model.CreateBookingInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_LOCALS, errors.New("parse locals fail"))
	}

	user, _ := helper.GetUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized", errors.New("no user"))
	}
	heldBy := fmt.Sprintf("USER_%d", user.ID)

	tx := db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var showtime model.Showtime
	if err := tx.Preload("Movie").Preload("Theater").
		First(&showtime, input.ShowtimeId).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Showtime not found", err)
	}
	if showtime.Status != constants.SHOWTIME_SCHEDULED {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Showtime is not open for booking", errors.New("showtime not scheduled"))
	}
	if showtime.StartTime.Before(time.Now()) {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Showtime already started", errors.New("showtime in the past"))
	}

	seats, err := helper.ReserveSeats(tx, showtime.ID, input.Seats, heldBy)
	if err != nil {
		tx.Rollback()
		var conflict *helper.SeatConflictError
		if errors.As(err, &conflict) {
			return utils.ErrorResponse(c, fiber.StatusConflict, err.Error(), err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot reserve seats", err)
	}

	var foodItems []model.FoodItem
	if len(input.FoodOptions) > 0 {
		if err := tx.Where("id IN ? AND is_available = true", input.FoodOptions).
			Find(&foodItems).Error; err != nil {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		if len(foodItems) != len(input.FoodOptions) {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "One or more food items are unavailable", errors.New("food item missing"))
		}
	}

	quote := helper.BuildQuote(showtime, seats, input.VipExperience, input.ParkingPass, foodItems)

	result := helper.SettlePayment(input.PaymentMethod, quote.Total, input.PaymentDetails)
	if !result.Success {
		tx.Rollback()

		// The failed attempt is kept for audit even though the booking is not.
		attempt := helper.NewFailedPaymentAttempt(user.ID, showtime.ID, input.PaymentMethod, quote.Total, result.Reason)
		if err := db.Create(&attempt).Error; err != nil {
			log.Printf("failed to record payment attempt: %v", err)
		}

		return utils.ErrorResponse(c, fiber.StatusPaymentRequired, result.Reason, errors.New("payment failed"))
	}

	labels := make([]string, len(seats))
	for i, seat := range seats {
		labels[i] = seat.Label
	}

	booking := model.Booking{
		PublicCode:    "BKG-" + uuid.New().String()[:8],
		UserId:        user.ID,
		ShowtimeId:    showtime.ID,
		SeatLabels:    strings.Join(labels, ","),
		TotalPrice:    quote.Total,
		Description:   quote.Description,
		Status:        constants.BOOKING_CONFIRMED,
		PaymentStatus: constants.PAYMENT_COMPLETED,
		PaymentMethod: input.PaymentMethod,
		VipExperience: input.VipExperience,
		ParkingPass:   input.ParkingPass,
		FoodItemIds:   joinFoodIds(input.FoodOptions),
	}
	if err := tx.Create(&booking).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	payment := model.Payment{
		BookingId:     &booking.ID,
		UserId:        user.ID,
		ShowtimeId:    showtime.ID,
		Amount:        quote.Total,
		Method:        input.PaymentMethod,
		Status:        constants.PAYMENT_COMPLETED,
		TransactionId: &result.TransactionId,
	}
	if err := tx.Create(&payment).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	tx.Commit()

	PublishSeatMap(showtime.ID)

	notifier.Default.Publish(notifier.Event{
		Type:        notifier.EventBookingConfirmed,
		BookingCode: booking.PublicCode,
		UserId:      user.ID,
		UserEmail:   user.Email,
		UserPhone:   user.Phone,
		Title:       "Booking confirmed",
		Message:     fmt.Sprintf("Booking %s confirmed: %s, seats %s", booking.PublicCode, showtime.Movie.Title, booking.SeatLabels),
		Payload: map[string]any{
			"confirmation": utils.BookingConfirmationData{
				BookingCode:   booking.PublicCode,
				MovieTitle:    showtime.Movie.Title,
				TheaterName:   showtime.Theater.Name,
				Showtime:      showtime.StartTime.Format("02/01/2006 15:04"),
				Seats:         strings.Join(labels, ", "),
				TotalPrice:    quote.Total,
				Description:   quote.Description,
				PaymentMethod: input.PaymentMethod,
				DetailLink:    fmt.Sprintf("/bookings/%s", booking.PublicCode),
			},
		},
	})

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"booking": booking,
		"payment": payment,
		"quote":   quote,
	})
}

// GetBookingByCode returns the booking with its check-in QR. Owner or admin
// only.
func GetBookingByCode(c *fiber.Ctx) error {
	db := database.DB
	code := c.Params("code")

	user, _ := helper.GetUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized", errors.New("no user"))
	}

	var booking model.Booking
	if err := db.
		Preload("Showtime").
		Preload("Showtime.Movie").
		Preload("Showtime.Theater").
		Preload("Payments").
		Where("public_code = ?", code).First(&booking).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Booking not found", err)
	}

	if booking.UserId != user.ID && !helper.IsAdmin(user) {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Not your booking", errors.New("forbidden"))
	}

	qr, err := utils.GenerateQRCodeDataURI(booking.PublicCode, 256)
	if err != nil {
		qr = ""
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"booking":  booking,
		"seats":    strings.Split(booking.SeatLabels, ","),
		"payments": booking.Payments,
		"qrCode":   qr,
	})
}

// CancelBooking releases the seats and marks the booking cancelled. Only
// upcoming confirmed bookings qualify; cancelling twice is a conflict.
func CancelBooking(c *fiber.Ctx) error {
	db := database.DB
	code := c.Params("code")

	input, _ := c.Locals("inputCancelBooking").(model.CancelBookingInput)

	user, _ := helper.GetUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized", errors.New("no user"))
	}

	tx := db.Begin()

	var booking model.Booking
	if err := tx.Preload("Showtime").Preload("Showtime.Movie").
		Where("public_code = ?", code).First(&booking).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Booking not found", err)
	}

	if booking.UserId != user.ID && !helper.IsAdmin(user) {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Not your booking", errors.New("forbidden"))
	}
	if booking.Status == constants.BOOKING_CANCELLED {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusConflict, "Booking already cancelled", errors.New("already cancelled"))
	}
	if booking.Status == constants.BOOKING_COMPLETED {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Completed bookings cannot be cancelled", errors.New("booking completed"))
	}
	if booking.Showtime.StartTime.Before(time.Now()) {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Showtime already started", errors.New("showtime in the past"))
	}

	labels := strings.Split(booking.SeatLabels, ",")
	if err := helper.ReleaseSeats(tx, booking.ShowtimeId, labels); err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot release seats", err)
	}

	now := time.Now()
	booking.Status = constants.BOOKING_CANCELLED
	booking.CancelledAt = &now

	refunded := false
	if input.RefundRequested {
		var payment model.Payment
		err := tx.Where("booking_id = ? AND status = ?", booking.ID, constants.PAYMENT_COMPLETED).
			First(&payment).Error
		if err == nil {
			payment.Status = constants.PAYMENT_REFUNDED
			payment.RefundedAt = &now
			if err := tx.Save(&payment).Error; err != nil {
				tx.Rollback()
				return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
			}
			booking.PaymentStatus = constants.PAYMENT_REFUNDED
			refunded = true
		}
	}

	if err := tx.Save(&booking).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	tx.Commit()

	PublishSeatMap(booking.ShowtimeId)

	message := fmt.Sprintf("Booking %s cancelled", booking.PublicCode)
	if refunded {
		message += "; payment refunded"
	}
	notifier.Default.Publish(notifier.Event{
		Type:        notifier.EventBookingCancelled,
		BookingCode: booking.PublicCode,
		UserId:      booking.UserId,
		UserEmail:   user.Email,
		UserPhone:   user.Phone,
		Title:       "Booking cancelled",
		Message:     message,
	})

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"booking":         booking,
		"refundRequested": input.RefundRequested,
		"refunded":        refunded,
	})
}

// DeleteBooking removes a finished record entirely. Active bookings must be
// cancelled first so their seats are released.
func DeleteBooking(c *fiber.Ctx) error {
	db := database.DB
	bookingId := c.Locals("inputId").(int)

	var booking model.Booking
	if err := db.First(&booking, bookingId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Booking not found", err)
	}
	if booking.Status == constants.BOOKING_CONFIRMED {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Cancel the booking before deleting it", errors.New("booking still active"))
	}

	tx := db.Begin()
	if err := tx.Where("booking_id = ?", booking.ID).Delete(&model.Payment{}).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := tx.Delete(&booking).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	tx.Commit()

	return utils.SuccessResponse(c, fiber.StatusOK, "Booking deleted")
}

// GetBookings is the admin listing across all users.
func GetBookings(c *fiber.Ctx) error {
	db := database.DB

	var pagination model.Pagination
	if err := c.QueryParser(&pagination); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid filter", err)
	}

	condition := db.Model(&model.Booking{})
	if status := c.Query("status"); status != "" {
		condition = condition.Where("status = ?", status)
	}
	if showtimeId := c.QueryInt("showtimeId"); showtimeId > 0 {
		condition = condition.Where("showtime_id = ?", showtimeId)
	}

	var totalCount int64
	condition.Count(&totalCount)

	var bookings []model.Booking
	condition = utils.ApplyPagination(condition, pagination.Limit, pagination.Page)
	condition.Preload("Showtime").Preload("Showtime.Movie").Preload("User").
		Order("id DESC").Find(&bookings)

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       bookings,
		Limit:      pagination.Limit,
		Page:       pagination.Page,
		TotalCount: totalCount,
	})
}

// MyBookings is the authenticated user's split listing.
func MyBookings(c *fiber.Ctx) error {
	return GetUserBookings(c)
}
