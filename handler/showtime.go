package handler

import (
	"errors"
	"fmt"
	"time"

	"movie_booking/constants"
	"movie_booking/database"
	"movie_booking/helper"
	"movie_booking/model"
	"movie_booking/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func GetShowtimes(c *fiber.Ctx) error {
	db := database.DB

	filterInput := new(model.FilterShowtime)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid filter", err)
	}

	condition := db.Model(&model.Showtime{})
	if filterInput.MovieId > 0 {
		condition = condition.Where("movie_id = ?", filterInput.MovieId)
	}
	if filterInput.TheaterId > 0 {
		condition = condition.Where("theater_id = ?", filterInput.TheaterId)
	}
	if filterInput.Status != "" {
		condition = condition.Where("status = ?", filterInput.Status)
	}
	if filterInput.StartDate != "" {
		if day, err := time.Parse("2006-01-02", filterInput.StartDate); err == nil {
			condition = condition.Where("start_time >= ?", day)
		}
	}
	if filterInput.EndDate != "" {
		if day, err := time.Parse("2006-01-02", filterInput.EndDate); err == nil {
			condition = condition.Where("start_time < ?", day.Add(24*time.Hour))
		}
	}

	var totalCount int64
	condition.Count(&totalCount)

	var showtimes []model.Showtime
	condition = utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)
	condition.Preload("Movie").Preload("Theater").
		Order("start_time ASC").Find(&showtimes)

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       showtimes,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	})
}

func GetShowtimeByCode(c *fiber.Ctx) error {
	db := database.DB
	code := c.Params("code")

	var showtime model.Showtime
	if err := db.Preload("Movie").Preload("Theater").
		Where("public_code = ?", code).First(&showtime).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Showtime not found", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, showtime)
}

// GetShowtimeSeats returns the full seat map sorted row by row. Logged-in
// callers additionally get the labels of their own active holds.
func GetShowtimeSeats(c *fiber.Ctx) error {
	db := database.DB
	code := c.Params("code")

	var showtime model.Showtime
	if err := db.Where("public_code = ?", code).First(&showtime).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Showtime not found", err)
	}

	var seats []model.ShowtimeSeat
	if err := db.
		Where("showtime_id = ?", showtime.ID).
		Order("row ASC, number ASC").
		Find(&seats).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	response := fiber.Map{
		"showtime": showtime,
		"seats":    seats,
	}
	if user, _ := helper.GetUserFromToken(c); user != nil {
		response["yourHeldSeats"] = helper.SeatsHeldBy(seats, fmt.Sprintf("USER_%d", user.ID), time.Now())
	}

	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

// CreateShowtime persists the showtime and generates its full seat map from
// the theater layout in one transaction.
func CreateShowtime(c *fiber.Ctx) error {
	db := database.DB

	input, ok := c.Locals("inputCreateShowtime").(model.CreateShowtimeInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_LOCALS, errors.New("parse locals fail"))
	}
	movie := c.Locals("movie").(model.Movie)
	theater := c.Locals("theater").(model.Theater)

	vipPrice := input.VipPrice
	if vipPrice == 0 {
		vipPrice = input.Price * 1.5
	}

	newShowtime := model.Showtime{
		PublicCode: "SHW-" + uuid.New().String()[:8],
		MovieId:    movie.ID,
		TheaterId:  theater.ID,
		StartTime:  input.StartTime,
		EndTime:    input.StartTime.Add(time.Duration(movie.Duration) * time.Minute),
		Price:      input.Price,
		VipPrice:   vipPrice,
		Screen:     input.Screen,
		Status:     constants.SHOWTIME_SCHEDULED,
	}
	if newShowtime.Screen == "" {
		newShowtime.Screen = "Screen 1"
	}

	tx := db.Begin()
	if err := tx.Create(&newShowtime).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}
	if err := helper.BuildShowtimeSeats(tx, &newShowtime, &theater); err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to generate seat map", err)
	}
	tx.Commit()

	return utils.SuccessResponse(c, fiber.StatusCreated, newShowtime)
}

func EditShowtime(c *fiber.Ctx) error {
	db := database.DB

	showtimeId := c.Locals("showtimeId").(uint)
	input, ok := c.Locals("inputEditShowtime").(model.EditShowtimeInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_LOCALS, errors.New("parse locals fail"))
	}

	tx := db.Begin()

	var showtime model.Showtime
	if err := tx.Preload("Movie").First(&showtime, showtimeId).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Showtime not found", err)
	}

	var bookedCount int64
	tx.Model(&model.ShowtimeSeat{}).
		Where("showtime_id = ? AND status = ?", showtimeId, helper.SeatBooked).
		Count(&bookedCount)
	if input.StartTime != nil && bookedCount > 0 {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Cannot reschedule a showtime with existing bookings", errors.New("booked seats exist"))
	}

	if input.StartTime != nil {
		showtime.StartTime = *input.StartTime
		showtime.EndTime = input.StartTime.Add(time.Duration(showtime.Movie.Duration) * time.Minute)
	}
	if input.Price != nil {
		showtime.Price = *input.Price
	}
	if input.VipPrice != nil {
		showtime.VipPrice = *input.VipPrice
	}
	if input.Screen != nil {
		showtime.Screen = *input.Screen
	}

	if err := tx.Save(&showtime).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	tx.Commit()

	return utils.SuccessResponse(c, fiber.StatusOK, showtime)
}

// CancelShowtime marks the showtime cancelled. Refusal when any seat is
// booked keeps the admin from orphaning paid bookings.
func CancelShowtime(c *fiber.Ctx) error {
	db := database.DB
	showtimeId := c.Locals("inputId").(int)

	var showtime model.Showtime
	if err := db.First(&showtime, showtimeId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Showtime not found", err)
	}
	if showtime.Status == constants.SHOWTIME_CANCELLED {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Showtime already cancelled", errors.New("already cancelled"))
	}

	var bookedCount int64
	db.Model(&model.ShowtimeSeat{}).
		Where("showtime_id = ? AND status = ?", showtimeId, helper.SeatBooked).
		Count(&bookedCount)
	if bookedCount > 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Showtime has active bookings; cancel those first", errors.New("booked seats exist"))
	}

	if err := db.Model(&showtime).Update("status", constants.SHOWTIME_CANCELLED).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Showtime cancelled")
}
