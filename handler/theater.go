package handler

import (
	"errors"
	"strings"

	"movie_booking/constants"
	"movie_booking/database"
	"movie_booking/helper"
	"movie_booking/model"
	"movie_booking/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

func GetTheaters(c *fiber.Ctx) error {
	db := database.DB

	filterInput := new(model.FilterTheater)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid filter", err)
	}

	condition := db.Model(&model.Theater{})
	if filterInput.SearchKey != "" {
		condition = condition.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filterInput.SearchKey)+"%")
	}
	if filterInput.Location != "" {
		condition = condition.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(filterInput.Location)+"%")
	}
	if filterInput.Active != nil {
		condition = condition.Where("is_active = ?", *filterInput.Active)
	}

	var totalCount int64
	condition.Count(&totalCount)

	var theaters []model.Theater
	condition = utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)
	condition.Order("id ASC").Find(&theaters)

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       theaters,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	})
}

func GetTheaterBySlug(c *fiber.Ctx) error {
	db := database.DB
	theaterSlug := c.Params("slug")

	var theater model.Theater
	if err := db.Where("slug = ?", theaterSlug).First(&theater).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Theater not found", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, theater)
}

func CreateTheater(c *fiber.Ctx) error {
	db := database.DB

	input, ok := c.Locals("inputCreateTheater").(model.CreateTheaterInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_LOCALS, errors.New("parse locals fail"))
	}

	newTheater := new(model.Theater)
	copier.Copy(&newTheater, &input)
	newTheater.Slug = helper.GenerateUniqueTheaterSlug(db, input.Name)
	newTheater.Capacity = input.Rows * input.SeatsPerRow
	if newTheater.Screens == 0 {
		newTheater.Screens = 1
	}
	newTheater.IsActive = utils.Ptr(true)

	if err := db.Create(&newTheater).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, newTheater)
}

// EditTheater updates metadata only. Rows and seatsPerRow are frozen once
// created; existing showtime seat maps depend on them.
func EditTheater(c *fiber.Ctx) error {
	db := database.DB

	theaterId := c.Locals("theaterId").(uint)
	input, ok := c.Locals("inputEditTheater").(model.EditTheaterInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_LOCALS, errors.New("parse locals fail"))
	}

	tx := db.Begin()

	var theater model.Theater
	if err := tx.First(&theater, theaterId).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Theater not found", err)
	}

	copier.CopyWithOption(&theater, &input, copier.Option{IgnoreEmpty: true})
	if input.Name != nil && *input.Name != "" {
		theater.Slug = helper.GenerateUniqueTheaterSlug(tx, *input.Name)
	}
	if input.IsActive != nil {
		theater.IsActive = input.IsActive
	}

	if err := tx.Save(&theater).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	tx.Commit()

	return utils.SuccessResponse(c, fiber.StatusOK, theater)
}

// DeactivateTheater soft-disables the theater instead of deleting it so past
// bookings keep their references.
func DeactivateTheater(c *fiber.Ctx) error {
	db := database.DB
	theaterId := c.Locals("inputId").(int)

	var theater model.Theater
	if err := db.First(&theater, theaterId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Theater not found", err)
	}

	var activeShowtimes int64
	db.Model(&model.Showtime{}).
		Where("theater_id = ? AND status = ?", theaterId, constants.SHOWTIME_SCHEDULED).
		Count(&activeShowtimes)
	if activeShowtimes > 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Theater still has scheduled showtimes", errors.New("scheduled showtimes exist"))
	}

	if err := db.Model(&theater).Update("is_active", false).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Theater deactivated")
}
