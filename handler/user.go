package handler

import (
	"errors"
	"strings"
	"time"

	"movie_booking/constants"
	"movie_booking/database"
	"movie_booking/helper"
	"movie_booking/model"
	"movie_booking/utils"

	"github.com/gofiber/fiber/v2"
)

func GetUsers(c *fiber.Ctx) error {
	db := database.DB

	filterInput := new(model.FilterUser)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid filter", err)
	}

	condition := db.Model(&model.User{})
	if filterInput.SearchKey != "" {
		key := "%" + strings.ToLower(filterInput.SearchKey) + "%"
		condition = condition.Where("LOWER(username) LIKE ? OR LOWER(email) LIKE ?", key, key)
	}
	if filterInput.Role != "" {
		condition = condition.Where("role = ?", filterInput.Role)
	}
	if filterInput.Active != nil {
		condition = condition.Where("is_active = ?", *filterInput.Active)
	}

	var totalCount int64
	condition.Count(&totalCount)

	var users []model.User
	condition = utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)
	condition.Order("id DESC").Find(&users)

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       users,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	})
}

func GetUserById(c *fiber.Ctx) error {
	db := database.DB
	userId := c.Locals("inputId").(int)

	var user model.User
	if err := db.First(&user, userId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "User not found", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, user)
}

// ToggleUserActive flips the account's active flag. Deactivated users keep
// their history but can no longer authenticate.
func ToggleUserActive(c *fiber.Ctx) error {
	db := database.DB
	userId := c.Locals("inputId").(int)

	var user model.User
	if err := db.First(&user, userId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "User not found", err)
	}

	if user.Role == constants.ROLE_ADMIN {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Cannot deactivate an admin account", errors.New("admin account"))
	}

	if err := db.Model(&user).Update("is_active", !user.IsActive).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	user.IsActive = !user.IsActive
	return utils.SuccessResponse(c, fiber.StatusOK, user)
}

// GetUserBookings returns the caller's bookings split into upcoming and
// history. Admins may pass another user's id.
func GetUserBookings(c *fiber.Ctx) error {
	db := database.DB

	user, _ := helper.GetUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized", errors.New("no user"))
	}

	targetId := user.ID
	if id, ok := c.Locals("inputId").(int); ok {
		if uint(id) != user.ID && !helper.IsAdmin(user) {
			return utils.ErrorResponse(c, fiber.StatusForbidden, "Cannot view another user's bookings", errors.New("forbidden"))
		}
		targetId = uint(id)
	}

	var bookings []model.Booking
	if err := db.
		Preload("Showtime").
		Preload("Showtime.Movie").
		Preload("Showtime.Theater").
		Where("user_id = ?", targetId).
		Find(&bookings).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	upcoming, history := helper.SplitBookings(bookings, time.Now())

	return utils.SuccessResponse(c, fiber.StatusOK, model.UserBookingsResponse{
		Upcoming: upcoming,
		History:  history,
	})
}
