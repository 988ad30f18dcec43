package handler

import (
	"errors"

	"movie_booking/constants"
	"movie_booking/database"
	"movie_booking/helper"
	"movie_booking/model"
	"movie_booking/utils"

	"github.com/gofiber/fiber/v2"
)

// GetNotifications lists the activity feed. Admins see everything; users only
// their own rows.
func GetNotifications(c *fiber.Ctx) error {
	db := database.DB

	user, _ := helper.GetUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized", errors.New("no user"))
	}

	var pagination model.Pagination
	if err := c.QueryParser(&pagination); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid filter", err)
	}

	condition := db.Model(&model.Notification{})
	if !helper.IsAdmin(user) {
		condition = condition.Where("user_id = ?", user.ID)
	}
	if c.Query("unread") == "true" {
		condition = condition.Where("is_read = false")
	}

	var totalCount int64
	condition.Count(&totalCount)

	var notifications []model.Notification
	condition = utils.ApplyPagination(condition, pagination.Limit, pagination.Page)
	condition.Order("id DESC").Find(&notifications)

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       notifications,
		Limit:      pagination.Limit,
		Page:       pagination.Page,
		TotalCount: totalCount,
	})
}

func MarkNotificationRead(c *fiber.Ctx) error {
	db := database.DB
	notificationId := c.Locals("inputId").(int)

	user, _ := helper.GetUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized", errors.New("no user"))
	}

	var notification model.Notification
	if err := db.First(&notification, notificationId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Notification not found", err)
	}
	if notification.UserId != user.ID && !helper.IsAdmin(user) {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Not your notification", errors.New("forbidden"))
	}

	if err := db.Model(&notification).Update("is_read", true).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	notification.IsRead = true
	return utils.SuccessResponse(c, fiber.StatusOK, notification)
}
