package handler

import (
	"errors"

	"movie_booking/constants"
	"movie_booking/database"
	"movie_booking/model"
	"movie_booking/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

func GetFoodItems(c *fiber.Ctx) error {
	db := database.DB

	condition := db.Model(&model.FoodItem{})
	if category := c.Query("category"); category != "" {
		condition = condition.Where("category = ?", category)
	}
	// Customers see only what is orderable; admins pass all=true.
	if c.Query("all") != "true" {
		condition = condition.Where("is_available = true")
	}

	var items []model.FoodItem
	condition.Order("category ASC, price ASC").Find(&items)

	return utils.SuccessResponse(c, fiber.StatusOK, items)
}

func CreateFoodItem(c *fiber.Ctx) error {
	db := database.DB

	input, ok := c.Locals("inputCreateFoodItem").(model.CreateFoodItemInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_LOCALS, errors.New("parse locals fail"))
	}

	newItem := new(model.FoodItem)
	copier.Copy(&newItem, &input)
	newItem.IsAvailable = true

	if err := db.Create(&newItem).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, newItem)
}

func EditFoodItem(c *fiber.Ctx) error {
	db := database.DB

	itemId := c.Locals("foodItemId").(uint)
	input, ok := c.Locals("inputEditFoodItem").(model.EditFoodItemInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_LOCALS, errors.New("parse locals fail"))
	}

	var item model.FoodItem
	if err := db.First(&item, itemId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Food item not found", err)
	}

	copier.CopyWithOption(&item, &input, copier.Option{IgnoreEmpty: true})
	if input.IsAvailable != nil {
		item.IsAvailable = *input.IsAvailable
	}

	if err := db.Save(&item).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, item)
}

func DeleteFoodItem(c *fiber.Ctx) error {
	db := database.DB
	itemId := c.Locals("inputId").(int)

	if err := db.Delete(&model.FoodItem{}, itemId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Food item deleted")
}
