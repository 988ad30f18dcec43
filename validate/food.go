package validate

import (
	"errors"
	"fmt"
	"strconv"

	"movie_booking/constants"
	"movie_booking/database"
	"movie_booking/model"
	"movie_booking/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateFoodItem() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateFoodItemInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		var existing model.FoodItem
		if err := database.DB.Where("name = ?", input.Name).First(&existing).Error; err == nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Food item already exists", fmt.Errorf("duplicate name"))
		}

		c.Locals("inputCreateFoodItem", input)
		return c.Next()
	}
}

func EditFoodItem(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.EditFoodItemInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		var item model.FoodItem
		if err := database.DB.First(&item, valueKey).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Food item not found", err)
		}

		c.Locals("inputEditFoodItem", input)
		c.Locals("foodItemId", uint(valueKey))
		return c.Next()
	}
}
