package validate

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"movie_booking/constants"
	"movie_booking/database"
	"movie_booking/helper"
	"movie_booking/model"
	"movie_booking/utils"

	"github.com/gofiber/fiber/v2"
)

// vipRowsWithinLayout checks every configured VIP row letter falls inside the
// theater's row range (A upward).
func vipRowsWithinLayout(vipRows string, rows int) bool {
	for _, row := range helper.ParseRowList(vipRows) {
		if len(row) != 1 {
			return false
		}
		idx := int(row[0] - 'A')
		if idx < 0 || idx >= rows {
			return false
		}
	}
	return true
}

func CreateTheater() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateTheaterInput
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

		var existing model.Theater
		if err := database.DB.Where("name = ?", input.Name).First(&existing).Error; err == nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Theater already exists", fmt.Errorf("duplicate name"))
		}

		if input.VipRows != "" && !vipRowsWithinLayout(input.VipRows, input.Rows) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "VIP rows must be single letters within the layout", fmt.Errorf("invalid vipRows"))
		}

		c.Locals("inputCreateTheater", input)
		return c.Next()
	}
}

func EditTheater(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.EditTheaterInput
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

		var theater model.Theater
		if err := database.DB.First(&theater, valueKey).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Theater not found", err)
		}

		if input.VipRows != nil && strings.TrimSpace(*input.VipRows) != "" &&
			!vipRowsWithinLayout(*input.VipRows, theater.Rows) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "VIP rows must be single letters within the layout", fmt.Errorf("invalid vipRows"))
		}

		c.Locals("inputEditTheater", input)
		c.Locals("theaterId", uint(valueKey))
		return c.Next()
	}
}
