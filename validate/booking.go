package validate

import (
	"fmt"

	"movie_booking/helper"
	"movie_booking/model"
	"movie_booking/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateBooking() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateBookingInput
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

		input.Seats = helper.NormalizeSeatLabels(input.Seats)
		if len(input.Seats) == 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "At least one seat is required", fmt.Errorf("empty seat list"))
		}

		if err := helper.ValidatePaymentDetails(input.PaymentMethod, input.PaymentDetails); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}

		c.Locals("inputCreateBooking", input)
		return c.Next()
	}
}

func CancelBooking() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return parseBody[model.CancelBookingInput](c, "inputCancelBooking")
	}
}
