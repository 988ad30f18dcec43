package validate

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"movie_booking/constants"
	"movie_booking/database"
	"movie_booking/model"
	"movie_booking/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateShowtime() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateShowtimeInput
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

		if input.StartTime.Before(time.Now()) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Showtime cannot start in the past", fmt.Errorf("invalid startTime"))
		}

		var movie model.Movie
		if err := database.DB.First(&movie, input.MovieId).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Movie not found", err)
		}

		var theater model.Theater
		if err := database.DB.First(&theater, input.TheaterId).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Theater not found", err)
		}
		if theater.IsActive != nil && !*theater.IsActive {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Theater is not active", fmt.Errorf("theater inactive"))
		}

		c.Locals("inputCreateShowtime", input)
		c.Locals("movie", movie)
		c.Locals("theater", theater)
		return c.Next()
	}
}

func EditShowtime(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.EditShowtimeInput
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

		var showtime model.Showtime
		if err := database.DB.First(&showtime, valueKey).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Showtime not found", err)
		}

		c.Locals("inputEditShowtime", input)
		c.Locals("showtimeId", uint(valueKey))
		return c.Next()
	}
}

func HoldSeats() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return parseBody[model.HoldSeatsInput](c, "inputHoldSeats")
	}
}
