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

func CreateMovie() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateMovieInput
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

		var existing model.Movie
		if err := database.DB.Where("title = ?", input.Title).First(&existing).Error; err == nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Movie already exists", fmt.Errorf("duplicate title"))
		}

		if input.EndDate != nil && input.EndDate.Before(input.ReleaseDate) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "End date cannot precede the release date", fmt.Errorf("invalid endDate"))
		}

		c.Locals("inputCreateMovie", input)
		return c.Next()
	}
}

func EditMovie(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.EditMovieInput
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

		var movie model.Movie
		if err := database.DB.First(&movie, valueKey).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Movie not found", err)
		}

		c.Locals("inputEditMovie", input)
		c.Locals("movieId", uint(valueKey))
		return c.Next()
	}
}
