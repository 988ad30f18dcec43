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

func GetMovies(c *fiber.Ctx) error {
	db := database.DB

	filterInput := new(model.FilterMovie)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid filter", err)
	}

	condition := db.Model(&model.Movie{})
	if filterInput.SearchKey != "" {
		condition = condition.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(filterInput.SearchKey)+"%")
	}
	if filterInput.Genre != "" {
		condition = condition.Where("LOWER(genre) LIKE ?", "%"+strings.ToLower(filterInput.Genre)+"%")
	}
	if filterInput.Status != "" {
		condition = condition.Where("status = ?", filterInput.Status)
	}

	var totalCount int64
	condition.Count(&totalCount)

	var movies []model.Movie
	condition = utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)
	condition.Order("release_date DESC, id DESC").Find(&movies)

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       movies,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	})
}

func GetMovieBySlug(c *fiber.Ctx) error {
	db := database.DB
	movieSlug := c.Params("slug")

	var movie model.Movie
	if err := db.Where("slug = ?", movieSlug).First(&movie).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Movie not found", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, movie)
}

func CreateMovie(c *fiber.Ctx) error {
	db := database.DB

	input, ok := c.Locals("inputCreateMovie").(model.CreateMovieInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_LOCALS, errors.New("parse locals fail"))
	}

	newMovie := new(model.Movie)
	copier.Copy(&newMovie, &input)
	newMovie.Slug = helper.GenerateUniqueMovieSlug(db, input.Title)
	newMovie.Status = constants.MOVIE_COMING_SOON

	if err := db.Create(&newMovie).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, newMovie)
}

func EditMovie(c *fiber.Ctx) error {
	db := database.DB

	movieId := c.Locals("movieId").(uint)
	input, ok := c.Locals("inputEditMovie").(model.EditMovieInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_LOCALS, errors.New("parse locals fail"))
	}

	tx := db.Begin()

	var movie model.Movie
	if err := tx.First(&movie, movieId).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Movie not found", err)
	}

	copier.CopyWithOption(&movie, &input, copier.Option{IgnoreEmpty: true})
	if input.Title != nil && *input.Title != "" {
		movie.Slug = helper.GenerateUniqueMovieSlug(tx, *input.Title)
	}

	if err := tx.Save(&movie).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	tx.Commit()

	return utils.SuccessResponse(c, fiber.StatusOK, movie)
}

func DeleteMovie(c *fiber.Ctx) error {
	db := database.DB
	movieId := c.Locals("inputId").(int)

	var activeShowtimes int64
	db.Model(&model.Showtime{}).
		Where("movie_id = ? AND status = ?", movieId, constants.SHOWTIME_SCHEDULED).
		Count(&activeShowtimes)
	if activeShowtimes > 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Movie still has scheduled showtimes", errors.New("scheduled showtimes exist"))
	}

	if err := db.Delete(&model.Movie{}, movieId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Movie deleted")
}
