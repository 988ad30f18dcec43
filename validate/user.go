package validate

import (
	"fmt"

	"movie_booking/helper"
	"movie_booking/model"
	"movie_booking/utils"

	"github.com/gofiber/fiber/v2"
)

func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.RegisterUserInput
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

		existing, err := helper.GetUserByEmail(input.Email)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Database error", err)
		}
		if existing != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Email already registered", fmt.Errorf("duplicate email"))
		}

		c.Locals("inputRegister", input)
		return c.Next()
	}
}

func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return parseBody[model.LoginInput](c, "inputLogin")
	}
}

func ChangePassword() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return parseBody[model.ChangePasswordInput](c, "inputChangePassword")
	}
}

func ForgotPassword() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return parseBody[model.ForgotPasswordRequest](c, "inputForgotPassword")
	}
}

func ResetPassword() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return parseBody[model.ResetPasswordRequest](c, "inputResetPassword")
	}
}
