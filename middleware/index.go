package middleware

import (
	"errors"
	"strings"

	"movie_booking/helper"
	"movie_booking/utils"

	"github.com/gofiber/fiber/v2"
)

func tokenFromRequest(c *fiber.Ctx) string {
	token := c.Cookies("access_token")
	if token == "" {
		auth := c.Get("Authorization")
		if strings.HasPrefix(auth, "Bearer ") {
			token = strings.TrimPrefix(auth, "Bearer ")
		}
	}
	return token
}

// Protected rejects requests without a valid access token. The parsed token
// lands in c.Locals("user") for helper.GetUserFromToken.
func Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := tokenFromRequest(c)
		if token == "" {
			return utils.ErrorResponse(c, 401, "Missing token", errors.New("no token"))
		}

		jwtToken, err := helper.ParseToken(token)
		if err != nil || !jwtToken.Valid {
			return utils.ErrorResponse(c, 401, "Invalid token", err)
		}

		c.Locals("user", jwtToken)
		return c.Next()
	}
}

// AdminOnly requires a valid token carrying the admin role.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, _ := helper.GetUserFromToken(c)
		if !helper.IsAdmin(user) {
			return utils.ErrorResponse(c, 403, "Admin access required", errors.New("forbidden"))
		}
		return c.Next()
	}
}

// OptionalJWT parses the token when present but never rejects. Guests pass
// through with no user in context.
func OptionalJWT() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := tokenFromRequest(c)
		if token == "" {
			return c.Next()
		}

		jwtToken, err := helper.ParseToken(token)
		if err != nil || !jwtToken.Valid {
			return c.Next()
		}

		c.Locals("user", jwtToken)
		return c.Next()
	}
}
