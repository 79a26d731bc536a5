package middleware

import (
	"errors"
	"os"
	"strings"

	"horizon_booking/constants"
	"horizon_booking/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// Protected accepts the auth token from the authToken cookie or an
// Authorization: Bearer header and stores the parsed token in Locals.
func Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies("authToken")

		if token == "" {
			auth := c.Get("Authorization")
			if strings.HasPrefix(auth, "Bearer ") {
				token = strings.TrimPrefix(auth, "Bearer ")
			}
		}

		if token == "" {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.MISSING_AUTH_TOKEN, errors.New("no token"))
		}

		jwtToken, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})
		if err != nil || !jwtToken.Valid {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_AUTH_TOKEN, err)
		}

		c.Locals("user", jwtToken)
		return c.Next()
	}
}

// AdminOnly must run after Protected.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := c.Locals("user").(*jwt.Token)
		if !ok || token == nil {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.MISSING_AUTH_TOKEN, errors.New("no token"))
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_AUTH_TOKEN, errors.New("invalid claims"))
		}

		if role, _ := claims["role"].(string); role != constants.ROLE_ADMIN {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.ADMIN_ONLY, errors.New("admin role required"))
		}

		return c.Next()
	}
}
