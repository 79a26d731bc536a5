package validate

import (
	"fmt"

	"horizon_booking/model"

	"github.com/gofiber/fiber/v2"
)

func CreateRoute() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateRouteInput

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

		c.Locals("input", input)
		return c.Next()
	}
}
