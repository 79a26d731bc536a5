package handler

import (
	"fmt"

	"horizon_booking/constants"
	"horizon_booking/database"
	"horizon_booking/model"
	"horizon_booking/utils"

	"github.com/gofiber/fiber/v2"
)

// GetCities backs the station autocomplete on the search form.
func GetCities(c *fiber.Ctx) error {
	query := c.Query("query")
	if query == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Query parameter is required", nil)
	}

	var cities []model.City
	if err := database.DB.Where("name ILIKE ?", "%"+query+"%").Limit(10).Find(&cities).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if len(cities) == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, fmt.Sprintf("No cities found for query: %s", query), nil)
	}

	results := make([]fiber.Map, 0, len(cities))
	for _, city := range cities {
		results = append(results, fiber.Map{
			"name":  city.Name,
			"code":  city.Code,
			"state": city.State,
		})
	}

	return c.Status(fiber.StatusOK).JSON(results)
}
