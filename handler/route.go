package handler

import (
	"errors"
	"fmt"

	"horizon_booking/constants"
	"horizon_booking/database"
	"horizon_booking/model"
	"horizon_booking/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AddRoute creates a route with its ordered station list. Every non-terminal
// station must carry both distances.
func AddRoute(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateRouteInput)

	for i, station := range input.Stations {
		if station.StationName == "" {
			return utils.ErrorResponse(c, fiber.StatusBadRequest,
				fmt.Sprintf("Station at index %d is missing the station name.", i), nil)
		}
		if i > 0 && station.DistanceFromPrevious == nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest,
				fmt.Sprintf("Station '%s' is missing 'distanceFromPrevious'.", station.StationName), nil)
		}
		if i < len(input.Stations)-1 && station.DistanceToNext == nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest,
				fmt.Sprintf("Station '%s' is missing 'distanceToNext'.", station.StationName), nil)
		}
	}

	route := model.Route{RouteName: input.RouteName}
	for i, s := range input.Stations {
		route.Stations = append(route.Stations, model.Station{
			StationName:          s.StationName,
			DistanceFromPrevious: s.DistanceFromPrevious,
			DistanceToNext:       s.DistanceToNext,
			Position:             i,
		})
	}

	if err := database.DB.Create(&route).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to add route", err)
	}

	return c.Status(fiber.StatusCreated).JSON(route)
}

// GetRoutes lists all routes with a derived totalDistance summary.
func GetRoutes(c *fiber.Ctx) error {
	var routes []model.Route
	if err := database.DB.Preload("Stations", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	}).Find(&routes).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch routes", err)
	}

	type routeWithDistance struct {
		model.Route
		TotalDistance float64 `json:"totalDistance"`
	}

	formatted := make([]routeWithDistance, 0, len(routes))
	for _, route := range routes {
		formatted = append(formatted, routeWithDistance{
			Route:         route,
			TotalDistance: route.TotalDistance(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(formatted)
}

func DeleteRoute(c *fiber.Ctx) error {
	id := c.Locals("inputId").(int)

	result := database.DB.Delete(&model.Route{}, id)
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete route", result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ROUTE_NOT_FOUND, errors.New("no route with given id"))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": constants.ROUTE_DELETED})
}
