package handler

import (
	"errors"
	"log"

	"horizon_booking/constants"
	"horizon_booking/database"
	"horizon_booking/helper"
	"horizon_booking/model"
	"horizon_booking/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SearchTrains resolves trains serving the requested segment on the requested
// date. Each failure mode carries its own message; the client renders them
// distinctly.
func SearchTrains(c *fiber.Ctx) error {
	source := c.Query("source")
	destination := c.Query("destination")
	date := c.Query("date")

	if source == "" || destination == "" || date == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.SEARCH_PARAMS_REQUIRED, nil)
	}

	db := database.DB

	var route model.Route
	err := db.Joins("JOIN stations ON stations.route_id = routes.id").
		Where("stations.station_name = ?", source).
		Preload("Stations", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		First(&route).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NO_ROUTE_FOR_SOURCE, nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	sourceIndex := route.StationIndex(source)
	destinationIndex := route.StationIndex(destination)

	// Destination must come strictly after source along the route.
	if sourceIndex == -1 || destinationIndex == -1 || sourceIndex >= destinationIndex {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NO_VALID_ROUTE, nil)
	}

	var trains []model.Train
	if err := db.Preload("Compartments.Seats").Where("route_id = ?", route.ID).Find(&trains).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if len(trains) == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NO_TRAINS_ON_ROUTE, nil)
	}

	availableTrains := []model.TrainSearchResult{}
	for _, train := range trains {
		var schedule model.Schedule
		if err := db.Where(&model.Schedule{TrainId: train.ID}).First(&schedule).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				log.Printf("failed to load schedule for train %s: %v", train.TrainNumber, err)
			}
			continue
		}

		result, ok := helper.EvaluateTrain(route, train, schedule, sourceIndex, destinationIndex, date)
		if !ok {
			continue
		}
		availableTrains = append(availableTrains, result)
	}

	if len(availableTrains) == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NO_TRAINS_FOR_DATE, nil)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": constants.TRAINS_FOUND,
		"trains":  availableTrains,
	})
}
