package handler

import (
	"errors"

	"horizon_booking/constants"
	"horizon_booking/database"
	"horizon_booking/helper"
	"horizon_booking/model"
	"horizon_booking/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

// AddTrain creates a train, generating the seat pool for each compartment.
func AddTrain(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateTrainInput)

	db := database.DB

	var route model.Route
	if err := db.First(&route, input.RouteId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ROUTE_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var train model.Train
	copier.Copy(&train, &input)
	train.Compartments = nil

	for _, comp := range input.Compartments {
		train.Compartments = append(train.Compartments, model.Compartment{
			CompartmentType: comp.CompartmentType,
			TotalSeats:      comp.TotalSeats,
			AvailableSeats:  comp.TotalSeats,
			Seats:           helper.GenerateSeats(comp.TotalSeats),
			RouteId:         route.ID,
		})
	}

	if err := db.Create(&train).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to add train", err)
	}

	return c.Status(fiber.StatusCreated).JSON(train)
}

func GetTrains(c *fiber.Ctx) error {
	var trains []model.Train
	if err := database.DB.Preload("Compartments.Seats").Preload("Route.Stations", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	}).Find(&trains).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch trains", err)
	}

	return c.Status(fiber.StatusOK).JSON(trains)
}

func GetTrainById(c *fiber.Ctx) error {
	id := c.Locals("inputId").(int)

	var train model.Train
	if err := database.DB.Preload("Compartments.Seats").First(&train, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TRAIN_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch train details", err)
	}

	return c.Status(fiber.StatusOK).JSON(train)
}

// UpdateTrain mutates name and number only; compartments and seats are never
// edited through this endpoint.
func UpdateTrain(c *fiber.Ctx) error {
	id := c.Locals("inputId").(int)
	input := c.Locals("input").(model.UpdateTrainInput)

	db := database.DB

	var train model.Train
	if err := db.First(&train, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TRAIN_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := db.Model(&train).Updates(map[string]interface{}{
		"train_name":   input.TrainName,
		"train_number": input.TrainNumber,
	}).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update train", err)
	}

	return c.Status(fiber.StatusOK).JSON(train)
}

func DeleteTrain(c *fiber.Ctx) error {
	id := c.Locals("inputId").(int)

	result := database.DB.Delete(&model.Train{}, id)
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete train", result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TRAIN_NOT_FOUND, errors.New("no train with given id"))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": constants.TRAIN_DELETED})
}
