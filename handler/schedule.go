package handler

import (
	"errors"

	"horizon_booking/constants"
	"horizon_booking/database"
	"horizon_booking/model"
	"horizon_booking/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ScheduleTrain upserts the schedule for a train and flips its isScheduled
// flag. Responds 200 on update, 201 on first creation.
func ScheduleTrain(c *fiber.Ctx) error {
	trainId := c.Locals("inputId").(int)
	input := c.Locals("input").(model.ScheduleTrainInput)

	db := database.DB

	var train model.Train
	if err := db.First(&train, trainId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TRAIN_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var existing model.Schedule
	err := db.Where(&model.Schedule{TrainId: train.ID}).First(&existing).Error

	switch {
	case err == nil:
		existing.OperatingDays = input.OperatingDays
		existing.DepartureTime = input.DepartureTime
		existing.ArrivalTime = input.ArrivalTime
		if err := db.Save(&existing).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to schedule train", err)
		}
		if err := db.Model(&train).Update("is_scheduled", true).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to schedule train", err)
		}
		return c.Status(fiber.StatusOK).JSON(existing)

	case errors.Is(err, gorm.ErrRecordNotFound):
		schedule := model.Schedule{
			TrainId:       train.ID,
			OperatingDays: input.OperatingDays,
			DepartureTime: input.DepartureTime,
			ArrivalTime:   input.ArrivalTime,
		}
		if err := db.Create(&schedule).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to schedule train", err)
		}
		if err := db.Model(&train).Update("is_scheduled", true).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to schedule train", err)
		}
		return c.Status(fiber.StatusCreated).JSON(schedule)

	default:
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
}

// GetTrainSchedules returns the schedules for a train; callers treat the 404
// as "no schedule yet" rather than a hard error.
func GetTrainSchedules(c *fiber.Ctx) error {
	trainId := c.Locals("inputId").(int)

	var schedules []model.Schedule
	if err := database.DB.Where("train_id = ?", trainId).Find(&schedules).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch train schedules", err)
	}

	if len(schedules) == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.SCHEDULES_NOT_FOUND, nil)
	}

	return c.Status(fiber.StatusOK).JSON(schedules)
}
