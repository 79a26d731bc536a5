package handler

import (
	"encoding/base64"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"horizon_booking/config"
	"horizon_booking/constants"
	"horizon_booking/database"
	"horizon_booking/helper"
	"horizon_booking/model"
	"horizon_booking/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const pnrAttempts = 5

// The webhook payload cannot go through a validate middleware without running
// before the token gate, so it is checked in the handler with this shared
// instance.
var intentValidator = validator.New()

// generatePNR draws random 9-digit PNRs until one is free of collisions,
// bounded by pnrAttempts. The unique index on pnr is the final backstop.
func generatePNR(tx *gorm.DB) (int64, error) {
	for attempt := 0; attempt < pnrAttempts; attempt++ {
		pnr := rand.Int63n(900000000) + 100000000
		var count int64
		if err := tx.Model(&model.Booking{}).Where("pnr = ?", pnr).Count(&count).Error; err != nil {
			return 0, err
		}
		if count == 0 {
			return pnr, nil
		}
	}
	return 0, errors.New("could not generate a unique PNR")
}

// dayRange returns the UTC day bounds for a journey date string.
func dayRange(journeyDate string) (time.Time, time.Time, error) {
	parsed, err := utils.ParseCustomDate(journeyDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	start := time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 0, 1), nil
}

func findDuplicateBooking(db *gorm.DB, userId uint, trainId uint, journeyDate string) (bool, error) {
	start, end, err := dayRange(journeyDate)
	if err != nil {
		return false, err
	}
	var count int64
	err = db.Model(&model.Booking{}).
		Where("user_id = ? AND train_id = ? AND journey_date >= ? AND journey_date < ?", userId, trainId, start, end).
		Count(&count).Error
	return count > 0, err
}

// CheckUserBooking is the pre-checkout duplicate guard: one booking per user
// per train per calendar day.
func CheckUserBooking(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CheckUserBookingInput)

	db := database.DB

	var train model.Train
	if err := db.Where("train_number = ?", input.TrainNumber).First(&train).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TRAIN_NOT_FOUND, nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	exists, err := findDuplicateBooking(db, input.UserId, train.ID, input.JourneyDate)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if exists {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DUPLICATE_BOOKING, nil)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": constants.NO_EXISTING_BOOKING})
}

// BookTrainTickets performs seat allocation and booking persistence. It is
// invoked by the payment webhook, not the browser, and is gated by the shared
// webhook bearer token. The whole allocation runs in one transaction with the
// compartment row locked, so concurrent bookings cannot oversell seats.
func BookTrainTickets(c *fiber.Ctx) error {
	authorization := c.Get("Authorization")
	if authorization == "" {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.WEBHOOK_TOKEN_MISSING, nil)
	}
	token := strings.TrimPrefix(authorization, "Bearer ")
	if token != config.Config("WEBHOOK_API_TOKEN") {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.WEBHOOK_TOKEN_INVALID, nil)
	}

	var input model.BookTicketsInput
	if err := c.BodyParser(&input); err != nil || input.SuccessData == nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Missing successData.", err)
	}

	data := input.SuccessData
	if err := intentValidator.Struct(data); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.BOOKING_FIELDS_REQUIRED, err)
	}
	if len(data.PassengerDetails) == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.PASSENGERS_REQUIRED, nil)
	}

	journeyDate, err := utils.ParseCustomDate(data.JourneyDate)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.BOOKING_FIELDS_REQUIRED, err)
	}

	db := database.DB
	tx := db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	var train model.Train
	if err := tx.Preload("Route.Stations", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	}).Where("train_number = ?", data.TrainNumber).First(&train).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TRAIN_NOT_FOUND, nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	// Re-run the duplicate guard inside the transaction; the standalone
	// pre-check can race with checkout.
	duplicate, err := findDuplicateBooking(tx, data.UserId, train.ID, data.JourneyDate)
	if err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if duplicate {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DUPLICATE_BOOKING, nil)
	}

	var compartment model.Compartment
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("train_id = ? AND compartment_type = ?", train.ID, data.CompartmentType).
		First(&compartment).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.COMPARTMENT_NOT_FOUND, nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if compartment.AvailableSeats < len(data.PassengerDetails) {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusBadRequest,
			fmt.Sprintf("Not enough seats available. Only %d seats left.", compartment.AvailableSeats), nil)
	}

	// Recompute the fare from the requested segment and reject totals the
	// client cannot justify. The segment must resolve on the route; a booking
	// whose fare cannot be recomputed is never accepted.
	fromIndex := train.Route.StationIndex(data.FromCity)
	toIndex := train.Route.StationIndex(data.ToCity)
	if fromIndex < 0 || toIndex <= fromIndex {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.SEGMENT_NOT_ON_ROUTE,
			fmt.Errorf("segment %q -> %q not on route", data.FromCity, data.ToCity))
	}
	distance := helper.SegmentDistance(train.Route.Stations, fromIndex, toIndex)
	computed := helper.ComputeFare(data.CompartmentType, distance, len(data.PassengerDetails))
	if !helper.FareMatches(data.Price.Total, computed.Total) {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.FARE_MISMATCH,
			fmt.Errorf("submitted %.2f, computed %.2f", data.Price.Total, computed.Total))
	}

	if err := tx.Where("compartment_id = ?", compartment.ID).Order("id").Find(&compartment.Seats).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	assigned, claimed, err := helper.AssignSeats(&compartment, data.PassengerDetails)
	if err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Unexpected error in seat assignment.", err)
	}

	for _, seat := range claimed {
		if err := tx.Model(seat).Update("is_available", false).Error; err != nil {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
	}

	if err := tx.Model(&compartment).
		Update("available_seats", gorm.Expr("available_seats - ?", len(assigned))).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	pnr, err := generatePNR(tx)
	if err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	seatNumbers := make([]string, 0, len(assigned))
	for _, p := range assigned {
		seatNumbers = append(seatNumbers, p.SeatNumber)
	}

	booking := model.Booking{
		PNR:              pnr,
		UserId:           data.UserId,
		TrainId:          train.ID,
		Source:           data.FromCity,
		Destination:      data.ToCity,
		PassengerDetails: assigned,
		TotalSeats:       len(assigned),
		SeatNumbers:      seatNumbers,
		JourneyDate:      journeyDate,
		BookingDate:      time.Now(),
		TotalFare:        data.Price.Total,
		CompartmentType:  data.CompartmentType,
	}

	if err := tx.Create(&booking).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":          constants.BOOKING_SUCCESSFUL,
		"bookingId":        booking.ID,
		"pnr":              pnr,
		"passengerDetails": assigned,
		"totalFare":        data.Price.Total,
		"trainNumber":      data.TrainNumber,
	})
}

// GetBookingById returns booking detail with the train populated and a QR of
// the PNR for the printable ticket.
func GetBookingById(c *fiber.Ctx) error {
	bookingId := c.Query("bookingId")
	if bookingId == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.BOOKING_ID_REQUIRED, nil)
	}
	id, err := strconv.Atoi(bookingId)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
	}

	var booking model.Booking
	if err := database.DB.Preload("Train").Preload("PassengerDetails").First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BOOKING_NOT_FOUND, nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var qrCode string
	if png, err := utils.GenerateQRCode(strconv.FormatInt(booking.PNR, 10), 256); err == nil {
		qrCode = "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Booking retrieved successfully.",
		"booking": booking,
		"qrCode":  qrCode,
	})
}

func GetUserBookingById(c *fiber.Ctx) error {
	userId := c.Locals("inputId").(int)

	// Users may only list their own bookings.
	claims, isAdmin := helper.GetInfoUserFromToken(c)
	if !isAdmin && claims.UserId != uint(userId) {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Access denied.", errors.New("booking owner mismatch"))
	}

	db := database.DB

	var user model.User
	if err := db.First(&user, userId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.USER_NOT_FOUND, nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var bookings []model.Booking
	if err := db.Preload("PassengerDetails").Where("user_id = ?", userId).Find(&bookings).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if len(bookings) == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NO_BOOKINGS_FOUND, nil)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"bookings": bookings})
}
