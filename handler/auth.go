package handler

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"horizon_booking/constants"
	"horizon_booking/database"
	"horizon_booking/helper"
	"horizon_booking/model"
	"horizon_booking/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const otpValidMinutes = 10

func issueOtp(email, name string, subject string) error {
	otp := fmt.Sprintf("%06d", rand.Intn(900000)+100000)
	expiresAt := time.Now().Add(otpValidMinutes * time.Minute)

	db := database.DB

	// Single active code per email: overwrite rather than append.
	var existing model.VerificationCode
	err := db.Where(&model.VerificationCode{Email: email}).First(&existing).Error
	switch {
	case err == nil:
		existing.Passcode = otp
		existing.ExpiresAt = expiresAt
		if err := db.Save(&existing).Error; err != nil {
			return err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		code := model.VerificationCode{Email: email, Passcode: otp, ExpiresAt: expiresAt}
		if err := db.Create(&code).Error; err != nil {
			return err
		}
	default:
		return err
	}

	utils.SendOtpEmail(email, subject, utils.OtpEmailData{
		Otp:           otp,
		ValidMinutes:  otpValidMinutes,
		RecipientName: name,
	})
	return nil
}

// Signup creates an unverified user and mails a verification OTP.
func Signup(c *fiber.Ctx) error {
	input := c.Locals("input").(model.SignupInput)

	existing, err := helper.GetUserByEmail(input.Email)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if existing != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.USER_ALREADY_EXISTS, nil)
	}

	hashed, err := helper.HashPassword(input.Password)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	user := model.User{
		Name:       input.Username,
		Email:      input.Email,
		Password:   hashed,
		IsVerified: false,
		Role:       constants.ROLE_USER,
	}

	if err := database.DB.Create(&user).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Error during signup.", err)
	}

	if err := issueOtp(user.Email, user.Name, "Account Verification OTP - Horizon"); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.OTP_SEND_FAILED, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": constants.SIGNUP_INITIATED,
		"userId":  user.ID,
	})
}

// VerifyOtp flips the user verified and consumes the code.
func VerifyOtp(c *fiber.Ctx) error {
	input := c.Locals("input").(model.VerifyOtpInput)

	db := database.DB

	var code model.VerificationCode
	if err := db.Where("email = ? AND passcode = ?", input.Email, input.Otp).First(&code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_OTP, nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if code.ExpiresAt.Before(time.Now()) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.OTP_EXPIRED, nil)
	}

	user, err := helper.GetUserByEmail(input.Email)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.USER_NOT_FOUND, nil)
	}

	if err := db.Model(user).Update("is_verified", true).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := db.Delete(&code).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": constants.OTP_VERIFIED})
}

// ResendOtp reissues the code for unverified accounts.
func ResendOtp(c *fiber.Ctx) error {
	input := c.Locals("input").(model.ResendOtpInput)

	user, err := helper.GetUserByEmail(input.Email)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.USER_NOT_FOUND, nil)
	}
	if user.IsVerified {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.USER_VERIFIED, nil)
	}

	if err := issueOtp(user.Email, user.Name, "Resend OTP for Account Verification - Horizon Booking"); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.OTP_SEND_FAILED, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": constants.OTP_RESENT})
}

// Login authenticates verified users and issues the 1 hour JWT, also set as
// an HTTPOnly cookie.
func Login(c *fiber.Ctx) error {
	input := c.Locals("input").(model.LoginInput)

	user, err := helper.GetUserByEmail(input.Email)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Error during login.", err)
	}
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.USER_NOT_FOUND, nil)
	}

	if !user.IsVerified {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.USER_NOT_VERIFIED, nil)
	}

	if !helper.CheckPasswordHash(input.Password, user.Password) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_CREDENTIALS, nil)
	}

	token, err := helper.GenerateAccessToken(model.TokenClaim{
		UserId: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "authToken",
		Value:    token,
		Expires:  time.Now().Add(time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})

	if user.Role == constants.ROLE_ADMIN {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": constants.ADMIN_LOGIN_SUCCESS,
			"token":   token,
			"userId":  user.ID,
			"isAdmin": true,
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": constants.LOGIN_SUCCESS,
		"token":   token,
		"userId":  user.ID,
	})
}

func GetUserById(c *fiber.Ctx) error {
	id := c.Locals("inputId").(int)

	var user model.User
	if err := database.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.USER_NOT_FOUND, nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return c.Status(fiber.StatusOK).JSON(user)
}
