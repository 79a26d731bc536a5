package model

import "time"

type User struct {
	DTO
	Name       string `gorm:"not null" json:"name"`
	Email      string `gorm:"uniqueIndex;not null" json:"email"`
	Password   string `gorm:"not null" json:"-"`
	IsVerified bool   `gorm:"default:false" json:"isVerified"`
	Role       string `gorm:"default:'user'" json:"role"`
}

// VerificationCode is the single active OTP row per email, overwritten on
// resend and deleted on successful verification.
type VerificationCode struct {
	DTO
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Passcode  string    `gorm:"not null" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expiresAt"`
}

type SignupInput struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type VerifyOtpInput struct {
	Email string `json:"email" validate:"required,email"`
	Otp   string `json:"otp" validate:"required,len=6"`
}

type ResendOtpInput struct {
	Email string `json:"email" validate:"required,email"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
