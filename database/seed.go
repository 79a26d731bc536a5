package database

import (
	"log"

	"horizon_booking/constants"
	"horizon_booking/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("admin@horizon"), 10)
	hashPassword := string(bytes)
	if err != nil {
		hashPassword = "admin@horizon"
	}
	users := []model.User{
		{Name: "Administrator", Email: "admin@horizon.local", Password: hashPassword, IsVerified: true, Role: constants.ROLE_ADMIN},
	}

	for _, user := range users {
		if err := db.Where(model.User{Email: user.Email}).FirstOrCreate(&user).Error; err != nil {
			log.Println("failed to seed user:", user.Email, "error:", err)
		}
	}

	cities := []model.City{
		{Name: "Delhi", Code: "NDLS", State: "Delhi"},
		{Name: "Agra", Code: "AGC", State: "Uttar Pradesh"},
		{Name: "Gwalior", Code: "GWL", State: "Madhya Pradesh"},
		{Name: "Bhopal", Code: "BPL", State: "Madhya Pradesh"},
		{Name: "Nagpur", Code: "NGP", State: "Maharashtra"},
		{Name: "Mumbai", Code: "CSMT", State: "Maharashtra"},
		{Name: "Kanpur", Code: "CNB", State: "Uttar Pradesh"},
		{Name: "Prayagraj", Code: "PRYJ", State: "Uttar Pradesh"},
		{Name: "Varanasi", Code: "BSB", State: "Uttar Pradesh"},
		{Name: "Kolkata", Code: "HWH", State: "West Bengal"},
	}

	for _, city := range cities {
		if err := db.Where(model.City{Name: city.Name}).FirstOrCreate(&city).Error; err != nil {
			log.Println("failed to seed city:", city.Name, "error:", err)
		}
	}
}
