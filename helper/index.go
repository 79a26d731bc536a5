package helper

import (
	"errors"
	"fmt"
	"os"
	"time"

	"horizon_booking/constants"
	"horizon_booking/database"
	"horizon_booking/model"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var JwtSecret = []byte(os.Getenv("JWT_SECRET"))

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func GetUserByEmail(e string) (*model.User, error) {
	db := database.DB
	var user model.User
	if err := db.Where(&model.User{Email: e}).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// GenerateAccessToken issues a 1 hour HS256 token carrying userId, email and role.
func GenerateAccessToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["userId"] = tokenClaim.UserId
	claims["email"] = tokenClaim.Email
	claims["role"] = tokenClaim.Role
	claims["exp"] = time.Now().Add(time.Hour).Unix()

	t, err := token.SignedString(JwtSecret)
	return t, err
}

func ParseToken(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return JwtSecret, nil
	})

	return token, err
}

// GetInfoUserFromToken extracts the verified claims placed in Locals by the
// Protected middleware. Second result reports whether the caller is an admin.
func GetInfoUserFromToken(c *fiber.Ctx) (model.TokenClaim, bool) {
	u := c.Locals("user")
	if u == nil {
		return model.TokenClaim{}, false
	}

	token, ok := u.(*jwt.Token)
	if !ok || token == nil {
		return model.TokenClaim{}, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return model.TokenClaim{}, false
	}

	userIdFloat, _ := claims["userId"].(float64)
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)

	tokenClaim := model.TokenClaim{
		UserId: uint(userIdFloat),
		Email:  email,
		Role:   role,
	}

	return tokenClaim, role == constants.ROLE_ADMIN
}
