package helper

import (
	"cinema_booking/database"
	"cinema_booking/model"
	"errors"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jonboulle/clockwork"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var JwtSecret = []byte(os.Getenv("JWT_SECRET"))

// Clock dùng cho mọi quyết định liên quan thời gian giữ ghế / lead time,
// test thay bằng clockwork.NewFakeClockAt
var Clock clockwork.Clock = clockwork.NewRealClock()

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func GenerateAccessToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["username"] = tokenClaim.Username
	claims["customerId"] = tokenClaim.CustomerId
	claims["exp"] = time.Now().Add(time.Minute * 60).Unix()

	t, err := token.SignedString(JwtSecret)
	return t, err
}

// GetCustomerFromToken lấy khách hàng từ JWT đã được middleware Protected parse
func GetCustomerFromToken(c *fiber.Ctx) (*model.Customer, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return nil, &model.NotFoundError{Resource: "customer", Key: "token"}
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, &model.NotFoundError{Resource: "customer", Key: "claims"}
	}

	idValue, ok := claims["customerId"].(float64)
	if !ok {
		return nil, &model.NotFoundError{Resource: "customer", Key: "customerId"}
	}
	customerId := uint(idValue)

	var customer model.Customer
	if err := database.DB.First(&customer, "id = ? AND is_active = true", customerId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &model.NotFoundError{Resource: "customer", Key: customerId}
		}
		return nil, err
	}
	return &customer, nil
}
