package handler

import (
	"cinema_booking/constants"
	"cinema_booking/database"
	"cinema_booking/helper"
	"cinema_booking/model"
	"cinema_booking/utils"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
)

type loginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login đăng nhập bằng email + mật khẩu, trả access token và set cookie
func Login(c *fiber.Ctx) error {
	var input loginInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	var customer model.Customer
	if err := database.DB.
		Where("email = ? AND is_active = true", input.Email).
		First(&customer).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Email hoặc mật khẩu không đúng", errors.New("login failed"))
	}

	if !helper.CheckPasswordHash(input.Password, customer.Password) {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Email hoặc mật khẩu không đúng", errors.New("login failed"))
	}

	token, err := helper.GenerateAccessToken(model.TokenClaim{
		CustomerId: customer.ID,
		Username:   customer.UserName,
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không tạo được token", err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		Expires:  time.Now().Add(60 * time.Minute),
		HTTPOnly: true,
	})

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"accessToken": token,
		"customer": fiber.Map{
			"id":       customer.ID,
			"email":    customer.Email,
			"username": customer.UserName,
		},
	})
}

// Logout xoá cookie phiên đăng nhập
func Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Đã đăng xuất"})
}
