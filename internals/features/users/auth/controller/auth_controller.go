// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "klinikku_backend/internals/features/users/auth/dto"
	authsvc "klinikku_backend/internals/features/users/auth/service"
	model "klinikku_backend/internals/features/users/user/model"
	helper "klinikku_backend/internals/helpers"
)

var validate = validator.New()

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

/* =========================
   POST /api/auth/login
========================= */

func (ac *AuthController) Login(c *fiber.Ctx) error {
	var in dto.LoginDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := validate.Struct(in); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var user model.User
	err := ac.DB.WithContext(c.UserContext()).
		Where("user_username = ? AND user_deleted_at IS NULL", strings.TrimSpace(in.Username)).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// same message as a wrong password, no username probing
			return helper.JsonError(c, fiber.StatusUnauthorized, "invalid credentials")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if !user.UserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "account disabled")
	}
	if !user.CheckPassword(in.Password) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "invalid credentials")
	}

	token, err := authsvc.IssueAccessToken(user.UserID, user.UserUsername, user.UserRole)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "token signing failed")
	}

	return helper.JsonOK(c, "login successful", dto.LoginResponse{
		AccessToken: token,
		ExpiresIn:   int64(authsvc.AccessTokenTTL.Seconds()),
		User:        dto.ToUserResponse(user),
	})
}

/* =========================
   POST /api/a/users (admin only)
========================= */

func (ac *AuthController) Register(c *fiber.Ctx) error {
	var in dto.RegisterDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := validate.Struct(in); err != nil {
		return helper.JsonValidationError(c, err)
	}

	user := model.User{
		UserUsername: strings.TrimSpace(in.Username),
		UserFullName: strings.TrimSpace(in.FullName),
		UserEmail:    in.Email,
		UserRole:     in.Role,
		UserIsActive: true,
	}
	if err := user.SetPassword(in.Password); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "password hashing failed")
	}

	if err := ac.DB.WithContext(c.UserContext()).Create(&user).Error; err != nil {
		s := strings.ToLower(err.Error())
		if strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint") {
			return helper.JsonError(c, fiber.StatusConflict, "username or email already taken")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "user created", dto.ToUserResponse(user))
}

/* =========================
   GET /api/u/me
========================= */

func (ac *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var user model.User
	if err := ac.DB.WithContext(c.UserContext()).
		First(&user, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "user not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "profile", dto.ToUserResponse(user))
}
