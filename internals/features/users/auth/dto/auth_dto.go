// file: internals/features/users/auth/dto/auth_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "klinikku_backend/internals/features/users/user/model"
)

type LoginDTO struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RegisterDTO struct {
	Username string  `json:"username" validate:"required,min=3,max=50"`
	FullName string  `json:"full_name" validate:"required"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Password string  `json:"password" validate:"required,min=8"`
	Role     string  `json:"role" validate:"omitempty,oneof=admin staff"`
}

type UserResponse struct {
	UserID       uuid.UUID `json:"user_id"`
	UserUsername string    `json:"user_username"`
	UserFullName string    `json:"user_full_name"`
	UserEmail    *string   `json:"user_email,omitempty"`
	UserRole     string    `json:"user_role"`
	UserIsActive bool      `json:"user_is_active"`
	UserCreatedAt time.Time `json:"user_created_at"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	ExpiresIn   int64        `json:"expires_in"`
	User        UserResponse `json:"user"`
}

func ToUserResponse(m model.User) UserResponse {
	return UserResponse{
		UserID:        m.UserID,
		UserUsername:  m.UserUsername,
		UserFullName:  m.UserFullName,
		UserEmail:     m.UserEmail,
		UserRole:      m.UserRole,
		UserIsActive:  m.UserIsActive,
		UserCreatedAt: m.UserCreatedAt,
	}
}
