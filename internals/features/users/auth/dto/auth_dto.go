// internals/features/users/auth/dto/auth_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"pesantrenku_backend/internals/features/users/auth/model"
)

type RegisterRequest struct {
	Nama     string `json:"nama" validate:"required,min=3,max=100"`
	Email    string `json:"email" validate:"required,email,max=150"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role" validate:"required,oneof=admin petugas"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserResponse struct {
	UserID    uuid.UUID `json:"user_id"`
	Nama      string    `json:"nama"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	ExpiresAt   time.Time    `json:"expires_at"`
	User        UserResponse `json:"user"`
}

func NewUserResponse(m *model.UserModel) UserResponse {
	return UserResponse{
		UserID:    m.UserID,
		Nama:      m.UserNama,
		Email:     m.UserEmail,
		Role:      m.UserRole,
		IsActive:  m.UserIsActive,
		CreatedAt: m.UserCreatedAt,
	}
}
