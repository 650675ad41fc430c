// internals/features/users/auth/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	UserID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:user_id" json:"user_id"`
	UserNama     string    `gorm:"type:varchar(100);not null;column:user_nama" json:"user_nama"`
	UserEmail    string    `gorm:"type:varchar(150);not null;uniqueIndex;column:user_email" json:"user_email"`
	UserPassword string    `gorm:"type:varchar(250);not null;column:user_password" json:"-"`
	UserRole     string    `gorm:"type:varchar(20);not null;default:'petugas';column:user_role" json:"user_role"`
	UserIsActive bool      `gorm:"not null;default:true;column:user_is_active" json:"user_is_active"`

	UserCreatedAt time.Time      `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time      `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index" json:"-"`
}

func (UserModel) TableName() string {
	return "users"
}
