// internals/seeds/runner.go
package seeds

import (
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/configs"
	"pesantrenku_backend/internals/constants"
	userModel "pesantrenku_backend/internals/features/users/auth/model"
)

// Run dipanggil sekali saat boot. Idempoten: kalau admin sudah ada, tidak
// melakukan apa-apa.
func Run(db *gorm.DB) {
	if err := seedDefaultAdmin(db); err != nil {
		log.Println("⚠️ seed admin gagal:", err)
	}
}

func seedDefaultAdmin(db *gorm.DB) error {
	email := strings.ToLower(configs.GetEnv("SEED_ADMIN_EMAIL", "admin@pesantrenku.id"))
	password := configs.GetEnv("SEED_ADMIN_PASSWORD")
	if password == "" {
		log.Println("ℹ️ SEED_ADMIN_PASSWORD kosong, lewati seed admin.")
		return nil
	}

	var existing userModel.UserModel
	err := db.Where("user_email = ?", email).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := userModel.UserModel{
		UserID:       uuid.New(),
		UserNama:     "Administrator",
		UserEmail:    email,
		UserPassword: string(hash),
		UserRole:     constants.RoleAdmin,
		UserIsActive: true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Println("✅ Admin default dibuat:", email)
	return nil
}
