// internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/configs"
	"pesantrenku_backend/internals/features/users/auth/dto"
	"pesantrenku_backend/internals/features/users/auth/model"
	helper "pesantrenku_backend/internals/helpers"
)

var validate = validator.New()

const tokenTTL = 24 * time.Hour

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// =============================
// 🔐 POST /api/a/auth/register (admin only)
// =============================
func (ctl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var existing model.UserModel
	err := ctl.DB.WithContext(c.Context()).Where("user_email = ?", email).First(&existing).Error
	if err == nil {
		return helper.Error(c, fiber.StatusConflict, "Email sudah terdaftar")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Println("[ERROR] cek email gagal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memproses pendaftaran")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}

	user := model.UserModel{
		UserID:       uuid.New(),
		UserNama:     strings.TrimSpace(req.Nama),
		UserEmail:    email,
		UserPassword: string(hash),
		UserRole:     req.Role,
		UserIsActive: true,
	}
	if err := ctl.DB.WithContext(c.Context()).Create(&user).Error; err != nil {
		log.Println("[ERROR] simpan user gagal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan user")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "User berhasil didaftarkan", dto.NewUserResponse(&user))
}

// =============================
// 🔑 POST /api/login
// =============================
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user model.UserModel
	err := ctl.DB.WithContext(c.Context()).
		Where("user_email = ?", strings.ToLower(strings.TrimSpace(req.Email))).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.Error(c, fiber.StatusUnauthorized, "Email atau password salah")
	}
	if err != nil {
		log.Println("[ERROR] query login gagal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memproses login")
	}
	if !user.UserIsActive {
		return helper.Error(c, fiber.StatusForbidden, "Akun dinonaktifkan, hubungi admin")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(req.Password)) != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Email atau password salah")
	}

	expiresAt := time.Now().Add(tokenTTL)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  user.UserID.String(),
		"role": user.UserRole,
		"iat":  time.Now().Unix(),
		"exp":  expiresAt.Unix(),
	})
	signed, err := token.SignedString([]byte(configs.JWTSecret))
	if err != nil {
		log.Println("[ERROR] tanda tangan token gagal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	// cookie httpOnly untuk klien web; API klien tetap bisa pakai Bearer
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    signed,
		Expires:  expiresAt,
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return helper.Success(c, "Login berhasil", dto.LoginResponse{
		AccessToken: signed,
		ExpiresAt:   expiresAt,
		User:        dto.NewUserResponse(&user),
	})
}

// =============================
// 👤 GET /api/a/auth/me
// =============================
func (ctl *AuthController) Me(c *fiber.Ctx) error {
	uid, _ := c.Locals("userID").(string)
	parsed, err := uuid.Parse(uid)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var user model.UserModel
	if err := ctl.DB.WithContext(c.Context()).First(&user, "user_id = ?", parsed).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "User tidak ditemukan")
	}
	return helper.Success(c, "Profil berhasil diambil", dto.NewUserResponse(&user))
}

// =============================
// 🚪 POST /api/a/auth/logout
// =============================
func (ctl *AuthController) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return helper.Success(c, "Logout berhasil", nil)
}
