// internals/features/scoring/skor/controller/skor_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	skorDTO "pesantrenku_backend/internals/features/scoring/skor/dto"
	skorModel "pesantrenku_backend/internals/features/scoring/skor/model"
	"pesantrenku_backend/internals/features/scoring/skor/service"
	helper "pesantrenku_backend/internals/helpers"
)

type SkorController struct {
	DB  *gorm.DB
	Svc *service.SkorService
}

func NewSkorController(db *gorm.DB) *SkorController {
	return &SkorController{DB: db, Svc: service.NewSkorService()}
}

/* ===================== HANDLERS ===================== */

// POST /api/a/skor/pesantren/:id/hitung — hitung (ulang) skor kelayakan
func (h *SkorController) HitungPesantren(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	row, err := h.Svc.HitungPesantren(c.UserContext(), h.DB, id)
	if err != nil {
		return renderSkorError(c, err)
	}

	return helper.Success(c, "Skor pesantren dihitung", skorDTO.NewPesantrenSkorResponse(row))
}

// POST /api/a/skor/santri/:id/hitung — hitung (ulang) skor kemiskinan
func (h *SkorController) HitungSantri(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	row, err := h.Svc.HitungSantri(c.UserContext(), h.DB, id)
	if err != nil {
		return renderSkorError(c, err)
	}

	return helper.Success(c, "Skor santri dihitung", skorDTO.NewSantriSkorResponse(row))
}

// GET /api/a/skor/pesantren/:id — skor tersimpan (tanpa hitung ulang)
func (h *SkorController) DetailPesantren(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var row skorModel.PesantrenSkorModel
	if err := h.DB.Where("pesantren_id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Skor belum pernah dihitung")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil skor")
	}
	return helper.Success(c, "OK", skorDTO.NewPesantrenSkorResponse(&row))
}

// GET /api/a/skor/santri/:id
func (h *SkorController) DetailSantri(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var row skorModel.SantriSkorModel
	if err := h.DB.Where("santri_id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Skor belum pernah dihitung")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil skor")
	}
	return helper.Success(c, "OK", skorDTO.NewSantriSkorResponse(&row))
}

// renderSkorError memetakan taksonomi error engine ke status HTTP.
func renderSkorError(c *fiber.Ctx, err error) error {
	var cm *service.ConstraintMismatchError
	switch {
	case errors.Is(err, service.ErrSubjectNotFound):
		return helper.Error(c, fiber.StatusNotFound, "Subjek tidak ditemukan")
	case errors.As(err, &cm):
		// bug rule set — tampilkan dimensi + nilai pelanggar
		return helper.ErrorWithDetails(c, fiber.StatusInternalServerError, "Skor di luar rentang", fiber.Map{
			"dimensi": cm.Dimensi,
			"nilai":   cm.Nilai,
		})
	case errors.Is(err, service.ErrIntegrityViolation):
		return helper.Error(c, fiber.StatusConflict, "Konflik penyimpanan skor, silakan coba lagi")
	default:
		// transient (ErrStorageUnavailable) dan sisanya
		return helper.Error(c, fiber.StatusServiceUnavailable, "Database tidak tersedia, silakan coba lagi")
	}
}
