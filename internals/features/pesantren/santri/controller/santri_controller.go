// internals/features/pesantren/santri/controller/santri_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	pesantrenModel "pesantrenku_backend/internals/features/pesantren/profiles/model"
	"pesantrenku_backend/internals/features/pesantren/santri/dto"
	"pesantrenku_backend/internals/features/pesantren/santri/model"
	petaModel "pesantrenku_backend/internals/features/peta/model"
	skorModel "pesantrenku_backend/internals/features/scoring/skor/model"
	helper "pesantrenku_backend/internals/helpers"
)

var validate = validator.New()

var santriSortable = map[string]bool{
	"santri_nama":       true,
	"santri_created_at": true,
}

type SantriController struct {
	DB *gorm.DB
}

func NewSantriController(db *gorm.DB) *SantriController {
	return &SantriController{DB: db}
}

// =============================
// ➕ POST /api/a/santri
// =============================
func (ctl *SantriController) Create(c *fiber.Ctx) error {
	var req dto.CreateSantriRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	db := ctl.DB.WithContext(c.Context())

	// pesantren induk wajib ada
	var n int64
	if err := db.Model(&pesantrenModel.PesantrenModel{}).
		Where("pesantren_id = ?", req.PesantrenID).Count(&n).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memeriksa pesantren")
	}
	if n == 0 {
		return helper.Error(c, fiber.StatusUnprocessableEntity, "Pesantren induk tidak ditemukan")
	}

	m := req.ToModel()
	if err := db.Create(m).Error; err != nil {
		log.Println("[ERROR] simpan santri gagal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan santri")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Santri berhasil dibuat", m)
}

// =============================
// 📄 GET /api/a/santri
// =============================
func (ctl *SantriController) List(c *fiber.Ctx) error {
	p := helper.ParsePage(c, "santri_created_at", santriSortable)

	q := ctl.DB.WithContext(c.Context()).Model(&model.SantriModel{})
	if v := c.Query("q"); v != "" {
		q = q.Where("santri_nama ILIKE ?", "%"+v+"%")
	}
	if v := c.Query("pesantren_id"); v != "" {
		pid, err := uuid.Parse(v)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "pesantren_id tidak valid")
		}
		q = q.Where("santri_pesantren_id = ?", pid)
	}
	if v := c.Query("gender"); v != "" {
		q = q.Where("santri_gender = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var rows []model.SantriModel
	if err := q.Order(p.OrderClause()).Limit(p.PerPage).Offset(p.Offset()).Find(&rows).Error; err != nil {
		log.Println("[ERROR] list santri gagal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data santri")
	}

	return helper.Success(c, "Daftar santri berhasil diambil", fiber.Map{
		"items":      rows,
		"pagination": helper.PageMeta(p, total),
	})
}

// =============================
// 🔍 GET /api/a/santri/:id
// =============================
func (ctl *SantriController) Detail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID santri tidak valid")
	}

	db := ctl.DB.WithContext(c.Context())

	var m model.SantriModel
	if err := db.First(&m, "santri_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Santri tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data santri")
	}

	resp := dto.SantriDetailResponse{Santri: &m}

	var ekonomi model.SantriEkonomiModel
	if err := db.First(&ekonomi, "santri_ekonomi_santri_id = ?", id).Error; err == nil {
		resp.Ekonomi = &ekonomi
	}
	var rumah model.SantriRumahModel
	if err := db.First(&rumah, "santri_rumah_santri_id = ?", id).Error; err == nil {
		resp.Rumah = &rumah
	}
	var aset model.SantriAsetModel
	if err := db.First(&aset, "santri_aset_santri_id = ?", id).Error; err == nil {
		resp.Aset = &aset
	}
	var pembiayaan model.SantriPembiayaanModel
	if err := db.First(&pembiayaan, "santri_pembiayaan_santri_id = ?", id).Error; err == nil {
		resp.Pembiayaan = &pembiayaan
	}
	var kesehatan model.SantriKesehatanModel
	if err := db.First(&kesehatan, "santri_kesehatan_santri_id = ?", id).Error; err == nil {
		resp.Kesehatan = &kesehatan
	}
	var bansos model.SantriBansosModel
	if err := db.First(&bansos, "santri_bansos_santri_id = ?", id).Error; err == nil {
		resp.Bansos = &bansos
	}
	var skor skorModel.SantriSkorModel
	if err := db.First(&skor, "santri_id = ?", id).Error; err == nil {
		resp.Skor = &skor
	}

	return helper.Success(c, "Detail santri berhasil diambil", resp)
}

// =============================
// ✏️ PUT /api/a/santri/:id
// =============================
func (ctl *SantriController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID santri tidak valid")
	}

	var req dto.UpdateSantriRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	db := ctl.DB.WithContext(c.Context())

	var m model.SantriModel
	if err := db.First(&m, "santri_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Santri tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data santri")
	}

	if req.PesantrenID != nil {
		var n int64
		if err := db.Model(&pesantrenModel.PesantrenModel{}).
			Where("pesantren_id = ?", *req.PesantrenID).Count(&n).Error; err != nil || n == 0 {
			return helper.Error(c, fiber.StatusUnprocessableEntity, "Pesantren induk tidak ditemukan")
		}
	}

	req.ApplyTo(&m)

	if err := db.Select("*").Omit("santri_id", "santri_created_at", "santri_deleted_at").
		Where("santri_id = ?", id).Save(&m).Error; err != nil {
		log.Println("[ERROR] update santri gagal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui santri")
	}
	return helper.Success(c, "Santri berhasil diperbarui", m)
}

// =============================
// 🗑️ DELETE /api/a/santri/:id (soft delete)
// =============================
// Sama seperti pesantren: soft delete tidak memicu FK cascade, baris skor +
// map view ikut dihapus eksplisit di transaksi yang sama.
func (ctl *SantriController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID santri tidak valid")
	}

	err = ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&model.SantriModel{}, "santri_id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		if err := tx.Where("santri_id = ?", id).Delete(&petaModel.SantriMapModel{}).Error; err != nil {
			return err
		}
		return tx.Where("santri_id = ?", id).Delete(&skorModel.SantriSkorModel{}).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.Error(c, fiber.StatusNotFound, "Santri tidak ditemukan")
	}
	if err != nil {
		log.Println("[ERROR] hapus santri gagal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus santri")
	}
	return helper.Success(c, "Santri berhasil dihapus", nil)
}

/* =========================================================
   UPSERT ENAM ATRIBUT KESEJAHTERAAN
   ========================================================= */

func (ctl *SantriController) UpsertEkonomi(c *fiber.Ctx) error {
	id, err := ctl.pastikanAda(c)
	if err != nil {
		return err
	}
	var req dto.UpsertEkonomiRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	m := req.ToModel(id)
	return ctl.simpanUpsert(c, m, "santri_ekonomi_santri_id", []string{
		"santri_ekonomi_penghasilan_bulanan", "santri_ekonomi_jumlah_tanggungan", "santri_ekonomi_updated_at",
	}, "Data ekonomi berhasil disimpan")
}

func (ctl *SantriController) UpsertRumah(c *fiber.Ctx) error {
	id, err := ctl.pastikanAda(c)
	if err != nil {
		return err
	}
	var req dto.UpsertRumahRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	m := req.ToModel(id)
	return ctl.simpanUpsert(c, m, "santri_rumah_santri_id", []string{
		"santri_rumah_status_kepemilikan", "santri_rumah_akses_air", "santri_rumah_jenis_dinding",
		"santri_rumah_jenis_atap", "santri_rumah_jenis_lantai", "santri_rumah_updated_at",
	}, "Data rumah berhasil disimpan")
}

func (ctl *SantriController) UpsertAset(c *fiber.Ctx) error {
	id, err := ctl.pastikanAda(c)
	if err != nil {
		return err
	}
	var req dto.UpsertAsetRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	m := req.ToModel(id)
	return ctl.simpanUpsert(c, m, "santri_aset_santri_id", []string{
		"santri_aset_punya_kendaraan", "santri_aset_punya_lahan", "santri_aset_punya_ternak",
		"santri_aset_punya_elektronik", "santri_aset_updated_at",
	}, "Data aset berhasil disimpan")
}

func (ctl *SantriController) UpsertPembiayaan(c *fiber.Ctx) error {
	id, err := ctl.pastikanAda(c)
	if err != nil {
		return err
	}
	var req dto.UpsertPembiayaanRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	m := req.ToModel(id)
	return ctl.simpanUpsert(c, m, "santri_pembiayaan_santri_id", []string{
		"santri_pembiayaan_sumber_dana", "santri_pembiayaan_status_pembayaran", "santri_pembiayaan_updated_at",
	}, "Data pembiayaan berhasil disimpan")
}

func (ctl *SantriController) UpsertKesehatan(c *fiber.Ctx) error {
	id, err := ctl.pastikanAda(c)
	if err != nil {
		return err
	}
	var req dto.UpsertKesehatanRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	m := req.ToModel(id)
	return ctl.simpanUpsert(c, m, "santri_kesehatan_santri_id", []string{
		"santri_kesehatan_ada_penyakit_kronis", "santri_kesehatan_akses_layanan", "santri_kesehatan_updated_at",
	}, "Data kesehatan berhasil disimpan")
}

func (ctl *SantriController) UpsertBansos(c *fiber.Ctx) error {
	id, err := ctl.pastikanAda(c)
	if err != nil {
		return err
	}
	var req dto.UpsertBansosRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	m := req.ToModel(id)
	return ctl.simpanUpsert(c, m, "santri_bansos_santri_id", []string{
		"santri_bansos_menerima", "santri_bansos_program", "santri_bansos_updated_at",
	}, "Data bansos berhasil disimpan")
}

// simpanUpsert: pola OnConflict yang sama untuk keenam tabel atribut.
func (ctl *SantriController) simpanUpsert(c *fiber.Ctx, m interface{}, conflictCol string, updateCols []string, pesan string) error {
	err := ctl.DB.WithContext(c.Context()).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: conflictCol}},
		DoUpdates: clause.AssignmentColumns(updateCols),
	}).Create(m).Error
	if err != nil {
		log.Println("[ERROR] upsert atribut santri gagal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan data atribut")
	}
	return helper.Success(c, pesan, m)
}

func (ctl *SantriController) pastikanAda(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, helper.Error(c, fiber.StatusBadRequest, "ID santri tidak valid")
	}
	var n int64
	if err := ctl.DB.WithContext(c.Context()).Model(&model.SantriModel{}).
		Where("santri_id = ?", id).Count(&n).Error; err != nil {
		return uuid.Nil, helper.Error(c, fiber.StatusInternalServerError, "Gagal memeriksa santri")
	}
	if n == 0 {
		return uuid.Nil, helper.Error(c, fiber.StatusNotFound, "Santri tidak ditemukan")
	}
	return id, nil
}
