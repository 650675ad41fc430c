// internals/features/pesantren/profiles/controller/pesantren_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pesantrenku_backend/internals/features/pesantren/profiles/dto"
	"pesantrenku_backend/internals/features/pesantren/profiles/model"
	petaModel "pesantrenku_backend/internals/features/peta/model"
	skorModel "pesantrenku_backend/internals/features/scoring/skor/model"
	helper "pesantrenku_backend/internals/helpers"
)

var validate = validator.New()

var pesantrenSortable = map[string]bool{
	"pesantren_nama":       true,
	"pesantren_provinsi":   true,
	"pesantren_kabupaten":  true,
	"pesantren_created_at": true,
}

type PesantrenController struct {
	DB *gorm.DB
}

func NewPesantrenController(db *gorm.DB) *PesantrenController {
	return &PesantrenController{DB: db}
}

// =============================
// ➕ POST /api/a/pesantren
// =============================
func (ctl *PesantrenController) Create(c *fiber.Ctx) error {
	var req dto.CreatePesantrenRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	slug, err := helper.EnsureUniqueSlug(ctl.DB, helper.GenerateSlug(m.PesantrenNama), "pesantren", "pesantren_slug")
	if err != nil {
		log.Println("[ERROR] generate slug gagal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat slug")
	}
	m.PesantrenSlug = slug

	if err := ctl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		log.Println("[ERROR] simpan pesantren gagal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan pesantren")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Pesantren berhasil dibuat", m)
}

// =============================
// 📄 GET /api/public/pesantren
// =============================
func (ctl *PesantrenController) List(c *fiber.Ctx) error {
	p := helper.ParsePage(c, "pesantren_created_at", pesantrenSortable)

	q := ctl.DB.WithContext(c.Context()).Model(&model.PesantrenModel{})
	if v := c.Query("q"); v != "" {
		q = q.Where("pesantren_nama ILIKE ?", "%"+v+"%")
	}
	if v := c.Query("provinsi"); v != "" {
		q = q.Where("pesantren_provinsi = ?", v)
	}
	if v := c.Query("kabupaten"); v != "" {
		q = q.Where("pesantren_kabupaten = ?", v)
	}
	if v := c.Query("jenjang"); v != "" {
		q = q.Where("pesantren_jenjang = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var rows []model.PesantrenModel
	if err := q.Order(p.OrderClause()).Limit(p.PerPage).Offset(p.Offset()).Find(&rows).Error; err != nil {
		log.Println("[ERROR] list pesantren gagal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data pesantren")
	}

	return helper.Success(c, "Daftar pesantren berhasil diambil", fiber.Map{
		"items":      rows,
		"pagination": helper.PageMeta(p, total),
	})
}

// =============================
// 🔍 GET /api/public/pesantren/:id
// =============================
// Detail lengkap: profil + tiga baris atribut + skor terakhir (kalau ada).
func (ctl *PesantrenController) Detail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID pesantren tidak valid")
	}

	db := ctl.DB.WithContext(c.Context())

	var m model.PesantrenModel
	if err := db.First(&m, "pesantren_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Pesantren tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data pesantren")
	}

	resp := dto.PesantrenDetailResponse{Pesantren: &m}

	var fisik model.PesantrenFisikModel
	if err := db.First(&fisik, "pesantren_fisik_pesantren_id = ?", id).Error; err == nil {
		resp.Fisik = &fisik
	}
	var fasilitas model.PesantrenFasilitasModel
	if err := db.First(&fasilitas, "pesantren_fasilitas_pesantren_id = ?", id).Error; err == nil {
		resp.Fasilitas = &fasilitas
	}
	var pendidikan model.PesantrenPendidikanModel
	if err := db.First(&pendidikan, "pesantren_pendidikan_pesantren_id = ?", id).Error; err == nil {
		resp.Pendidikan = &pendidikan
	}
	var skor skorModel.PesantrenSkorModel
	if err := db.First(&skor, "pesantren_id = ?", id).Error; err == nil {
		resp.Skor = &skor
	}

	return helper.Success(c, "Detail pesantren berhasil diambil", resp)
}

// =============================
// ✏️ PUT /api/a/pesantren/:id
// =============================
func (ctl *PesantrenController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID pesantren tidak valid")
	}

	var req dto.UpdatePesantrenRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	db := ctl.DB.WithContext(c.Context())

	var m model.PesantrenModel
	if err := db.First(&m, "pesantren_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Pesantren tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data pesantren")
	}

	req.ApplyTo(&m)

	// Save penuh supaya nil koordinat ikut tertulis (Updates melewatkan zero value)
	if err := db.Select("*").Omit("pesantren_id", "pesantren_created_at", "pesantren_deleted_at").
		Where("pesantren_id = ?", id).Save(&m).Error; err != nil {
		log.Println("[ERROR] update pesantren gagal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui pesantren")
	}
	return helper.Success(c, "Pesantren berhasil diperbarui", m)
}

// =============================
// 🗑️ DELETE /api/a/pesantren/:id (soft delete)
// =============================
// Soft delete tidak memicu FK cascade, jadi baris skor + map view harus
// dibersihkan eksplisit dalam transaksi yang sama — kalau tidak, subjek yang
// sudah dihapus tetap tampil di peta publik selamanya.
func (ctl *PesantrenController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID pesantren tidak valid")
	}

	err = ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&model.PesantrenModel{}, "pesantren_id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		if err := tx.Where("pesantren_id = ?", id).Delete(&petaModel.PesantrenMapModel{}).Error; err != nil {
			return err
		}
		return tx.Where("pesantren_id = ?", id).Delete(&skorModel.PesantrenSkorModel{}).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.Error(c, fiber.StatusNotFound, "Pesantren tidak ditemukan")
	}
	if err != nil {
		log.Println("[ERROR] hapus pesantren gagal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus pesantren")
	}
	return helper.Success(c, "Pesantren berhasil dihapus", nil)
}

/* =========================================================
   UPSERT ATRIBUT — PUT, satu baris per pesantren
   ========================================================= */

func (ctl *PesantrenController) UpsertFisik(c *fiber.Ctx) error {
	id, err := ctl.pastikanAda(c)
	if err != nil {
		return err
	}
	var req dto.UpsertFisikRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel(id)
	err = ctl.DB.WithContext(c.Context()).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "pesantren_fisik_pesantren_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"pesantren_fisik_kualitas_bangunan", "pesantren_fisik_sanitasi",
			"pesantren_fisik_sumber_air", "pesantren_fisik_kualitas_air",
			"pesantren_fisik_ada_keamanan", "pesantren_fisik_jenis_lantai",
			"pesantren_fisik_jenis_atap", "pesantren_fisik_jenis_dinding",
			"pesantren_fisik_santri_per_kamar", "pesantren_fisik_updated_at",
		}),
	}).Create(m).Error
	if err != nil {
		log.Println("[ERROR] upsert fisik gagal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan data fisik")
	}
	return helper.Success(c, "Data fisik berhasil disimpan", m)
}

func (ctl *PesantrenController) UpsertFasilitas(c *fiber.Ctx) error {
	id, err := ctl.pastikanAda(c)
	if err != nil {
		return err
	}
	var req dto.UpsertFasilitasRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel(id)
	err = ctl.DB.WithContext(c.Context()).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "pesantren_fasilitas_pesantren_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"pesantren_fasilitas_asrama", "pesantren_fasilitas_ruang_kelas",
			"pesantren_fasilitas_ada_internet", "pesantren_fasilitas_ada_transportasi",
			"pesantren_fasilitas_ada_dapur", "pesantren_fasilitas_ada_mck",
			"pesantren_fasilitas_akses_jalan", "pesantren_fasilitas_updated_at",
		}),
	}).Create(m).Error
	if err != nil {
		log.Println("[ERROR] upsert fasilitas gagal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan data fasilitas")
	}
	return helper.Success(c, "Data fasilitas berhasil disimpan", m)
}

func (ctl *PesantrenController) UpsertPendidikan(c *fiber.Ctx) error {
	id, err := ctl.pastikanAda(c)
	if err != nil {
		return err
	}
	var req dto.UpsertPendidikanRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel(id)
	err = ctl.DB.WithContext(c.Context()).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "pesantren_pendidikan_pesantren_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"pesantren_pendidikan_akreditasi", "pesantren_pendidikan_kurikulum",
			"pesantren_pendidikan_prestasi", "pesantren_pendidikan_jumlah_guru",
			"pesantren_pendidikan_jumlah_santri", "pesantren_pendidikan_persen_guru_sertifikat",
			"pesantren_pendidikan_updated_at",
		}),
	}).Create(m).Error
	if err != nil {
		log.Println("[ERROR] upsert pendidikan gagal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan data pendidikan")
	}
	return helper.Success(c, "Data pendidikan berhasil disimpan", m)
}

// pastikanAda memvalidasi param :id dan memastikan pesantren-nya masih hidup.
func (ctl *PesantrenController) pastikanAda(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, helper.Error(c, fiber.StatusBadRequest, "ID pesantren tidak valid")
	}
	var n int64
	if err := ctl.DB.WithContext(c.Context()).Model(&model.PesantrenModel{}).
		Where("pesantren_id = ?", id).Count(&n).Error; err != nil {
		return uuid.Nil, helper.Error(c, fiber.StatusInternalServerError, "Gagal memeriksa pesantren")
	}
	if n == 0 {
		return uuid.Nil, helper.Error(c, fiber.StatusNotFound, "Pesantren tidak ditemukan")
	}
	return id, nil
}
