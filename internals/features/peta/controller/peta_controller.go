// internals/features/peta/controller/peta_controller.go
package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/constants"
	"pesantrenku_backend/internals/features/peta/dto"
	"pesantrenku_backend/internals/features/peta/model"
	helper "pesantrenku_backend/internals/helpers"
)

type PetaController struct {
	DB *gorm.DB
}

func NewPetaController(db *gorm.DB) *PetaController {
	return &PetaController{DB: db}
}

// kolom group_by di-whitelist supaya tidak bisa disuntik lewat query string
var choroplethCols = map[string]string{
	"provinsi":  "provinsi",
	"kabupaten": "kabupaten",
	"kecamatan": "kecamatan",
}

// =============================
// 🗺️ GET /api/public/peta/pesantren
// =============================
// GeoJSON mentah (tanpa envelope) supaya bisa langsung dipakai Leaflet/Mapbox.
func (ctl *PetaController) GeoJSONPesantren(c *fiber.Ctx) error {
	q := ctl.DB.WithContext(c.Context()).Model(&model.PesantrenMapModel{})
	if v := c.Query("provinsi"); v != "" {
		q = q.Where("provinsi = ?", v)
	}
	if v := c.Query("kabupaten"); v != "" {
		q = q.Where("kabupaten = ?", v)
	}
	if v := constants.NormalizeToken(c.Query("kategori")); v != "" {
		q = q.Where("kategori_kelayakan = ?", v)
	}

	var rows []model.PesantrenMapModel
	if err := q.Find(&rows).Error; err != nil {
		log.Println("[ERROR] gagal ambil peta pesantren:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data peta")
	}

	features := make([]dto.GeoJSONFeature, 0, len(rows))
	for _, r := range rows {
		features = append(features, dto.NewPesantrenFeature(r))
	}
	return c.JSON(dto.NewFeatureCollection(features))
}

// =============================
// 🗺️ GET /api/public/peta/santri
// =============================
func (ctl *PetaController) GeoJSONSantri(c *fiber.Ctx) error {
	q := ctl.DB.WithContext(c.Context()).Model(&model.SantriMapModel{})
	if v := c.Query("provinsi"); v != "" {
		q = q.Where("provinsi = ?", v)
	}
	if v := c.Query("kabupaten"); v != "" {
		q = q.Where("kabupaten = ?", v)
	}
	if v := constants.NormalizeToken(c.Query("kategori")); v != "" {
		q = q.Where("kategori_kemiskinan = ?", v)
	}

	var rows []model.SantriMapModel
	if err := q.Find(&rows).Error; err != nil {
		log.Println("[ERROR] gagal ambil peta santri:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data peta")
	}

	features := make([]dto.GeoJSONFeature, 0, len(rows))
	for _, r := range rows {
		features = append(features, dto.NewSantriFeature(r))
	}
	return c.JSON(dto.NewFeatureCollection(features))
}

// =============================
// 📊 GET /api/public/peta/pesantren/choropleth?group_by=provinsi
// =============================
func (ctl *PetaController) ChoroplethPesantren(c *fiber.Ctx) error {
	col, ok := choroplethCols[c.Query("group_by", "provinsi")]
	if !ok {
		return helper.Error(c, fiber.StatusBadRequest, "group_by harus provinsi, kabupaten, atau kecamatan")
	}

	var items []dto.PesantrenChoroplethItem
	err := ctl.DB.WithContext(c.Context()).
		Model(&model.PesantrenMapModel{}).
		Select(col+` AS wilayah,
			COUNT(*) AS jumlah,
			AVG(skor_terakhir) AS rata_skor,
			SUM(CASE WHEN kategori_kelayakan = 'layak' THEN 1 ELSE 0 END) AS jumlah_layak,
			SUM(CASE WHEN kategori_kelayakan = 'cukup_layak' THEN 1 ELSE 0 END) AS jumlah_cukup_layak,
			SUM(CASE WHEN kategori_kelayakan = 'tidak_layak' THEN 1 ELSE 0 END) AS jumlah_tidak_layak`).
		Where(col + " IS NOT NULL").
		Group(col).
		Order("wilayah ASC").
		Scan(&items).Error
	if err != nil {
		log.Println("[ERROR] gagal agregasi choropleth pesantren:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil agregat peta")
	}

	return helper.Success(c, "Agregat peta pesantren berhasil diambil", fiber.Map{
		"group_by": col,
		"items":    items,
	})
}

// =============================
// 📊 GET /api/public/peta/santri/choropleth?group_by=provinsi
// =============================
func (ctl *PetaController) ChoroplethSantri(c *fiber.Ctx) error {
	col, ok := choroplethCols[c.Query("group_by", "provinsi")]
	if !ok {
		return helper.Error(c, fiber.StatusBadRequest, "group_by harus provinsi, kabupaten, atau kecamatan")
	}

	var items []dto.SantriChoroplethItem
	err := ctl.DB.WithContext(c.Context()).
		Model(&model.SantriMapModel{}).
		Select(col+` AS wilayah,
			COUNT(*) AS jumlah,
			AVG(skor_terakhir) AS rata_skor,
			SUM(CASE WHEN kategori_kemiskinan = 'sangat_miskin' THEN 1 ELSE 0 END) AS jumlah_sangat_miskin,
			SUM(CASE WHEN kategori_kemiskinan = 'miskin' THEN 1 ELSE 0 END) AS jumlah_miskin,
			SUM(CASE WHEN kategori_kemiskinan = 'rentan_miskin' THEN 1 ELSE 0 END) AS jumlah_rentan_miskin,
			SUM(CASE WHEN kategori_kemiskinan = 'tidak_miskin' THEN 1 ELSE 0 END) AS jumlah_tidak_miskin`).
		Where(col + " IS NOT NULL").
		Group(col).
		Order("wilayah ASC").
		Scan(&items).Error
	if err != nil {
		log.Println("[ERROR] gagal agregasi choropleth santri:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil agregat peta")
	}

	return helper.Success(c, "Agregat peta santri berhasil diambil", fiber.Map{
		"group_by": col,
		"items":    items,
	})
}
