package controller

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"pesantrenku_backend/internals/features/pesantren/profiles/model"
	petaModel "pesantrenku_backend/internals/features/peta/model"
	skorModel "pesantrenku_backend/internals/features/scoring/skor/model"
)

// Skema minimum untuk jalur hapus: subjek + baris skor + baris peta.
var deleteTestDDL = []string{
	`CREATE TABLE pesantren (
		pesantren_id TEXT PRIMARY KEY,
		pesantren_nama TEXT NOT NULL,
		pesantren_nspp TEXT,
		pesantren_slug TEXT NOT NULL UNIQUE,
		pesantren_pengasuh TEXT,
		pesantren_jenjang TEXT,
		pesantren_provinsi TEXT,
		pesantren_kabupaten TEXT,
		pesantren_kecamatan TEXT,
		pesantren_desa TEXT,
		pesantren_alamat TEXT,
		pesantren_latitude REAL,
		pesantren_longitude REAL,
		pesantren_created_at DATETIME,
		pesantren_updated_at DATETIME,
		pesantren_deleted_at DATETIME
	)`,
	`CREATE TABLE pesantren_skor (
		id TEXT PRIMARY KEY,
		pesantren_id TEXT NOT NULL UNIQUE,
		skor_fisik INTEGER NOT NULL,
		skor_fasilitas INTEGER NOT NULL,
		skor_pendidikan INTEGER NOT NULL,
		skor_total INTEGER NOT NULL,
		kategori_kelayakan TEXT NOT NULL,
		metode TEXT NOT NULL,
		version TEXT NOT NULL,
		calculated_at DATETIME NOT NULL
	)`,
	`CREATE TABLE pesantren_map (
		id TEXT PRIMARY KEY,
		pesantren_id TEXT NOT NULL UNIQUE,
		nama TEXT NOT NULL,
		provinsi TEXT,
		kabupaten TEXT,
		kecamatan TEXT,
		desa TEXT,
		latitude REAL NOT NULL,
		longitude REAL NOT NULL,
		skor_terakhir INTEGER NOT NULL,
		kategori_kelayakan TEXT NOT NULL,
		updated_at DATETIME
	)`,
}

func newDeleteTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	for _, ddl := range deleteTestDDL {
		require.NoError(t, db.Exec(ddl).Error)
	}

	app := fiber.New()
	ctl := NewPesantrenController(db)
	app.Delete("/pesantren/:id", ctl.Delete)
	return app, db
}

// Soft delete lewat API harus ikut menghapus baris skor dan map view —
// FK cascade tidak pernah jalan untuk soft delete.
func TestDeletePesantrenBersihkanSkorDanMapView(t *testing.T) {
	app, db := newDeleteTestApp(t)

	id := uuid.New()
	require.NoError(t, db.Create(&model.PesantrenModel{
		PesantrenID:   id,
		PesantrenNama: "Pesantren Darul Falah",
		PesantrenSlug: "pesantren-darul-falah",
	}).Error)
	require.NoError(t, db.Create(&skorModel.PesantrenSkorModel{
		ID:                uuid.New(),
		PesantrenID:       id,
		SkorFisik:         30,
		SkorFasilitas:     20,
		SkorPendidikan:    20,
		SkorTotal:         70,
		KategoriKelayakan: "cukup_layak",
		Metode:            "rule-based-v1",
		Version:           "1.0.0",
		CalculatedAt:      time.Now(),
	}).Error)
	require.NoError(t, db.Create(&petaModel.PesantrenMapModel{
		ID:                uuid.New(),
		PesantrenID:       id,
		Nama:              "Pesantren Darul Falah",
		Latitude:          -6.9,
		Longitude:         107.6,
		SkorTerakhir:      70,
		KategoriKelayakan: "cukup_layak",
	}).Error)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/pesantren/"+id.String(), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// hilang dari katalog, tapi masih ada sebagai arsip soft delete
	var aktif, arsip int64
	require.NoError(t, db.Model(&model.PesantrenModel{}).Where("pesantren_id = ?", id).Count(&aktif).Error)
	require.NoError(t, db.Unscoped().Model(&model.PesantrenModel{}).Where("pesantren_id = ?", id).Count(&arsip).Error)
	assert.EqualValues(t, 0, aktif)
	assert.EqualValues(t, 1, arsip)

	// skor & map view tidak boleh tersisa — kalau tersisa, peta publik
	// terus menampilkan subjek yang sudah dihapus
	var nSkor, nMap int64
	require.NoError(t, db.Model(&skorModel.PesantrenSkorModel{}).Where("pesantren_id = ?", id).Count(&nSkor).Error)
	require.NoError(t, db.Model(&petaModel.PesantrenMapModel{}).Where("pesantren_id = ?", id).Count(&nMap).Error)
	assert.EqualValues(t, 0, nSkor)
	assert.EqualValues(t, 0, nMap)
}

func TestDeletePesantrenTidakDitemukan(t *testing.T) {
	app, _ := newDeleteTestApp(t)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/pesantren/"+uuid.NewString(), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
