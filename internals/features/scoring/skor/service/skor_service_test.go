package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	pModel "pesantrenku_backend/internals/features/pesantren/profiles/model"
	sModel "pesantrenku_backend/internals/features/pesantren/santri/model"
	petaModel "pesantrenku_backend/internals/features/peta/model"
	"pesantrenku_backend/internals/features/scoring/rules"
	skorModel "pesantrenku_backend/internals/features/scoring/skor/model"
)

// Skema test ditulis manual (bukan AutoMigrate) supaya DDL-nya jelas dan
// FK ON DELETE CASCADE ikut teruji di sqlite.
var schemaDDL = []string{
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
	`CREATE TABLE pesantren_fisik (
		pesantren_fisik_id TEXT PRIMARY KEY,
		pesantren_fisik_pesantren_id TEXT NOT NULL UNIQUE REFERENCES pesantren(pesantren_id) ON DELETE CASCADE,
		pesantren_fisik_kualitas_bangunan TEXT,
		pesantren_fisik_sanitasi TEXT,
		pesantren_fisik_sumber_air TEXT,
		pesantren_fisik_kualitas_air TEXT,
		pesantren_fisik_ada_keamanan BOOLEAN,
		pesantren_fisik_jenis_lantai TEXT,
		pesantren_fisik_jenis_atap TEXT,
		pesantren_fisik_jenis_dinding TEXT,
		pesantren_fisik_santri_per_kamar INTEGER,
		pesantren_fisik_created_at DATETIME,
		pesantren_fisik_updated_at DATETIME
	)`,
	`CREATE TABLE pesantren_fasilitas (
		pesantren_fasilitas_id TEXT PRIMARY KEY,
		pesantren_fasilitas_pesantren_id TEXT NOT NULL UNIQUE REFERENCES pesantren(pesantren_id) ON DELETE CASCADE,
		pesantren_fasilitas_asrama TEXT,
		pesantren_fasilitas_ruang_kelas TEXT,
		pesantren_fasilitas_ada_internet BOOLEAN,
		pesantren_fasilitas_ada_transportasi BOOLEAN,
		pesantren_fasilitas_ada_dapur BOOLEAN,
		pesantren_fasilitas_ada_mck BOOLEAN,
		pesantren_fasilitas_akses_jalan TEXT,
		pesantren_fasilitas_created_at DATETIME,
		pesantren_fasilitas_updated_at DATETIME
	)`,
	`CREATE TABLE pesantren_pendidikan (
		pesantren_pendidikan_id TEXT PRIMARY KEY,
		pesantren_pendidikan_pesantren_id TEXT NOT NULL UNIQUE REFERENCES pesantren(pesantren_id) ON DELETE CASCADE,
		pesantren_pendidikan_akreditasi TEXT,
		pesantren_pendidikan_kurikulum TEXT,
		pesantren_pendidikan_prestasi TEXT,
		pesantren_pendidikan_jumlah_guru INTEGER,
		pesantren_pendidikan_jumlah_santri INTEGER,
		pesantren_pendidikan_persen_guru_sertifikat INTEGER,
		pesantren_pendidikan_created_at DATETIME,
		pesantren_pendidikan_updated_at DATETIME
	)`,
	`CREATE TABLE santri (
		santri_id TEXT PRIMARY KEY,
		santri_pesantren_id TEXT NOT NULL REFERENCES pesantren(pesantren_id) ON DELETE CASCADE,
		santri_nama TEXT NOT NULL,
		santri_nisn TEXT,
		santri_gender TEXT,
		santri_status_mukim TEXT,
		santri_latitude REAL,
		santri_longitude REAL,
		santri_created_at DATETIME,
		santri_updated_at DATETIME,
		santri_deleted_at DATETIME
	)`,
	`CREATE TABLE santri_ekonomi (
		santri_ekonomi_id TEXT PRIMARY KEY,
		santri_ekonomi_santri_id TEXT NOT NULL UNIQUE REFERENCES santri(santri_id) ON DELETE CASCADE,
		santri_ekonomi_penghasilan_bulanan INTEGER,
		santri_ekonomi_jumlah_tanggungan INTEGER,
		santri_ekonomi_created_at DATETIME,
		santri_ekonomi_updated_at DATETIME
	)`,
	`CREATE TABLE santri_rumah (
		santri_rumah_id TEXT PRIMARY KEY,
		santri_rumah_santri_id TEXT NOT NULL UNIQUE REFERENCES santri(santri_id) ON DELETE CASCADE,
		santri_rumah_status_kepemilikan TEXT,
		santri_rumah_akses_air TEXT,
		santri_rumah_jenis_dinding TEXT,
		santri_rumah_jenis_atap TEXT,
		santri_rumah_jenis_lantai TEXT,
		santri_rumah_created_at DATETIME,
		santri_rumah_updated_at DATETIME
	)`,
	`CREATE TABLE santri_aset (
		santri_aset_id TEXT PRIMARY KEY,
		santri_aset_santri_id TEXT NOT NULL UNIQUE REFERENCES santri(santri_id) ON DELETE CASCADE,
		santri_aset_punya_kendaraan BOOLEAN,
		santri_aset_punya_lahan BOOLEAN,
		santri_aset_punya_ternak BOOLEAN,
		santri_aset_punya_elektronik BOOLEAN,
		santri_aset_created_at DATETIME,
		santri_aset_updated_at DATETIME
	)`,
	`CREATE TABLE santri_pembiayaan (
		santri_pembiayaan_id TEXT PRIMARY KEY,
		santri_pembiayaan_santri_id TEXT NOT NULL UNIQUE REFERENCES santri(santri_id) ON DELETE CASCADE,
		santri_pembiayaan_sumber_dana TEXT,
		santri_pembiayaan_status_pembayaran TEXT,
		santri_pembiayaan_created_at DATETIME,
		santri_pembiayaan_updated_at DATETIME
	)`,
	`CREATE TABLE santri_kesehatan (
		santri_kesehatan_id TEXT PRIMARY KEY,
		santri_kesehatan_santri_id TEXT NOT NULL UNIQUE REFERENCES santri(santri_id) ON DELETE CASCADE,
		santri_kesehatan_ada_penyakit_kronis BOOLEAN,
		santri_kesehatan_akses_layanan TEXT,
		santri_kesehatan_created_at DATETIME,
		santri_kesehatan_updated_at DATETIME
	)`,
	`CREATE TABLE santri_bansos (
		santri_bansos_id TEXT PRIMARY KEY,
		santri_bansos_santri_id TEXT NOT NULL UNIQUE REFERENCES santri(santri_id) ON DELETE CASCADE,
		santri_bansos_menerima BOOLEAN,
		santri_bansos_program TEXT,
		santri_bansos_created_at DATETIME,
		santri_bansos_updated_at DATETIME
	)`,
	`CREATE TABLE pesantren_skor (
		id TEXT PRIMARY KEY,
		pesantren_id TEXT NOT NULL UNIQUE REFERENCES pesantren(pesantren_id) ON DELETE CASCADE,
		skor_fisik INTEGER NOT NULL,
		skor_fasilitas INTEGER NOT NULL,
		skor_pendidikan INTEGER NOT NULL,
		skor_total INTEGER NOT NULL,
		kategori_kelayakan TEXT NOT NULL,
		metode TEXT NOT NULL,
		version TEXT NOT NULL,
		calculated_at DATETIME NOT NULL
	)`,
	`CREATE TABLE santri_skor (
		id TEXT PRIMARY KEY,
		santri_id TEXT NOT NULL UNIQUE REFERENCES santri(santri_id) ON DELETE CASCADE,
		skor_ekonomi INTEGER NOT NULL,
		skor_rumah INTEGER NOT NULL,
		skor_aset INTEGER NOT NULL,
		skor_pembiayaan INTEGER NOT NULL,
		skor_kesehatan INTEGER NOT NULL,
		skor_bansos INTEGER NOT NULL,
		skor_total INTEGER NOT NULL,
		kategori_kemiskinan TEXT NOT NULL,
		metode TEXT NOT NULL,
		version TEXT NOT NULL,
		calculated_at DATETIME NOT NULL
	)`,
	`CREATE TABLE pesantren_map (
		id TEXT PRIMARY KEY,
		pesantren_id TEXT NOT NULL UNIQUE REFERENCES pesantren(pesantren_id) ON DELETE CASCADE,
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
	`CREATE TABLE santri_map (
		id TEXT PRIMARY KEY,
		santri_id TEXT NOT NULL UNIQUE REFERENCES santri(santri_id) ON DELETE CASCADE,
		nama TEXT NOT NULL,
		nama_pesantren TEXT NOT NULL,
		provinsi TEXT,
		kabupaten TEXT,
		kecamatan TEXT,
		desa TEXT,
		latitude REAL NOT NULL,
		longitude REAL NOT NULL,
		skor_terakhir INTEGER NOT NULL,
		kategori_kemiskinan TEXT NOT NULL,
		updated_at DATETIME
	)`,
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// in-memory sqlite: satu koneksi supaya semua query lihat DB yang sama
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	for _, ddl := range schemaDDL {
		require.NoError(t, db.Exec(ddl).Error)
	}
	return db
}

func ptrStr(s string) *string   { return &s }
func ptrInt(v int) *int         { return &v }
func ptrInt64(v int64) *int64   { return &v }
func ptrBool(v bool) *bool      { return &v }
func ptrF64(v float64) *float64 { return &v }

func seedPesantren(t *testing.T, db *gorm.DB, lat, lon *float64) uuid.UUID {
	t.Helper()
	id := uuid.New()
	require.NoError(t, db.Create(&pModel.PesantrenModel{
		PesantrenID:        id,
		PesantrenNama:      "Pesantren Al-Ikhlas",
		PesantrenSlug:      "pesantren-al-ikhlas-" + id.String()[:8],
		PesantrenProvinsi:  ptrStr("Jawa Barat"),
		PesantrenKabupaten: ptrStr("Garut"),
		PesantrenKecamatan: ptrStr("Cibatu"),
		PesantrenDesa:      ptrStr("Sukalilah"),
		PesantrenLatitude:  lat,
		PesantrenLongitude: lon,
	}).Error)
	return id
}

// atribut terbaik di semua dimensi → skor 100
func seedAtributPesantrenTerbaik(t *testing.T, db *gorm.DB, pesantrenID uuid.UUID) {
	t.Helper()
	require.NoError(t, db.Create(&pModel.PesantrenFisikModel{
		PesantrenFisikID:               uuid.New(),
		PesantrenFisikPesantrenID:      pesantrenID,
		PesantrenFisikKualitasBangunan: ptrStr("baik"),
		PesantrenFisikSanitasi:         ptrStr("layak"),
		PesantrenFisikSumberAir:        ptrStr("layak"),
		PesantrenFisikKualitasAir:      ptrStr("layak"),
		PesantrenFisikAdaKeamanan:      ptrBool(true),
		PesantrenFisikJenisLantai:      ptrStr("keramik"),
		PesantrenFisikJenisAtap:        ptrStr("genteng"),
		PesantrenFisikJenisDinding:     ptrStr("tembok"),
		PesantrenFisikSantriPerKamar:   ptrInt(4),
	}).Error)
	require.NoError(t, db.Create(&pModel.PesantrenFasilitasModel{
		PesantrenFasilitasID:              uuid.New(),
		PesantrenFasilitasPesantrenID:     pesantrenID,
		PesantrenFasilitasAsrama:          ptrStr("layak"),
		PesantrenFasilitasRuangKelas:      ptrStr("layak"),
		PesantrenFasilitasAdaInternet:     ptrBool(true),
		PesantrenFasilitasAdaTransportasi: ptrBool(true),
		PesantrenFasilitasAdaDapur:        ptrBool(true),
		PesantrenFasilitasAdaMCK:          ptrBool(true),
		PesantrenFasilitasAksesJalan:      ptrStr("aspal"),
	}).Error)
	require.NoError(t, db.Create(&pModel.PesantrenPendidikanModel{
		PesantrenPendidikanID:                   uuid.New(),
		PesantrenPendidikanPesantrenID:          pesantrenID,
		PesantrenPendidikanAkreditasi:           ptrStr("a"),
		PesantrenPendidikanKurikulum:            ptrStr("terstandar"),
		PesantrenPendidikanPrestasi:             ptrStr("nasional"),
		PesantrenPendidikanJumlahGuru:           ptrInt(10),
		PesantrenPendidikanJumlahSantri:         ptrInt(150),
		PesantrenPendidikanPersenGuruSertifikat: ptrInt(80),
	}).Error)
}

func seedSantri(t *testing.T, db *gorm.DB, pesantrenID uuid.UUID, lat, lon *float64) uuid.UUID {
	t.Helper()
	id := uuid.New()
	require.NoError(t, db.Create(&sModel.SantriModel{
		SantriID:          id,
		SantriPesantrenID: pesantrenID,
		SantriNama:        "Ahmad Fauzi",
		SantriGender:      ptrStr("L"),
		SantriStatusMukim: ptrStr("mondok"),
		SantriLatitude:    lat,
		SantriLongitude:   lon,
	}).Error)
	return id
}

/* =========================================================
   SKENARIO PESANTREN
   ========================================================= */

func TestHitungPesantrenSkenarioTerbaik(t *testing.T) {
	db := newTestDB(t)
	svc := NewSkorService()

	id := seedPesantren(t, db, ptrF64(-7.2103), ptrF64(107.8852))
	seedAtributPesantrenTerbaik(t, db, id)

	row, err := svc.HitungPesantren(context.Background(), db, id)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, row.SkorTotal, 85)
	assert.Equal(t, rules.KategoriLayak, row.KategoriKelayakan)
	assert.Equal(t, row.SkorTotal, row.SkorFisik+row.SkorFasilitas+row.SkorPendidikan)
	assert.Equal(t, rules.Metode, row.Metode)
	assert.Equal(t, rules.Version, row.Version)

	// map view: tepat satu baris, skor & kategori sama dengan baris skor
	var maps []petaModel.PesantrenMapModel
	require.NoError(t, db.Where("pesantren_id = ?", id).Find(&maps).Error)
	require.Len(t, maps, 1)
	assert.Equal(t, row.SkorTotal, maps[0].SkorTerakhir)
	assert.Equal(t, row.KategoriKelayakan, maps[0].KategoriKelayakan)
	assert.Equal(t, "Pesantren Al-Ikhlas", maps[0].Nama)
}

func TestHitungPesantrenTanpaAtribut(t *testing.T) {
	db := newTestDB(t)
	svc := NewSkorService()

	// tidak ada baris fisik/fasilitas/pendidikan & tidak ada koordinat
	id := seedPesantren(t, db, nil, nil)

	row, err := svc.HitungPesantren(context.Background(), db, id)
	require.NoError(t, err)

	assert.Equal(t, 0, row.SkorFisik)
	assert.Equal(t, 0, row.SkorFasilitas)
	assert.Equal(t, 0, row.SkorPendidikan)
	assert.LessOrEqual(t, row.SkorTotal, 10)
	assert.Equal(t, rules.KategoriTidakLayak, row.KategoriKelayakan)

	// tanpa koordinat → tidak boleh ada baris peta
	var n int64
	require.NoError(t, db.Model(&petaModel.PesantrenMapModel{}).Where("pesantren_id = ?", id).Count(&n).Error)
	assert.EqualValues(t, 0, n)
}

func TestHitungPesantrenSubjekTidakAda(t *testing.T) {
	db := newTestDB(t)
	svc := NewSkorService()

	_, err := svc.HitungPesantren(context.Background(), db, uuid.New())
	require.ErrorIs(t, err, ErrSubjectNotFound)
}

func TestHitungUlangIdempoten(t *testing.T) {
	db := newTestDB(t)
	svc := NewSkorService()

	id := seedPesantren(t, db, ptrF64(-7.21), ptrF64(107.88))
	seedAtributPesantrenTerbaik(t, db, id)

	first, err := svc.HitungPesantren(context.Background(), db, id)
	require.NoError(t, err)
	second, err := svc.HitungPesantren(context.Background(), db, id)
	require.NoError(t, err)

	// satu baris skor, id tidak berubah, sub-skor identik
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.SkorFisik, second.SkorFisik)
	assert.Equal(t, first.SkorFasilitas, second.SkorFasilitas)
	assert.Equal(t, first.SkorPendidikan, second.SkorPendidikan)
	assert.Equal(t, first.SkorTotal, second.SkorTotal)
	assert.Equal(t, first.KategoriKelayakan, second.KategoriKelayakan)

	var nSkor, nMap int64
	require.NoError(t, db.Model(&skorModel.PesantrenSkorModel{}).Where("pesantren_id = ?", id).Count(&nSkor).Error)
	require.NoError(t, db.Model(&petaModel.PesantrenMapModel{}).Where("pesantren_id = ?", id).Count(&nMap).Error)
	assert.EqualValues(t, 1, nSkor)
	assert.EqualValues(t, 1, nMap)
}

func TestHitungUlangSetelahPerbaikanInput(t *testing.T) {
	db := newTestDB(t)
	svc := NewSkorService()

	id := seedPesantren(t, db, ptrF64(-7.21), ptrF64(107.88))
	seedAtributPesantrenTerbaik(t, db, id)

	// turunkan akreditasi dulu ke b
	require.NoError(t, db.Model(&pModel.PesantrenPendidikanModel{}).
		Where("pesantren_pendidikan_pesantren_id = ?", id).
		Update("pesantren_pendidikan_akreditasi", "b").Error)

	before, err := svc.HitungPesantren(context.Background(), db, id)
	require.NoError(t, err)

	// perbaiki ke a → skor harus naik, id baris tetap
	require.NoError(t, db.Model(&pModel.PesantrenPendidikanModel{}).
		Where("pesantren_pendidikan_pesantren_id = ?", id).
		Update("pesantren_pendidikan_akreditasi", "a").Error)

	after, err := svc.HitungPesantren(context.Background(), db, id)
	require.NoError(t, err)

	assert.Greater(t, after.SkorTotal, before.SkorTotal)
	assert.Equal(t, before.ID, after.ID)

	var nMap int64
	require.NoError(t, db.Model(&petaModel.PesantrenMapModel{}).Where("pesantren_id = ?", id).Count(&nMap).Error)
	assert.EqualValues(t, 1, nMap)
}

func TestKoordinatDihapusMapViewIkutHilang(t *testing.T) {
	db := newTestDB(t)
	svc := NewSkorService()

	id := seedPesantren(t, db, ptrF64(-7.21), ptrF64(107.88))
	seedAtributPesantrenTerbaik(t, db, id)

	_, err := svc.HitungPesantren(context.Background(), db, id)
	require.NoError(t, err)

	var nMap int64
	require.NoError(t, db.Model(&petaModel.PesantrenMapModel{}).Where("pesantren_id = ?", id).Count(&nMap).Error)
	require.EqualValues(t, 1, nMap)

	// null-kan koordinat lalu hitung ulang
	require.NoError(t, db.Model(&pModel.PesantrenModel{}).
		Where("pesantren_id = ?", id).
		Updates(map[string]any{"pesantren_latitude": nil, "pesantren_longitude": nil}).Error)

	_, err = svc.HitungPesantren(context.Background(), db, id)
	require.NoError(t, err)

	require.NoError(t, db.Model(&petaModel.PesantrenMapModel{}).Where("pesantren_id = ?", id).Count(&nMap).Error)
	assert.EqualValues(t, 0, nMap)

	// baris skor tetap ada
	var nSkor int64
	require.NoError(t, db.Model(&skorModel.PesantrenSkorModel{}).Where("pesantren_id = ?", id).Count(&nSkor).Error)
	assert.EqualValues(t, 1, nSkor)
}

func TestCascadeHapusPesantren(t *testing.T) {
	db := newTestDB(t)
	svc := NewSkorService()

	id := seedPesantren(t, db, ptrF64(-7.21), ptrF64(107.88))
	seedAtributPesantrenTerbaik(t, db, id)

	_, err := svc.HitungPesantren(context.Background(), db, id)
	require.NoError(t, err)

	// hard delete subjek → skor & map view ikut terhapus lewat FK cascade
	require.NoError(t, db.Exec("DELETE FROM pesantren WHERE pesantren_id = ?", id).Error)

	var nSkor, nMap int64
	require.NoError(t, db.Model(&skorModel.PesantrenSkorModel{}).Where("pesantren_id = ?", id).Count(&nSkor).Error)
	require.NoError(t, db.Model(&petaModel.PesantrenMapModel{}).Where("pesantren_id = ?", id).Count(&nMap).Error)
	assert.EqualValues(t, 0, nSkor)
	assert.EqualValues(t, 0, nMap)
}

/* =========================================================
   SKENARIO SANTRI
   ========================================================= */

func TestHitungSantriSkenarioTermiskin(t *testing.T) {
	db := newTestDB(t)
	svc := NewSkorService()

	pid := seedPesantren(t, db, nil, nil)
	sid := seedSantri(t, db, pid, nil, nil)

	require.NoError(t, db.Create(&sModel.SantriEkonomiModel{
		SantriEkonomiID:                 uuid.New(),
		SantriEkonomiSantriID:           sid,
		SantriEkonomiPenghasilanBulanan: ptrInt64(300_000),
		SantriEkonomiJumlahTanggungan:   ptrInt(8),
	}).Error)
	require.NoError(t, db.Create(&sModel.SantriRumahModel{
		SantriRumahID:                uuid.New(),
		SantriRumahSantriID:          sid,
		SantriRumahStatusKepemilikan: ptrStr("menumpang"),
		SantriRumahAksesAir:          ptrStr("tidak_layak"),
		SantriRumahJenisDinding:      ptrStr("bambu"),
		SantriRumahJenisAtap:         ptrStr("rumbia"),
		SantriRumahJenisLantai:       ptrStr("tanah"),
	}).Error)
	require.NoError(t, db.Create(&sModel.SantriPembiayaanModel{
		SantriPembiayaanID:               uuid.New(),
		SantriPembiayaanSantriID:         sid,
		SantriPembiayaanSumberDana:       ptrStr("bantuan"),
		SantriPembiayaanStatusPembayaran: ptrStr("menunggak"),
	}).Error)
	require.NoError(t, db.Create(&sModel.SantriBansosModel{
		SantriBansosID:       uuid.New(),
		SantriBansosSantriID: sid,
		SantriBansosMenerima: ptrBool(true),
		SantriBansosProgram:  []string{"PKH", "BPNT"},
	}).Error)

	row, err := svc.HitungSantri(context.Background(), db, sid)
	require.NoError(t, err)

	assert.Less(t, row.SkorTotal, 30)
	assert.Equal(t, rules.KategoriSangatMiskin, row.KategoriKemiskinan)
	assert.Equal(t, row.SkorTotal,
		row.SkorEkonomi+row.SkorRumah+row.SkorAset+row.SkorPembiayaan+row.SkorKesehatan+row.SkorBansos)
}

func TestHitungSantriRentanMiskin(t *testing.T) {
	db := newTestDB(t)
	svc := NewSkorService()

	pid := seedPesantren(t, db, nil, nil)
	sid := seedSantri(t, db, pid, ptrF64(-7.3301), ptrF64(108.2207))

	require.NoError(t, db.Create(&sModel.SantriEkonomiModel{
		SantriEkonomiID:                 uuid.New(),
		SantriEkonomiSantriID:           sid,
		SantriEkonomiPenghasilanBulanan: ptrInt64(1_500_000),
		SantriEkonomiJumlahTanggungan:   ptrInt(4),
	}).Error)
	require.NoError(t, db.Create(&sModel.SantriRumahModel{
		SantriRumahID:                uuid.New(),
		SantriRumahSantriID:          sid,
		SantriRumahStatusKepemilikan: ptrStr("kontrak"),
		SantriRumahAksesAir:          ptrStr("layak"),
		SantriRumahJenisDinding:      ptrStr("kayu"),
		SantriRumahJenisAtap:         ptrStr("seng"),
		SantriRumahJenisLantai:       ptrStr("semen"),
	}).Error)
	require.NoError(t, db.Create(&sModel.SantriAsetModel{
		SantriAsetID:              uuid.New(),
		SantriAsetSantriID:        sid,
		SantriAsetPunyaElektronik: ptrBool(true),
	}).Error)
	require.NoError(t, db.Create(&sModel.SantriPembiayaanModel{
		SantriPembiayaanID:               uuid.New(),
		SantriPembiayaanSantriID:         sid,
		SantriPembiayaanSumberDana:       ptrStr("orang_tua"),
		SantriPembiayaanStatusPembayaran: ptrStr("lancar"),
	}).Error)
	require.NoError(t, db.Create(&sModel.SantriKesehatanModel{
		SantriKesehatanID:                uuid.New(),
		SantriKesehatanSantriID:          sid,
		SantriKesehatanAdaPenyakitKronis: ptrBool(true),
		SantriKesehatanAksesLayanan:      ptrStr("layak"),
	}).Error)
	require.NoError(t, db.Create(&sModel.SantriBansosModel{
		SantriBansosID:       uuid.New(),
		SantriBansosSantriID: sid,
		SantriBansosMenerima: ptrBool(false),
	}).Error)

	row, err := svc.HitungSantri(context.Background(), db, sid)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, row.SkorTotal, 50)
	assert.LessOrEqual(t, row.SkorTotal, 69)
	assert.Equal(t, rules.KategoriRentanMiskin, row.KategoriKemiskinan)

	// map view santri: label wilayah ikut pesantren induk
	var m petaModel.SantriMapModel
	require.NoError(t, db.Where("santri_id = ?", sid).First(&m).Error)
	assert.Equal(t, row.SkorTotal, m.SkorTerakhir)
	assert.Equal(t, row.KategoriKemiskinan, m.KategoriKemiskinan)
	assert.Equal(t, "Pesantren Al-Ikhlas", m.NamaPesantren)
	require.NotNil(t, m.Provinsi)
	assert.Equal(t, "Jawa Barat", *m.Provinsi)
}

func TestHitungSantriSubjekTidakAda(t *testing.T) {
	db := newTestDB(t)
	svc := NewSkorService()

	_, err := svc.HitungSantri(context.Background(), db, uuid.New())
	require.ErrorIs(t, err, ErrSubjectNotFound)
}
