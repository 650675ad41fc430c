// internals/features/scoring/skor/service/skor_service.go
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	petaModel "pesantrenku_backend/internals/features/peta/model"
	"pesantrenku_backend/internals/features/scoring/rules"
	skorModel "pesantrenku_backend/internals/features/scoring/skor/model"
)

/*
SkorService = composer + persistence + proyeksi peta dalam satu unit kerja.

Kontrak:
  - upsert skor di-handle lewat ON CONFLICT (bukan pre-select), jadi dua
    request bersamaan untuk subjek yang sama tidak pernah menghasilkan
    dua baris;
  - baris skor dan baris peta ditulis dalam SATU transaksi — dua-duanya
    sukses atau dua-duanya rollback;
  - hitung ulang idempotent: id baris tidak berubah, calculated_at selalu
    diperbarui.
*/
type SkorService struct{}

func NewSkorService() *SkorService { return &SkorService{} }

// HitungPesantren menghitung dan menyimpan skor kelayakan satu pesantren.
func (s *SkorService) HitungPesantren(ctx context.Context, db *gorm.DB, pesantrenID uuid.UUID) (*skorModel.PesantrenSkorModel, error) {
	// Baca atribut di luar transaksi tulis — operasi idempotent, window
	// staleness pendek bisa diterima (hitung ulang berikutnya konvergen).
	bundle, err := LoadPesantrenAttributes(db.WithContext(ctx), pesantrenID)
	if err != nil {
		return nil, err
	}

	fisik := rules.SkorFisik(bundle.FisikInput())
	fasilitas := rules.SkorFasilitas(bundle.FasilitasInput())
	pendidikan := rules.SkorPendidikan(bundle.PendidikanInput())
	total := fisik + fasilitas + pendidikan

	if err := cekRentang("skor_fisik", fisik, rules.SkorFisikMax); err != nil {
		return nil, err
	}
	if err := cekRentang("skor_fasilitas", fasilitas, rules.SkorFasilitasMax); err != nil {
		return nil, err
	}
	if err := cekRentang("skor_pendidikan", pendidikan, rules.SkorPendidikanMax); err != nil {
		return nil, err
	}

	kategori, ok := rules.KategoriKelayakan(total)
	if !ok {
		return nil, &ConstraintMismatchError{Dimensi: "skor_total", Nilai: total}
	}

	row := skorModel.PesantrenSkorModel{
		ID:                uuid.New(),
		PesantrenID:       pesantrenID,
		SkorFisik:         fisik,
		SkorFasilitas:     fasilitas,
		SkorPendidikan:    pendidikan,
		SkorTotal:         total,
		KategoriKelayakan: kategori,
		Metode:            rules.Metode,
		Version:           rules.Version,
		CalculatedAt:      time.Now(),
	}

	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// INSERT ... ON CONFLICT (pesantren_id) DO UPDATE — id lama dipertahankan
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "pesantren_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"skor_fisik", "skor_fasilitas", "skor_pendidikan", "skor_total",
				"kategori_kelayakan", "metode", "version", "calculated_at",
			}),
		}).Create(&row).Error; err != nil {
			return classifyStorageErr(err)
		}

		// ambil baris kanonis (id asli kalau tadi jatuh ke UPDATE);
		// pakai variabel segar — First() ikut memfilter PK kalau sudah terisi
		var tersimpan skorModel.PesantrenSkorModel
		if err := tx.Where("pesantren_id = ?", pesantrenID).First(&tersimpan).Error; err != nil {
			return classifyStorageErr(err)
		}
		row = tersimpan

		return s.proyeksikanPesantrenMap(tx, bundle, &row)
	})
	if err != nil {
		return nil, err
	}

	return &row, nil
}

// HitungSantri menghitung dan menyimpan skor kemiskinan satu santri.
func (s *SkorService) HitungSantri(ctx context.Context, db *gorm.DB, santriID uuid.UUID) (*skorModel.SantriSkorModel, error) {
	bundle, err := LoadSantriAttributes(db.WithContext(ctx), santriID)
	if err != nil {
		return nil, err
	}

	ekonomi := rules.SkorEkonomi(bundle.EkonomiInput())
	rumah := rules.SkorRumah(bundle.RumahInput())
	aset := rules.SkorAset(bundle.AsetInput())
	pembiayaan := rules.SkorPembiayaan(bundle.PembiayaanInput())
	kesehatan := rules.SkorKesehatan(bundle.KesehatanInput())
	bansos := rules.SkorBansos(bundle.BansosInput())
	total := ekonomi + rumah + aset + pembiayaan + kesehatan + bansos

	for _, c := range []struct {
		dimensi string
		nilai   int
		max     int
	}{
		{"skor_ekonomi", ekonomi, rules.SkorEkonomiMax},
		{"skor_rumah", rumah, rules.SkorRumahMax},
		{"skor_aset", aset, rules.SkorAsetMax},
		{"skor_pembiayaan", pembiayaan, rules.SkorPembiayaanMax},
		{"skor_kesehatan", kesehatan, rules.SkorKesehatanMax},
		{"skor_bansos", bansos, rules.SkorBansosMax},
	} {
		if err := cekRentang(c.dimensi, c.nilai, c.max); err != nil {
			return nil, err
		}
	}

	kategori, ok := rules.KategoriKemiskinan(total)
	if !ok {
		return nil, &ConstraintMismatchError{Dimensi: "skor_total", Nilai: total}
	}

	row := skorModel.SantriSkorModel{
		ID:                 uuid.New(),
		SantriID:           santriID,
		SkorEkonomi:        ekonomi,
		SkorRumah:          rumah,
		SkorAset:           aset,
		SkorPembiayaan:     pembiayaan,
		SkorKesehatan:      kesehatan,
		SkorBansos:         bansos,
		SkorTotal:          total,
		KategoriKemiskinan: kategori,
		Metode:             rules.Metode,
		Version:            rules.Version,
		CalculatedAt:       time.Now(),
	}

	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "santri_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"skor_ekonomi", "skor_rumah", "skor_aset", "skor_pembiayaan",
				"skor_kesehatan", "skor_bansos", "skor_total",
				"kategori_kemiskinan", "metode", "version", "calculated_at",
			}),
		}).Create(&row).Error; err != nil {
			return classifyStorageErr(err)
		}

		var tersimpan skorModel.SantriSkorModel
		if err := tx.Where("santri_id = ?", santriID).First(&tersimpan).Error; err != nil {
			return classifyStorageErr(err)
		}
		row = tersimpan

		return s.proyeksikanSantriMap(tx, bundle, &row)
	})
	if err != nil {
		return nil, err
	}

	return &row, nil
}

/* =========================================================
   PROYEKSI MAP VIEW (ditulis dalam transaksi yang sama)
   ========================================================= */

func (s *SkorService) proyeksikanPesantrenMap(tx *gorm.DB, bundle *PesantrenAttributes, skor *skorModel.PesantrenSkorModel) error {
	p := bundle.Pesantren

	// tanpa koordinat → pastikan tidak ada baris peta
	if p.PesantrenLatitude == nil || p.PesantrenLongitude == nil {
		if err := tx.Where("pesantren_id = ?", p.PesantrenID).
			Delete(&petaModel.PesantrenMapModel{}).Error; err != nil {
			return classifyStorageErr(err)
		}
		return nil
	}

	row := petaModel.PesantrenMapModel{
		ID:                uuid.New(),
		PesantrenID:       p.PesantrenID,
		Nama:              p.PesantrenNama,
		Provinsi:          p.PesantrenProvinsi,
		Kabupaten:         p.PesantrenKabupaten,
		Kecamatan:         p.PesantrenKecamatan,
		Desa:              p.PesantrenDesa,
		Latitude:          *p.PesantrenLatitude,
		Longitude:         *p.PesantrenLongitude,
		SkorTerakhir:      skor.SkorTotal,
		KategoriKelayakan: skor.KategoriKelayakan,
	}

	if err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "pesantren_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"nama", "provinsi", "kabupaten", "kecamatan", "desa",
			"latitude", "longitude", "skor_terakhir", "kategori_kelayakan", "updated_at",
		}),
	}).Create(&row).Error; err != nil {
		return classifyStorageErr(err)
	}
	return nil
}

func (s *SkorService) proyeksikanSantriMap(tx *gorm.DB, bundle *SantriAttributes, skor *skorModel.SantriSkorModel) error {
	st := bundle.Santri

	if st.SantriLatitude == nil || st.SantriLongitude == nil {
		if err := tx.Where("santri_id = ?", st.SantriID).
			Delete(&petaModel.SantriMapModel{}).Error; err != nil {
			return classifyStorageErr(err)
		}
		return nil
	}

	row := petaModel.SantriMapModel{
		ID:                 uuid.New(),
		SantriID:           st.SantriID,
		Nama:               st.SantriNama,
		Latitude:           *st.SantriLatitude,
		Longitude:          *st.SantriLongitude,
		SkorTerakhir:       skor.SkorTotal,
		KategoriKemiskinan: skor.KategoriKemiskinan,
	}
	// label wilayah disalin dari pesantren induk
	if p := bundle.Pesantren; p != nil {
		row.NamaPesantren = p.PesantrenNama
		row.Provinsi = p.PesantrenProvinsi
		row.Kabupaten = p.PesantrenKabupaten
		row.Kecamatan = p.PesantrenKecamatan
		row.Desa = p.PesantrenDesa
	}

	if err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "santri_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"nama", "nama_pesantren", "provinsi", "kabupaten", "kecamatan", "desa",
			"latitude", "longitude", "skor_terakhir", "kategori_kemiskinan", "updated_at",
		}),
	}).Create(&row).Error; err != nil {
		return classifyStorageErr(err)
	}
	return nil
}

func cekRentang(dimensi string, nilai, max int) error {
	if nilai < 0 || nilai > max {
		return &ConstraintMismatchError{Dimensi: dimensi, Nilai: nilai}
	}
	return nil
}
