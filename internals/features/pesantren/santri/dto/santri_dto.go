// internals/features/pesantren/santri/dto/santri_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"pesantrenku_backend/internals/constants"
	"pesantrenku_backend/internals/features/pesantren/santri/model"
)

/* =========================================================
   REQUEST — PROFIL SANTRI
   ========================================================= */

type CreateSantriRequest struct {
	PesantrenID uuid.UUID `json:"pesantren_id" validate:"required"`
	Nama        string    `json:"nama" validate:"required,min=3,max=150"`
	NISN        *string   `json:"nisn" validate:"omitempty,max=20"`
	Gender      *string   `json:"gender" validate:"omitempty,oneof=L P"`
	StatusMukim *string   `json:"status_mukim" validate:"omitempty,oneof=mondok pp mukim"`
	Latitude    *float64  `json:"latitude" validate:"omitempty,latitude"`
	Longitude   *float64  `json:"longitude" validate:"omitempty,longitude"`
}

func (r *CreateSantriRequest) ToModel() *model.SantriModel {
	return &model.SantriModel{
		SantriID:          uuid.New(),
		SantriPesantrenID: r.PesantrenID,
		SantriNama:        strings.TrimSpace(r.Nama),
		SantriNISN:        r.NISN,
		SantriGender:      r.Gender,
		SantriStatusMukim: r.StatusMukim,
		SantriLatitude:    r.Latitude,
		SantriLongitude:   r.Longitude,
	}
}

type UpdateSantriRequest struct {
	PesantrenID    *uuid.UUID `json:"pesantren_id"`
	Nama           *string    `json:"nama" validate:"omitempty,min=3,max=150"`
	NISN           *string    `json:"nisn" validate:"omitempty,max=20"`
	Gender         *string    `json:"gender" validate:"omitempty,oneof=L P"`
	StatusMukim    *string    `json:"status_mukim" validate:"omitempty,oneof=mondok pp mukim"`
	Latitude       *float64   `json:"latitude" validate:"omitempty,latitude"`
	Longitude      *float64   `json:"longitude" validate:"omitempty,longitude"`
	HapusKoordinat bool       `json:"hapus_koordinat"`
}

func (r *UpdateSantriRequest) ApplyTo(m *model.SantriModel) {
	if r.PesantrenID != nil {
		m.SantriPesantrenID = *r.PesantrenID
	}
	if r.Nama != nil {
		m.SantriNama = strings.TrimSpace(*r.Nama)
	}
	if r.NISN != nil {
		m.SantriNISN = r.NISN
	}
	if r.Gender != nil {
		m.SantriGender = r.Gender
	}
	if r.StatusMukim != nil {
		m.SantriStatusMukim = r.StatusMukim
	}
	if r.Latitude != nil {
		m.SantriLatitude = r.Latitude
	}
	if r.Longitude != nil {
		m.SantriLongitude = r.Longitude
	}
	if r.HapusKoordinat {
		m.SantriLatitude = nil
		m.SantriLongitude = nil
	}
}

/* =========================================================
   REQUEST — ENAM ATRIBUT KESEJAHTERAAN (PUT upsert)
   ========================================================= */

type UpsertEkonomiRequest struct {
	PenghasilanBulanan *int64 `json:"penghasilan_bulanan" validate:"omitempty,min=0"`
	JumlahTanggungan   *int   `json:"jumlah_tanggungan" validate:"omitempty,min=0,max=30"`
}

func (r *UpsertEkonomiRequest) ToModel(santriID uuid.UUID) *model.SantriEkonomiModel {
	return &model.SantriEkonomiModel{
		SantriEkonomiID:                 uuid.New(),
		SantriEkonomiSantriID:           santriID,
		SantriEkonomiPenghasilanBulanan: r.PenghasilanBulanan,
		SantriEkonomiJumlahTanggungan:   r.JumlahTanggungan,
	}
}

type UpsertRumahRequest struct {
	StatusKepemilikan *string `json:"status_kepemilikan" validate:"omitempty,max=20"`
	AksesAir          *string `json:"akses_air" validate:"omitempty,max=20"`
	JenisDinding      *string `json:"jenis_dinding" validate:"omitempty,max=20"`
	JenisAtap         *string `json:"jenis_atap" validate:"omitempty,max=20"`
	JenisLantai       *string `json:"jenis_lantai" validate:"omitempty,max=20"`
}

func (r *UpsertRumahRequest) ToModel(santriID uuid.UUID) *model.SantriRumahModel {
	return &model.SantriRumahModel{
		SantriRumahID:                uuid.New(),
		SantriRumahSantriID:          santriID,
		SantriRumahStatusKepemilikan: normalizePtr(r.StatusKepemilikan),
		SantriRumahAksesAir:          normalizePtr(r.AksesAir),
		SantriRumahJenisDinding:      normalizePtr(r.JenisDinding),
		SantriRumahJenisAtap:         normalizePtr(r.JenisAtap),
		SantriRumahJenisLantai:       normalizePtr(r.JenisLantai),
	}
}

type UpsertAsetRequest struct {
	PunyaKendaraan  *bool `json:"punya_kendaraan"`
	PunyaLahan      *bool `json:"punya_lahan"`
	PunyaTernak     *bool `json:"punya_ternak"`
	PunyaElektronik *bool `json:"punya_elektronik"`
}

func (r *UpsertAsetRequest) ToModel(santriID uuid.UUID) *model.SantriAsetModel {
	return &model.SantriAsetModel{
		SantriAsetID:              uuid.New(),
		SantriAsetSantriID:        santriID,
		SantriAsetPunyaKendaraan:  r.PunyaKendaraan,
		SantriAsetPunyaLahan:      r.PunyaLahan,
		SantriAsetPunyaTernak:     r.PunyaTernak,
		SantriAsetPunyaElektronik: r.PunyaElektronik,
	}
}

type UpsertPembiayaanRequest struct {
	SumberDana       *string `json:"sumber_dana" validate:"omitempty,max=20"`
	StatusPembayaran *string `json:"status_pembayaran" validate:"omitempty,max=20"`
}

func (r *UpsertPembiayaanRequest) ToModel(santriID uuid.UUID) *model.SantriPembiayaanModel {
	return &model.SantriPembiayaanModel{
		SantriPembiayaanID:               uuid.New(),
		SantriPembiayaanSantriID:         santriID,
		SantriPembiayaanSumberDana:       normalizePtr(r.SumberDana),
		SantriPembiayaanStatusPembayaran: normalizePtr(r.StatusPembayaran),
	}
}

type UpsertKesehatanRequest struct {
	AdaPenyakitKronis *bool   `json:"ada_penyakit_kronis"`
	AksesLayanan      *string `json:"akses_layanan" validate:"omitempty,max=20"`
}

func (r *UpsertKesehatanRequest) ToModel(santriID uuid.UUID) *model.SantriKesehatanModel {
	return &model.SantriKesehatanModel{
		SantriKesehatanID:                uuid.New(),
		SantriKesehatanSantriID:          santriID,
		SantriKesehatanAdaPenyakitKronis: r.AdaPenyakitKronis,
		SantriKesehatanAksesLayanan:      normalizePtr(r.AksesLayanan),
	}
}

type UpsertBansosRequest struct {
	Menerima *bool    `json:"menerima"`
	Program  []string `json:"program" validate:"omitempty,max=10,dive,max=50"`
}

func (r *UpsertBansosRequest) ToModel(santriID uuid.UUID) *model.SantriBansosModel {
	return &model.SantriBansosModel{
		SantriBansosID:       uuid.New(),
		SantriBansosSantriID: santriID,
		SantriBansosMenerima: r.Menerima,
		SantriBansosProgram:  pq.StringArray(r.Program),
	}
}

func normalizePtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := constants.NormalizeToken(*s)
	return &v
}

/* =========================================================
   RESPONSE
   ========================================================= */

type SantriDetailResponse struct {
	Santri     *model.SantriModel           `json:"santri"`
	Ekonomi    *model.SantriEkonomiModel    `json:"ekonomi,omitempty"`
	Rumah      *model.SantriRumahModel      `json:"rumah,omitempty"`
	Aset       *model.SantriAsetModel       `json:"aset,omitempty"`
	Pembiayaan *model.SantriPembiayaanModel `json:"pembiayaan,omitempty"`
	Kesehatan  *model.SantriKesehatanModel  `json:"kesehatan,omitempty"`
	Bansos     *model.SantriBansosModel     `json:"bansos,omitempty"`
	Skor       interface{}                  `json:"skor,omitempty"`
}
