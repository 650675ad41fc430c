// internals/features/scoring/skor/dto/skor_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	skorModel "pesantrenku_backend/internals/features/scoring/skor/model"
)

/* ===================== RESPONSES ===================== */

type PesantrenSkorResponse struct {
	PesantrenID       uuid.UUID `json:"pesantren_id"`
	SkorFisik         int       `json:"skor_fisik"`
	SkorFasilitas     int       `json:"skor_fasilitas"`
	SkorPendidikan    int       `json:"skor_pendidikan"`
	SkorTotal         int       `json:"skor_total"`
	KategoriKelayakan string    `json:"kategori_kelayakan"`
	Metode            string    `json:"metode"`
	Version           string    `json:"version"`
	CalculatedAt      time.Time `json:"calculated_at"`
}

func NewPesantrenSkorResponse(m *skorModel.PesantrenSkorModel) *PesantrenSkorResponse {
	return &PesantrenSkorResponse{
		PesantrenID:       m.PesantrenID,
		SkorFisik:         m.SkorFisik,
		SkorFasilitas:     m.SkorFasilitas,
		SkorPendidikan:    m.SkorPendidikan,
		SkorTotal:         m.SkorTotal,
		KategoriKelayakan: m.KategoriKelayakan,
		Metode:            m.Metode,
		Version:           m.Version,
		CalculatedAt:      m.CalculatedAt,
	}
}

type SantriSkorResponse struct {
	SantriID           uuid.UUID `json:"santri_id"`
	SkorEkonomi        int       `json:"skor_ekonomi"`
	SkorRumah          int       `json:"skor_rumah"`
	SkorAset           int       `json:"skor_aset"`
	SkorPembiayaan     int       `json:"skor_pembiayaan"`
	SkorKesehatan      int       `json:"skor_kesehatan"`
	SkorBansos         int       `json:"skor_bansos"`
	SkorTotal          int       `json:"skor_total"`
	KategoriKemiskinan string    `json:"kategori_kemiskinan"`
	Metode             string    `json:"metode"`
	Version            string    `json:"version"`
	CalculatedAt       time.Time `json:"calculated_at"`
}

func NewSantriSkorResponse(m *skorModel.SantriSkorModel) *SantriSkorResponse {
	return &SantriSkorResponse{
		SantriID:           m.SantriID,
		SkorEkonomi:        m.SkorEkonomi,
		SkorRumah:          m.SkorRumah,
		SkorAset:           m.SkorAset,
		SkorPembiayaan:     m.SkorPembiayaan,
		SkorKesehatan:      m.SkorKesehatan,
		SkorBansos:         m.SkorBansos,
		SkorTotal:          m.SkorTotal,
		KategoriKemiskinan: m.KategoriKemiskinan,
		Metode:             m.Metode,
		Version:            m.Version,
		CalculatedAt:       m.CalculatedAt,
	}
}
