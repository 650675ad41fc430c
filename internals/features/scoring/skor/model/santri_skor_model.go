// internals/features/scoring/skor/model/santri_skor_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Satu baris skor per santri (UNIQUE santri_id).
type SantriSkorModel struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:id" json:"id"`
	SantriID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex;column:santri_id;constraint:OnDelete:CASCADE" json:"santri_id"`

	SkorEkonomi    int `gorm:"not null;column:skor_ekonomi" json:"skor_ekonomi"`
	SkorRumah      int `gorm:"not null;column:skor_rumah" json:"skor_rumah"`
	SkorAset       int `gorm:"not null;column:skor_aset" json:"skor_aset"`
	SkorPembiayaan int `gorm:"not null;column:skor_pembiayaan" json:"skor_pembiayaan"`
	SkorKesehatan  int `gorm:"not null;column:skor_kesehatan" json:"skor_kesehatan"`
	SkorBansos     int `gorm:"not null;column:skor_bansos" json:"skor_bansos"`
	SkorTotal      int `gorm:"not null;column:skor_total" json:"skor_total"`

	KategoriKemiskinan string `gorm:"type:varchar(20);not null;column:kategori_kemiskinan" json:"kategori_kemiskinan"`

	Metode  string `gorm:"type:varchar(30);not null;column:metode" json:"metode"`
	Version string `gorm:"type:varchar(20);not null;column:version" json:"version"`

	CalculatedAt time.Time `gorm:"not null;column:calculated_at" json:"calculated_at"`
}

func (SantriSkorModel) TableName() string { return "santri_skor" }
