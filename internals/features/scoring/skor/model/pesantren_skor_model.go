// internals/features/scoring/skor/model/pesantren_skor_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Satu baris skor per pesantren (UNIQUE pesantren_id).
// Nama kolom skor mengikuti skema final: skor_fisik dst (tanpa prefix tabel).
type PesantrenSkorModel struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:id" json:"id"`
	PesantrenID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex;column:pesantren_id;constraint:OnDelete:CASCADE" json:"pesantren_id"`

	SkorFisik      int `gorm:"not null;column:skor_fisik" json:"skor_fisik"`
	SkorFasilitas  int `gorm:"not null;column:skor_fasilitas" json:"skor_fasilitas"`
	SkorPendidikan int `gorm:"not null;column:skor_pendidikan" json:"skor_pendidikan"`
	SkorTotal      int `gorm:"not null;column:skor_total" json:"skor_total"`

	KategoriKelayakan string `gorm:"type:varchar(20);not null;column:kategori_kelayakan" json:"kategori_kelayakan"`

	Metode  string `gorm:"type:varchar(30);not null;column:metode" json:"metode"`
	Version string `gorm:"type:varchar(20);not null;column:version" json:"version"`

	CalculatedAt time.Time `gorm:"not null;column:calculated_at" json:"calculated_at"`
}

func (PesantrenSkorModel) TableName() string { return "pesantren_skor" }
