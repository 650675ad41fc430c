// internals/features/peta/model/pesantren_map_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Baris denormalisasi untuk peta — murni turunan dari pesantren + pesantren_skor.
// Engine skoring hanya MENULIS ke sini; tidak pernah membaca. Seluruh isi tabel
// bisa diregenerasi dengan menjalankan ulang skoring untuk semua subjek.
type PesantrenMapModel struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:id" json:"id"`
	PesantrenID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex;column:pesantren_id;constraint:OnDelete:CASCADE" json:"pesantren_id"`

	Nama      string  `gorm:"type:varchar(150);not null;column:nama" json:"nama"`
	Provinsi  *string `gorm:"type:varchar(80);column:provinsi" json:"provinsi,omitempty"`
	Kabupaten *string `gorm:"type:varchar(80);column:kabupaten" json:"kabupaten,omitempty"`
	Kecamatan *string `gorm:"type:varchar(80);column:kecamatan" json:"kecamatan,omitempty"`
	Desa      *string `gorm:"type:varchar(80);column:desa" json:"desa,omitempty"`

	Latitude  float64 `gorm:"type:decimal(9,6);not null;column:latitude" json:"latitude"`
	Longitude float64 `gorm:"type:decimal(9,6);not null;column:longitude" json:"longitude"`

	SkorTerakhir      int    `gorm:"not null;column:skor_terakhir" json:"skor_terakhir"`
	KategoriKelayakan string `gorm:"type:varchar(20);not null;column:kategori_kelayakan" json:"kategori_kelayakan"`

	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (PesantrenMapModel) TableName() string { return "pesantren_map" }
