// internals/features/peta/model/santri_map_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Baris denormalisasi peta santri. Label wilayah disalin dari pesantren induk
// saat proyeksi; koordinat dari titik rumah santri.
type SantriMapModel struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:id" json:"id"`
	SantriID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex;column:santri_id;constraint:OnDelete:CASCADE" json:"santri_id"`

	Nama          string  `gorm:"type:varchar(150);not null;column:nama" json:"nama"`
	NamaPesantren string  `gorm:"type:varchar(150);not null;column:nama_pesantren" json:"nama_pesantren"`
	Provinsi      *string `gorm:"type:varchar(80);column:provinsi" json:"provinsi,omitempty"`
	Kabupaten     *string `gorm:"type:varchar(80);column:kabupaten" json:"kabupaten,omitempty"`
	Kecamatan     *string `gorm:"type:varchar(80);column:kecamatan" json:"kecamatan,omitempty"`
	Desa          *string `gorm:"type:varchar(80);column:desa" json:"desa,omitempty"`

	Latitude  float64 `gorm:"type:decimal(9,6);not null;column:latitude" json:"latitude"`
	Longitude float64 `gorm:"type:decimal(9,6);not null;column:longitude" json:"longitude"`

	SkorTerakhir       int    `gorm:"not null;column:skor_terakhir" json:"skor_terakhir"`
	KategoriKemiskinan string `gorm:"type:varchar(20);not null;column:kategori_kemiskinan" json:"kategori_kemiskinan"`

	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (SantriMapModel) TableName() string { return "santri_map" }
