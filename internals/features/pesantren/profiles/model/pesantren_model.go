// internals/features/pesantren/profiles/model/pesantren_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PesantrenModel struct {
	// PK
	PesantrenID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:pesantren_id" json:"pesantren_id"`

	// Identitas
	PesantrenNama string  `gorm:"type:varchar(150);not null;column:pesantren_nama" json:"pesantren_nama"`
	PesantrenNSPP *string `gorm:"type:varchar(30);column:pesantren_nspp" json:"pesantren_nspp,omitempty"` // nomor statistik pondok pesantren
	PesantrenSlug string  `gorm:"type:varchar(120);unique;not null;column:pesantren_slug" json:"pesantren_slug"`

	// Pengasuh & jenjang
	PesantrenPengasuh *string `gorm:"type:varchar(150);column:pesantren_pengasuh" json:"pesantren_pengasuh,omitempty"`
	PesantrenJenjang  *string `gorm:"type:varchar(40);column:pesantren_jenjang" json:"pesantren_jenjang,omitempty"`

	// Wilayah administratif
	PesantrenProvinsi  *string `gorm:"type:varchar(80);column:pesantren_provinsi" json:"pesantren_provinsi,omitempty"`
	PesantrenKabupaten *string `gorm:"type:varchar(80);column:pesantren_kabupaten" json:"pesantren_kabupaten,omitempty"`
	PesantrenKecamatan *string `gorm:"type:varchar(80);column:pesantren_kecamatan" json:"pesantren_kecamatan,omitempty"`
	PesantrenDesa      *string `gorm:"type:varchar(80);column:pesantren_desa" json:"pesantren_desa,omitempty"`
	PesantrenAlamat    *string `gorm:"column:pesantren_alamat" json:"pesantren_alamat,omitempty"`

	// Titik koordinat (nullable — tanpa titik, pesantren tidak tampil di peta)
	PesantrenLatitude  *float64 `gorm:"type:decimal(9,6);column:pesantren_latitude" json:"pesantren_latitude,omitempty"`
	PesantrenLongitude *float64 `gorm:"type:decimal(9,6);column:pesantren_longitude" json:"pesantren_longitude,omitempty"`

	// Audit
	PesantrenCreatedAt time.Time      `gorm:"column:pesantren_created_at;autoCreateTime" json:"pesantren_created_at"`
	PesantrenUpdatedAt *time.Time     `gorm:"column:pesantren_updated_at;autoUpdateTime" json:"pesantren_updated_at,omitempty"`
	PesantrenDeletedAt gorm.DeletedAt `gorm:"column:pesantren_deleted_at;index" json:"pesantren_deleted_at,omitempty"`
}

func (PesantrenModel) TableName() string { return "pesantren" }
