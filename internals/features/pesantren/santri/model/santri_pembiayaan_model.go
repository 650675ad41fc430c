// internals/features/pesantren/santri/model/santri_pembiayaan_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Atribut pembiayaan pendidikan — maksimal satu baris per santri.
type SantriPembiayaanModel struct {
	SantriPembiayaanID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:santri_pembiayaan_id" json:"santri_pembiayaan_id"`
	SantriPembiayaanSantriID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex;column:santri_pembiayaan_santri_id;constraint:OnDelete:CASCADE" json:"santri_pembiayaan_santri_id"`

	// Enum: orang_tua | beasiswa | bantuan | lainnya
	SantriPembiayaanSumberDana *string `gorm:"type:varchar(20);column:santri_pembiayaan_sumber_dana" json:"santri_pembiayaan_sumber_dana,omitempty"`
	// Enum: lancar | terlambat | menunggak
	SantriPembiayaanStatusPembayaran *string `gorm:"type:varchar(20);column:santri_pembiayaan_status_pembayaran" json:"santri_pembiayaan_status_pembayaran,omitempty"`

	SantriPembiayaanCreatedAt time.Time  `gorm:"column:santri_pembiayaan_created_at;autoCreateTime" json:"santri_pembiayaan_created_at"`
	SantriPembiayaanUpdatedAt *time.Time `gorm:"column:santri_pembiayaan_updated_at;autoUpdateTime" json:"santri_pembiayaan_updated_at,omitempty"`
}

func (SantriPembiayaanModel) TableName() string { return "santri_pembiayaan" }
