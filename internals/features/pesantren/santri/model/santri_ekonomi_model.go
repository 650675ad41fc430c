// internals/features/pesantren/santri/model/santri_ekonomi_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Atribut ekonomi rumah tangga — maksimal satu baris per santri.
type SantriEkonomiModel struct {
	SantriEkonomiID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:santri_ekonomi_id" json:"santri_ekonomi_id"`
	SantriEkonomiSantriID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex;column:santri_ekonomi_santri_id;constraint:OnDelete:CASCADE" json:"santri_ekonomi_santri_id"`

	// Penghasilan rumah tangga per bulan (rupiah)
	SantriEkonomiPenghasilanBulanan *int64 `gorm:"column:santri_ekonomi_penghasilan_bulanan" json:"santri_ekonomi_penghasilan_bulanan,omitempty"`
	SantriEkonomiJumlahTanggungan   *int   `gorm:"column:santri_ekonomi_jumlah_tanggungan" json:"santri_ekonomi_jumlah_tanggungan,omitempty"`

	SantriEkonomiCreatedAt time.Time  `gorm:"column:santri_ekonomi_created_at;autoCreateTime" json:"santri_ekonomi_created_at"`
	SantriEkonomiUpdatedAt *time.Time `gorm:"column:santri_ekonomi_updated_at;autoUpdateTime" json:"santri_ekonomi_updated_at,omitempty"`
}

func (SantriEkonomiModel) TableName() string { return "santri_ekonomi" }
