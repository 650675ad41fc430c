// internals/features/pesantren/santri/model/santri_kesehatan_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Atribut kesehatan keluarga — maksimal satu baris per santri.
type SantriKesehatanModel struct {
	SantriKesehatanID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:santri_kesehatan_id" json:"santri_kesehatan_id"`
	SantriKesehatanSantriID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex;column:santri_kesehatan_santri_id;constraint:OnDelete:CASCADE" json:"santri_kesehatan_santri_id"`

	SantriKesehatanAdaPenyakitKronis *bool `gorm:"column:santri_kesehatan_ada_penyakit_kronis" json:"santri_kesehatan_ada_penyakit_kronis,omitempty"`
	// Enum: layak | tidak_layak (akses ke layanan kesehatan terdekat)
	SantriKesehatanAksesLayanan *string `gorm:"type:varchar(20);column:santri_kesehatan_akses_layanan" json:"santri_kesehatan_akses_layanan,omitempty"`

	SantriKesehatanCreatedAt time.Time  `gorm:"column:santri_kesehatan_created_at;autoCreateTime" json:"santri_kesehatan_created_at"`
	SantriKesehatanUpdatedAt *time.Time `gorm:"column:santri_kesehatan_updated_at;autoUpdateTime" json:"santri_kesehatan_updated_at,omitempty"`
}

func (SantriKesehatanModel) TableName() string { return "santri_kesehatan" }
