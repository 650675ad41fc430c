// internals/features/pesantren/santri/model/santri_aset_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Atribut kepemilikan aset — maksimal satu baris per santri.
type SantriAsetModel struct {
	SantriAsetID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:santri_aset_id" json:"santri_aset_id"`
	SantriAsetSantriID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex;column:santri_aset_santri_id;constraint:OnDelete:CASCADE" json:"santri_aset_santri_id"`

	SantriAsetPunyaKendaraan  *bool `gorm:"column:santri_aset_punya_kendaraan" json:"santri_aset_punya_kendaraan,omitempty"`
	SantriAsetPunyaLahan      *bool `gorm:"column:santri_aset_punya_lahan" json:"santri_aset_punya_lahan,omitempty"`
	SantriAsetPunyaTernak     *bool `gorm:"column:santri_aset_punya_ternak" json:"santri_aset_punya_ternak,omitempty"`
	SantriAsetPunyaElektronik *bool `gorm:"column:santri_aset_punya_elektronik" json:"santri_aset_punya_elektronik,omitempty"`

	SantriAsetCreatedAt time.Time  `gorm:"column:santri_aset_created_at;autoCreateTime" json:"santri_aset_created_at"`
	SantriAsetUpdatedAt *time.Time `gorm:"column:santri_aset_updated_at;autoUpdateTime" json:"santri_aset_updated_at,omitempty"`
}

func (SantriAsetModel) TableName() string { return "santri_aset" }
