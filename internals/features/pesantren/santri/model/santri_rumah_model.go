// internals/features/pesantren/santri/model/santri_rumah_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Atribut rumah tinggal — maksimal satu baris per santri.
type SantriRumahModel struct {
	SantriRumahID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:santri_rumah_id" json:"santri_rumah_id"`
	SantriRumahSantriID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex;column:santri_rumah_santri_id;constraint:OnDelete:CASCADE" json:"santri_rumah_santri_id"`

	// Enum: milik_sendiri | kontrak | menumpang
	SantriRumahStatusKepemilikan *string `gorm:"type:varchar(20);column:santri_rumah_status_kepemilikan" json:"santri_rumah_status_kepemilikan,omitempty"`
	// Enum: layak | tidak_layak
	SantriRumahAksesAir *string `gorm:"type:varchar(20);column:santri_rumah_akses_air" json:"santri_rumah_akses_air,omitempty"`

	// Enum dinding: tembok | kayu | bambu; atap: genteng | seng | rumbia; lantai: keramik | semen | tanah
	SantriRumahJenisDinding *string `gorm:"type:varchar(20);column:santri_rumah_jenis_dinding" json:"santri_rumah_jenis_dinding,omitempty"`
	SantriRumahJenisAtap    *string `gorm:"type:varchar(20);column:santri_rumah_jenis_atap" json:"santri_rumah_jenis_atap,omitempty"`
	SantriRumahJenisLantai  *string `gorm:"type:varchar(20);column:santri_rumah_jenis_lantai" json:"santri_rumah_jenis_lantai,omitempty"`

	SantriRumahCreatedAt time.Time  `gorm:"column:santri_rumah_created_at;autoCreateTime" json:"santri_rumah_created_at"`
	SantriRumahUpdatedAt *time.Time `gorm:"column:santri_rumah_updated_at;autoUpdateTime" json:"santri_rumah_updated_at,omitempty"`
}

func (SantriRumahModel) TableName() string { return "santri_rumah" }
