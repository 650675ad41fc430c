// internals/features/pesantren/santri/model/santri_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SantriModel struct {
	// PK
	SantriID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:santri_id" json:"santri_id"`

	// Wajib terikat ke satu pesantren
	SantriPesantrenID uuid.UUID `gorm:"type:uuid;not null;index;column:santri_pesantren_id;constraint:OnDelete:CASCADE" json:"santri_pesantren_id"`

	// Identitas
	SantriNama string  `gorm:"type:varchar(150);not null;column:santri_nama" json:"santri_nama"`
	SantriNISN *string `gorm:"type:varchar(20);column:santri_nisn" json:"santri_nisn,omitempty"`
	// Enum: L | P
	SantriGender *string `gorm:"type:varchar(2);column:santri_gender" json:"santri_gender,omitempty"`
	// Enum: mondok | pp | mukim
	SantriStatusMukim *string `gorm:"type:varchar(10);column:santri_status_mukim" json:"santri_status_mukim,omitempty"`

	// Titik koordinat rumah (nullable)
	SantriLatitude  *float64 `gorm:"type:decimal(9,6);column:santri_latitude" json:"santri_latitude,omitempty"`
	SantriLongitude *float64 `gorm:"type:decimal(9,6);column:santri_longitude" json:"santri_longitude,omitempty"`

	// Audit
	SantriCreatedAt time.Time      `gorm:"column:santri_created_at;autoCreateTime" json:"santri_created_at"`
	SantriUpdatedAt *time.Time     `gorm:"column:santri_updated_at;autoUpdateTime" json:"santri_updated_at,omitempty"`
	SantriDeletedAt gorm.DeletedAt `gorm:"column:santri_deleted_at;index" json:"santri_deleted_at,omitempty"`
}

func (SantriModel) TableName() string { return "santri" }
