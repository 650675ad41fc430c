// internals/features/pesantren/santri/model/santri_bansos_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Atribut bantuan sosial — maksimal satu baris per santri.
type SantriBansosModel struct {
	SantriBansosID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:santri_bansos_id" json:"santri_bansos_id"`
	SantriBansosSantriID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex;column:santri_bansos_santri_id;constraint:OnDelete:CASCADE" json:"santri_bansos_santri_id"`

	SantriBansosMenerima *bool `gorm:"column:santri_bansos_menerima" json:"santri_bansos_menerima,omitempty"`
	// Daftar program yang diterima (PKH, BPNT, PIP, dll)
	SantriBansosProgram pq.StringArray `gorm:"type:text[];column:santri_bansos_program" json:"santri_bansos_program,omitempty"`

	SantriBansosCreatedAt time.Time  `gorm:"column:santri_bansos_created_at;autoCreateTime" json:"santri_bansos_created_at"`
	SantriBansosUpdatedAt *time.Time `gorm:"column:santri_bansos_updated_at;autoUpdateTime" json:"santri_bansos_updated_at,omitempty"`
}

func (SantriBansosModel) TableName() string { return "santri_bansos" }
