// internals/features/pesantren/profiles/model/pesantren_fisik_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Atribut fisik bangunan — maksimal satu baris per pesantren.
type PesantrenFisikModel struct {
	PesantrenFisikID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:pesantren_fisik_id" json:"pesantren_fisik_id"`
	PesantrenFisikPesantrenID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex;column:pesantren_fisik_pesantren_id;constraint:OnDelete:CASCADE" json:"pesantren_fisik_pesantren_id"`

	// Enum: baik | sedang | buruk
	PesantrenFisikKualitasBangunan *string `gorm:"type:varchar(20);column:pesantren_fisik_kualitas_bangunan" json:"pesantren_fisik_kualitas_bangunan,omitempty"`
	// Enum: layak | cukup | tidak_layak
	PesantrenFisikSanitasi *string `gorm:"type:varchar(20);column:pesantren_fisik_sanitasi" json:"pesantren_fisik_sanitasi,omitempty"`
	// Enum: layak | tidak_layak
	PesantrenFisikSumberAir   *string `gorm:"type:varchar(20);column:pesantren_fisik_sumber_air" json:"pesantren_fisik_sumber_air,omitempty"`
	PesantrenFisikKualitasAir *string `gorm:"type:varchar(20);column:pesantren_fisik_kualitas_air" json:"pesantren_fisik_kualitas_air,omitempty"`

	PesantrenFisikAdaKeamanan *bool `gorm:"column:pesantren_fisik_ada_keamanan" json:"pesantren_fisik_ada_keamanan,omitempty"`

	// Enum lantai: keramik | semen | tanah; atap: genteng | seng | rumbia; dinding: tembok | kayu | bambu
	PesantrenFisikJenisLantai  *string `gorm:"type:varchar(20);column:pesantren_fisik_jenis_lantai" json:"pesantren_fisik_jenis_lantai,omitempty"`
	PesantrenFisikJenisAtap    *string `gorm:"type:varchar(20);column:pesantren_fisik_jenis_atap" json:"pesantren_fisik_jenis_atap,omitempty"`
	PesantrenFisikJenisDinding *string `gorm:"type:varchar(20);column:pesantren_fisik_jenis_dinding" json:"pesantren_fisik_jenis_dinding,omitempty"`

	// Rasio kepadatan: santri per kamar tidur
	PesantrenFisikSantriPerKamar *int `gorm:"column:pesantren_fisik_santri_per_kamar" json:"pesantren_fisik_santri_per_kamar,omitempty"`

	PesantrenFisikCreatedAt time.Time  `gorm:"column:pesantren_fisik_created_at;autoCreateTime" json:"pesantren_fisik_created_at"`
	PesantrenFisikUpdatedAt *time.Time `gorm:"column:pesantren_fisik_updated_at;autoUpdateTime" json:"pesantren_fisik_updated_at,omitempty"`
}

func (PesantrenFisikModel) TableName() string { return "pesantren_fisik" }
