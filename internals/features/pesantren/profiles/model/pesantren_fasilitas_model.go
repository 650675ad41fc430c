// internals/features/pesantren/profiles/model/pesantren_fasilitas_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Atribut fasilitas — maksimal satu baris per pesantren.
type PesantrenFasilitasModel struct {
	PesantrenFasilitasID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:pesantren_fasilitas_id" json:"pesantren_fasilitas_id"`
	PesantrenFasilitasPesantrenID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex;column:pesantren_fasilitas_pesantren_id;constraint:OnDelete:CASCADE" json:"pesantren_fasilitas_pesantren_id"`

	// Enum: layak | cukup | tidak_layak
	PesantrenFasilitasAsrama     *string `gorm:"type:varchar(20);column:pesantren_fasilitas_asrama" json:"pesantren_fasilitas_asrama,omitempty"`
	PesantrenFasilitasRuangKelas *string `gorm:"type:varchar(20);column:pesantren_fasilitas_ruang_kelas" json:"pesantren_fasilitas_ruang_kelas,omitempty"`

	PesantrenFasilitasAdaInternet      *bool `gorm:"column:pesantren_fasilitas_ada_internet" json:"pesantren_fasilitas_ada_internet,omitempty"`
	PesantrenFasilitasAdaTransportasi  *bool `gorm:"column:pesantren_fasilitas_ada_transportasi" json:"pesantren_fasilitas_ada_transportasi,omitempty"`
	PesantrenFasilitasAdaDapur         *bool `gorm:"column:pesantren_fasilitas_ada_dapur" json:"pesantren_fasilitas_ada_dapur,omitempty"`
	PesantrenFasilitasAdaMCK           *bool `gorm:"column:pesantren_fasilitas_ada_mck" json:"pesantren_fasilitas_ada_mck,omitempty"`

	// Enum: aspal | cor_block | kerikil | tanah
	PesantrenFasilitasAksesJalan *string `gorm:"type:varchar(20);column:pesantren_fasilitas_akses_jalan" json:"pesantren_fasilitas_akses_jalan,omitempty"`

	PesantrenFasilitasCreatedAt time.Time  `gorm:"column:pesantren_fasilitas_created_at;autoCreateTime" json:"pesantren_fasilitas_created_at"`
	PesantrenFasilitasUpdatedAt *time.Time `gorm:"column:pesantren_fasilitas_updated_at;autoUpdateTime" json:"pesantren_fasilitas_updated_at,omitempty"`
}

func (PesantrenFasilitasModel) TableName() string { return "pesantren_fasilitas" }
