// internals/features/pesantren/profiles/model/pesantren_pendidikan_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Atribut pendidikan — maksimal satu baris per pesantren.
type PesantrenPendidikanModel struct {
	PesantrenPendidikanID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:pesantren_pendidikan_id" json:"pesantren_pendidikan_id"`
	PesantrenPendidikanPesantrenID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex;column:pesantren_pendidikan_pesantren_id;constraint:OnDelete:CASCADE" json:"pesantren_pendidikan_pesantren_id"`

	// Enum: a | b | c | belum
	PesantrenPendidikanAkreditasi *string `gorm:"type:varchar(10);column:pesantren_pendidikan_akreditasi" json:"pesantren_pendidikan_akreditasi,omitempty"`
	// Enum: terstandar | internal | tidak_jelas
	PesantrenPendidikanKurikulum *string `gorm:"type:varchar(20);column:pesantren_pendidikan_kurikulum" json:"pesantren_pendidikan_kurikulum,omitempty"`
	// Enum: nasional | regional | tidak_ada
	PesantrenPendidikanPrestasi *string `gorm:"type:varchar(20);column:pesantren_pendidikan_prestasi" json:"pesantren_pendidikan_prestasi,omitempty"`

	PesantrenPendidikanJumlahGuru   *int `gorm:"column:pesantren_pendidikan_jumlah_guru" json:"pesantren_pendidikan_jumlah_guru,omitempty"`
	PesantrenPendidikanJumlahSantri *int `gorm:"column:pesantren_pendidikan_jumlah_santri" json:"pesantren_pendidikan_jumlah_santri,omitempty"`

	// Persentase guru bersertifikat (0–100)
	PesantrenPendidikanPersenGuruSertifikat *int `gorm:"column:pesantren_pendidikan_persen_guru_sertifikat" json:"pesantren_pendidikan_persen_guru_sertifikat,omitempty"`

	PesantrenPendidikanCreatedAt time.Time  `gorm:"column:pesantren_pendidikan_created_at;autoCreateTime" json:"pesantren_pendidikan_created_at"`
	PesantrenPendidikanUpdatedAt *time.Time `gorm:"column:pesantren_pendidikan_updated_at;autoUpdateTime" json:"pesantren_pendidikan_updated_at,omitempty"`
}

func (PesantrenPendidikanModel) TableName() string { return "pesantren_pendidikan" }
