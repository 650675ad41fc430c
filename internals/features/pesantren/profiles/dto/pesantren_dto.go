// internals/features/pesantren/profiles/dto/pesantren_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	"pesantrenku_backend/internals/constants"
	"pesantrenku_backend/internals/features/pesantren/profiles/model"
)

/* =========================================================
   REQUEST — PROFIL
   ========================================================= */

type CreatePesantrenRequest struct {
	Nama      string   `json:"nama" validate:"required,min=3,max=150"`
	NSPP      *string  `json:"nspp" validate:"omitempty,max=30"`
	Pengasuh  *string  `json:"pengasuh" validate:"omitempty,max=150"`
	Jenjang   *string  `json:"jenjang" validate:"omitempty,max=40"`
	Provinsi  *string  `json:"provinsi" validate:"omitempty,max=80"`
	Kabupaten *string  `json:"kabupaten" validate:"omitempty,max=80"`
	Kecamatan *string  `json:"kecamatan" validate:"omitempty,max=80"`
	Desa      *string  `json:"desa" validate:"omitempty,max=80"`
	Alamat    *string  `json:"alamat"`
	Latitude  *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude *float64 `json:"longitude" validate:"omitempty,longitude"`
}

func (r *CreatePesantrenRequest) ToModel() *model.PesantrenModel {
	return &model.PesantrenModel{
		PesantrenID:        uuid.New(),
		PesantrenNama:      strings.TrimSpace(r.Nama),
		PesantrenNSPP:      r.NSPP,
		PesantrenPengasuh:  r.Pengasuh,
		PesantrenJenjang:   r.Jenjang,
		PesantrenProvinsi:  r.Provinsi,
		PesantrenKabupaten: r.Kabupaten,
		PesantrenKecamatan: r.Kecamatan,
		PesantrenDesa:      r.Desa,
		PesantrenAlamat:    r.Alamat,
		PesantrenLatitude:  r.Latitude,
		PesantrenLongitude: r.Longitude,
	}
}

// Field nil = tidak diubah. HapusKoordinat = true mengosongkan titik peta
// (map view baru ikut hilang setelah skor dihitung ulang).
type UpdatePesantrenRequest struct {
	Nama           *string  `json:"nama" validate:"omitempty,min=3,max=150"`
	NSPP           *string  `json:"nspp" validate:"omitempty,max=30"`
	Pengasuh       *string  `json:"pengasuh" validate:"omitempty,max=150"`
	Jenjang        *string  `json:"jenjang" validate:"omitempty,max=40"`
	Provinsi       *string  `json:"provinsi" validate:"omitempty,max=80"`
	Kabupaten      *string  `json:"kabupaten" validate:"omitempty,max=80"`
	Kecamatan      *string  `json:"kecamatan" validate:"omitempty,max=80"`
	Desa           *string  `json:"desa" validate:"omitempty,max=80"`
	Alamat         *string  `json:"alamat"`
	Latitude       *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude      *float64 `json:"longitude" validate:"omitempty,longitude"`
	HapusKoordinat bool     `json:"hapus_koordinat"`
}

func (r *UpdatePesantrenRequest) ApplyTo(m *model.PesantrenModel) {
	if r.Nama != nil {
		m.PesantrenNama = strings.TrimSpace(*r.Nama)
	}
	if r.NSPP != nil {
		m.PesantrenNSPP = r.NSPP
	}
	if r.Pengasuh != nil {
		m.PesantrenPengasuh = r.Pengasuh
	}
	if r.Jenjang != nil {
		m.PesantrenJenjang = r.Jenjang
	}
	if r.Provinsi != nil {
		m.PesantrenProvinsi = r.Provinsi
	}
	if r.Kabupaten != nil {
		m.PesantrenKabupaten = r.Kabupaten
	}
	if r.Kecamatan != nil {
		m.PesantrenKecamatan = r.Kecamatan
	}
	if r.Desa != nil {
		m.PesantrenDesa = r.Desa
	}
	if r.Alamat != nil {
		m.PesantrenAlamat = r.Alamat
	}
	if r.Latitude != nil {
		m.PesantrenLatitude = r.Latitude
	}
	if r.Longitude != nil {
		m.PesantrenLongitude = r.Longitude
	}
	if r.HapusKoordinat {
		m.PesantrenLatitude = nil
		m.PesantrenLongitude = nil
	}
}

/* =========================================================
   REQUEST — ATRIBUT (PUT upsert, satu baris per pesantren)
   Token kosong/asing tidak ditolak: engine skoring menilainya
   sebagai bracket terburuk.
   ========================================================= */

type UpsertFisikRequest struct {
	KualitasBangunan *string `json:"kualitas_bangunan" validate:"omitempty,max=20"`
	Sanitasi         *string `json:"sanitasi" validate:"omitempty,max=20"`
	SumberAir        *string `json:"sumber_air" validate:"omitempty,max=20"`
	KualitasAir      *string `json:"kualitas_air" validate:"omitempty,max=20"`
	AdaKeamanan      *bool   `json:"ada_keamanan"`
	JenisLantai      *string `json:"jenis_lantai" validate:"omitempty,max=20"`
	JenisAtap        *string `json:"jenis_atap" validate:"omitempty,max=20"`
	JenisDinding     *string `json:"jenis_dinding" validate:"omitempty,max=20"`
	SantriPerKamar   *int    `json:"santri_per_kamar" validate:"omitempty,min=0,max=100"`
}

func (r *UpsertFisikRequest) ToModel(pesantrenID uuid.UUID) *model.PesantrenFisikModel {
	return &model.PesantrenFisikModel{
		PesantrenFisikID:               uuid.New(),
		PesantrenFisikPesantrenID:      pesantrenID,
		PesantrenFisikKualitasBangunan: normalizePtr(r.KualitasBangunan),
		PesantrenFisikSanitasi:         normalizePtr(r.Sanitasi),
		PesantrenFisikSumberAir:        normalizePtr(r.SumberAir),
		PesantrenFisikKualitasAir:      normalizePtr(r.KualitasAir),
		PesantrenFisikAdaKeamanan:      r.AdaKeamanan,
		PesantrenFisikJenisLantai:      normalizePtr(r.JenisLantai),
		PesantrenFisikJenisAtap:        normalizePtr(r.JenisAtap),
		PesantrenFisikJenisDinding:     normalizePtr(r.JenisDinding),
		PesantrenFisikSantriPerKamar:   r.SantriPerKamar,
	}
}

type UpsertFasilitasRequest struct {
	Asrama          *string `json:"asrama" validate:"omitempty,max=20"`
	RuangKelas      *string `json:"ruang_kelas" validate:"omitempty,max=20"`
	AdaInternet     *bool   `json:"ada_internet"`
	AdaTransportasi *bool   `json:"ada_transportasi"`
	AdaDapur        *bool   `json:"ada_dapur"`
	AdaMCK          *bool   `json:"ada_mck"`
	AksesJalan      *string `json:"akses_jalan" validate:"omitempty,max=20"`
}

func (r *UpsertFasilitasRequest) ToModel(pesantrenID uuid.UUID) *model.PesantrenFasilitasModel {
	return &model.PesantrenFasilitasModel{
		PesantrenFasilitasID:              uuid.New(),
		PesantrenFasilitasPesantrenID:     pesantrenID,
		PesantrenFasilitasAsrama:          normalizePtr(r.Asrama),
		PesantrenFasilitasRuangKelas:      normalizePtr(r.RuangKelas),
		PesantrenFasilitasAdaInternet:     r.AdaInternet,
		PesantrenFasilitasAdaTransportasi: r.AdaTransportasi,
		PesantrenFasilitasAdaDapur:        r.AdaDapur,
		PesantrenFasilitasAdaMCK:          r.AdaMCK,
		PesantrenFasilitasAksesJalan:      normalizePtr(r.AksesJalan),
	}
}

type UpsertPendidikanRequest struct {
	Akreditasi           *string `json:"akreditasi" validate:"omitempty,max=10"`
	Kurikulum            *string `json:"kurikulum" validate:"omitempty,max=20"`
	Prestasi             *string `json:"prestasi" validate:"omitempty,max=20"`
	JumlahGuru           *int    `json:"jumlah_guru" validate:"omitempty,min=0"`
	JumlahSantri         *int    `json:"jumlah_santri" validate:"omitempty,min=0"`
	PersenGuruSertifikat *int    `json:"persen_guru_sertifikat" validate:"omitempty,min=0,max=100"`
}

func (r *UpsertPendidikanRequest) ToModel(pesantrenID uuid.UUID) *model.PesantrenPendidikanModel {
	return &model.PesantrenPendidikanModel{
		PesantrenPendidikanID:                   uuid.New(),
		PesantrenPendidikanPesantrenID:          pesantrenID,
		PesantrenPendidikanAkreditasi:           normalizePtr(r.Akreditasi),
		PesantrenPendidikanKurikulum:            normalizePtr(r.Kurikulum),
		PesantrenPendidikanPrestasi:             normalizePtr(r.Prestasi),
		PesantrenPendidikanJumlahGuru:           r.JumlahGuru,
		PesantrenPendidikanJumlahSantri:         r.JumlahSantri,
		PesantrenPendidikanPersenGuruSertifikat: r.PersenGuruSertifikat,
	}
}

func normalizePtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := constants.NormalizeToken(*s)
	return &v
}

/* =========================================================
   RESPONSE
   ========================================================= */

// Detail profil + atribut + skor terakhir dalam satu payload.
type PesantrenDetailResponse struct {
	Pesantren  *model.PesantrenModel           `json:"pesantren"`
	Fisik      *model.PesantrenFisikModel      `json:"fisik,omitempty"`
	Fasilitas  *model.PesantrenFasilitasModel  `json:"fasilitas,omitempty"`
	Pendidikan *model.PesantrenPendidikanModel `json:"pendidikan,omitempty"`
	Skor       interface{}                     `json:"skor,omitempty"`
}
