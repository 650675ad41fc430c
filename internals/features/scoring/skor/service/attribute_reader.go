// internals/features/scoring/skor/service/attribute_reader.go
package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	pModel "pesantrenku_backend/internals/features/pesantren/profiles/model"
	sModel "pesantrenku_backend/internals/features/pesantren/santri/model"
	"pesantrenku_backend/internals/features/scoring/rules"
)

/*
Attribute reader: ambil baris subjek + semua baris atribut terkait dan
sajikan sebagai bundel datar ke aturan skoring. Baris atribut yang tidak
ada BUKAN error — field-nya nil dan aturan menilai bracket terburuk.
*/

type PesantrenAttributes struct {
	Pesantren  pModel.PesantrenModel
	Fisik      *pModel.PesantrenFisikModel
	Fasilitas  *pModel.PesantrenFasilitasModel
	Pendidikan *pModel.PesantrenPendidikanModel
}

type SantriAttributes struct {
	Santri    sModel.SantriModel
	Pesantren *pModel.PesantrenModel // induk, utk label wilayah di map view

	Ekonomi    *sModel.SantriEkonomiModel
	Rumah      *sModel.SantriRumahModel
	Aset       *sModel.SantriAsetModel
	Pembiayaan *sModel.SantriPembiayaanModel
	Kesehatan  *sModel.SantriKesehatanModel
	Bansos     *sModel.SantriBansosModel
}

// LoadPesantrenAttributes memuat bundel atribut satu pesantren.
func LoadPesantrenAttributes(db *gorm.DB, pesantrenID uuid.UUID) (*PesantrenAttributes, error) {
	var out PesantrenAttributes

	if err := db.Where("pesantren_id = ?", pesantrenID).First(&out.Pesantren).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubjectNotFound
		}
		return nil, classifyStorageErr(err)
	}

	var fisik pModel.PesantrenFisikModel
	switch err := db.Where("pesantren_fisik_pesantren_id = ?", pesantrenID).First(&fisik).Error; {
	case err == nil:
		out.Fisik = &fisik
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, classifyStorageErr(err)
	}

	var fasilitas pModel.PesantrenFasilitasModel
	switch err := db.Where("pesantren_fasilitas_pesantren_id = ?", pesantrenID).First(&fasilitas).Error; {
	case err == nil:
		out.Fasilitas = &fasilitas
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, classifyStorageErr(err)
	}

	var pendidikan pModel.PesantrenPendidikanModel
	switch err := db.Where("pesantren_pendidikan_pesantren_id = ?", pesantrenID).First(&pendidikan).Error; {
	case err == nil:
		out.Pendidikan = &pendidikan
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, classifyStorageErr(err)
	}

	return &out, nil
}

// LoadSantriAttributes memuat bundel atribut satu santri + pesantren induknya.
func LoadSantriAttributes(db *gorm.DB, santriID uuid.UUID) (*SantriAttributes, error) {
	var out SantriAttributes

	if err := db.Where("santri_id = ?", santriID).First(&out.Santri).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubjectNotFound
		}
		return nil, classifyStorageErr(err)
	}

	var induk pModel.PesantrenModel
	switch err := db.Where("pesantren_id = ?", out.Santri.SantriPesantrenID).First(&induk).Error; {
	case err == nil:
		out.Pesantren = &induk
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, classifyStorageErr(err)
	}

	if err := loadOptional(db, "santri_ekonomi_santri_id", santriID, &out.Ekonomi); err != nil {
		return nil, err
	}
	if err := loadOptional(db, "santri_rumah_santri_id", santriID, &out.Rumah); err != nil {
		return nil, err
	}
	if err := loadOptional(db, "santri_aset_santri_id", santriID, &out.Aset); err != nil {
		return nil, err
	}
	if err := loadOptional(db, "santri_pembiayaan_santri_id", santriID, &out.Pembiayaan); err != nil {
		return nil, err
	}
	if err := loadOptional(db, "santri_kesehatan_santri_id", santriID, &out.Kesehatan); err != nil {
		return nil, err
	}
	if err := loadOptional(db, "santri_bansos_santri_id", santriID, &out.Bansos); err != nil {
		return nil, err
	}

	return &out, nil
}

// loadOptional: First ke *dest; record-not-found dibiarkan nil.
func loadOptional[T any](db *gorm.DB, column string, id uuid.UUID, dest **T) error {
	var row T
	err := db.Where(column+" = ?", id).First(&row).Error
	if err == nil {
		*dest = &row
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return classifyStorageErr(err)
}

/* =========================================================
   MAPPING MODEL → INPUT ATURAN
   ========================================================= */

func (a *PesantrenAttributes) FisikInput() *rules.FisikInput {
	m := a.Fisik
	if m == nil {
		return nil
	}
	return &rules.FisikInput{
		KualitasBangunan: strv(m.PesantrenFisikKualitasBangunan),
		Sanitasi:         strv(m.PesantrenFisikSanitasi),
		SumberAir:        strv(m.PesantrenFisikSumberAir),
		KualitasAir:      strv(m.PesantrenFisikKualitasAir),
		AdaKeamanan:      boolv(m.PesantrenFisikAdaKeamanan),
		JenisLantai:      strv(m.PesantrenFisikJenisLantai),
		JenisAtap:        strv(m.PesantrenFisikJenisAtap),
		JenisDinding:     strv(m.PesantrenFisikJenisDinding),
		SantriPerKamar:   intv(m.PesantrenFisikSantriPerKamar),
	}
}

func (a *PesantrenAttributes) FasilitasInput() *rules.FasilitasInput {
	m := a.Fasilitas
	if m == nil {
		return nil
	}
	return &rules.FasilitasInput{
		Asrama:          strv(m.PesantrenFasilitasAsrama),
		RuangKelas:      strv(m.PesantrenFasilitasRuangKelas),
		AdaInternet:     boolv(m.PesantrenFasilitasAdaInternet),
		AdaTransportasi: boolv(m.PesantrenFasilitasAdaTransportasi),
		AdaDapur:        boolv(m.PesantrenFasilitasAdaDapur),
		AdaMCK:          boolv(m.PesantrenFasilitasAdaMCK),
		AksesJalan:      strv(m.PesantrenFasilitasAksesJalan),
	}
}

func (a *PesantrenAttributes) PendidikanInput() *rules.PendidikanInput {
	m := a.Pendidikan
	if m == nil {
		return nil
	}
	return &rules.PendidikanInput{
		Akreditasi:           strv(m.PesantrenPendidikanAkreditasi),
		Kurikulum:            strv(m.PesantrenPendidikanKurikulum),
		Prestasi:             strv(m.PesantrenPendidikanPrestasi),
		JumlahGuru:           intv(m.PesantrenPendidikanJumlahGuru),
		JumlahSantri:         intv(m.PesantrenPendidikanJumlahSantri),
		PersenGuruSertifikat: intv(m.PesantrenPendidikanPersenGuruSertifikat),
	}
}

func (a *SantriAttributes) EkonomiInput() *rules.EkonomiInput {
	m := a.Ekonomi
	if m == nil {
		return nil
	}
	return &rules.EkonomiInput{
		PenghasilanBulanan: int64v(m.SantriEkonomiPenghasilanBulanan),
		JumlahTanggungan:   intv(m.SantriEkonomiJumlahTanggungan),
	}
}

func (a *SantriAttributes) RumahInput() *rules.RumahInput {
	m := a.Rumah
	if m == nil {
		return nil
	}
	return &rules.RumahInput{
		StatusKepemilikan: strv(m.SantriRumahStatusKepemilikan),
		AksesAir:          strv(m.SantriRumahAksesAir),
		JenisDinding:      strv(m.SantriRumahJenisDinding),
		JenisAtap:         strv(m.SantriRumahJenisAtap),
		JenisLantai:       strv(m.SantriRumahJenisLantai),
	}
}

func (a *SantriAttributes) AsetInput() *rules.AsetInput {
	m := a.Aset
	if m == nil {
		return nil
	}
	return &rules.AsetInput{
		PunyaKendaraan:  boolv(m.SantriAsetPunyaKendaraan),
		PunyaLahan:      boolv(m.SantriAsetPunyaLahan),
		PunyaTernak:     boolv(m.SantriAsetPunyaTernak),
		PunyaElektronik: boolv(m.SantriAsetPunyaElektronik),
	}
}

func (a *SantriAttributes) PembiayaanInput() *rules.PembiayaanInput {
	m := a.Pembiayaan
	if m == nil {
		return nil
	}
	return &rules.PembiayaanInput{
		SumberDana:       strv(m.SantriPembiayaanSumberDana),
		StatusPembayaran: strv(m.SantriPembiayaanStatusPembayaran),
	}
}

func (a *SantriAttributes) KesehatanInput() *rules.KesehatanInput {
	m := a.Kesehatan
	if m == nil {
		return nil
	}
	return &rules.KesehatanInput{
		AdaPenyakitKronis: boolv(m.SantriKesehatanAdaPenyakitKronis),
		AksesLayanan:      strv(m.SantriKesehatanAksesLayanan),
	}
}

func (a *SantriAttributes) BansosInput() *rules.BansosInput {
	m := a.Bansos
	if m == nil {
		return nil
	}
	return &rules.BansosInput{
		Menerima:      boolv(m.SantriBansosMenerima),
		JumlahProgram: len(m.SantriBansosProgram),
	}
}

func strv(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func intv(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func int64v(p *int64) int64 {
	if p == nil {
		return 0
	}
	return *p
}

func boolv(p *bool) bool {
	if p == nil {
		return false
	}
	return *p
}
