package rules

import (
	"pesantrenku_backend/internals/constants"
)

/* =========================================================
   INPUT ATURAN PESANTREN
   Satu struct per dimensi; pointer nil = baris atribut tidak
   ada, semua komponen dinilai bracket terburuk (0).
   ========================================================= */

type FisikInput struct {
	KualitasBangunan string // baik | sedang | buruk
	Sanitasi         string // layak | cukup | tidak_layak
	SumberAir        string // layak | tidak_layak
	KualitasAir      string // layak | tidak_layak
	AdaKeamanan      bool
	JenisLantai      string // keramik | semen | tanah
	JenisAtap        string // genteng | seng | rumbia
	JenisDinding     string // tembok | kayu | bambu
	SantriPerKamar   int    // 0 = tidak diketahui
}

type FasilitasInput struct {
	Asrama          string // layak | cukup | tidak_layak
	RuangKelas      string // layak | cukup | tidak_layak
	AdaInternet     bool
	AdaTransportasi bool
	AdaDapur        bool
	AdaMCK          bool
	AksesJalan      string // aspal | cor_block | kerikil | tanah
}

type PendidikanInput struct {
	Akreditasi           string // a | b | c | belum
	Kurikulum            string // terstandar | internal | tidak_jelas
	Prestasi             string // nasional | regional | tidak_ada
	JumlahGuru           int
	JumlahSantri         int
	PersenGuruSertifikat int
}

/* =========================================================
   TABEL BOBOT
   Komponen bersifat aditif lalu di-clamp ke rentang dimensi.
   ========================================================= */

var bobotKualitasBangunan = map[string]int{
	"baik":   8,
	"sedang": 4,
	"buruk":  0,
}

var bobotSanitasi = map[string]int{
	constants.KondisiLayak:      6,
	constants.KondisiCukup:      3,
	constants.KondisiTidakLayak: 0,
}

var bobotLantai = map[string]int{
	"keramik": 3,
	"semen":   2,
	"tanah":   0,
}

var bobotAtap = map[string]int{
	"genteng": 3,
	"seng":    2,
	"rumbia":  0,
}

var bobotDinding = map[string]int{
	"tembok": 3,
	"kayu":   2,
	"bambu":  0,
}

var bobotAkreditasi = map[string]int{
	constants.AkreditasiA:     8,
	constants.AkreditasiB:     6,
	constants.AkreditasiC:     3,
	constants.AkreditasiBelum: 0,
}

var bobotKurikulum = map[string]int{
	constants.KurikulumTerstandar: 6,
	constants.KurikulumInternal:   3,
	constants.KurikulumTidakJelas: 0,
}

var bobotPrestasi = map[string]int{
	constants.PrestasiNasional: 5,
	constants.PrestasiRegional: 3,
	constants.PrestasiTidakAda: 0,
}

var bobotAksesJalan = map[string]int{
	constants.JalanAspal:    4,
	constants.JalanCorBlock: 3,
	constants.JalanKerikil:  1,
	constants.JalanTanah:    0,
}

func lookup(tbl map[string]int, raw string) int {
	// token tak dikenal → 0 (bracket terburuk), bukan error
	return tbl[constants.NormalizeToken(raw)]
}

/* =========================================================
   ATURAN
   ========================================================= */

// SkorFisik menilai kondisi fisik bangunan pesantren, rentang 0–40.
func SkorFisik(in *FisikInput) int {
	if in == nil {
		return 0
	}
	v := lookup(bobotKualitasBangunan, in.KualitasBangunan)
	v += lookup(bobotSanitasi, in.Sanitasi)

	// air: sumber dan kualitas masing-masing layak/tidak_layak
	if constants.NormalizeToken(in.SumberAir) == constants.KondisiLayak {
		v += 3
	}
	if constants.NormalizeToken(in.KualitasAir) == constants.KondisiLayak {
		v += 3
	}

	if in.AdaKeamanan {
		v += 4
	}

	v += lookup(bobotLantai, in.JenisLantai)
	v += lookup(bobotAtap, in.JenisAtap)
	v += lookup(bobotDinding, in.JenisDinding)

	// kepadatan kamar: makin longgar makin baik
	switch {
	case in.SantriPerKamar <= 0:
		// tidak diketahui → terburuk
	case in.SantriPerKamar <= 4:
		v += 7
	case in.SantriPerKamar <= 8:
		v += 4
	case in.SantriPerKamar <= 12:
		v += 2
	}

	return clamp(v, SkorFisikMax)
}

// SkorFasilitas menilai kelengkapan fasilitas, rentang 0–30.
func SkorFasilitas(in *FasilitasInput) int {
	if in == nil {
		return 0
	}
	v := 0
	switch constants.NormalizeToken(in.Asrama) {
	case constants.KondisiLayak:
		v += 6
	case constants.KondisiCukup:
		v += 3
	}
	switch constants.NormalizeToken(in.RuangKelas) {
	case constants.KondisiLayak:
		v += 5
	case constants.KondisiCukup:
		v += 2
	}
	if in.AdaInternet {
		v += 4
	}
	if in.AdaTransportasi {
		v += 3
	}
	if in.AdaDapur {
		v += 4
	}
	if in.AdaMCK {
		v += 4
	}
	v += lookup(bobotAksesJalan, in.AksesJalan)

	return clamp(v, SkorFasilitasMax)
}

// SkorPendidikan menilai mutu pendidikan, rentang 0–30.
func SkorPendidikan(in *PendidikanInput) int {
	if in == nil {
		return 0
	}
	v := lookup(bobotAkreditasi, in.Akreditasi)
	v += lookup(bobotKurikulum, in.Kurikulum)
	v += lookup(bobotPrestasi, in.Prestasi)

	// rasio santri per guru: makin kecil makin baik
	if in.JumlahGuru > 0 && in.JumlahSantri > 0 {
		rasio := in.JumlahSantri / in.JumlahGuru
		switch {
		case rasio <= 15:
			v += 6
		case rasio <= 25:
			v += 4
		case rasio <= 40:
			v += 2
		}
	}

	// persentase guru bersertifikat
	switch {
	case in.PersenGuruSertifikat >= 75:
		v += 5
	case in.PersenGuruSertifikat >= 50:
		v += 3
	case in.PersenGuruSertifikat >= 25:
		v += 1
	}

	return clamp(v, SkorPendidikanMax)
}
