package rules

import (
	"pesantrenku_backend/internals/constants"
)

/* =========================================================
   INPUT ATURAN SANTRI
   Skor tinggi = kondisi baik (tidak miskin); bracket terburuk
   selalu 0. Pointer nil = baris atribut tidak ada.
   ========================================================= */

type EkonomiInput struct {
	PenghasilanBulanan int64 // rupiah per bulan, 0 = tidak diketahui
	JumlahTanggungan   int   // 0 = tidak diketahui → dinilai terburuk
}

type RumahInput struct {
	StatusKepemilikan string // milik_sendiri | kontrak | menumpang
	AksesAir          string // layak | tidak_layak
	JenisDinding      string // tembok | kayu | bambu
	JenisAtap         string // genteng | seng | rumbia
	JenisLantai       string // keramik | semen | tanah
}

type AsetInput struct {
	PunyaKendaraan  bool
	PunyaLahan      bool
	PunyaTernak     bool
	PunyaElektronik bool
}

type PembiayaanInput struct {
	SumberDana       string // orang_tua | beasiswa | bantuan | lainnya
	StatusPembayaran string // lancar | terlambat | menunggak
}

type KesehatanInput struct {
	AdaPenyakitKronis bool
	AksesLayanan      string // layak | tidak_layak
}

type BansosInput struct {
	Menerima      bool
	JumlahProgram int
}

var bobotKepemilikanRumah = map[string]int{
	constants.RumahMilikSendiri: 6,
	constants.RumahKontrak:      3,
	constants.RumahMenumpang:    0,
}

var bobotSumberDana = map[string]int{
	"orang_tua": 7,
	"beasiswa":  4,
	"bantuan":   2,
	"lainnya":   0,
}

var bobotStatusPembayaran = map[string]int{
	constants.BayarLancar:    8,
	constants.BayarTerlambat: 4,
	constants.BayarMenunggak: 0,
}

/* =========================================================
   ATURAN
   ========================================================= */

// SkorEkonomi menilai penghasilan & tanggungan rumah tangga, rentang 0–25.
func SkorEkonomi(in *EkonomiInput) int {
	if in == nil {
		return 0
	}
	v := 0
	switch {
	case in.PenghasilanBulanan >= 5_000_000:
		v += 15
	case in.PenghasilanBulanan >= 3_000_000:
		v += 11
	case in.PenghasilanBulanan >= 1_500_000:
		v += 6
	case in.PenghasilanBulanan >= 500_000:
		v += 3
	}

	switch {
	case in.JumlahTanggungan <= 0:
		// tidak diketahui → terburuk
	case in.JumlahTanggungan <= 2:
		v += 10
	case in.JumlahTanggungan <= 4:
		v += 6
	case in.JumlahTanggungan <= 6:
		v += 3
	}

	return clamp(v, SkorEkonomiMax)
}

// SkorRumah menilai kondisi rumah tinggal, rentang 0–20.
func SkorRumah(in *RumahInput) int {
	if in == nil {
		return 0
	}
	v := lookup(bobotKepemilikanRumah, in.StatusKepemilikan)
	if constants.NormalizeToken(in.AksesAir) == constants.KondisiLayak {
		v += 5
	}
	v += lookup(bobotDinding, in.JenisDinding)
	v += lookup(bobotAtap, in.JenisAtap)
	v += lookup(bobotLantai, in.JenisLantai)

	return clamp(v, SkorRumahMax)
}

// SkorAset menilai kepemilikan aset rumah tangga, rentang 0–15.
func SkorAset(in *AsetInput) int {
	if in == nil {
		return 0
	}
	v := 0
	if in.PunyaKendaraan {
		v += 4
	}
	if in.PunyaLahan {
		v += 4
	}
	if in.PunyaTernak {
		v += 3
	}
	if in.PunyaElektronik {
		v += 4
	}
	return clamp(v, SkorAsetMax)
}

// SkorPembiayaan menilai sumber dana & kelancaran pembayaran, rentang 0–15.
func SkorPembiayaan(in *PembiayaanInput) int {
	if in == nil {
		return 0
	}
	v := lookup(bobotSumberDana, in.SumberDana)
	v += lookup(bobotStatusPembayaran, in.StatusPembayaran)
	return clamp(v, SkorPembiayaanMax)
}

// SkorKesehatan menilai kondisi kesehatan keluarga, rentang 0–15.
func SkorKesehatan(in *KesehatanInput) int {
	if in == nil {
		return 0
	}
	v := 0
	if !in.AdaPenyakitKronis {
		v += 8
	}
	if constants.NormalizeToken(in.AksesLayanan) == constants.KondisiLayak {
		v += 7
	}
	return clamp(v, SkorKesehatanMax)
}

// SkorBansos: menerima bantuan sosial = indikator kemiskinan, rentang 0–10.
func SkorBansos(in *BansosInput) int {
	if in == nil {
		// baris hilang = minimum dimensi, sama seperti aturan lain
		return 0
	}
	if !in.Menerima && in.JumlahProgram == 0 {
		return SkorBansosMax
	}
	if in.JumlahProgram <= 1 {
		return 5
	}
	return 0
}
