package constants

import "strings"

/*
Kosakata terkontrol (ENUM di DB).
Semua nilai disimpan lower-case; input apapun dinormalisasi lewat NormalizeToken
sebelum dipakai aturan skoring. Token yang tidak dikenal TIDAK dianggap error —
aturan skoring memperlakukannya sebagai bracket terburuk.
*/

// Akreditasi pesantren
const (
	AkreditasiA     = "a"
	AkreditasiB     = "b"
	AkreditasiC     = "c"
	AkreditasiBelum = "belum"
)

// Kurikulum
const (
	KurikulumTerstandar = "terstandar"
	KurikulumInternal   = "internal"
	KurikulumTidakJelas = "tidak_jelas"
)

// Prestasi
const (
	PrestasiNasional = "nasional"
	PrestasiRegional = "regional"
	PrestasiTidakAda = "tidak_ada"
)

// Jenjang pendidikan
const (
	JenjangSemuaRAMA            = "semua_ra_ma"
	JenjangPendidikanDasar      = "pendidikan_dasar"
	JenjangDasarMenengahPertama = "dasar_menengah_pertama"
	JenjangDasarMenengahAtas    = "dasar_menengah_atas"
	JenjangSatuJenjang          = "satu_jenjang"
)

// Jenis kelamin
const (
	GenderL = "L"
	GenderP = "P"
)

// Status mukim santri
const (
	MukimMondok = "mondok"
	MukimPP     = "pp"
	MukimMukim  = "mukim"
)

// Status kepemilikan rumah
const (
	RumahMilikSendiri = "milik_sendiri"
	RumahKontrak      = "kontrak"
	RumahMenumpang    = "menumpang"
)

// Kelayakan umum (air, fasilitas)
const (
	KondisiLayak      = "layak"
	KondisiCukup      = "cukup"
	KondisiTidakLayak = "tidak_layak"
)

// Status pembayaran
const (
	BayarLancar    = "lancar"
	BayarTerlambat = "terlambat"
	BayarMenunggak = "menunggak"
)

// Akses jalan
const (
	JalanAspal    = "aspal"
	JalanCorBlock = "cor_block"
	JalanKerikil  = "kerikil"
	JalanTanah    = "tanah"
)

// sinonim hasil pembersihan data lama (kolom free-text sebelum jadi enum)
var tokenSynonyms = map[string]string{
	"solar panel":         "tenaga_surya",
	"solar_panel":         "tenaga_surya",
	"sewa":                RumahKontrak,
	"kontrakan":           RumahKontrak,
	"numpang":             RumahMenumpang,
	"milik":               RumahMilikSendiri,
	"paving":              JalanCorBlock,
	"cor blok":            JalanCorBlock,
	"cor_blok":            JalanCorBlock,
	"tidak layak":         KondisiTidakLayak,
	"belum ada":           PrestasiTidakAda,
	"tidak ada":           PrestasiTidakAda,
	"tidak jelas":         KurikulumTidakJelas,
	"standar":             KurikulumTerstandar,
	"terakreditasi a":     AkreditasiA,
	"terakreditasi b":     AkreditasiB,
	"terakreditasi c":     AkreditasiC,
	"belum terakreditasi": AkreditasiBelum,
}

// NormalizeToken: satu-satunya pintu normalisasi di batas aturan skoring.
// Lower-case + trim + mapping sinonim yang dikenal.
func NormalizeToken(s string) string {
	t := strings.ToLower(strings.TrimSpace(s))
	if canon, ok := tokenSynonyms[t]; ok {
		return canon
	}
	return t
}

// NormalizeTokenPtr: versi pointer-aware; nil → "" (bracket terburuk di aturan).
func NormalizeTokenPtr(s *string) string {
	if s == nil {
		return ""
	}
	return NormalizeToken(*s)
}
