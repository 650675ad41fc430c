package rules

// Kategori kelayakan pesantren
const (
	KategoriLayak      = "layak"
	KategoriCukupLayak = "cukup_layak"
	KategoriTidakLayak = "tidak_layak"
)

// Kategori kemiskinan santri
const (
	KategoriSangatMiskin = "sangat_miskin"
	KategoriMiskin       = "miskin"
	KategoriRentanMiskin = "rentan_miskin"
	KategoriTidakMiskin  = "tidak_miskin"
)

// KategoriKelayakan memetakan skor total 0–100 ke band kelayakan pesantren.
// ok == false hanya jika total di luar 0–100 (bug aturan, bukan input user).
func KategoriKelayakan(total int) (string, bool) {
	switch {
	case total < 0 || total > SkorTotalMax:
		return "", false
	case total <= 49:
		return KategoriTidakLayak, true
	case total <= 74:
		return KategoriCukupLayak, true
	default:
		return KategoriLayak, true
	}
}

// KategoriKemiskinan memetakan skor total 0–100 ke band kemiskinan santri.
func KategoriKemiskinan(total int) (string, bool) {
	switch {
	case total < 0 || total > SkorTotalMax:
		return "", false
	case total <= 29:
		return KategoriSangatMiskin, true
	case total <= 49:
		return KategoriMiskin, true
	case total <= 69:
		return KategoriRentanMiskin, true
	default:
		return KategoriTidakMiskin, true
	}
}
