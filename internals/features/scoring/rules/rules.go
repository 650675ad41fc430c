// Package rules berisi aturan skoring murni (tanpa DB, tanpa side effect).
//
// Setiap aturan memetakan satu bundel atribut ke sub-skor integer dalam
// rentang tetap. Input yang hilang / tidak dikenal SELALU jatuh ke bracket
// terburuk (nilai terendah), tidak pernah error — konservatif ke arah
// "butuh perhatian".
package rules

// Identitas rule set yang distempel ke setiap baris skor.
const (
	Metode  = "rule-based-v1"
	Version = "1.0.0"
)

// Rentang sub-skor pesantren
const (
	SkorFisikMax      = 40
	SkorFasilitasMax  = 30
	SkorPendidikanMax = 30
)

// Rentang sub-skor santri
const (
	SkorEkonomiMax    = 25
	SkorRumahMax      = 20
	SkorAsetMax       = 15
	SkorPembiayaanMax = 15
	SkorKesehatanMax  = 15
	SkorBansosMax     = 10
)

const SkorTotalMax = 100

func clamp(v, max int) int {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}
