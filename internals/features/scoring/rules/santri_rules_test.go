package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkorSantriMaksimum(t *testing.T) {
	require.Equal(t, SkorEkonomiMax, SkorEkonomi(&EkonomiInput{PenghasilanBulanan: 6_000_000, JumlahTanggungan: 2}))
	require.Equal(t, SkorRumahMax, SkorRumah(&RumahInput{
		StatusKepemilikan: "milik_sendiri",
		AksesAir:          "layak",
		JenisDinding:      "tembok",
		JenisAtap:         "genteng",
		JenisLantai:       "keramik",
	}))
	require.Equal(t, SkorAsetMax, SkorAset(&AsetInput{PunyaKendaraan: true, PunyaLahan: true, PunyaTernak: true, PunyaElektronik: true}))
	require.Equal(t, SkorPembiayaanMax, SkorPembiayaan(&PembiayaanInput{SumberDana: "orang_tua", StatusPembayaran: "lancar"}))
	require.Equal(t, SkorKesehatanMax, SkorKesehatan(&KesehatanInput{AdaPenyakitKronis: false, AksesLayanan: "layak"}))
	require.Equal(t, SkorBansosMax, SkorBansos(&BansosInput{Menerima: false, JumlahProgram: 0}))
}

func TestSkorSantriBarisHilang(t *testing.T) {
	assert.Equal(t, 0, SkorEkonomi(nil))
	assert.Equal(t, 0, SkorRumah(nil))
	assert.Equal(t, 0, SkorAset(nil))
	assert.Equal(t, 0, SkorPembiayaan(nil))
	assert.Equal(t, 0, SkorKesehatan(nil))
	assert.Equal(t, 0, SkorBansos(nil))
}

func TestSkorSantriKondisiTerburuk(t *testing.T) {
	assert.Equal(t, 0, SkorEkonomi(&EkonomiInput{PenghasilanBulanan: 300_000, JumlahTanggungan: 8}))
	assert.Equal(t, 0, SkorRumah(&RumahInput{
		StatusKepemilikan: "menumpang",
		AksesAir:          "tidak_layak",
		JenisDinding:      "bambu",
		JenisAtap:         "rumbia",
		JenisLantai:       "tanah",
	}))
	assert.Equal(t, 0, SkorPembiayaan(&PembiayaanInput{SumberDana: "lainnya", StatusPembayaran: "menunggak"}))
	assert.Equal(t, 0, SkorKesehatan(&KesehatanInput{AdaPenyakitKronis: true, AksesLayanan: "tidak_layak"}))
	assert.Equal(t, 0, SkorBansos(&BansosInput{Menerima: true, JumlahProgram: 2}))
}

func TestSkorRumahSinonimSewa(t *testing.T) {
	// data lama menyimpan "sewa" — harus dinilai sama dengan "kontrak"
	a := SkorRumah(&RumahInput{StatusKepemilikan: "sewa"})
	b := SkorRumah(&RumahInput{StatusKepemilikan: "kontrak"})
	assert.Equal(t, b, a)
	assert.Greater(t, a, SkorRumah(&RumahInput{StatusKepemilikan: "menumpang"}))
}

func TestSkorEkonomiMonotonPenghasilan(t *testing.T) {
	brackets := []int64{0, 500_000, 1_500_000, 3_000_000, 5_000_000}
	prev := -1
	for _, p := range brackets {
		v := SkorEkonomi(&EkonomiInput{PenghasilanBulanan: p, JumlahTanggungan: 3})
		assert.GreaterOrEqual(t, v, prev)
		prev = v
	}
}

func TestSkorPembiayaanMonotonStatus(t *testing.T) {
	urutan := []string{"menunggak", "terlambat", "lancar"}
	prev := -1
	for _, s := range urutan {
		v := SkorPembiayaan(&PembiayaanInput{SumberDana: "beasiswa", StatusPembayaran: s})
		assert.GreaterOrEqual(t, v, prev)
		prev = v
	}
}

func TestSkorBansosBertingkat(t *testing.T) {
	assert.Equal(t, 10, SkorBansos(&BansosInput{Menerima: false}))
	assert.Equal(t, 5, SkorBansos(&BansosInput{Menerima: true, JumlahProgram: 1}))
	assert.Equal(t, 0, SkorBansos(&BansosInput{Menerima: true, JumlahProgram: 3}))
}

func TestSkorSantriRangeClosure(t *testing.T) {
	penghasilan := []int64{0, 400_000, 2_000_000, 10_000_000}
	tanggungan := []int{0, 1, 3, 5, 9}
	for _, p := range penghasilan {
		for _, tg := range tanggungan {
			v := SkorEkonomi(&EkonomiInput{PenghasilanBulanan: p, JumlahTanggungan: tg})
			require.GreaterOrEqual(t, v, 0)
			require.LessOrEqual(t, v, SkorEkonomiMax)
		}
	}
}
