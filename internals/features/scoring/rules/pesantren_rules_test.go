package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fisikTerbaik() *FisikInput {
	return &FisikInput{
		KualitasBangunan: "baik",
		Sanitasi:         "layak",
		SumberAir:        "layak",
		KualitasAir:      "layak",
		AdaKeamanan:      true,
		JenisLantai:      "keramik",
		JenisAtap:        "genteng",
		JenisDinding:     "tembok",
		SantriPerKamar:   4,
	}
}

func fasilitasTerbaik() *FasilitasInput {
	return &FasilitasInput{
		Asrama:          "layak",
		RuangKelas:      "layak",
		AdaInternet:     true,
		AdaTransportasi: true,
		AdaDapur:        true,
		AdaMCK:          true,
		AksesJalan:      "aspal",
	}
}

func pendidikanTerbaik() *PendidikanInput {
	return &PendidikanInput{
		Akreditasi:           "a",
		Kurikulum:            "terstandar",
		Prestasi:             "nasional",
		JumlahGuru:           10,
		JumlahSantri:         150,
		PersenGuruSertifikat: 80,
	}
}

func TestSkorPesantrenMaksimum(t *testing.T) {
	require.Equal(t, SkorFisikMax, SkorFisik(fisikTerbaik()))
	require.Equal(t, SkorFasilitasMax, SkorFasilitas(fasilitasTerbaik()))
	require.Equal(t, SkorPendidikanMax, SkorPendidikan(pendidikanTerbaik()))
}

func TestSkorPesantrenBarisHilang(t *testing.T) {
	// baris atribut tidak ada → minimum dimensi, bukan error
	assert.Equal(t, 0, SkorFisik(nil))
	assert.Equal(t, 0, SkorFasilitas(nil))
	assert.Equal(t, 0, SkorPendidikan(nil))
}

func TestSkorPesantrenTokenTidakDikenal(t *testing.T) {
	in := fisikTerbaik()
	in.KualitasBangunan = "mewah sekali" // bukan enum → bracket terburuk
	assert.Equal(t, SkorFisikMax-8, SkorFisik(in))

	pin := pendidikanTerbaik()
	pin.Akreditasi = "z"
	assert.Equal(t, SkorPendidikanMax-8, SkorPendidikan(pin))
}

func TestSkorPesantrenCaseInsensitive(t *testing.T) {
	in := fisikTerbaik()
	in.KualitasBangunan = "  BAIK "
	in.Sanitasi = "Layak"
	assert.Equal(t, SkorFisikMax, SkorFisik(in))

	pin := pendidikanTerbaik()
	pin.Akreditasi = "A"
	pin.Kurikulum = "TERSTANDAR"
	assert.Equal(t, SkorPendidikanMax, SkorPendidikan(pin))
}

func TestSkorPendidikanMonotonAkreditasi(t *testing.T) {
	urutan := []string{"belum", "c", "b", "a"}
	prev := -1
	for _, akreditasi := range urutan {
		in := pendidikanTerbaik()
		in.Akreditasi = akreditasi
		v := SkorPendidikan(in)
		assert.GreaterOrEqual(t, v, prev, "akreditasi %s tidak boleh menurunkan skor", akreditasi)
		prev = v
	}
}

func TestSkorFasilitasMonotonJalan(t *testing.T) {
	urutan := []string{"tanah", "kerikil", "cor_block", "aspal"}
	prev := -1
	for _, jalan := range urutan {
		in := fasilitasTerbaik()
		in.AksesJalan = jalan
		v := SkorFasilitas(in)
		assert.GreaterOrEqual(t, v, prev)
		prev = v
	}
}

func TestSkorFisikRasioKamarDiClamp(t *testing.T) {
	in := fisikTerbaik()
	in.SantriPerKamar = 999 // di luar bracket → bracket terdekat (terburuk)
	v := SkorFisik(in)
	assert.Equal(t, SkorFisikMax-7, v)

	in.SantriPerKamar = -3 // nilai aneh → dianggap tidak diketahui
	assert.Equal(t, SkorFisikMax-7, SkorFisik(in))
}

func TestSkorPesantrenDeterministik(t *testing.T) {
	in := fisikTerbaik()
	first := SkorFisik(in)
	for i := 0; i < 50; i++ {
		require.Equal(t, first, SkorFisik(in))
	}
}

func TestSkorPesantrenRangeClosure(t *testing.T) {
	// sapu kombinasi kasar: semua enum valid + beberapa token sampah
	bangunan := []string{"baik", "sedang", "buruk", "", "???"}
	sanitasi := []string{"layak", "cukup", "tidak_layak", "x"}
	kamar := []int{0, 1, 5, 9, 13, 100}
	for _, b := range bangunan {
		for _, s := range sanitasi {
			for _, k := range kamar {
				in := fisikTerbaik()
				in.KualitasBangunan = b
				in.Sanitasi = s
				in.SantriPerKamar = k
				v := SkorFisik(in)
				require.GreaterOrEqual(t, v, 0)
				require.LessOrEqual(t, v, SkorFisikMax)
			}
		}
	}
}
