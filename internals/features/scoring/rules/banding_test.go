package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Setiap integer 0..100 harus jatuh ke tepat satu band.
func TestBandingTotality(t *testing.T) {
	for total := 0; total <= SkorTotalMax; total++ {
		k, ok := KategoriKelayakan(total)
		require.True(t, ok, "total %d tidak terpetakan", total)
		require.NotEmpty(t, k)

		k, ok = KategoriKemiskinan(total)
		require.True(t, ok, "total %d tidak terpetakan", total)
		require.NotEmpty(t, k)
	}
}

func TestBandingBatasKelayakan(t *testing.T) {
	cases := map[int]string{
		0:   KategoriTidakLayak,
		49:  KategoriTidakLayak,
		50:  KategoriCukupLayak,
		74:  KategoriCukupLayak,
		75:  KategoriLayak,
		100: KategoriLayak,
	}
	for total, want := range cases {
		got, ok := KategoriKelayakan(total)
		require.True(t, ok)
		assert.Equal(t, want, got, "total=%d", total)
	}
}

func TestBandingBatasKemiskinan(t *testing.T) {
	cases := map[int]string{
		0:   KategoriSangatMiskin,
		29:  KategoriSangatMiskin,
		30:  KategoriMiskin,
		49:  KategoriMiskin,
		50:  KategoriRentanMiskin,
		69:  KategoriRentanMiskin,
		70:  KategoriTidakMiskin,
		100: KategoriTidakMiskin,
	}
	for total, want := range cases {
		got, ok := KategoriKemiskinan(total)
		require.True(t, ok)
		assert.Equal(t, want, got, "total=%d", total)
	}
}

func TestBandingDiLuarRentang(t *testing.T) {
	_, ok := KategoriKelayakan(-1)
	assert.False(t, ok)
	_, ok = KategoriKelayakan(101)
	assert.False(t, ok)
	_, ok = KategoriKemiskinan(-1)
	assert.False(t, ok)
	_, ok = KategoriKemiskinan(101)
	assert.False(t, ok)
}
