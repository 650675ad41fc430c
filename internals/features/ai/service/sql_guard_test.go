package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeSQLSelectValid(t *testing.T) {
	out, err := SanitizeSQL("SELECT provinsi, COUNT(*) FROM pesantren_map GROUP BY provinsi")
	require.NoError(t, err)
	assert.Contains(t, out, "LIMIT 100")
}

func TestSanitizeSQLPagarMarkdown(t *testing.T) {
	out, err := SanitizeSQL("```sql\nSELECT * FROM santri_skor LIMIT 5;\n```")
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM santri_skor LIMIT 5", out)
}

func TestSanitizeSQLTolakTulis(t *testing.T) {
	cases := []string{
		"DELETE FROM santri",
		"UPDATE pesantren SET pesantren_nama = 'x'",
		"DROP TABLE santri_skor",
		"INSERT INTO santri VALUES (1)",
		"SELECT * FROM santri; DROP TABLE santri",
		"SELECT pg_sleep(10)",
	}
	for _, q := range cases {
		_, err := SanitizeSQL(q)
		assert.ErrorIs(t, err, ErrSQLTidakAman, q)
	}
}

func TestSanitizeSQLTolakTabelDiluarRegistri(t *testing.T) {
	_, err := SanitizeSQL("SELECT * FROM users")
	assert.ErrorIs(t, err, ErrSQLTidakAman)

	_, err = SanitizeSQL("SELECT * FROM ai_query_logs")
	assert.ErrorIs(t, err, ErrSQLTidakAman)
}

func TestSanitizeSQLJoinTabelRegistri(t *testing.T) {
	out, err := SanitizeSQL(
		"SELECT p.pesantren_nama, s.skor_total FROM pesantren p JOIN pesantren_skor s ON s.pesantren_id = p.pesantren_id ORDER BY s.skor_total DESC LIMIT 10")
	require.NoError(t, err)
	assert.NotContains(t, out, "LIMIT 100")
}

func TestSanitizeSQLAliasCTEVariasiSpasi(t *testing.T) {
	cases := []string{
		"WITH ringkas AS (SELECT provinsi FROM pesantren_map) SELECT * FROM ringkas",
		"WITH ringkas AS(SELECT provinsi FROM pesantren_map) SELECT * FROM ringkas",
		"with ringkas as( select provinsi from pesantren_map ) select * from ringkas",
	}
	for _, q := range cases {
		_, err := SanitizeSQL(q)
		require.NoError(t, err, q)
	}

	// alias yang tidak dideklarasikan tetap ditolak
	_, err := SanitizeSQL("WITH ringkas AS (SELECT 1 FROM pesantren) SELECT * FROM rahasia")
	assert.ErrorIs(t, err, ErrSQLTidakAman)
}

func TestSanitizeSQLKosong(t *testing.T) {
	_, err := SanitizeSQL("   ")
	assert.ErrorIs(t, err, ErrSQLTidakAman)
}
