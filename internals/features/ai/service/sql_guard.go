// internals/features/ai/service/sql_guard.go
package service

import (
	"errors"
	"regexp"
	"strings"
)

var ErrSQLTidakAman = errors.New("sql dari llm ditolak oleh guard")

// Tabel yang boleh disentuh SQL hasil LLM. Tabel user & log sengaja tidak ada.
var allowedTables = map[string]bool{
	"pesantren":            true,
	"pesantren_fisik":      true,
	"pesantren_fasilitas":  true,
	"pesantren_pendidikan": true,
	"pesantren_skor":       true,
	"pesantren_map":        true,
	"santri":               true,
	"santri_ekonomi":       true,
	"santri_rumah":         true,
	"santri_aset":          true,
	"santri_pembiayaan":    true,
	"santri_kesehatan":     true,
	"santri_bansos":        true,
	"santri_skor":          true,
	"santri_map":           true,
}

var forbiddenKeywords = []string{
	"insert", "update", "delete", "drop", "alter", "truncate",
	"create", "grant", "revoke", "copy", "vacuum", "pg_sleep",
	"pg_read_file", "pg_catalog", "information_schema",
}

var tableRefRe = regexp.MustCompile(`(?i)\b(?:from|join)\s+([a-z_][a-z0-9_]*)`)

// cteAliasRe mencocokkan deklarasi alias CTE apa pun spasinya: "x AS(", "x as (".
func cteAliasRe(name string) *regexp.Regexp {
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(name) + `\s+as\s*\(`)
}

// SanitizeSQL memvalidasi SQL hasil LLM: satu statement SELECT,
// tanpa keyword tulis/DDL, hanya menyentuh tabel registri, dan diberi
// LIMIT kalau belum ada. Mengembalikan SQL yang sudah dirapikan.
func SanitizeSQL(raw string) (string, error) {
	s := strings.TrimSpace(raw)

	// LLM sering membungkus jawaban dengan pagar markdown
	s = strings.TrimPrefix(s, "```sql")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, ";")

	if s == "" {
		return "", ErrSQLTidakAman
	}
	if strings.Contains(s, ";") {
		return "", ErrSQLTidakAman // multi-statement
	}

	lower := strings.ToLower(s)
	if !strings.HasPrefix(lower, "select") && !strings.HasPrefix(lower, "with") {
		return "", ErrSQLTidakAman
	}
	for _, kw := range forbiddenKeywords {
		if regexp.MustCompile(`\b` + kw + `\b`).MatchString(lower) {
			return "", ErrSQLTidakAman
		}
	}

	refs := tableRefRe.FindAllStringSubmatch(s, -1)
	if len(refs) == 0 {
		return "", ErrSQLTidakAman
	}
	for _, ref := range refs {
		name := strings.ToLower(ref[1])
		if allowedTables[name] {
			continue
		}
		// subquery alias dari klausa WITH boleh dirujuk lagi lewat FROM
		if strings.HasPrefix(lower, "with") && cteAliasRe(name).MatchString(lower) {
			continue
		}
		return "", ErrSQLTidakAman
	}

	if !regexp.MustCompile(`(?i)\blimit\s+\d+`).MatchString(s) {
		s += " LIMIT 100"
	}
	return s, nil
}
