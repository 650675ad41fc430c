package helper

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"gorm.io/gorm"
)

const DefaultSlugMaxLen = 120

var reDash = regexp.MustCompile(`-+`)

// GenerateSlug menormalkan string menjadi slug:
// lower-case, non-alnum jadi "-", collapse "-" beruntun, trim di kedua ujung.
func GenerateSlug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	lastDash := false
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastDash = false
		} else if !lastDash {
			b.WriteRune('-')
			lastDash = true
		}
	}
	out := strings.Trim(b.String(), "-")
	out = reDash.ReplaceAllString(out, "-")
	if len(out) > DefaultSlugMaxLen {
		out = strings.Trim(out[:DefaultSlugMaxLen], "-")
	}
	return out
}

// EnsureUniqueSlug mencari slug unik pada tabel tertentu.
// base → hasil GenerateSlug, table → nama tabel, column → kolom slug.
func EnsureUniqueSlug(db *gorm.DB, base, table, column string) (string, error) {
	if base == "" {
		base = "pesantren"
	}

	var count int64
	if err := db.Table(table).
		Where(fmt.Sprintf("%s = ?", column), base).
		Count(&count).Error; err != nil {
		return "", err
	}
	if count == 0 {
		return base, nil
	}

	// coba suffix -2, -3, ... sampai ketemu yang kosong
	for i := 2; i < 1000; i++ {
		candidate := fmt.Sprintf("%s-%d", base, i)
		if err := db.Table(table).
			Where(fmt.Sprintf("%s = ?", column), candidate).
			Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("gagal mencari slug unik untuk %q", base)
}
