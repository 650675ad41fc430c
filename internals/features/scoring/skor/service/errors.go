// internals/features/scoring/skor/service/errors.go
package service

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// Empat jenis kegagalan yang boleh keluar dari engine skoring.
var (
	// Subjek utama (pesantren/santri) tidak ada. Tidak perlu retry.
	ErrSubjectNotFound = errors.New("subjek tidak ditemukan")

	// Koneksi/timeout DB. Transient — pemanggil boleh retry.
	ErrStorageUnavailable = errors.New("database tidak tersedia")

	// Tabrakan UNIQUE(subject_id) yang tidak terselesaikan oleh upsert.
	ErrIntegrityViolation = errors.New("konflik unik pada baris skor")
)

// ConstraintMismatchError: aturan menghasilkan nilai di luar rentang —
// ini bug rule set, fatal, jangan di-retry. Simpan dimensi + nilai pelanggar.
type ConstraintMismatchError struct {
	Dimensi string
	Nilai   int
}

func (e *ConstraintMismatchError) Error() string {
	return fmt.Sprintf("skor di luar rentang: %s = %d", e.Dimensi, e.Nilai)
}

// classifyStorageErr membungkus error GORM/driver ke taksonomi di atas.
// Upsert ON CONFLICT sudah menyerap tabrakan insert normal; kalau duplicate
// key tetap lolos sampai sini berarti retry di level ini pun gagal.
func classifyStorageErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %v", ErrIntegrityViolation, err)
	}
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "23505") || strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint") {
		return fmt.Errorf("%w: %v", ErrIntegrityViolation, err)
	}
	return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
}
