package constants

import "fmt"

// Role yang dikenal sistem
const (
	RoleAdmin   = "admin"
	RolePetugas = "petugas"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess  = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlyPetugasCanAccess = "❌ Hanya petugas atau admin yang boleh mengakses fitur %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorPetugas(feature string) string {
	return fmt.Sprintf(ErrOnlyPetugasCanAccess, feature)
}

var (
	AdminOnly       = []string{RoleAdmin}
	PetugasAndAbove = []string{RolePetugas, RoleAdmin}
)
