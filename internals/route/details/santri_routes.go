// internals/route/details/santri_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/constants"
	santriController "pesantrenku_backend/internals/features/pesantren/santri/controller"
	"pesantrenku_backend/internals/middlewares/auth"
)

// Data santri memuat informasi kesejahteraan keluarga — seluruhnya di belakang login.
func SantriRoutes(r fiber.Router, db *gorm.DB) {
	ctl := santriController.NewSantriController(db)

	grp := r.Group("/santri",
		auth.OnlyRolesSlice(constants.RoleErrorPetugas("data santri"), constants.PetugasAndAbove),
	)
	grp.Get("/", ctl.List)
	grp.Post("/", ctl.Create)
	grp.Get("/:id", ctl.Detail)
	grp.Put("/:id", ctl.Update)
	grp.Put("/:id/ekonomi", ctl.UpsertEkonomi)
	grp.Put("/:id/rumah", ctl.UpsertRumah)
	grp.Put("/:id/aset", ctl.UpsertAset)
	grp.Put("/:id/pembiayaan", ctl.UpsertPembiayaan)
	grp.Put("/:id/kesehatan", ctl.UpsertKesehatan)
	grp.Put("/:id/bansos", ctl.UpsertBansos)
	grp.Delete("/:id",
		auth.OnlyRolesSlice(constants.RoleErrorAdmin("hapus santri"), constants.AdminOnly),
		ctl.Delete,
	)
}
