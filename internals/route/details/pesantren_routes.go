// internals/route/details/pesantren_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/constants"
	pesantrenController "pesantrenku_backend/internals/features/pesantren/profiles/controller"
	"pesantrenku_backend/internals/middlewares/auth"
)

// Katalog pesantren bisa dibaca tanpa login.
func PesantrenPublicRoutes(public fiber.Router, db *gorm.DB) {
	ctl := pesantrenController.NewPesantrenController(db)

	grp := public.Group("/pesantren")
	grp.Get("/", ctl.List)
	grp.Get("/:id", ctl.Detail)
}

// Mutasi data hanya untuk petugas ke atas; hapus khusus admin.
func PesantrenAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := pesantrenController.NewPesantrenController(db)

	grp := r.Group("/pesantren",
		auth.OnlyRolesSlice(constants.RoleErrorPetugas("data pesantren"), constants.PetugasAndAbove),
	)
	grp.Post("/", ctl.Create)
	grp.Put("/:id", ctl.Update)
	grp.Put("/:id/fisik", ctl.UpsertFisik)
	grp.Put("/:id/fasilitas", ctl.UpsertFasilitas)
	grp.Put("/:id/pendidikan", ctl.UpsertPendidikan)
	grp.Delete("/:id",
		auth.OnlyRolesSlice(constants.RoleErrorAdmin("hapus pesantren"), constants.AdminOnly),
		ctl.Delete,
	)
}
