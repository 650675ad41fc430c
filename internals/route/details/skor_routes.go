// internals/route/details/skor_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/constants"
	skorController "pesantrenku_backend/internals/features/scoring/skor/controller"
	"pesantrenku_backend/internals/middlewares/auth"
)

func SkorRoutes(r fiber.Router, db *gorm.DB) {
	ctl := skorController.NewSkorController(db)

	grp := r.Group("/skor",
		auth.OnlyRolesSlice(constants.RoleErrorPetugas("skoring"), constants.PetugasAndAbove),
	)
	grp.Post("/pesantren/:id/hitung", ctl.HitungPesantren)
	grp.Get("/pesantren/:id", ctl.DetailPesantren)
	grp.Post("/santri/:id/hitung", ctl.HitungSantri)
	grp.Get("/santri/:id", ctl.DetailSantri)
}
