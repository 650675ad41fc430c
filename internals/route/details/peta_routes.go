// internals/route/details/peta_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	petaController "pesantrenku_backend/internals/features/peta/controller"
)

// Peta konsumsinya frontend publik; hanya data denormalisasi yang keluar.
func PetaPublicRoutes(public fiber.Router, db *gorm.DB) {
	ctl := petaController.NewPetaController(db)

	grp := public.Group("/peta")
	grp.Get("/pesantren", ctl.GeoJSONPesantren)
	grp.Get("/pesantren/choropleth", ctl.ChoroplethPesantren)
	grp.Get("/santri", ctl.GeoJSONSantri)
	grp.Get("/santri/choropleth", ctl.ChoroplethSantri)
}
