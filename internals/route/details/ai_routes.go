// internals/route/details/ai_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/constants"
	aiController "pesantrenku_backend/internals/features/ai/controller"
	"pesantrenku_backend/internals/middlewares"
	"pesantrenku_backend/internals/middlewares/auth"
)

func AIRoutes(r fiber.Router, db *gorm.DB) {
	ctl := aiController.NewAIController(db)

	grp := r.Group("/ai",
		auth.OnlyRolesSlice(constants.RoleErrorPetugas("asisten AI"), constants.PetugasAndAbove),
		middlewares.AIRateLimiter(),
	)
	grp.Post("/tanya", ctl.Tanya)
	grp.Post("/analisis", ctl.Analisis)
}
