// internals/route/index.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/configs"
	"pesantrenku_backend/internals/middlewares/auth"
	"pesantrenku_backend/internals/route/details"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	// 🌐 Publik: peta, katalog pesantren, login
	public := api.Group("/public")
	details.PetaPublicRoutes(public, db)
	details.PesantrenPublicRoutes(public, db)
	details.AuthPublicRoutes(api, db)

	// 🔒 Area petugas & admin (JWT wajib)
	protected := api.Group("/a",
		auth.AuthJWT(auth.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
	)
	details.AuthProtectedRoutes(protected, db)
	details.PesantrenAdminRoutes(protected, db)
	details.SantriRoutes(protected, db)
	details.SkorRoutes(protected, db)
	details.AIRoutes(protected, db)
}
