// internals/route/details/auth_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/constants"
	authController "pesantrenku_backend/internals/features/users/auth/controller"
	"pesantrenku_backend/internals/middlewares"
	"pesantrenku_backend/internals/middlewares/auth"
)

func AuthPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctl := authController.NewAuthController(db)
	api.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
}

func AuthProtectedRoutes(r fiber.Router, db *gorm.DB) {
	ctl := authController.NewAuthController(db)

	grp := r.Group("/auth")
	grp.Get("/me", ctl.Me)
	grp.Post("/logout", ctl.Logout)
	grp.Post("/register",
		auth.OnlyRolesSlice(constants.RoleErrorAdmin("mendaftarkan user"), constants.AdminOnly),
		ctl.Register,
	)
}
