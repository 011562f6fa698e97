package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sanggarku_backend/internals/configs"
	authController "sanggarku_backend/internals/features/users/auth/controller"
	authMiddleware "sanggarku_backend/internals/middlewares/auth"
)

// AuthRoutes daftar endpoint auth (register/login publik, logout butuh token).
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := authController.NewAuthController(db, configs.NewRolePolicy())

	auth := app.Group("/auth")
	auth.Post("/register", ctrl.Register)
	auth.Post("/login", ctrl.Login)
	auth.Post("/login-google", ctrl.LoginGoogle)
	auth.Post("/logout", authMiddleware.AuthMiddleware(db), ctrl.Logout)
}
