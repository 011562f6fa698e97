package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "sanggarku_backend/internals/features/users/user/controller"
	authMiddleware "sanggarku_backend/internals/middlewares/auth"
)

// UserRoutes profil sendiri + listing student untuk staff.
func UserRoutes(user fiber.Router, admin fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	user.Get("/me", ctrl.Me)
	user.Put("/me", ctrl.UpdateMe)
	user.Post("/me/avatar", ctrl.UploadAvatar)

	admin.Get("/students",
		authMiddleware.OnlyRoles("Hanya staff yang boleh melihat daftar student", "admin", "teacher"),
		ctrl.ListStudents)
}
