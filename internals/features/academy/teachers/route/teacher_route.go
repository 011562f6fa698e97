package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	teacherController "sanggarku_backend/internals/features/academy/teachers/controller"
	authMiddleware "sanggarku_backend/internals/middlewares/auth"
)

func TeacherRoutes(public fiber.Router, user fiber.Router, admin fiber.Router, db *gorm.DB) {
	ctrl := teacherController.NewTeacherController(db)

	public.Get("/teachers", ctrl.List)

	user.Get("/teachers/:userId/profile", ctrl.GetByUser)
	user.Post("/teachers/:userId/ratings",
		authMiddleware.OnlyRoles("Hanya student yang boleh memberi rating", "student"),
		ctrl.Rate)

	admin.Post("/teachers",
		authMiddleware.OnlyRoles("Hanya admin yang boleh mengelola profil pengajar", "admin"),
		ctrl.Upsert)
}
