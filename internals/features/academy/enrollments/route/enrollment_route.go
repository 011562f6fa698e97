package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	enrollController "sanggarku_backend/internals/features/academy/enrollments/controller"
	authMiddleware "sanggarku_backend/internals/middlewares/auth"
	"sanggarku_backend/internals/realtime"
)

func EnrollmentRoutes(user fiber.Router, admin fiber.Router, db *gorm.DB, hub *realtime.Hub) {
	ctrl := enrollController.NewEnrollmentController(db, hub)

	user.Get("/enrollments", ctrl.ListMine)
	user.Post("/enrollments", ctrl.Enroll)
	user.Patch("/enrollments/:id/progress", ctrl.UpdateProgress)
	user.Patch("/enrollments/:id/status", ctrl.UpdateStatus)

	admin.Get("/enrollments",
		authMiddleware.OnlyRoles("Hanya staff yang boleh melihat semua enrolment", "admin", "teacher"),
		ctrl.ListAll)
}
