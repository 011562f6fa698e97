package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceController "sanggarku_backend/internals/features/academy/attendance/controller"
	authMiddleware "sanggarku_backend/internals/middlewares/auth"
)

func AttendanceRoutes(user fiber.Router, admin fiber.Router, db *gorm.DB) {
	ctrl := attendanceController.NewAttendanceController(db)

	user.Get("/attendance", ctrl.ListMine)

	admin.Post("/attendance",
		authMiddleware.OnlyRoles("Hanya staff yang boleh mencatat kehadiran", "admin", "teacher"),
		ctrl.Mark)
}
