package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseController "sanggarku_backend/internals/features/academy/courses/controller"
	"sanggarku_backend/internals/realtime"
	authMiddleware "sanggarku_backend/internals/middlewares/auth"
)

// CourseRoutes katalog publik + CRUD admin.
func CourseRoutes(public fiber.Router, admin fiber.Router, db *gorm.DB, hub *realtime.Hub) {
	ctrl := courseController.NewCourseController(db, hub)

	public.Get("/courses", ctrl.List)
	public.Get("/courses/:id", ctrl.GetOne)

	onlyAdmin := authMiddleware.OnlyRoles("Hanya admin yang boleh mengelola kelas", "admin")
	admin.Post("/courses", onlyAdmin, ctrl.Create)
	admin.Put("/courses/:id", onlyAdmin, ctrl.Update)
	admin.Delete("/courses/:id", onlyAdmin, ctrl.Delete)
}
