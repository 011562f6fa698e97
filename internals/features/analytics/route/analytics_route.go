package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	analyticsController "sanggarku_backend/internals/features/analytics/controller"
	authMiddleware "sanggarku_backend/internals/middlewares/auth"
)

// AnalyticsRoutes laporan bisnis, seluruhnya khusus admin.
func AnalyticsRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := analyticsController.NewAnalyticsController(db)

	onlyAdmin := authMiddleware.OnlyRoles("Hanya admin yang boleh mengakses analytics", "admin")
	admin.Post("/analytics/reports", onlyAdmin, ctrl.Generate)
	admin.Get("/analytics/reports/latest", onlyAdmin, ctrl.Latest)
	admin.Get("/analytics/reports", onlyAdmin, ctrl.List)
}
