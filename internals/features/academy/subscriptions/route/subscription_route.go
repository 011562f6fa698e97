package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	subController "sanggarku_backend/internals/features/academy/subscriptions/controller"
	authMiddleware "sanggarku_backend/internals/middlewares/auth"
)

func SubscriptionRoutes(user fiber.Router, admin fiber.Router, db *gorm.DB) {
	ctrl := subController.NewSubscriptionController(db)

	user.Get("/subscriptions/active", ctrl.GetActive)

	admin.Post("/subscriptions",
		authMiddleware.OnlyRoles("Hanya admin yang boleh mengaktifkan langganan", "admin"),
		ctrl.Activate)
}
