package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	configController "sanggarku_backend/internals/features/payment/config/controller"
	authMiddleware "sanggarku_backend/internals/middlewares/auth"
)

// ConfigRoutes rekening tujuan transfer: publik baca, admin tulis.
func ConfigRoutes(public fiber.Router, admin fiber.Router, db *gorm.DB) {
	ctrl := configController.NewConfigController(db)

	public.Get("/payment-config", ctrl.GetPaymentDetails)
	public.Get("/payment-config/upi-qr", ctrl.UPIQR)

	admin.Put("/payment-config",
		authMiddleware.OnlyRoles("Hanya admin yang boleh mengubah rekening pembayaran", "admin"),
		ctrl.UpsertPaymentDetails)
}
