package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentController "sanggarku_backend/internals/features/payment/payments/controller"
	authMiddleware "sanggarku_backend/internals/middlewares/auth"
	"sanggarku_backend/internals/services/mailer"
)

// PaymentRoutes pencatatan transfer manual + konfirmasi admin.
func PaymentRoutes(user fiber.Router, admin fiber.Router, db *gorm.DB, m mailer.Mailer) {
	ctrl := paymentController.NewPaymentController(db, m)

	user.Post("/payments", ctrl.Create)
	user.Get("/payments", ctrl.ListMine)

	onlyAdmin := authMiddleware.OnlyRoles("Hanya admin yang boleh mengelola pembayaran", "admin")
	admin.Get("/payments/pending", onlyAdmin, ctrl.ListPending)
	admin.Patch("/payments/:id/status", onlyAdmin, ctrl.SetStatus)
}
