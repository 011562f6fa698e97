package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	paymentDTO "sanggarku_backend/internals/features/payment/payments/dto"
	"sanggarku_backend/internals/features/payment/payments/model"
	paymentService "sanggarku_backend/internals/features/payment/payments/service"
	helper "sanggarku_backend/internals/helpers"
	"sanggarku_backend/internals/services/mailer"
)

type PaymentController struct {
	DB       *gorm.DB
	Mailer   mailer.Mailer
	Validate *validator.Validate
}

func NewPaymentController(db *gorm.DB, m mailer.Mailer) *PaymentController {
	return &PaymentController{DB: db, Mailer: m, Validate: validator.New()}
}

// POST /api/u/payments — catat transfer manual, status awal pending.
func (ctrl *PaymentController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var body paymentDTO.CreatePaymentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	payment, err := paymentService.CreatePending(ctrl.DB, userID, body.Amount, body.Currency, body.Type)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan pembayaran")
	}

	return helper.JsonCreated(c, "Pembayaran dicatat, menunggu konfirmasi", payment)
}

// GET /api/u/payments — riwayat milik sendiri, terbaru dulu.
func (ctrl *PaymentController) ListMine(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var payments []model.PaymentModel
	if err := ctrl.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&payments).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil riwayat pembayaran")
	}
	return helper.Success(c, "OK", payments)
}

// GET /api/a/payments/pending — antrian konfirmasi admin, join payer.
func (ctrl *PaymentController) ListPending(c *fiber.Ctx) error {
	var payments []model.PaymentModel
	if err := ctrl.DB.Preload("User").
		Where("status = ?", model.StatusPending).
		Order("created_at DESC").
		Find(&payments).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil pembayaran pending")
	}
	return helper.Success(c, "OK", payments)
}

// PATCH /api/a/payments/:id/status — admin konfirmasi/tolak.
// Status di-commit dulu; email konfirmasi best-effort (lihat service).
func (ctrl *PaymentController) SetStatus(c *fiber.Ctx) error {
	paymentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payment ID tidak valid")
	}

	var body paymentDTO.SetPaymentStatusRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	payment, err := paymentService.SetStatus(ctrl.DB, ctrl.Mailer, paymentID, body.Status)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return helper.Error(c, fiber.StatusNotFound, "Pembayaran tidak ditemukan")
		case errors.Is(err, paymentService.ErrStatusFinal):
			return helper.Error(c, fiber.StatusConflict, "Pembayaran yang sudah success tidak bisa diubah lagi")
		case errors.Is(err, paymentService.ErrInvalidStatus):
			return helper.Error(c, fiber.StatusBadRequest, "Status pembayaran tidak dikenal")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui status pembayaran")
	}

	return helper.Success(c, "Status pembayaran diperbarui", payment)
}
