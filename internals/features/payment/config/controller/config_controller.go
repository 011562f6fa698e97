package controller

import (
	"errors"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	qrcode "github.com/skip2/go-qrcode"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	configDTO "sanggarku_backend/internals/features/payment/config/dto"
	"sanggarku_backend/internals/features/payment/config/model"
	configService "sanggarku_backend/internals/features/payment/config/service"
	helper "sanggarku_backend/internals/helpers"
)

type ConfigController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewConfigController(db *gorm.DB) *ConfigController {
	return &ConfigController{DB: db, Validate: validator.New()}
}

// GET /api/public/payment-config — rekening tujuan transfer.
// Belum pernah diisi admin itu bukan error, data dikirim null.
func (ctrl *ConfigController) GetPaymentDetails(c *fiber.Ctx) error {
	var cfg model.SystemConfigModel
	err := ctrl.DB.Where("key = ?", model.KeyPaymentDetails).First(&cfg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Success(c, "Rekening pembayaran belum diatur", nil)
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil konfigurasi")
	}

	var details configDTO.PaymentDetailsRequest
	if err := sonic.Unmarshal(cfg.Value, &details); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Konfigurasi pembayaran rusak")
	}
	return helper.Success(c, "OK", details)
}

// PUT /api/a/payment-config — admin set/ganti rekening tujuan.
func (ctrl *ConfigController) UpsertPaymentDetails(c *fiber.Ctx) error {
	var body configDTO.PaymentDetailsRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	raw, err := sonic.Marshal(body)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan konfigurasi")
	}

	cfg := model.SystemConfigModel{
		Key:   model.KeyPaymentDetails,
		Value: datatypes.JSON(raw),
	}
	if err := ctrl.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&cfg).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan konfigurasi")
	}

	return helper.Success(c, "Rekening pembayaran diperbarui", body)
}

// GET /api/public/payment-config/upi-qr — PNG QR untuk scan dari aplikasi UPI.
func (ctrl *ConfigController) UPIQR(c *fiber.Ctx) error {
	var cfg model.SystemConfigModel
	err := ctrl.DB.Where("key = ?", model.KeyPaymentDetails).First(&cfg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Rekening pembayaran belum diatur")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil konfigurasi")
	}

	var details configDTO.PaymentDetailsRequest
	if err := sonic.Unmarshal(cfg.Value, &details); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Konfigurasi pembayaran rusak")
	}
	if details.UPIID == "" {
		return helper.Error(c, fiber.StatusNotFound, "UPI ID belum diatur")
	}

	png, err := qrcode.Encode(configService.BuildUPIString(details.UPIID, details.BankName), qrcode.Medium, 256)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat QR")
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}
