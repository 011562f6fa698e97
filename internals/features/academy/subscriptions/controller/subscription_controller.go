package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sanggarku_backend/internals/features/academy/subscriptions/model"
	helper "sanggarku_backend/internals/helpers"
)

type SubscriptionController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSubscriptionController(db *gorm.DB) *SubscriptionController {
	return &SubscriptionController{DB: db, Validate: validator.New()}
}

// GET /api/u/subscriptions/active — row aktif milik sendiri,
// data:null kalau tidak ada (bukan error).
func (ctrl *SubscriptionController) GetActive(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var sub model.SubscriptionModel
	err = ctrl.DB.Where("user_id = ? AND is_active = true", userID).First(&sub).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.Success(c, "Belum ada langganan aktif", nil)
	}
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil langganan")
	}
	return helper.Success(c, "OK", sub)
}

type activateRequest struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
	Plan   string    `json:"plan" validate:"required,oneof=monthly yearly"`
}

// POST /api/a/subscriptions — admin aktivasi langganan setelah
// pembayaran dikonfirmasi. Row aktif lama dimatikan dulu.
func (ctrl *SubscriptionController) Activate(c *fiber.Ctx) error {
	var body activateRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	now := time.Now().UTC()
	expiry := now.AddDate(0, 1, 0)
	if body.Plan == model.PlanYearly {
		expiry = now.AddDate(1, 0, 0)
	}

	sub := model.SubscriptionModel{
		UserID:     body.UserID,
		Plan:       body.Plan,
		StartDate:  &now,
		ExpiryDate: &expiry,
		IsActive:   true,
	}

	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.SubscriptionModel{}).
			Where("user_id = ? AND is_active = true", body.UserID).
			Update("is_active", false).Error; err != nil {
			return err
		}
		return tx.Create(&sub).Error
	})
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengaktifkan langganan")
	}

	return helper.JsonCreated(c, "Langganan aktif", sub)
}
