package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sanggarku_backend/internals/features/academy/attendance/model"
	helper "sanggarku_backend/internals/helpers"
)

type AttendanceController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db, Validate: validator.New()}
}

// GET /api/u/attendance — 30 hari terakhir milik sendiri.
func (ctrl *AttendanceController) ListMine(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var rows []model.AttendanceModel
	if err := ctrl.DB.Where("student_id = ?", userID).
		Order("date DESC").Limit(30).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil kehadiran")
	}
	return helper.Success(c, "OK", rows)
}

type markRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	Date      string    `json:"date" validate:"required,datetime=2006-01-02"`
	Status    string    `json:"status" validate:"required,oneof=present absent"`
}

// POST /api/a/attendance — staff mencatat kehadiran.
func (ctrl *AttendanceController) Mark(c *fiber.Ctx) error {
	var body markRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	date, _ := time.Parse("2006-01-02", body.Date)
	row := model.AttendanceModel{
		StudentID: body.StudentID,
		Date:      date,
		Status:    body.Status,
	}
	if err := ctrl.DB.Create(&row).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan kehadiran")
	}
	return helper.JsonCreated(c, "Kehadiran dicatat", row)
}
