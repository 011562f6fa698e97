package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	enrollDTO "sanggarku_backend/internals/features/academy/enrollments/dto"
	"sanggarku_backend/internals/features/academy/enrollments/model"
	helper "sanggarku_backend/internals/helpers"
	"sanggarku_backend/internals/realtime"
)

type EnrollmentController struct {
	DB       *gorm.DB
	Hub      *realtime.Hub
	Validate *validator.Validate
}

func NewEnrollmentController(db *gorm.DB, hub *realtime.Hub) *EnrollmentController {
	return &EnrollmentController{DB: db, Hub: hub, Validate: validator.New()}
}

// GET /api/u/enrollments — enrolment milik sendiri, join course.
func (ctrl *EnrollmentController) ListMine(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var enrollments []model.EnrollmentModel
	if err := ctrl.DB.Preload("Course").
		Where("student_id = ?", userID).
		Order("created_at DESC").
		Find(&enrollments).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil enrolment")
	}
	return helper.Success(c, "OK", enrollments)
}

// POST /api/u/enrollments — daftar ke kelas, progress 0, status active.
func (ctrl *EnrollmentController) Enroll(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var body enrollDTO.EnrollRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	var count int64
	if err := ctrl.DB.Model(&model.EnrollmentModel{}).
		Where("student_id = ? AND course_id = ?", userID, body.CourseID).
		Count(&count).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal cek enrolment")
	}
	if count > 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Sudah terdaftar di kelas ini")
	}

	enrollment := model.EnrollmentModel{
		StudentID:       userID,
		CourseID:        body.CourseID,
		Progress:        0,
		Status:          model.StatusActive,
		TaggedTeacherID: body.TaggedTeacherID,
	}
	if err := ctrl.DB.Create(&enrollment).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan enrolment")
	}

	ctrl.Hub.Broadcast("enrollments", "insert", userID.String())
	return helper.JsonCreated(c, "Berhasil mendaftar kelas", enrollment)
}

// PATCH /api/u/enrollments/:id/progress
// Satu UPDATE: progress + status + completion_date sekaligus, supaya
// invariannya tidak pernah setengah jadi.
func (ctrl *EnrollmentController) UpdateProgress(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var body enrollDTO.UpdateProgressRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	var enrollment model.EnrollmentModel
	if err := ctrl.DB.First(&enrollment, "id = ? AND student_id = ?", c.Params("id"), userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Enrolment tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil enrolment")
	}

	status, completionDate := model.DeriveProgressState(body.Progress, enrollment.Status, time.Now().UTC())
	updates := map[string]interface{}{
		"progress":        body.Progress,
		"status":          status,
		"completion_date": completionDate,
	}
	if err := ctrl.DB.Model(&enrollment).Updates(updates).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal update progress")
	}

	enrollment.Progress = body.Progress
	enrollment.Status = status
	enrollment.CompletionDate = completionDate

	ctrl.Hub.Broadcast("enrollments", "update", userID.String())
	return helper.Success(c, "Progress diperbarui", enrollment)
}

// PATCH /api/u/enrollments/:id/status — drop / re-activate eksplisit.
func (ctrl *EnrollmentController) UpdateStatus(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var body enrollDTO.UpdateStatusRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	res := ctrl.DB.Model(&model.EnrollmentModel{}).
		Where("id = ? AND student_id = ?", c.Params("id"), userID).
		Updates(map[string]interface{}{"status": body.Status, "completion_date": nil})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal update status")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Enrolment tidak ditemukan")
	}

	ctrl.Hub.Broadcast("enrollments", "update", userID.String())
	return helper.Success(c, "Status diperbarui", nil)
}

// GET /api/a/enrollments — semua enrolment (staff).
func (ctrl *EnrollmentController) ListAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 50, 200)

	var total int64
	if err := ctrl.DB.Model(&model.EnrollmentModel{}).Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung enrolment")
	}

	var enrollments []model.EnrollmentModel
	if err := ctrl.DB.Preload("Course").
		Order("created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&enrollments).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil enrolment")
	}

	return helper.Success(c, "OK", fiber.Map{
		"items":      enrollments,
		"pagination": helper.BuildPagination(total, paging.Page, paging.PerPage),
	})
}
