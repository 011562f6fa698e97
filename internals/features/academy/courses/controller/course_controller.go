package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseDTO "sanggarku_backend/internals/features/academy/courses/dto"
	"sanggarku_backend/internals/features/academy/courses/model"
	helper "sanggarku_backend/internals/helpers"
	"sanggarku_backend/internals/realtime"
)

type CourseController struct {
	DB       *gorm.DB
	Hub      *realtime.Hub
	Validate *validator.Validate
}

func NewCourseController(db *gorm.DB, hub *realtime.Hub) *CourseController {
	return &CourseController{DB: db, Hub: hub, Validate: validator.New()}
}

// GET /api/public/courses
func (ctrl *CourseController) List(c *fiber.Ctx) error {
	var courses []model.CourseModel
	if err := ctrl.DB.Order("created_at DESC").Find(&courses).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil daftar kelas")
	}
	return helper.Success(c, "OK", courses)
}

// GET /api/public/courses/:id
func (ctrl *CourseController) GetOne(c *fiber.Ctx) error {
	var course model.CourseModel
	if err := ctrl.DB.First(&course, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil kelas")
	}
	return helper.Success(c, "OK", course)
}

// POST /api/a/courses (admin)
func (ctrl *CourseController) Create(c *fiber.Ctx) error {
	var body courseDTO.CreateCourseRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	course := model.CourseModel{
		Title:        body.Title,
		Description:  body.Description,
		InstructorID: body.InstructorID,
		Price:        body.Price,
		Duration:     body.Duration,
		Level:        body.Level,
		Thumbnail:    body.Thumbnail,
	}
	if err := ctrl.DB.Create(&course).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan kelas")
	}

	ctrl.Hub.Broadcast("courses", "insert", "")
	return helper.JsonCreated(c, "Kelas dibuat", course)
}

// PUT /api/a/courses/:id (admin)
func (ctrl *CourseController) Update(c *fiber.Ctx) error {
	var body courseDTO.UpdateCourseRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	var course model.CourseModel
	if err := ctrl.DB.First(&course, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil kelas")
	}

	updates := map[string]interface{}{}
	if body.Title != nil {
		updates["title"] = *body.Title
	}
	if body.Description != nil {
		updates["description"] = *body.Description
	}
	if body.InstructorID != nil {
		updates["instructor_id"] = *body.InstructorID
	}
	if body.Price != nil {
		updates["price"] = *body.Price
	}
	if body.Duration != nil {
		updates["duration"] = *body.Duration
	}
	if body.Level != nil {
		updates["level"] = *body.Level
	}
	if body.Thumbnail != nil {
		updates["thumbnail"] = *body.Thumbnail
	}
	if len(updates) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}

	if err := ctrl.DB.Model(&course).Updates(updates).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal update kelas")
	}

	ctrl.Hub.Broadcast("courses", "update", "")
	return helper.Success(c, "Kelas diperbarui", course)
}

// DELETE /api/a/courses/:id (admin)
func (ctrl *CourseController) Delete(c *fiber.Ctx) error {
	res := ctrl.DB.Delete(&model.CourseModel{}, "id = ?", c.Params("id"))
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus kelas")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
	}

	ctrl.Hub.Broadcast("courses", "delete", "")
	return helper.Success(c, "Kelas dihapus", nil)
}
