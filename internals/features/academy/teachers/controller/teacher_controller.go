package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	teacherDTO "sanggarku_backend/internals/features/academy/teachers/dto"
	"sanggarku_backend/internals/features/academy/teachers/model"
	userModel "sanggarku_backend/internals/features/users/user/model"
	helper "sanggarku_backend/internals/helpers"
)

type TeacherController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewTeacherController(db *gorm.DB) *TeacherController {
	return &TeacherController{DB: db, Validate: validator.New()}
}

// GET /api/public/teachers — daftar pengajar + profilnya.
func (ctrl *TeacherController) List(c *fiber.Ctx) error {
	var profiles []model.TeacherProfileModel
	if err := ctrl.DB.Preload("User").
		Order("created_at DESC").
		Find(&profiles).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data pengajar")
	}
	return helper.Success(c, "OK", profiles)
}

// GET /api/u/teachers/:userId/profile — profil pengajar tertentu;
// data:null bila belum dibuat (bukan error).
func (ctrl *TeacherController) GetByUser(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "User ID tidak valid")
	}

	var profile model.TeacherProfileModel
	err = ctrl.DB.Preload("User").First(&profile, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.Success(c, "Profil pengajar belum ada", nil)
	}
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil profil pengajar")
	}
	return helper.Success(c, "OK", profile)
}

// POST /api/a/teachers — admin upsert profil pengajar.
func (ctrl *TeacherController) Upsert(c *fiber.Ctx) error {
	var body teacherDTO.UpsertTeacherProfileRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	// pastikan user-nya memang teacher
	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "id = ?", body.UserID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "User tidak ditemukan")
	}
	if user.Role != userModel.RoleTeacher {
		return helper.Error(c, fiber.StatusBadRequest, "User bukan teacher")
	}

	var profile model.TeacherProfileModel
	err := ctrl.DB.First(&profile, "user_id = ?", body.UserID).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		profile = model.TeacherProfileModel{
			UserID:         body.UserID,
			Specialization: body.Specialization,
		}
		if err := ctrl.DB.Create(&profile).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat profil pengajar")
		}
		return helper.JsonCreated(c, "Profil pengajar dibuat", profile)
	case err != nil:
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil profil pengajar")
	default:
		if err := ctrl.DB.Model(&profile).
			Update("specialization", pq.StringArray(body.Specialization)).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal update profil pengajar")
		}
		return helper.Success(c, "Profil pengajar diperbarui", profile)
	}
}

// POST /api/u/teachers/:userId/ratings — student menilai pengajar;
// average_rating di-refresh dalam transaksi yang sama.
func (ctrl *TeacherController) Rate(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	teacherUserID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "User ID tidak valid")
	}

	var body teacherDTO.RateTeacherRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	var profile model.TeacherProfileModel
	if err := ctrl.DB.First(&profile, "user_id = ?", teacherUserID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Profil pengajar tidak ditemukan")
	}

	rating := model.TeacherRatingModel{
		TeacherID: profile.ID,
		StudentID: studentID,
		Score:     body.Score,
		Review:    body.Review,
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&rating).Error; err != nil {
			return err
		}
		var avg float64
		if err := tx.Model(&model.TeacherRatingModel{}).
			Where("teacher_id = ?", profile.ID).
			Select("COALESCE(AVG(score), 0)").Scan(&avg).Error; err != nil {
			return err
		}
		return tx.Model(&profile).Update("average_rating", avg).Error
	})
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan rating")
	}

	return helper.JsonCreated(c, "Rating tersimpan", rating)
}
