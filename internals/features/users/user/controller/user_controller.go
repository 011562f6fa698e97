package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userDTO "sanggarku_backend/internals/features/users/user/dto"
	"sanggarku_backend/internals/features/users/user/model"
	helper "sanggarku_backend/internals/helpers"
)

type UserController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db, Validate: validator.New()}
}

// GET /api/u/me
func (ctrl *UserController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "User not found")
	}

	return helper.Success(c, "OK", user)
}

// PUT /api/u/me
func (ctrl *UserController) UpdateMe(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var body userDTO.UpdateMeRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := map[string]interface{}{}
	if body.UserName != nil {
		updates["user_name"] = *body.UserName
	}
	if body.AvatarURL != nil {
		updates["avatar_url"] = *body.AvatarURL
	}
	if len(updates) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}

	if err := ctrl.DB.Model(&model.UserModel{}).Where("id = ?", userID).Updates(updates).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal update profil")
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil profil")
	}
	return helper.Success(c, "Profil diperbarui", user)
}

// POST /api/u/me/avatar (multipart "avatar")
func (ctrl *UserController) UploadAvatar(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "File avatar tidak ditemukan")
	}

	url, err := helper.UploadAvatarWebP(fileHeader)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Upload avatar gagal")
	}

	if err := ctrl.DB.Model(&model.UserModel{}).Where("id = ?", userID).
		Update("avatar_url", url).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan avatar")
	}

	return helper.Success(c, "Avatar diperbarui", fiber.Map{"avatar_url": url})
}

// GET /api/a/students  (admin & teacher)
func (ctrl *UserController) ListStudents(c *fiber.Ctx) error {
	var students []model.UserModel
	if err := ctrl.DB.Where("role = ?", model.RoleStudent).
		Order("created_at DESC").Find(&students).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data student")
	}
	return helper.Success(c, "OK", students)
}
