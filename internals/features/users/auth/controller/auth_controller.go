package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sanggarku_backend/internals/configs"
	"sanggarku_backend/internals/features/users/auth/service"
)

type AuthController struct {
	DB     *gorm.DB
	Policy configs.RolePolicy
}

func NewAuthController(db *gorm.DB, policy configs.RolePolicy) *AuthController {
	return &AuthController{DB: db, Policy: policy}
}

func (ac *AuthController) Register(c *fiber.Ctx) error {
	return service.Register(ac.DB, ac.Policy, c)
}

func (ac *AuthController) Login(c *fiber.Ctx) error {
	return service.Login(ac.DB, ac.Policy, c)
}

func (ac *AuthController) LoginGoogle(c *fiber.Ctx) error {
	return service.LoginGoogle(ac.DB, ac.Policy, c)
}

func (ac *AuthController) Logout(c *fiber.Ctx) error {
	return service.Logout(ac.DB, c)
}
