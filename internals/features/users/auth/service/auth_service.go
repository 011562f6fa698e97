// internals/features/users/auth/service/auth_service.go
package service

import (
	"errors"
	"log"
	"strings"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"sanggarku_backend/internals/configs"
	authDTO "sanggarku_backend/internals/features/users/auth/dto"
	authModel "sanggarku_backend/internals/features/users/auth/model"
	userModel "sanggarku_backend/internals/features/users/user/model"
	helper "sanggarku_backend/internals/helpers"
)

var validate = validator.New()

/* ==========================
   REGISTER
========================== */

// Register buat profile baru. Role efektif diputuskan policy:
// email domain institusi selalu admin, apapun role yang diminta.
func Register(db *gorm.DB, policy configs.RolePolicy, c *fiber.Ctx) error {
	var body authDTO.RegisterRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	body.Email = strings.ToLower(strings.TrimSpace(body.Email))
	body.UserName = strings.TrimSpace(body.UserName)
	if err := validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	effectiveRole := policy.Resolve(body.Email, body.Role)

	var count int64
	if err := db.Model(&userModel.UserModel{}).Where("email = ?", body.Email).Count(&count).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal cek email")
	}
	if count > 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Email sudah terdaftar")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Password tidak memenuhi kebijakan")
	}

	user := userModel.UserModel{
		UserName: body.UserName,
		Email:    body.Email,
		Password: string(hashed),
		Role:     effectiveRole,
		IsActive: true,
	}
	if err := db.Create(&user).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat akun")
	}

	return helper.JsonCreated(c, "Registrasi berhasil", sanitize(user))
}

/* ==========================
   LOGIN
========================== */

func Login(db *gorm.DB, policy configs.RolePolicy, c *fiber.Ctx) error {
	var body authDTO.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	body.Email = strings.ToLower(strings.TrimSpace(body.Email))
	if err := validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	var user userModel.UserModel
	if err := db.First(&user, "email = ?", body.Email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusBadRequest, "Email atau password salah")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil akun")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(body.Password)); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Email atau password salah")
	}
	if !user.IsActive {
		return helper.Error(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}

	// Self-healing: email domain institusi tapi role belum admin → promote
	// dan persist sebelum token dibuat.
	if newRole, changed := healRole(policy, user.Email, user.Role); changed {
		if err := db.Model(&user).Update("role", newRole).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui role")
		}
		user.Role = newRole
	}

	return respondWithTokens(c, user)
}

// healRole: aturan repair saat login. Terpisah supaya bisa diuji
// tanpa DB.
func healRole(policy configs.RolePolicy, email, storedRole string) (string, bool) {
	if policy.IsInstitutional(email) && storedRole != userModel.RoleAdmin {
		return userModel.RoleAdmin, true
	}
	return storedRole, false
}

/* ==========================
   LOGIN GOOGLE
========================== */

func LoginGoogle(db *gorm.DB, policy configs.RolePolicy, c *fiber.Ctx) error {
	var body authDTO.GoogleLoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(body.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Google ID token tidak valid")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(body.IDToken)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Google ID token tidak bisa dibaca")
	}

	email := strings.ToLower(strings.TrimSpace(claimSet.Email))
	if email == "" {
		return helper.Error(c, fiber.StatusUnauthorized, "Email tidak ada di token Google")
	}

	var user userModel.UserModel
	err = db.First(&user, "email = ?", email).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		// akun baru dari Google; role tetap lewat policy
		name := strings.TrimSpace(claimSet.Name)
		if name == "" {
			name = strings.Split(email, "@")[0]
		}
		user = userModel.UserModel{
			UserName: name,
			Email:    email,
			Password: "-", // tidak dipakai untuk akun Google
			GoogleID: &claimSet.Sub,
			Role:     policy.Resolve(email, ""),
			IsActive: true,
		}
		if err := db.Create(&user).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat akun")
		}
	case err != nil:
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil akun")
	default:
		if user.GoogleID == nil {
			if err := db.Model(&user).Update("google_id", claimSet.Sub).Error; err != nil {
				log.Printf("[ERROR] update google_id: %v", err)
			}
		}
		if newRole, changed := healRole(policy, user.Email, user.Role); changed {
			if err := db.Model(&user).Update("role", newRole).Error; err != nil {
				return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui role")
			}
			user.Role = newRole
		}
	}

	return respondWithTokens(c, user)
}

/* ==========================
   LOGOUT
========================== */

// Logout blacklist access token yang sedang dipakai. Idempoten:
// token yang sudah diblacklist tetap 200.
func Logout(db *gorm.DB, c *fiber.Ctx) error {
	authHeader := strings.TrimSpace(c.Get("Authorization"))
	tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	if tokenString == "" {
		tokenString = strings.TrimSpace(c.Cookies("access_token"))
	}
	if tokenString == "" {
		return helper.Success(c, "Logout berhasil", nil)
	}

	claims, err := ParseAccessToken(tokenString)
	if err != nil {
		// token rusak/expired: tidak ada yang perlu diblacklist
		return helper.Success(c, "Logout berhasil", nil)
	}

	var count int64
	if err := db.Model(&authModel.TokenBlacklistModel{}).Where("token = ?", tokenString).Count(&count).Error; err == nil && count == 0 {
		entry := authModel.TokenBlacklistModel{
			Token:     tokenString,
			ExpiredAt: AccessTokenExpiry(claims),
		}
		if err := db.Create(&entry).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal logout")
		}
	}

	c.ClearCookie("access_token", "refresh_token")
	return helper.Success(c, "Logout berhasil", nil)
}

/* ==========================
   Helpers
========================== */

func respondWithTokens(c *fiber.Ctx, user userModel.UserModel) error {
	accessToken, err := IssueAccessToken(user)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}
	refreshToken, err := IssueRefreshToken(user)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat refresh token")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
	})

	return helper.Success(c, "Login berhasil", authDTO.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         sanitize(user),
	})
}

func sanitize(user userModel.UserModel) fiber.Map {
	return fiber.Map{
		"id":         user.ID,
		"user_name":  user.UserName,
		"email":      user.Email,
		"role":       user.Role,
		"avatar_url": user.AvatarURL,
		"created_at": user.CreatedAt,
	}
}
