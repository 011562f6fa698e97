// internals/features/users/auth/service/token_service.go
package service

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"sanggarku_backend/internals/configs"
	userModel "sanggarku_backend/internals/features/users/user/model"
)

const (
	accessTTL  = 24 * time.Hour
	refreshTTL = 7 * 24 * time.Hour
)

func nowUTC() time.Time { return time.Now().UTC() }

// IssueAccessToken buat access JWT berisi klaim yang dibaca middleware.
func IssueAccessToken(user userModel.UserModel) (string, error) {
	if configs.JWTSecret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET belum diset")
	}
	now := nowUTC()
	claims := jwt.MapClaims{
		"sub":       user.ID.String(),
		"role":      user.Role,
		"user_name": user.UserName,
		"iat":       now.Unix(),
		"exp":       now.Add(accessTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}

// IssueRefreshToken buat refresh JWT (secret terpisah).
func IssueRefreshToken(user userModel.UserModel) (string, error) {
	secret := configs.JWTRefreshSecret
	if secret == "" {
		secret = configs.JWTSecret
	}
	now := nowUTC()
	claims := jwt.MapClaims{
		"sub": user.ID.String(),
		"iat": now.Unix(),
		"exp": now.Add(refreshTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseAccessToken verifikasi access token dan kembalikan klaimnya.
func ParseAccessToken(tokenString string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}
	return claims, nil
}

// AccessTokenExpiry dipakai saat blacklist: simpan sampai exp saja.
func AccessTokenExpiry(claims jwt.MapClaims) time.Time {
	if expFloat, ok := claims["exp"].(float64); ok {
		return time.Unix(int64(expFloat), 0)
	}
	return nowUTC().Add(accessTTL)
}
