package configs

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	userModel "sanggarku_backend/internals/features/users/user/model"
)

var (
	JWTSecret        string
	JWTRefreshSecret string
	GoogleClientID   string
	SendgridAPIKey   string
	GeminiAPIKey     string
	AdminEmailDomain string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Println("🚀 Running in Railway, menggunakan ENV dari sistem")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	JWTRefreshSecret = GetEnv("JWT_REFRESH_SECRET")
	GoogleClientID = GetEnv("GOOGLE_CLIENT_ID")
	SendgridAPIKey = GetEnv("SENDGRID_API_KEY")
	GeminiAPIKey = GetEnv("GEMINI_API_KEY")
	AdminEmailDomain = GetEnv("ADMIN_EMAIL_DOMAIN", "jay.com")

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET belum diset!")
	} else {
		log.Println("✅ JWT_SECRET berhasil dimuat.")
	}

	if JWTRefreshSecret == "" {
		log.Println("❌ JWT_REFRESH_SECRET belum diset!")
	}

	if SendgridAPIKey == "" {
		log.Println("⚠️ SENDGRID_API_KEY kosong, email pakai console mailer")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

// =======================
// ROLE POLICY
// =======================

// RolePolicy memutuskan role efektif saat register/login.
// Aturan domain institusi jadi data (dari ENV), bukan string logic
// yang tersebar di tiap form.
type RolePolicy struct {
	AdminDomain string // tanpa "@", contoh: "jay.com"
}

func NewRolePolicy() RolePolicy {
	return RolePolicy{AdminDomain: AdminEmailDomain}
}

// Resolve: email pada domain institusi selalu admin, apapun role
// yang diminta. Requested yang kosong atau tidak dikenal jatuh ke
// student.
func (p RolePolicy) Resolve(email, requested string) string {
	if p.IsInstitutional(email) {
		return userModel.RoleAdmin
	}
	if !userModel.ValidRole(requested) {
		return userModel.RoleStudent
	}
	return requested
}

func (p RolePolicy) IsInstitutional(email string) bool {
	if p.AdminDomain == "" {
		return false
	}
	return strings.HasSuffix(strings.ToLower(strings.TrimSpace(email)), "@"+strings.ToLower(p.AdminDomain))
}
