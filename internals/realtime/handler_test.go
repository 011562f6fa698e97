package realtime

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sanggarku_backend/internals/configs"
)

func signTestToken(t *testing.T, sub, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  sub,
		"role": role,
	})
	signed, err := token.SignedString([]byte(configs.JWTSecret))
	require.NoError(t, err)
	return signed
}

func TestUpgradeGuard(t *testing.T) {
	configs.JWTSecret = "test-secret"

	h := NewHub()
	app := fiber.New()
	app.Get("/ws/live", h.UpgradeGuard(), h.Handler())

	t.Run("request http biasa ditolak 426", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/ws/live", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUpgradeRequired, resp.StatusCode)
	})

	t.Run("upgrade tanpa token ditolak 401", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/ws/live", nil)
		req.Header.Set("Connection", "Upgrade")
		req.Header.Set("Upgrade", "websocket")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("upgrade dengan token rusak ditolak 401", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/ws/live?token=bukan-jwt", nil)
		req.Header.Set("Connection", "Upgrade")
		req.Header.Set("Upgrade", "websocket")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}

func TestParseToken(t *testing.T) {
	configs.JWTSecret = "test-secret"

	userID, role, err := parseToken(signTestToken(t, "user-1", "admin"))
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, "admin", role)

	_, _, err = parseToken("")
	assert.Error(t, err)

	_, _, err = parseToken("bukan.jwt.valid")
	assert.Error(t, err)
}

func TestParseTables(t *testing.T) {
	assert.Equal(t, map[string]bool{"courses": true, "enrollments": true},
		parseTables("courses, enrollments"))
	assert.Empty(t, parseTables(""))
	assert.Empty(t, parseTables(" , ,"))
}
