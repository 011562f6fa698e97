package realtime

import (
	"errors"
	"strings"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"sanggarku_backend/internals/configs"
)

// UpgradeGuard tolak request non-websocket dan validasi token SEBELUM
// handshake, supaya kegagalan auth dijawab sebagai HTTP 401 biasa.
func (h *Hub) UpgradeGuard() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		userID, role, err := parseToken(c.Query("token"))
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Token tidak valid")
		}
		c.Locals("ws_user_id", userID)
		c.Locals("ws_role", role)
		return c.Next()
	}
}

// Handler upgrade GET /ws/live?token=...&tables=courses,enrollments
// langsung di fasthttp; upgrade lewat adaptor net/http gagal karena
// response writer fasthttp tidak bisa di-hijack.
func (h *Hub) Handler() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		userID, _ := conn.Locals("ws_user_id").(string)
		role, _ := conn.Locals("ws_role").(string)

		client := &Client{
			ID:     uuid.New(),
			Conn:   conn.Conn,
			Send:   make(chan []byte, 32),
			Tables: parseTables(conn.Query("tables")),
			UserID: userID,
			Role:   role,
		}
		h.Register(client)

		go client.WritePump(h)
		client.ReadPump(h) // blok sampai koneksi ditutup
	}, websocket.Config{
		ReadBufferSize:  4096,
		WriteBufferSize: 4096,
	})
}

func parseTables(q string) map[string]bool {
	tables := map[string]bool{}
	for _, t := range strings.Split(q, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tables[t] = true
		}
	}
	return tables
}

func parseToken(tokenString string) (userID, role string, err error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return "", "", errors.New("token kosong")
	}
	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	}); err != nil {
		return "", "", err
	}
	sub, _ := claims["sub"].(string)
	r, _ := claims["role"].(string)
	return sub, r, nil
}
