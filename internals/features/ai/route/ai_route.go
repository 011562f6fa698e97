package route

import (
	"github.com/gofiber/fiber/v2"

	aiController "sanggarku_backend/internals/features/ai/controller"
	aiService "sanggarku_backend/internals/features/ai/service"
)

// AIRoutes proxy Gemini untuk user login.
func AIRoutes(user fiber.Router, client *aiService.GeminiClient) {
	ctrl := aiController.NewAIController(client)

	user.Post("/ai/chat", ctrl.Chat)
	user.Post("/ai/image", ctrl.Image)
	user.Post("/ai/video", ctrl.SubmitVideo)
	user.Get("/ai/video/*", ctrl.PollVideo)
}
