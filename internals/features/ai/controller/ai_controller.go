package controller

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	aiDTO "sanggarku_backend/internals/features/ai/dto"
	aiService "sanggarku_backend/internals/features/ai/service"
	helper "sanggarku_backend/internals/helpers"
)

type AIController struct {
	Client   *aiService.GeminiClient
	Validate *validator.Validate
}

func NewAIController(client *aiService.GeminiClient) *AIController {
	return &AIController{Client: client, Validate: validator.New()}
}

func (ctrl *AIController) parsePrompt(c *fiber.Ctx) (aiDTO.PromptRequest, error) {
	var body aiDTO.PromptRequest
	if err := c.BodyParser(&body); err != nil {
		return body, helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return body, helper.ValidationError(c, err)
	}
	return body, nil
}

// POST /api/u/ai/chat
func (ctrl *AIController) Chat(c *fiber.Ctx) error {
	body, err := ctrl.parsePrompt(c)
	if err != nil {
		return err
	}

	// panggilan model bisa melebihi timeout guard HTTP 5 detik,
	// jadi deadline-nya berdiri sendiri
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	text, err := ctrl.Client.GenerateText(ctx, body.Prompt)
	if err != nil {
		return helper.Error(c, fiber.StatusBadGateway, "Asisten AI sedang tidak bisa dihubungi")
	}
	return helper.Success(c, "OK", fiber.Map{"text": text})
}

// POST /api/u/ai/image
func (ctrl *AIController) Image(c *fiber.Ctx) error {
	body, err := ctrl.parsePrompt(c)
	if err != nil {
		return err
	}

	// generate gambar bisa lama, beri ruang lebih dari chat
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	data, mimeType, err := ctrl.Client.GenerateImage(ctx, body.Prompt)
	if err != nil {
		return helper.Error(c, fiber.StatusBadGateway, "Gagal membuat gambar")
	}
	return helper.Success(c, "OK", fiber.Map{
		"mime_type": mimeType,
		"data":      data,
	})
}

// POST /api/u/ai/video — submit job, client nge-poll sendiri.
func (ctrl *AIController) SubmitVideo(c *fiber.Ctx) error {
	body, err := ctrl.parsePrompt(c)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	operation, err := ctrl.Client.SubmitVideo(ctx, body.Prompt)
	if err != nil {
		return helper.Error(c, fiber.StatusBadGateway, "Gagal memulai job video")
	}
	return helper.SuccessWithCode(c, fiber.StatusAccepted, "Job video dimulai", fiber.Map{
		"operation": operation,
	})
}

// GET /api/u/ai/video/:op
func (ctrl *AIController) PollVideo(c *fiber.Ctx) error {
	operation := c.Params("*")
	if operation == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Operation name wajib diisi")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	done, uri, err := ctrl.Client.PollVideo(ctx, operation)
	if err != nil {
		return helper.Error(c, fiber.StatusBadGateway, "Gagal mengecek status job video")
	}
	return helper.Success(c, "OK", fiber.Map{
		"done":      done,
		"video_uri": uri,
	})
}
