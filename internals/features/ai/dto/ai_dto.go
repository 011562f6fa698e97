package dto

// PromptRequest satu prompt teks, dipakai chat/image/video.
type PromptRequest struct {
	Prompt string `json:"prompt" validate:"required,min=1,max=4000"`
}
