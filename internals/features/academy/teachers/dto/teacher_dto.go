package dto

import "github.com/google/uuid"

type UpsertTeacherProfileRequest struct {
	UserID         uuid.UUID `json:"user_id" validate:"required"`
	Specialization []string  `json:"specialization" validate:"omitempty,dive,max=100"`
}

type RateTeacherRequest struct {
	Score  int     `json:"score" validate:"required,gte=1,lte=5"`
	Review *string `json:"review" validate:"omitempty,max=2000"`
}
