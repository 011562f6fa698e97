package dto

import "github.com/google/uuid"

type CreateCourseRequest struct {
	Title        string     `json:"title" validate:"required,max=255"`
	Description  *string    `json:"description"`
	InstructorID *uuid.UUID `json:"instructor_id"`
	Price        float64    `json:"price" validate:"gte=0"`
	Duration     *string    `json:"duration" validate:"omitempty,max=100"`
	Level        *string    `json:"level" validate:"omitempty,oneof=Beginner Intermediate Advanced"`
	Thumbnail    *string    `json:"thumbnail" validate:"omitempty,url"`
}

type UpdateCourseRequest struct {
	Title        *string    `json:"title" validate:"omitempty,max=255"`
	Description  *string    `json:"description"`
	InstructorID *uuid.UUID `json:"instructor_id"`
	Price        *float64   `json:"price" validate:"omitempty,gte=0"`
	Duration     *string    `json:"duration" validate:"omitempty,max=100"`
	Level        *string    `json:"level" validate:"omitempty,oneof=Beginner Intermediate Advanced"`
	Thumbnail    *string    `json:"thumbnail" validate:"omitempty,url"`
}
