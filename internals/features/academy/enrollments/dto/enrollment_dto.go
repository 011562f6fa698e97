package dto

import "github.com/google/uuid"

type EnrollRequest struct {
	CourseID        uuid.UUID  `json:"course_id" validate:"required"`
	TaggedTeacherID *uuid.UUID `json:"tagged_teacher_id"`
}

type UpdateProgressRequest struct {
	Progress int `json:"progress" validate:"gte=0,lte=100"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active dropped"`
}
