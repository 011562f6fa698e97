package model

import (
	"time"

	"github.com/google/uuid"

	courseModel "sanggarku_backend/internals/features/academy/courses/model"
)

const (
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusDropped   = "dropped"
)

// EnrollmentModel relasi student ↔ course, bawa progress & status.
// (student_id, course_id) unik.
type EnrollmentModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	StudentID       uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:idx_enroll_student_course" json:"student_id"`
	CourseID        uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_enroll_student_course" json:"course_id"`
	Progress        int        `gorm:"not null;default:0" json:"progress"`
	Status          string     `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	TaggedTeacherID *uuid.UUID `gorm:"type:uuid;index" json:"tagged_teacher_id,omitempty"`
	CompletionDate  *time.Time `json:"completion_date,omitempty"`
	CreatedAt       time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	Course *courseModel.CourseModel `gorm:"foreignKey:CourseID" json:"course,omitempty"`
}

func (EnrollmentModel) TableName() string {
	return "enrollments"
}

// DeriveProgressState hitung status & completion_date dari progress.
// progress ≥ 100 → completed + tanggal selesai; selain itu active
// (kecuali sebelumnya dropped: dropped tidak bangun sendiri).
func DeriveProgressState(progress int, currentStatus string, now time.Time) (status string, completionDate *time.Time) {
	if progress >= 100 {
		return StatusCompleted, &now
	}
	if currentStatus == StatusDropped {
		return StatusDropped, nil
	}
	return StatusActive, nil
}
