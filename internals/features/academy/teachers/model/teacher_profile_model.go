package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	userModel "sanggarku_backend/internals/features/users/user/model"
)

// TeacherProfileModel data pengajar di luar profile dasar.
// average_rating & student_completion_rate adalah metrik turunan
// yang dipersist (di-refresh oleh rating submission & aggregator).
type TeacherProfileModel struct {
	ID                    uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID                uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	Specialization        pq.StringArray `gorm:"type:text[]" json:"specialization"`
	AverageRating         float64        `gorm:"type:numeric(3,2);not null;default:0" json:"average_rating"`
	TotalEarned           float64        `gorm:"type:numeric(12,2);not null;default:0" json:"total_earned"`
	PendingPayout         float64        `gorm:"type:numeric(12,2);not null;default:0" json:"pending_payout"`
	ClassesConducted      int            `gorm:"not null;default:0" json:"classes_conducted"`
	StudentCompletionRate float64        `gorm:"type:numeric(5,2);not null;default:0" json:"student_completion_rate"`
	CreatedAt             time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt             time.Time      `gorm:"autoUpdateTime" json:"updated_at"`

	User *userModel.UserModel `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (TeacherProfileModel) TableName() string {
	return "teacher_profiles"
}

// TeacherRatingModel satu penilaian student → teacher.
type TeacherRatingModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	TeacherID uuid.UUID `gorm:"type:uuid;not null;index" json:"teacher_id"`
	StudentID uuid.UUID `gorm:"type:uuid;not null;index" json:"student_id"`
	Score     int       `gorm:"not null" json:"score"`
	Review    *string   `gorm:"type:text" json:"review,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (TeacherRatingModel) TableName() string {
	return "teacher_ratings"
}
