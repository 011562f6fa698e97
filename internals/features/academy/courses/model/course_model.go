package model

import (
	"time"

	"github.com/google/uuid"
)

// Level kelas yang dikenal katalog.
const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
)

// CourseModel satu kelas di katalog (musik/tari).
type CourseModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title        string     `gorm:"size:255;not null" json:"title"`
	Description  *string    `gorm:"type:text" json:"description,omitempty"`
	InstructorID *uuid.UUID `gorm:"type:uuid;index" json:"instructor_id,omitempty"`
	Price        float64    `gorm:"type:numeric(12,2);not null;default:0" json:"price"`
	Duration     *string    `gorm:"size:100" json:"duration,omitempty"`
	Level        *string    `gorm:"type:varchar(20)" json:"level,omitempty"`
	Thumbnail    *string    `gorm:"size:512" json:"thumbnail,omitempty"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (CourseModel) TableName() string {
	return "courses"
}
