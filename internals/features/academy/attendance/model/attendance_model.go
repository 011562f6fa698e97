package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
)

// AttendanceModel kehadiran harian per student.
type AttendanceModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	StudentID uuid.UUID `gorm:"type:uuid;not null;index" json:"student_id"`
	Date      time.Time `gorm:"type:date;not null" json:"date"`
	Status    string    `gorm:"type:varchar(10);not null" json:"status"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (AttendanceModel) TableName() string {
	return "attendance"
}
