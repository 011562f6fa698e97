package model

import (
	"time"

	"github.com/google/uuid"
)

// AnalyticsReportModel snapshot bisnis pada satu titik waktu.
// Baris ini immutable: tidak pernah di-update, laporan baru = baris baru.
type AnalyticsReportModel struct {
	ID                uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ReportDate        time.Time `gorm:"not null;index" json:"report_date"`
	TotalRevenue      float64   `gorm:"type:numeric(14,2);not null;default:0" json:"total_revenue"`
	TotalTransactions int       `gorm:"not null;default:0" json:"total_transactions"`
	TotalStudents     int       `gorm:"not null;default:0" json:"total_students"`
	ActiveStudents    int       `gorm:"not null;default:0" json:"active_students"`
	DroppedStudents   int       `gorm:"not null;default:0" json:"dropped_students"`
	CompletedStudents int       `gorm:"not null;default:0" json:"completed_students"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"created_at"`

	TeacherPerformance []TeacherPerformanceModel `gorm:"foreignKey:ReportID" json:"teacher_performance,omitempty"`
}

func (AnalyticsReportModel) TableName() string {
	return "analytics_reports"
}

// TeacherPerformanceModel potret satu pengajar di dalam laporan.
type TeacherPerformanceModel struct {
	ID             uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ReportID       uuid.UUID `gorm:"type:uuid;not null;index" json:"report_id"`
	TeacherID      uuid.UUID `gorm:"type:uuid;not null" json:"teacher_id"`
	TeacherName    string    `gorm:"size:100;not null" json:"teacher_name"`
	AverageRating  float64   `gorm:"type:numeric(3,2);not null;default:0" json:"average_rating"`
	TotalStudents  int       `gorm:"not null;default:0" json:"total_students"`
	CompletionRate float64   `gorm:"type:numeric(5,2);not null;default:0" json:"completion_rate"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (TeacherPerformanceModel) TableName() string {
	return "teacher_performance"
}
