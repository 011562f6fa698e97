package model

import (
	"time"

	"github.com/google/uuid"

	userModel "sanggarku_backend/internals/features/users/user/model"
)

const (
	StatusPending = "pending"
	StatusSuccess = "success"
	StatusFailed  = "failed"

	TypeCourseFee     = "course_fee"
	TypeSubscription  = "subscription"
	TypeTeacherPayout = "teacher_payout"
)

// PaymentModel catatan transfer manual (bank/UPI). Dibuat pending
// oleh pemiliknya; hanya admin yang menggesernya ke success/failed.
type PaymentModel struct {
	ID            uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Amount        float64   `gorm:"type:numeric(12,2);not null" json:"amount"`
	Currency      string    `gorm:"type:varchar(8);not null;default:'USD'" json:"currency"`
	Type          string    `gorm:"type:varchar(20);not null" json:"type"`
	Status        string    `gorm:"type:varchar(10);not null;default:'pending'" json:"status"`
	TransactionID string    `gorm:"size:64;unique;not null" json:"transaction_id"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	User *userModel.UserModel `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (PaymentModel) TableName() string {
	return "payments"
}

func ValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusSuccess, StatusFailed:
		return true
	}
	return false
}
