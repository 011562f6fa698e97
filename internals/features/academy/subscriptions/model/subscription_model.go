package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	PlanMonthly = "monthly"
	PlanYearly  = "yearly"
	PlanNone    = "none"
)

// SubscriptionModel langganan membership per user.
type SubscriptionModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	Plan       string     `gorm:"type:varchar(20);not null;default:'none'" json:"plan"`
	StartDate  *time.Time `json:"start_date,omitempty"`
	ExpiryDate *time.Time `json:"expiry_date,omitempty"`
	IsActive   bool       `gorm:"not null;default:false" json:"is_active"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (SubscriptionModel) TableName() string {
	return "subscriptions"
}
