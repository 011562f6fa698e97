package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SystemConfigModel key-value konfigurasi aplikasi, value bebas JSON.
type SystemConfigModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Key       string         `gorm:"size:64;unique;not null" json:"key"`
	Value     datatypes.JSON `gorm:"type:jsonb;not null" json:"value"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (SystemConfigModel) TableName() string {
	return "system_config"
}

// KeyPaymentDetails kunci rekening tujuan transfer manual.
const KeyPaymentDetails = "paymentDetails"
