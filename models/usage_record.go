package models

import (
	"time"
)

// UsageRecord represents a single usage session of a device by a user
type UsageRecord struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	UserID           uint       `gorm:"index" json:"user_id"`
	DeviceID         uint       `gorm:"index" json:"device_id"`
	StartTime        time.Time  `gorm:"not null" json:"start_time"`
	EndTime          *time.Time `json:"end_time"`
	Duration         *float64   `json:"duration"`          // 使用时长，单位分钟
	PowerConsumption *float64   `json:"power_consumption"` // 能耗，单位kWh
	CreatedAt        time.Time  `json:"created_at"`

	// Relations
	User   *User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Device *Device `gorm:"foreignKey:DeviceID" json:"device,omitempty"`
}

// DurationOrZero 读取使用时长，空值按0计
func (r *UsageRecord) DurationOrZero() float64 {
	if r.Duration == nil {
		return 0
	}
	return *r.Duration
}
