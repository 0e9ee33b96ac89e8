package models

import (
	"time"
)

// User represents a platform user and owner of smart-home devices
type User struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Name           string    `gorm:"type:varchar(50);index" json:"name"`
	Email          string    `gorm:"type:varchar(100);unique;not null" json:"email"`
	HashedPassword string    `gorm:"type:varchar(100);not null" json:"-"` // Password not exposed in JSON
	Phone          string    `gorm:"type:varchar(20)" json:"phone"`
	Address        string    `gorm:"type:varchar(200)" json:"address"`
	HouseArea      *float64  `json:"house_area"` // 房屋面积，单位平方米，可为空
	IsActive       bool      `gorm:"default:true" json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Relations
	Devices        []Device        `gorm:"foreignKey:OwnerID" json:"devices,omitempty"`
	UsageRecords   []UsageRecord   `gorm:"foreignKey:UserID" json:"usage_records,omitempty"`
	SecurityEvents []SecurityEvent `gorm:"foreignKey:UserID" json:"security_events,omitempty"`
	Feedbacks      []Feedback      `gorm:"foreignKey:UserID" json:"feedbacks,omitempty"`
}
