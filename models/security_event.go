package models

import (
	"time"
)

// SecurityEventType represents the category of a security event
type SecurityEventType string

const (
	SecurityEventIntrusion SecurityEventType = "intrusion"  // 入侵检测
	SecurityEventFire      SecurityEventType = "fire"       // 火灾报警
	SecurityEventGasLeak   SecurityEventType = "gas_leak"   // 燃气泄漏
	SecurityEventWaterLeak SecurityEventType = "water_leak" // 水浸检测
	SecurityEventDoorOpen  SecurityEventType = "door_open"  // 门窗异常开启
	SecurityEventOther     SecurityEventType = "other"      // 其他
)

// AllSecurityEventTypes 按声明顺序列出全部事件类型，用于确定性遍历
var AllSecurityEventTypes = []SecurityEventType{
	SecurityEventIntrusion,
	SecurityEventFire,
	SecurityEventGasLeak,
	SecurityEventWaterLeak,
	SecurityEventDoorOpen,
	SecurityEventOther,
}

// Valid 检查事件类型是否属于枚举集合
func (t SecurityEventType) Valid() bool {
	for _, et := range AllSecurityEventTypes {
		if t == et {
			return true
		}
	}
	return false
}

// SecurityEvent represents a recorded security incident in a user's home
type SecurityEvent struct {
	ID          uint              `gorm:"primaryKey" json:"id"`
	UserID      uint              `gorm:"index" json:"user_id"`
	EventType   SecurityEventType `gorm:"type:varchar(20);not null" json:"event_type"`
	Description string            `gorm:"type:text" json:"description"`
	Location    string            `gorm:"type:varchar(100)" json:"location"` // 事件发生位置
	IsHandled   bool              `gorm:"default:false" json:"is_handled"`
	OccurredAt  time.Time         `json:"occurred_at"` // 事件发生时间，缺省为创建时间
	CreatedAt   time.Time         `json:"created_at"`

	// Relations
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
