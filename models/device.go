package models

import (
	"time"
)

// DeviceType represents the category of a smart-home device
type DeviceType string

const (
	DeviceTypeLight          DeviceType = "light"           // 灯光
	DeviceTypeAirConditioner DeviceType = "air_conditioner" // 空调
	DeviceTypeRefrigerator   DeviceType = "refrigerator"    // 冰箱
	DeviceTypeTV             DeviceType = "tv"              // 电视
	DeviceTypeSecurityCamera DeviceType = "security_camera" // 安防摄像头
	DeviceTypeDoorLock       DeviceType = "door_lock"       // 智能门锁
	DeviceTypeSpeaker        DeviceType = "speaker"         // 智能音箱
	DeviceTypeOther          DeviceType = "other"           // 其他
)

// AllDeviceTypes 按声明顺序列出全部设备类型，用于确定性遍历
var AllDeviceTypes = []DeviceType{
	DeviceTypeLight,
	DeviceTypeAirConditioner,
	DeviceTypeRefrigerator,
	DeviceTypeTV,
	DeviceTypeSecurityCamera,
	DeviceTypeDoorLock,
	DeviceTypeSpeaker,
	DeviceTypeOther,
}

// Valid 检查设备类型是否属于枚举集合
func (t DeviceType) Valid() bool {
	for _, dt := range AllDeviceTypes {
		if t == dt {
			return true
		}
	}
	return false
}

// Device represents a smart-home device owned by a user
type Device struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Name         string     `gorm:"type:varchar(50);index;not null" json:"name"`
	DeviceType   DeviceType `gorm:"type:varchar(20);not null" json:"device_type"`
	Model        string     `gorm:"type:varchar(50)" json:"model"`
	SerialNumber string     `gorm:"type:varchar(50);unique;not null" json:"serial_number"`
	Location     string     `gorm:"type:varchar(100)" json:"location"` // 设备在家中的位置
	Status       bool       `gorm:"default:true" json:"status"`        // 设备状态：开/关
	OwnerID      uint       `gorm:"index" json:"owner_id"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	// Relations
	Owner        *User         `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	UsageRecords []UsageRecord `gorm:"foreignKey:DeviceID" json:"usage_records,omitempty"`
}
