package models

import (
	"time"
)

// Feedback represents a user's feedback with a 1-5 star rating
type Feedback struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"index" json:"user_id"`
	Title      string    `gorm:"type:varchar(100)" json:"title"`
	Content    string    `gorm:"type:text" json:"content"`
	Rating     int       `gorm:"not null" json:"rating"` // 评分 1-5
	IsResolved bool      `gorm:"default:false" json:"is_resolved"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Relations
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
