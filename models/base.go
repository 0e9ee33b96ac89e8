package models

import "time"

// PaginationQuery 通用分页查询参数
type PaginationQuery struct {
	Skip  int `form:"skip" json:"skip"`
	Limit int `form:"limit" json:"limit"`
}

// Normalize 规范化分页参数，限制单页最大数量
func (q *PaginationQuery) Normalize() {
	if q.Skip < 0 {
		q.Skip = 0
	}
	if q.Limit <= 0 || q.Limit > 100 {
		q.Limit = 100
	}
}

// BaseModel 所有实体的公共字段
type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
