package services

import "fmt"

// DataAccessError 包装数据存储访问失败，分析服务不在本层重试
type DataAccessError struct {
	Op  string
	Err error
}

func (e *DataAccessError) Error() string {
	return fmt.Sprintf("数据访问失败: %s: %v", e.Op, e.Err)
}

func (e *DataAccessError) Unwrap() error {
	return e.Err
}

// newDataAccessError 包装一次查询失败
func newDataAccessError(op string, err error) error {
	return &DataAccessError{Op: op, Err: err}
}

// DataIntegrityError 表示存储行中出现了枚举集合之外的值
type DataIntegrityError struct {
	Entity string
	Field  string
	Value  string
}

func (e *DataIntegrityError) Error() string {
	return fmt.Sprintf("数据完整性错误: %s.%s 出现非法枚举值 %q", e.Entity, e.Field, e.Value)
}
