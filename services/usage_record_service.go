package services

import (
	"errors"

	"github.com/Sylviafong/smart-home-api/config"
	"github.com/Sylviafong/smart-home-api/models"

	"gorm.io/gorm"
)

// InterfaceUsageRecordService defines the usage record service interface
type InterfaceUsageRecordService interface {
	GetUsageRecords(query models.PaginationQuery) ([]models.UsageRecord, error)
	GetUsageRecordByID(id uint) (*models.UsageRecord, error)
	CreateUsageRecord(record *models.UsageRecord) error
}

// UsageRecordService 提供设备使用记录相关的服务
type UsageRecordService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewUsageRecordService 创建一个新的使用记录服务
func NewUsageRecordService(db *gorm.DB, cfg *config.Config) InterfaceUsageRecordService {
	return &UsageRecordService{
		DB:     db,
		Config: cfg,
	}
}

// 1 GetUsageRecords 获取使用记录列表
func (s *UsageRecordService) GetUsageRecords(query models.PaginationQuery) ([]models.UsageRecord, error) {
	query.Normalize()
	var records []models.UsageRecord
	if err := s.DB.Order("id").Offset(query.Skip).Limit(query.Limit).Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// 2 GetUsageRecordByID 根据ID获取使用记录
func (s *UsageRecordService) GetUsageRecordByID(id uint) (*models.UsageRecord, error) {
	var record models.UsageRecord
	if err := s.DB.First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("使用记录不存在")
		}
		return nil, err
	}
	return &record, nil
}

// 3 CreateUsageRecord 创建使用记录。未提供时长但提供了结束时间时，
// 写入前按 (结束时间-开始时间) 推导时长（分钟），保证结束时间一经写入
// 时长不为空。
func (s *UsageRecordService) CreateUsageRecord(record *models.UsageRecord) error {
	// 验证用户和设备存在
	var userCount int64
	if err := s.DB.Model(&models.User{}).Where("id = ?", record.UserID).Count(&userCount).Error; err != nil {
		return err
	}
	if userCount == 0 {
		return errors.New("用户不存在")
	}
	var deviceCount int64
	if err := s.DB.Model(&models.Device{}).Where("id = ?", record.DeviceID).Count(&deviceCount).Error; err != nil {
		return err
	}
	if deviceCount == 0 {
		return errors.New("设备不存在")
	}

	if record.EndTime != nil && record.EndTime.Before(record.StartTime) {
		return errors.New("结束时间早于开始时间")
	}

	// 推导时长
	if record.Duration == nil && record.EndTime != nil {
		minutes := record.EndTime.Sub(record.StartTime).Minutes()
		record.Duration = &minutes
	}

	if record.Duration != nil && *record.Duration < 0 {
		return errors.New("使用时长不能为负")
	}

	return s.DB.Create(record).Error
}
