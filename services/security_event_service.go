package services

import (
	"errors"
	"time"

	"github.com/Sylviafong/smart-home-api/config"
	"github.com/Sylviafong/smart-home-api/models"

	"gorm.io/gorm"
)

// InterfaceSecurityEventService defines the security event service interface
type InterfaceSecurityEventService interface {
	GetSecurityEvents(query models.PaginationQuery) ([]models.SecurityEvent, error)
	GetSecurityEventByID(id uint) (*models.SecurityEvent, error)
	CreateSecurityEvent(event *models.SecurityEvent) error
}

// SecurityEventService 提供安防事件相关的服务
type SecurityEventService struct {
	DB       *gorm.DB
	Config   *config.Config
	Notifier InterfaceMQTTService // 可为nil，报警推送为尽力而为
}

// NewSecurityEventService 创建一个新的安防事件服务
func NewSecurityEventService(db *gorm.DB, cfg *config.Config, notifier InterfaceMQTTService) InterfaceSecurityEventService {
	return &SecurityEventService{
		DB:       db,
		Config:   cfg,
		Notifier: notifier,
	}
}

// 1 GetSecurityEvents 获取安防事件列表
func (s *SecurityEventService) GetSecurityEvents(query models.PaginationQuery) ([]models.SecurityEvent, error) {
	query.Normalize()
	var events []models.SecurityEvent
	if err := s.DB.Order("id").Offset(query.Skip).Limit(query.Limit).Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// 2 GetSecurityEventByID 根据ID获取安防事件
func (s *SecurityEventService) GetSecurityEventByID(id uint) (*models.SecurityEvent, error) {
	var event models.SecurityEvent
	if err := s.DB.First(&event, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("安防事件不存在")
		}
		return nil, err
	}
	return &event, nil
}

// 3 CreateSecurityEvent 创建安防事件，发生时间缺省为当前时间。
// 创建成功后向MQTT报警主题推送一条通知（若已配置）。
func (s *SecurityEventService) CreateSecurityEvent(event *models.SecurityEvent) error {
	if !event.EventType.Valid() {
		return errors.New("无效的事件类型")
	}

	var userCount int64
	if err := s.DB.Model(&models.User{}).Where("id = ?", event.UserID).Count(&userCount).Error; err != nil {
		return err
	}
	if userCount == 0 {
		return errors.New("用户不存在")
	}

	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now()
	}

	if err := s.DB.Create(event).Error; err != nil {
		return err
	}

	// 推送失败不影响事件创建
	if s.Notifier != nil {
		if err := s.Notifier.PublishSecurityAlert(event); err != nil {
			config.Warning("安防报警推送失败: %v", err)
		}
	}

	return nil
}
