package services

import (
	"errors"

	"github.com/Sylviafong/smart-home-api/config"
	"github.com/Sylviafong/smart-home-api/models"

	"gorm.io/gorm"
)

// InterfaceDeviceService defines the device service interface
type InterfaceDeviceService interface {
	GetDevices(query models.PaginationQuery) ([]models.Device, error)
	GetDeviceByID(id uint) (*models.Device, error)
	GetDevicesByOwner(ownerID uint) ([]models.Device, error)
	CreateDevice(device *models.Device) error
	UpdateDevice(id uint, updates map[string]interface{}) (*models.Device, error)
	DeleteDevice(id uint) error
}

// DeviceService 提供设备相关的服务
type DeviceService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewDeviceService 创建一个新的设备服务
func NewDeviceService(db *gorm.DB, cfg *config.Config) InterfaceDeviceService {
	return &DeviceService{
		DB:     db,
		Config: cfg,
	}
}

// 1 GetDevices 获取设备列表
func (s *DeviceService) GetDevices(query models.PaginationQuery) ([]models.Device, error) {
	query.Normalize()
	var devices []models.Device
	if err := s.DB.Order("id").Offset(query.Skip).Limit(query.Limit).Find(&devices).Error; err != nil {
		return nil, err
	}
	return devices, nil
}

// 2 GetDeviceByID 根据ID获取设备
func (s *DeviceService) GetDeviceByID(id uint) (*models.Device, error) {
	var device models.Device
	if err := s.DB.First(&device, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("设备不存在")
		}
		return nil, err
	}
	return &device, nil
}

// 3 GetDevicesByOwner 获取某个用户拥有的设备列表
func (s *DeviceService) GetDevicesByOwner(ownerID uint) ([]models.Device, error) {
	var devices []models.Device
	if err := s.DB.Where("owner_id = ?", ownerID).Order("id").Find(&devices).Error; err != nil {
		return nil, err
	}
	return devices, nil
}

// 4 CreateDevice 创建新设备
func (s *DeviceService) CreateDevice(device *models.Device) error {
	if !device.DeviceType.Valid() {
		return errors.New("无效的设备类型")
	}

	// 验证所有者存在
	var ownerCount int64
	if err := s.DB.Model(&models.User{}).Where("id = ?", device.OwnerID).Count(&ownerCount).Error; err != nil {
		return err
	}
	if ownerCount == 0 {
		return errors.New("设备所有者不存在")
	}

	// 验证序列号唯一性
	var count int64
	if err := s.DB.Model(&models.Device{}).Where("serial_number = ?", device.SerialNumber).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return errors.New("设备序列号已存在")
	}

	return s.DB.Create(device).Error
}

// 5 UpdateDevice 更新设备信息
func (s *DeviceService) UpdateDevice(id uint, updates map[string]interface{}) (*models.Device, error) {
	device, err := s.GetDeviceByID(id)
	if err != nil {
		return nil, err
	}

	// 如果更新序列号，需要检查唯一性
	if serialNumber, ok := updates["serial_number"].(string); ok && serialNumber != device.SerialNumber {
		var count int64
		if err := s.DB.Model(&models.Device{}).Where("serial_number = ? AND id != ?", serialNumber, id).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, errors.New("设备序列号已存在")
		}
	}

	if deviceType, ok := updates["device_type"].(string); ok {
		if !models.DeviceType(deviceType).Valid() {
			return nil, errors.New("无效的设备类型")
		}
	}

	if err := s.DB.Model(device).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetDeviceByID(id)
}

// 6 DeleteDevice 删除设备
func (s *DeviceService) DeleteDevice(id uint) error {
	device, err := s.GetDeviceByID(id)
	if err != nil {
		return err
	}
	return s.DB.Delete(device).Error
}
