package services

import (
	"errors"

	"github.com/Sylviafong/smart-home-api/config"
	"github.com/Sylviafong/smart-home-api/models"
	"github.com/Sylviafong/smart-home-api/utils"

	"gorm.io/gorm"
)

// InterfaceUserService defines the user service interface
type InterfaceUserService interface {
	GetUsers(query models.PaginationQuery) ([]models.User, error)
	GetUserByID(id uint) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	CreateUser(user *models.User, password string) error
	VerifyPassword(email, password string) (*models.User, error)
}

// UserService 提供用户相关的服务
type UserService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewUserService 创建一个新的用户服务
func NewUserService(db *gorm.DB, cfg *config.Config) InterfaceUserService {
	return &UserService{
		DB:     db,
		Config: cfg,
	}
}

// 1 GetUsers 获取用户列表
func (s *UserService) GetUsers(query models.PaginationQuery) ([]models.User, error) {
	query.Normalize()
	var users []models.User
	if err := s.DB.Order("id").Offset(query.Skip).Limit(query.Limit).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// 2 GetUserByID 根据ID获取用户
func (s *UserService) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("用户不存在")
		}
		return nil, err
	}
	return &user, nil
}

// 3 GetUserByEmail 根据邮箱获取用户
func (s *UserService) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("用户不存在")
		}
		return nil, err
	}
	return &user, nil
}

// 4 CreateUser 创建新用户，密码经bcrypt哈希后存储
func (s *UserService) CreateUser(user *models.User, password string) error {
	// 验证邮箱唯一性
	var count int64
	if err := s.DB.Model(&models.User{}).Where("email = ?", user.Email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return errors.New("邮箱已被注册")
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}
	user.HashedPassword = hashed
	user.IsActive = true

	return s.DB.Create(user).Error
}

// 5 VerifyPassword 校验邮箱和密码，用于登录
func (s *UserService) VerifyPassword(email, password string) (*models.User, error) {
	user, err := s.GetUserByEmail(email)
	if err != nil {
		return nil, err
	}
	if !utils.CheckPasswordHash(password, user.HashedPassword) {
		return nil, errors.New("用户密码错误")
	}
	return user, nil
}
