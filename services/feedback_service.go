package services

import (
	"errors"

	"github.com/Sylviafong/smart-home-api/config"
	"github.com/Sylviafong/smart-home-api/models"

	"gorm.io/gorm"
)

// InterfaceFeedbackService defines the feedback service interface
type InterfaceFeedbackService interface {
	GetFeedbacks(query models.PaginationQuery) ([]models.Feedback, error)
	GetFeedbackByID(id uint) (*models.Feedback, error)
	CreateFeedback(feedback *models.Feedback) error
}

// FeedbackService 提供用户反馈相关的服务
type FeedbackService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewFeedbackService 创建一个新的用户反馈服务
func NewFeedbackService(db *gorm.DB, cfg *config.Config) InterfaceFeedbackService {
	return &FeedbackService{
		DB:     db,
		Config: cfg,
	}
}

// 1 GetFeedbacks 获取反馈列表
func (s *FeedbackService) GetFeedbacks(query models.PaginationQuery) ([]models.Feedback, error) {
	query.Normalize()
	var feedbacks []models.Feedback
	if err := s.DB.Order("id").Offset(query.Skip).Limit(query.Limit).Find(&feedbacks).Error; err != nil {
		return nil, err
	}
	return feedbacks, nil
}

// 2 GetFeedbackByID 根据ID获取反馈
func (s *FeedbackService) GetFeedbackByID(id uint) (*models.Feedback, error) {
	var feedback models.Feedback
	if err := s.DB.First(&feedback, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("反馈不存在")
		}
		return nil, err
	}
	return &feedback, nil
}

// 3 CreateFeedback 创建反馈，评分必须在1到5之间
func (s *FeedbackService) CreateFeedback(feedback *models.Feedback) error {
	if feedback.Rating < 1 || feedback.Rating > 5 {
		return errors.New("评分必须在1到5之间")
	}

	var userCount int64
	if err := s.DB.Model(&models.User{}).Where("id = ?", feedback.UserID).Count(&userCount).Error; err != nil {
		return err
	}
	if userCount == 0 {
		return errors.New("用户不存在")
	}

	return s.DB.Create(feedback).Error
}
