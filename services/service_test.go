package services

import (
	"testing"
	"time"

	"github.com/Sylviafong/smart-home-api/config"
	"github.com/Sylviafong/smart-home-api/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB 创建内存数据库并迁移全部模型
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("打开内存数据库失败: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Device{},
		&models.UsageRecord{},
		&models.SecurityEvent{},
		&models.Feedback{},
	)
	if err != nil {
		t.Fatalf("迁移模型失败: %v", err)
	}

	return db
}

func testConfig() *config.Config {
	return &config.Config{
		EnvType:      "local",
		JWTSecretKey: "test-secret",
	}
}

func floatPtr(v float64) *float64 {
	return &v
}

func timePtr(v time.Time) *time.Time {
	return &v
}

// mustCreate 写入实体，失败即终止测试
func mustCreate(t *testing.T, db *gorm.DB, value interface{}) {
	t.Helper()
	if err := db.Create(value).Error; err != nil {
		t.Fatalf("写入测试数据失败: %v", err)
	}
}
