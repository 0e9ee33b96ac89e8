package services

import (
	"testing"
	"time"

	"github.com/Sylviafong/smart-home-api/models"
)

func TestCreateSecurityEventDefaultsOccurredAt(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSecurityEventService(db, testConfig(), nil)

	user := &models.User{Name: "张伟", Email: "zhangwei@example.com", HashedPassword: "x"}
	mustCreate(t, db, user)

	before := time.Now()
	event := &models.SecurityEvent{UserID: user.ID, EventType: models.SecurityEventFire, Description: "厨房烟感"}
	if err := svc.CreateSecurityEvent(event); err != nil {
		t.Fatalf("期望创建成功, 实际: %v", err)
	}
	if event.OccurredAt.Before(before) {
		t.Errorf("发生时间应缺省为当前时间: %v", event.OccurredAt)
	}

	// 显式发生时间不被覆盖
	at := time.Date(2024, 5, 1, 3, 20, 0, 0, time.UTC)
	explicit := &models.SecurityEvent{UserID: user.ID, EventType: models.SecurityEventIntrusion, Description: "后门红外", OccurredAt: at}
	if err := svc.CreateSecurityEvent(explicit); err != nil {
		t.Fatalf("期望创建成功, 实际: %v", err)
	}
	if !explicit.OccurredAt.Equal(at) {
		t.Errorf("显式发生时间不应被覆盖: %v", explicit.OccurredAt)
	}
}

func TestCreateSecurityEventValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSecurityEventService(db, testConfig(), nil)

	user := &models.User{Name: "李娜", Email: "lina@example.com", HashedPassword: "x"}
	mustCreate(t, db, user)

	bad := &models.SecurityEvent{UserID: user.ID, EventType: "earthquake", Description: "x"}
	if err := svc.CreateSecurityEvent(bad); err == nil || err.Error() != "无效的事件类型" {
		t.Errorf("期望类型错误, 实际: %v", err)
	}

	orphan := &models.SecurityEvent{UserID: 9999, EventType: models.SecurityEventFire, Description: "x"}
	if err := svc.CreateSecurityEvent(orphan); err == nil || err.Error() != "用户不存在" {
		t.Errorf("期望用户不存在, 实际: %v", err)
	}
}
