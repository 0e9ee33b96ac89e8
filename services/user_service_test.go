package services

import (
	"testing"

	"github.com/Sylviafong/smart-home-api/models"
)

func TestCreateUserAndVerifyPassword(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db, testConfig())

	user := &models.User{Name: "张伟", Email: "zhangwei@example.com", HouseArea: floatPtr(88)}
	if err := svc.CreateUser(user, "secret123"); err != nil {
		t.Fatalf("期望创建成功, 实际: %v", err)
	}
	if user.HashedPassword == "" || user.HashedPassword == "secret123" {
		t.Errorf("密码应经哈希存储: %q", user.HashedPassword)
	}
	if !user.IsActive {
		t.Errorf("新用户应为激活状态")
	}

	// 重复邮箱被拒绝
	dup := &models.User{Name: "李四", Email: "zhangwei@example.com"}
	if err := svc.CreateUser(dup, "other"); err == nil || err.Error() != "邮箱已被注册" {
		t.Errorf("期望邮箱冲突错误, 实际: %v", err)
	}

	// 正确密码通过校验
	verified, err := svc.VerifyPassword("zhangwei@example.com", "secret123")
	if err != nil {
		t.Fatalf("期望校验通过, 实际: %v", err)
	}
	if verified.ID != user.ID {
		t.Errorf("校验返回的用户不符: %d", verified.ID)
	}

	// 错误密码被拒绝
	if _, err := svc.VerifyPassword("zhangwei@example.com", "wrong"); err == nil || err.Error() != "用户密码错误" {
		t.Errorf("期望密码错误, 实际: %v", err)
	}

	// 不存在的邮箱被拒绝
	if _, err := svc.VerifyPassword("nobody@example.com", "secret123"); err == nil || err.Error() != "用户不存在" {
		t.Errorf("期望用户不存在, 实际: %v", err)
	}
}

func TestGetUserByID(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db, testConfig())

	user := &models.User{Name: "李娜", Email: "lina@example.com", HashedPassword: "x"}
	mustCreate(t, db, user)

	got, err := svc.GetUserByID(user.ID)
	if err != nil {
		t.Fatalf("期望无错误, 实际: %v", err)
	}
	if got.Email != "lina@example.com" {
		t.Errorf("邮箱不符: %q", got.Email)
	}

	if _, err := svc.GetUserByID(9999); err == nil || err.Error() != "用户不存在" {
		t.Errorf("期望用户不存在, 实际: %v", err)
	}
}
