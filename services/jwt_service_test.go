package services

import (
	"testing"

	"github.com/Sylviafong/smart-home-api/config"
)

func TestJWTGenerateAndExtract(t *testing.T) {
	svc := NewJWTService(testConfig())

	token, err := svc.GenerateToken(42, "zhangwei@example.com")
	if err != nil {
		t.Fatalf("期望生成成功, 实际: %v", err)
	}
	if token == "" {
		t.Fatal("令牌不应为空")
	}

	claims, err := svc.ExtractClaims(token)
	if err != nil {
		t.Fatalf("期望解析成功, 实际: %v", err)
	}
	if claims.UserID != 42 || claims.Email != "zhangwei@example.com" {
		t.Errorf("声明内容不符: %+v", claims)
	}
}

func TestJWTRejectsInvalidToken(t *testing.T) {
	svc := NewJWTService(testConfig())

	if _, err := svc.ValidateToken("not-a-token"); err == nil {
		t.Error("非法令牌应被拒绝")
	}

	// 用不同密钥签发的令牌应被拒绝
	other := NewJWTService(&config.Config{JWTSecretKey: "other-secret"})
	foreign, err := other.GenerateToken(1, "a@example.com")
	if err != nil {
		t.Fatalf("期望生成成功, 实际: %v", err)
	}
	if _, err := svc.ValidateToken(foreign); err == nil {
		t.Error("异密钥令牌应被拒绝")
	}
}
