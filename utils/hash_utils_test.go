package utils

import "testing"

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("期望哈希成功, 实际: %v", err)
	}
	if hash == "secret123" {
		t.Error("哈希结果不应等于明文")
	}
	if !CheckPasswordHash("secret123", hash) {
		t.Error("正确密码应通过校验")
	}
	if CheckPasswordHash("wrong", hash) {
		t.Error("错误密码不应通过校验")
	}
}
