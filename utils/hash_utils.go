package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword 生成用户密码的bcrypt哈希，入库前调用
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPasswordHash 校验明文密码与存储的哈希是否匹配，登录时调用
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
