package services

import (
	"testing"

	"github.com/Sylviafong/smart-home-api/models"
)

func TestCreateFeedback(t *testing.T) {
	db := setupTestDB(t)
	svc := NewFeedbackService(db, testConfig())

	user := &models.User{Name: "张伟", Email: "zhangwei@example.com", HashedPassword: "x"}
	mustCreate(t, db, user)

	feedback := &models.Feedback{UserID: user.ID, Title: "灯光联动很好用", Rating: 5}
	if err := svc.CreateFeedback(feedback); err != nil {
		t.Fatalf("期望创建成功, 实际: %v", err)
	}

	for _, rating := range []int{0, 6, -1} {
		bad := &models.Feedback{UserID: user.ID, Title: "越界评分", Rating: rating}
		if err := svc.CreateFeedback(bad); err == nil || err.Error() != "评分必须在1到5之间" {
			t.Errorf("评分%d应被拒绝, 实际: %v", rating, err)
		}
	}

	orphan := &models.Feedback{UserID: 9999, Title: "无主反馈", Rating: 3}
	if err := svc.CreateFeedback(orphan); err == nil || err.Error() != "用户不存在" {
		t.Errorf("期望用户不存在, 实际: %v", err)
	}
}
