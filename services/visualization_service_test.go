package services

import (
	"reflect"
	"testing"
	"time"

	"github.com/Sylviafong/smart-home-api/models"

	"gorm.io/gorm"
)

func newTestVisualizationService(db *gorm.DB) InterfaceVisualizationService {
	return NewVisualizationService(db, testConfig())
}

func TestGetDeviceUsageReport(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestVisualizationService(db)

	user := &models.User{Name: "张伟", Email: "zhangwei@example.com", HashedPassword: "x"}
	mustCreate(t, db, user)

	tv := &models.Device{Name: "电视", DeviceType: models.DeviceTypeTV, SerialNumber: "SN-501", OwnerID: user.ID}
	mustCreate(t, db, tv)
	light := &models.Device{Name: "灯", DeviceType: models.DeviceTypeLight, SerialNumber: "SN-502", OwnerID: user.ID}
	mustCreate(t, db, light)
	// 没有使用记录的类型不应出现在标签中
	mustCreate(t, db, &models.Device{Name: "冰箱", DeviceType: models.DeviceTypeRefrigerator, SerialNumber: "SN-503", OwnerID: user.ID})

	start := time.Date(2024, 5, 1, 19, 0, 0, 0, time.UTC)
	mustCreate(t, db, &models.UsageRecord{UserID: user.ID, DeviceID: tv.ID, StartTime: start, Duration: floatPtr(120)})
	mustCreate(t, db, &models.UsageRecord{UserID: user.ID, DeviceID: light.ID, StartTime: start, Duration: floatPtr(30)})
	mustCreate(t, db, &models.UsageRecord{UserID: user.ID, DeviceID: light.ID, StartTime: start.Add(time.Hour)})

	report, err := svc.GetDeviceUsageReport()
	if err != nil {
		t.Fatalf("期望无错误, 实际: %v", err)
	}

	// 标签按枚举声明顺序：light在tv之前
	if !reflect.DeepEqual(report.Labels, []string{"light", "tv"}) {
		t.Fatalf("标签不符: %v", report.Labels)
	}
	if len(report.Datasets) != 2 {
		t.Fatalf("期望2条数据序列, 实际: %d", len(report.Datasets))
	}
	if !reflect.DeepEqual(report.Datasets[0].Data, []float64{2, 1}) {
		t.Errorf("使用次数不符: %v", report.Datasets[0].Data)
	}
	// 时长空值按0计
	if !reflect.DeepEqual(report.Datasets[1].Data, []float64{30, 120}) {
		t.Errorf("使用时长不符: %v", report.Datasets[1].Data)
	}
}

func TestGetSecurityEventsReport(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestVisualizationService(db)

	user := &models.User{Name: "李娜", Email: "lina@example.com", HashedPassword: "x"}
	mustCreate(t, db, user)

	now := time.Now()
	mustCreate(t, db, &models.SecurityEvent{UserID: user.ID, EventType: models.SecurityEventFire, Description: "厨房烟感", OccurredAt: now.AddDate(0, 0, -10)})
	mustCreate(t, db, &models.SecurityEvent{UserID: user.ID, EventType: models.SecurityEventIntrusion, Description: "后门红外", OccurredAt: now.AddDate(0, 0, -10)})
	// 超出180天窗口的事件计入类型分布，但不计入月度趋势
	old := &models.SecurityEvent{UserID: user.ID, EventType: models.SecurityEventIntrusion, Description: "历史事件", OccurredAt: now.AddDate(0, 0, -200)}
	mustCreate(t, db, old)

	report, err := svc.GetSecurityEventsReport()
	if err != nil {
		t.Fatalf("期望无错误, 实际: %v", err)
	}

	// 类型标签按枚举声明顺序：intrusion在fire之前
	if !reflect.DeepEqual(report.Labels, []string{"intrusion", "fire"}) {
		t.Fatalf("类型标签不符: %v", report.Labels)
	}
	if !reflect.DeepEqual(report.Datasets[0].Data, []float64{2, 1}) {
		t.Errorf("类型分布不符: %v", report.Datasets[0].Data)
	}

	trend := report.Datasets[1]
	if trend.Type != "line" {
		t.Errorf("趋势序列应为折线: %q", trend.Type)
	}
	total := 0.0
	for _, v := range trend.Data {
		total += v
	}
	if total != 2 {
		t.Errorf("180天窗口内应只有2个事件, 实际: %v (labels=%v)", trend.Data, trend.Labels)
	}
}

func TestGetFeedbackReport(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestVisualizationService(db)

	user := &models.User{Name: "王芳", Email: "wangfang@example.com", HashedPassword: "x"}
	mustCreate(t, db, user)

	mustCreate(t, db, &models.Feedback{UserID: user.ID, Title: "好评", Rating: 5})
	mustCreate(t, db, &models.Feedback{UserID: user.ID, Title: "好评2", Rating: 5})
	mustCreate(t, db, &models.Feedback{UserID: user.ID, Title: "一般", Rating: 3})

	report, err := svc.GetFeedbackReport()
	if err != nil {
		t.Fatalf("期望无错误, 实际: %v", err)
	}

	// 评分标签按评分升序，只含出现过的评分
	if !reflect.DeepEqual(report.Labels, []string{"3星", "5星"}) {
		t.Fatalf("评分标签不符: %v", report.Labels)
	}
	if len(report.Datasets) != 3 {
		t.Fatalf("期望3条数据序列, 实际: %d", len(report.Datasets))
	}
	if !reflect.DeepEqual(report.Datasets[0].Data, []float64{1, 2}) {
		t.Errorf("评分分布不符: %v", report.Datasets[0].Data)
	}

	// 三条反馈都在同一个月创建
	counts := report.Datasets[1]
	if !reflect.DeepEqual(counts.Data, []float64{3}) {
		t.Errorf("月度反馈数量不符: %v", counts.Data)
	}
	avg := report.Datasets[2]
	want := (5.0 + 5.0 + 3.0) / 3.0
	if len(avg.Data) != 1 || avg.Data[0] != want {
		t.Errorf("月度平均评分不符: %v", avg.Data)
	}
	if avg.YAxisID != "rating" {
		t.Errorf("平均评分应绑定rating轴: %q", avg.YAxisID)
	}
}

func TestGetFeedbackReportEmpty(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestVisualizationService(db)

	report, err := svc.GetFeedbackReport()
	if err != nil {
		t.Fatalf("期望无错误, 实际: %v", err)
	}
	if len(report.Labels) != 0 {
		t.Errorf("空库标签应为空: %v", report.Labels)
	}
	for _, ds := range report.Datasets {
		if len(ds.Data) != 0 {
			t.Errorf("空库数据应为空: %+v", ds)
		}
	}
}

func TestYearMonthOrdering(t *testing.T) {
	buckets := map[yearMonth]int{
		{2024, 1}:  1,
		{2023, 12}: 1,
		{2023, 11}: 1,
		{2024, 2}:  1,
	}
	keys := sortedYearMonths(buckets)

	labels := make([]string, 0, len(keys))
	for _, ym := range keys {
		labels = append(labels, ym.label())
	}
	// 跨年排序按年再按月
	want := []string{"2023-11", "2023-12", "2024-1", "2024-2"}
	if !reflect.DeepEqual(labels, want) {
		t.Errorf("年月排序不符: %v", labels)
	}
}
