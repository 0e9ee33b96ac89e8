package services

import (
	"testing"
	"time"

	"github.com/Sylviafong/smart-home-api/models"

	"gorm.io/gorm"
)

func seedUserAndDevice(t *testing.T, db *gorm.DB) (*models.User, *models.Device) {
	t.Helper()
	user := &models.User{Name: "张伟", Email: "zhangwei@example.com", HashedPassword: "x"}
	mustCreate(t, db, user)
	device := &models.Device{Name: "客厅灯", DeviceType: models.DeviceTypeLight, SerialNumber: "SN-601", OwnerID: user.ID}
	mustCreate(t, db, device)
	return user, device
}

func TestCreateUsageRecordDerivesDuration(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUsageRecordService(db, testConfig())
	user, device := seedUserAndDevice(t, db)

	start := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	end := start.Add(45 * time.Minute)
	record := &models.UsageRecord{UserID: user.ID, DeviceID: device.ID, StartTime: start, EndTime: &end}

	if err := svc.CreateUsageRecord(record); err != nil {
		t.Fatalf("期望创建成功, 实际: %v", err)
	}
	if record.Duration == nil || *record.Duration != 45 {
		t.Errorf("期望推导时长45分钟, 实际: %v", record.Duration)
	}
}

func TestCreateUsageRecordKeepsExplicitDuration(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUsageRecordService(db, testConfig())
	user, device := seedUserAndDevice(t, db)

	start := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	end := start.Add(45 * time.Minute)
	// 显式时长优先于推导
	record := &models.UsageRecord{UserID: user.ID, DeviceID: device.ID, StartTime: start, EndTime: &end, Duration: floatPtr(30)}

	if err := svc.CreateUsageRecord(record); err != nil {
		t.Fatalf("期望创建成功, 实际: %v", err)
	}
	if *record.Duration != 30 {
		t.Errorf("显式时长不应被覆盖, 实际: %v", *record.Duration)
	}
}

func TestCreateUsageRecordRejectsInvalid(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUsageRecordService(db, testConfig())
	user, device := seedUserAndDevice(t, db)

	start := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	earlier := start.Add(-time.Hour)

	cases := []struct {
		name    string
		record  *models.UsageRecord
		wantErr string
	}{
		{
			name:    "结束时间早于开始时间",
			record:  &models.UsageRecord{UserID: user.ID, DeviceID: device.ID, StartTime: start, EndTime: &earlier},
			wantErr: "结束时间早于开始时间",
		},
		{
			name:    "负时长",
			record:  &models.UsageRecord{UserID: user.ID, DeviceID: device.ID, StartTime: start, Duration: floatPtr(-5)},
			wantErr: "使用时长不能为负",
		},
		{
			name:    "用户不存在",
			record:  &models.UsageRecord{UserID: 9999, DeviceID: device.ID, StartTime: start},
			wantErr: "用户不存在",
		},
		{
			name:    "设备不存在",
			record:  &models.UsageRecord{UserID: user.ID, DeviceID: 9999, StartTime: start},
			wantErr: "设备不存在",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := svc.CreateUsageRecord(tc.record)
			if err == nil || err.Error() != tc.wantErr {
				t.Errorf("期望错误%q, 实际: %v", tc.wantErr, err)
			}
		})
	}
}

func TestGetUsageRecordsPagination(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUsageRecordService(db, testConfig())
	user, device := seedUserAndDevice(t, db)

	start := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		mustCreate(t, db, &models.UsageRecord{UserID: user.ID, DeviceID: device.ID, StartTime: start.Add(time.Duration(i) * time.Hour), Duration: floatPtr(10)})
	}

	records, err := svc.GetUsageRecords(models.PaginationQuery{Skip: 2, Limit: 2})
	if err != nil {
		t.Fatalf("期望无错误, 实际: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("期望2条记录, 实际: %d", len(records))
	}
	if records[0].ID >= records[1].ID {
		t.Errorf("记录应按ID升序: %d, %d", records[0].ID, records[1].ID)
	}
}
