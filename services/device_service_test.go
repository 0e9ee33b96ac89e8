package services

import (
	"testing"

	"github.com/Sylviafong/smart-home-api/models"
)

func TestCreateDevice(t *testing.T) {
	db := setupTestDB(t)
	svc := NewDeviceService(db, testConfig())

	user := &models.User{Name: "张伟", Email: "zhangwei@example.com", HashedPassword: "x"}
	mustCreate(t, db, user)

	device := &models.Device{Name: "客厅灯", DeviceType: models.DeviceTypeLight, SerialNumber: "SN-701", OwnerID: user.ID}
	if err := svc.CreateDevice(device); err != nil {
		t.Fatalf("期望创建成功, 实际: %v", err)
	}

	cases := []struct {
		name    string
		device  *models.Device
		wantErr string
	}{
		{
			name:    "无效设备类型",
			device:  &models.Device{Name: "烤箱", DeviceType: "toaster", SerialNumber: "SN-702", OwnerID: user.ID},
			wantErr: "无效的设备类型",
		},
		{
			name:    "所有者不存在",
			device:  &models.Device{Name: "灯", DeviceType: models.DeviceTypeLight, SerialNumber: "SN-703", OwnerID: 9999},
			wantErr: "设备所有者不存在",
		},
		{
			name:    "序列号重复",
			device:  &models.Device{Name: "另一盏灯", DeviceType: models.DeviceTypeLight, SerialNumber: "SN-701", OwnerID: user.ID},
			wantErr: "设备序列号已存在",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := svc.CreateDevice(tc.device)
			if err == nil || err.Error() != tc.wantErr {
				t.Errorf("期望错误%q, 实际: %v", tc.wantErr, err)
			}
		})
	}
}

func TestUpdateDevice(t *testing.T) {
	db := setupTestDB(t)
	svc := NewDeviceService(db, testConfig())

	user := &models.User{Name: "李娜", Email: "lina@example.com", HashedPassword: "x"}
	mustCreate(t, db, user)
	device := &models.Device{Name: "卧室灯", DeviceType: models.DeviceTypeLight, SerialNumber: "SN-801", OwnerID: user.ID}
	mustCreate(t, db, device)

	updated, err := svc.UpdateDevice(device.ID, map[string]interface{}{"name": "主卧灯", "status": false})
	if err != nil {
		t.Fatalf("期望更新成功, 实际: %v", err)
	}
	if updated.Name != "主卧灯" || updated.Status {
		t.Errorf("更新结果不符: %+v", updated)
	}

	// 更新为无效类型被拒绝
	if _, err := svc.UpdateDevice(device.ID, map[string]interface{}{"device_type": "toaster"}); err == nil || err.Error() != "无效的设备类型" {
		t.Errorf("期望类型错误, 实际: %v", err)
	}
}

func TestDeleteDevice(t *testing.T) {
	db := setupTestDB(t)
	svc := NewDeviceService(db, testConfig())

	user := &models.User{Name: "王芳", Email: "wangfang@example.com", HashedPassword: "x"}
	mustCreate(t, db, user)
	device := &models.Device{Name: "门锁", DeviceType: models.DeviceTypeDoorLock, SerialNumber: "SN-901", OwnerID: user.ID}
	mustCreate(t, db, device)

	if err := svc.DeleteDevice(device.ID); err != nil {
		t.Fatalf("期望删除成功, 实际: %v", err)
	}
	if _, err := svc.GetDeviceByID(device.ID); err == nil || err.Error() != "设备不存在" {
		t.Errorf("删除后查询应失败, 实际: %v", err)
	}
}

func TestGetDevicesByOwner(t *testing.T) {
	db := setupTestDB(t)
	svc := NewDeviceService(db, testConfig())

	owner := &models.User{Name: "张伟", Email: "zhangwei@example.com", HashedPassword: "x"}
	mustCreate(t, db, owner)
	other := &models.User{Name: "李四", Email: "lisi@example.com", HashedPassword: "x"}
	mustCreate(t, db, other)

	mustCreate(t, db, &models.Device{Name: "灯", DeviceType: models.DeviceTypeLight, SerialNumber: "SN-1001", OwnerID: owner.ID})
	mustCreate(t, db, &models.Device{Name: "音箱", DeviceType: models.DeviceTypeSpeaker, SerialNumber: "SN-1002", OwnerID: owner.ID})
	mustCreate(t, db, &models.Device{Name: "电视", DeviceType: models.DeviceTypeTV, SerialNumber: "SN-1003", OwnerID: other.ID})

	devices, err := svc.GetDevicesByOwner(owner.ID)
	if err != nil {
		t.Fatalf("期望无错误, 实际: %v", err)
	}
	if len(devices) != 2 {
		t.Errorf("期望2台设备, 实际: %d", len(devices))
	}
}
