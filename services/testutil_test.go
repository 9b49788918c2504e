package services

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/MercTechs/AttPortal/config"
	"github.com/MercTechs/AttPortal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB 为每个测试创建独立的内存数据库
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.AttendanceDevice{}, &models.AttendanceRecord{}))
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		ExternalAPIURL:      "http://vendor.test/api",
		ExternalAPIUser:     "admin",
		ExternalAPIPassword: "1234",
		AccessCode:          "secret",
	}
}

// fakeVendorGateway 平台网关的测试替身
type fakeVendorGateway struct {
	attendance []VendorAttendanceRecord
	devices    []VendorDevice
	employees  []VendorEmployee
	err        error

	attendanceCalls int
	deviceCalls     int
	employeeCalls   int
}

func (f *fakeVendorGateway) Call(name string, params []string) (json.RawMessage, error) {
	return nil, f.err
}

func (f *fakeVendorGateway) FetchAttendanceData(fromDate, toDate time.Time, employeeID string) ([]VendorAttendanceRecord, error) {
	f.attendanceCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.attendance, nil
}

func (f *fakeVendorGateway) FetchDeviceList() ([]VendorDevice, error) {
	f.deviceCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.devices, nil
}

func (f *fakeVendorGateway) FetchEmployeesByDevice(serialNumber string) ([]VendorEmployee, error) {
	f.employeeCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.employees, nil
}

// seedDevice 预置一台本地设备
func seedDevice(t *testing.T, db *gorm.DB, serialNumber string, deviceType *models.DeviceType) *models.AttendanceDevice {
	t.Helper()

	device := &models.AttendanceDevice{
		DeviceID:     "ext-" + serialNumber,
		SerialNumber: serialNumber,
		Name:         "Device " + serialNumber,
		DeviceType:   deviceType,
		IsActive:     true,
		LastSync:     time.Now(),
		SyncStatus:   models.DeviceSyncStatusActive,
	}
	require.NoError(t, db.Create(device).Error)
	return device
}
