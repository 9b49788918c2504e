package services

import (
	"strconv"
	"time"

	"github.com/MercTechs/AttPortal/models"
)

// 平台日期字段的已知格式，按出现频率排列
var vendorTimeLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseVendorTime(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range vendorTimeLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// MapAttendanceRecord 把平台打卡记录转换为本地记录。
// 纯函数，不做任何I/O，设备关联由同步流程补充
func MapAttendanceRecord(v VendorAttendanceRecord) (*models.AttendanceRecord, error) {
	if v.EmployeeID == "" {
		return nil, &MappingError{Field: "EmployeeID"}
	}
	if v.FullName == "" {
		return nil, &MappingError{Field: "FullName"}
	}
	if v.SerialNumber == "" {
		return nil, &MappingError{Field: "sn"}
	}

	attDate, err := parseVendorTime(v.AttDate)
	if err != nil {
		return nil, &MappingError{Field: "AttDate", Err: err}
	}
	checkTime, err := parseVendorTime(v.AttTime)
	if err != nil {
		return nil, &MappingError{Field: "AttTime", Err: err}
	}

	return &models.AttendanceRecord{
		AttDate:       attDate,
		CheckTime:     checkTime,
		EmployeeID:    v.EmployeeID,
		EmployeeName:  v.FullName,
		MachineAlias:  v.MachineAlias,
		MachineSerial: v.SerialNumber,
	}, nil
}

// MapDevice 把平台设备信息转换为本地设备，可选字段缺失时落为零值，永不报错
func MapDevice(v VendorDevice) *models.AttendanceDevice {
	return &models.AttendanceDevice{
		DeviceID:     strconv.Itoa(v.ID),
		SerialNumber: v.SerialNumber,
		Name:         v.Alias,
		IPAddress:    v.IP,
		MACAddress:   v.MAC,
		Model:        v.Model,
		Firmware:     v.Firmware,
		Location:     v.Location,
		IsActive:     true,
		LastSync:     time.Now(),
		SyncStatus:   models.DeviceSyncStatusActive,
	}
}

// RecordIdentity 打卡记录的去重键：(员工ID, 打卡时间, 设备序列号)
type RecordIdentity struct {
	EmployeeID string
	CheckTime  int64
	Serial     string
}

// IdentityOf 计算记录的去重键，时间归一到Unix秒避免时区差异
func IdentityOf(r *models.AttendanceRecord) RecordIdentity {
	return RecordIdentity{
		EmployeeID: r.EmployeeID,
		CheckTime:  r.CheckTime.UTC().Unix(),
		Serial:     r.MachineSerial,
	}
}
