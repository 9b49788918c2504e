package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DeviceType 设备分类，仅由管理员设置，同步过程永不修改
type DeviceType string

const (
	DeviceTypeCheckIn  DeviceType = "CheckIn"
	DeviceTypeCheckOut DeviceType = "CheckOut"
)

// DeviceSyncStatus 设备同步状态
type DeviceSyncStatus string

const (
	DeviceSyncStatusActive   DeviceSyncStatus = "active"
	DeviceSyncStatusInactive DeviceSyncStatus = "inactive"
	DeviceSyncStatusError    DeviceSyncStatus = "error"
)

// AttendanceDevice 考勤设备，serial_number 是与平台数据对账的自然键
type AttendanceDevice struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	UUID         string      `gorm:"type:varchar(36);uniqueIndex;not null" json:"uuid"`
	DeviceID     string      `gorm:"type:varchar(50);unique;not null" json:"device_id"`
	SerialNumber string      `gorm:"type:varchar(50);unique;not null" json:"serial_number"`
	Name         string      `gorm:"type:varchar(100)" json:"name"`
	DeviceType   *DeviceType `gorm:"type:varchar(20)" json:"device_type"`

	// 平台上报的硬件元数据
	IPAddress  string `gorm:"column:ip_address;type:varchar(50)" json:"ip_address"`
	MACAddress string `gorm:"column:mac_address;type:varchar(50)" json:"mac_address"`
	Model      string `gorm:"type:varchar(100)" json:"model"`
	Firmware   string `gorm:"type:varchar(100)" json:"firmware"`
	Location   string `gorm:"type:varchar(100)" json:"location"`

	// 同步跟踪字段
	IsActive   bool             `gorm:"not null;default:true" json:"is_active"`
	LastSync   time.Time        `gorm:"not null" json:"last_sync"`
	SyncStatus DeviceSyncStatus `gorm:"type:varchar(20);not null;default:'active'" json:"sync_status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	AttendanceRecords []AttendanceRecord `gorm:"foreignKey:AttendanceDeviceID" json:"attendance_records,omitempty"`
}

// BeforeCreate 填充UUID和同步跟踪字段的默认值
func (d *AttendanceDevice) BeforeCreate(tx *gorm.DB) error {
	if d.UUID == "" {
		d.UUID = uuid.NewString()
	}
	if d.SyncStatus == "" {
		d.SyncStatus = DeviceSyncStatusActive
	}
	if d.LastSync.IsZero() {
		d.LastSync = time.Now()
	}
	return nil
}
