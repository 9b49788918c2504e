package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AttendanceRecord 打卡记录
// (employee_id, check_time, machine_serial) 复合唯一索引是去重的最终保障，
// 两个重叠时间窗的并发同步由数据库保证至多落库一次
type AttendanceRecord struct {
	ID                 uint   `gorm:"primaryKey" json:"id"`
	UUID               string `gorm:"type:varchar(36);uniqueIndex;not null" json:"uuid"`
	AttendanceDeviceID *uint  `gorm:"index" json:"attendance_device_id,omitempty"`

	// 平台上报字段
	AttDate       time.Time `gorm:"not null" json:"att_date"`
	CheckTime     time.Time `gorm:"not null;uniqueIndex:idx_attendance_identity,priority:2" json:"check_time"`
	EmployeeID    string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_attendance_identity,priority:1" json:"employee_id"`
	EmployeeName  string    `gorm:"type:varchar(100);not null" json:"employee_name"`
	MachineAlias  string    `gorm:"type:varchar(100);not null" json:"machine_alias"`
	MachineSerial string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_attendance_identity,priority:3" json:"machine_serial"`

	// 派生的打卡方向标签（"Check In" / "Check Out"），由设备分类决定
	AttendanceStatus string `gorm:"type:varchar(20)" json:"attendance_status"`

	SyncStatus string    `gorm:"type:varchar(20);not null;default:'synced'" json:"sync_status"`
	CreatedAt  time.Time `json:"created_at"`

	// Relations
	Device *AttendanceDevice `gorm:"foreignKey:AttendanceDeviceID" json:"device,omitempty"`
}

// BeforeCreate 填充UUID与同步状态默认值
func (r *AttendanceRecord) BeforeCreate(tx *gorm.DB) error {
	if r.UUID == "" {
		r.UUID = uuid.NewString()
	}
	if r.SyncStatus == "" {
		r.SyncStatus = "synced"
	}
	return nil
}
