package services

import (
	"time"

	"github.com/MercTechs/AttPortal/config"
	"github.com/MercTechs/AttPortal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AttendanceSyncResult 一次考勤同步的统计结果
type AttendanceSyncResult struct {
	FetchedCount int `json:"fetched_count"` // 平台返回的记录数
	NewRecords   int `json:"records_count"` // 实际新落库的记录数
	SkippedCount int `json:"skipped_count"` // 因设备未知被丢弃的记录数
}

// InterfaceAttendanceService defines the attendance service interface
type InterfaceAttendanceService interface {
	SyncAttendance(fromDate, toDate time.Time, employeeID string) (*AttendanceSyncResult, error)
	GetAttendanceRecords(fromDate, toDate time.Time, employeeID string, page models.PaginationQuery) ([]models.AttendanceRecord, int64, error)
}

// AttendanceService 提供考勤记录同步与查询服务
type AttendanceService struct {
	DB      *gorm.DB
	Config  *config.Config
	Gateway InterfaceVendorGateway
}

// NewAttendanceService 创建一个新的考勤服务
func NewAttendanceService(db *gorm.DB, cfg *config.Config, gateway InterfaceVendorGateway) InterfaceAttendanceService {
	return &AttendanceService{
		DB:      db,
		Config:  cfg,
		Gateway: gateway,
	}
}

// 1 SyncAttendance 从平台拉取时间窗内的打卡记录并去重落库。
// 对同一窗口重复执行是幂等的：按去重键只新增缺失的记录，单事务提交
func (s *AttendanceService) SyncAttendance(fromDate, toDate time.Time, employeeID string) (*AttendanceSyncResult, error) {
	if fromDate.After(toDate) {
		return nil, ErrInvalidDateRange
	}

	vendorRecords, err := s.Gateway.FetchAttendanceData(fromDate, toDate, employeeID)
	if err != nil {
		return nil, err
	}

	result := &AttendanceSyncResult{FetchedCount: len(vendorRecords)}
	if len(vendorRecords) == 0 {
		// 平台无数据属于正常情况，不算错误
		return result, nil
	}

	// 本地设备按序列号索引，用于关联记录和丢弃未知设备的数据
	var devices []models.AttendanceDevice
	if err := s.DB.Find(&devices).Error; err != nil {
		return nil, err
	}
	devicesBySerial := make(map[string]*models.AttendanceDevice, len(devices))
	for i := range devices {
		devicesBySerial[devices[i].SerialNumber] = &devices[i]
	}

	mapped := make([]*models.AttendanceRecord, 0, len(vendorRecords))
	for _, vendorRecord := range vendorRecords {
		record, err := MapAttendanceRecord(vendorRecord)
		if err != nil {
			return nil, err
		}

		device, ok := devicesBySerial[record.MachineSerial]
		if !ok {
			// 引用了本地未登记设备的记录直接丢弃，只记日志不上报
			config.Warning("丢弃未知设备 %s 的打卡记录: 员工=%s 时间=%s",
				record.MachineSerial, record.EmployeeID, record.CheckTime.Format("2006-01-02 15:04:05"))
			result.SkippedCount++
			continue
		}

		record.AttendanceDeviceID = &device.ID
		if device.DeviceType != nil {
			if *device.DeviceType == models.DeviceTypeCheckIn {
				record.AttendanceStatus = "Check In"
			} else {
				record.AttendanceStatus = "Check Out"
			}
		}
		mapped = append(mapped, record)
	}

	if len(mapped) == 0 {
		return result, nil
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		// 取出窗口内已存在的去重键快照
		var existing []models.AttendanceRecord
		if err := tx.Select("employee_id", "check_time", "machine_serial").
			Where("check_time >= ? AND check_time <= ?", fromDate, toDate).
			Find(&existing).Error; err != nil {
			return err
		}

		existingKeys := make(map[RecordIdentity]struct{}, len(existing))
		for i := range existing {
			existingKeys[IdentityOf(&existing[i])] = struct{}{}
		}

		toAdd := make([]*models.AttendanceRecord, 0, len(mapped))
		for _, record := range mapped {
			key := IdentityOf(record)
			if _, dup := existingKeys[key]; dup {
				continue
			}
			// 同一批次内部也要去重
			existingKeys[key] = struct{}{}
			toAdd = append(toAdd, record)
		}

		if len(toAdd) == 0 {
			return nil
		}

		// 快照读在写之前，重叠窗口的并发同步靠复合唯一索引兜底
		res := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "employee_id"},
				{Name: "check_time"},
				{Name: "machine_serial"},
			},
			DoNothing: true,
		}).Create(&toAdd)
		if res.Error != nil {
			return res.Error
		}

		result.NewRecords = int(res.RowsAffected)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// 2 GetAttendanceRecords 查询本地打卡记录，按打卡时间倒序，支持可选员工过滤与分页
func (s *AttendanceService) GetAttendanceRecords(fromDate, toDate time.Time, employeeID string, page models.PaginationQuery) ([]models.AttendanceRecord, int64, error) {
	if fromDate.After(toDate) {
		return nil, 0, ErrInvalidDateRange
	}

	query := s.DB.Model(&models.AttendanceRecord{}).
		Where("check_time >= ? AND check_time <= ?", fromDate, toDate)
	if employeeID != "" {
		query = query.Where("employee_id = ?", employeeID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("check_time DESC")
	if page.PageSize > 0 {
		pageNum := page.PageNum
		if pageNum < 1 {
			pageNum = 1
		}
		query = query.Limit(page.PageSize).Offset((pageNum - 1) * page.PageSize)
	}

	var records []models.AttendanceRecord
	if err := query.Find(&records).Error; err != nil {
		return nil, 0, err
	}

	// 空结果集是正常的成功响应
	return records, total, nil
}
