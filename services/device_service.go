package services

import (
	"errors"
	"time"

	"github.com/MercTechs/AttPortal/config"
	"github.com/MercTechs/AttPortal/models"

	"gorm.io/gorm"
)

// DeviceSyncResult 一次设备对账的统计结果
type DeviceSyncResult struct {
	NewDevices     int `json:"new_devices"`
	UpdatedDevices int `json:"updated_devices"`
}

// InterfaceDeviceService defines the device service interface
type InterfaceDeviceService interface {
	SyncDevices() ([]VendorDevice, *DeviceSyncResult, error)
	GetDeviceBySerial(serialNumber string) (*models.AttendanceDevice, error)
	SetDeviceType(serialNumber string, deviceType models.DeviceType) (*models.AttendanceDevice, error)
	UpdateAttendanceStatusForDevice(serialNumber string) (int64, error)
	GetDeviceEmployees(serialNumber string) ([]VendorEmployee, error)
}

// DeviceService 提供设备对账与管理服务
type DeviceService struct {
	DB      *gorm.DB
	Config  *config.Config
	Gateway InterfaceVendorGateway
	Redis   *RedisService // 可为nil，仅作为员工查询的只读缓存
}

// NewDeviceService 创建一个新的设备服务
func NewDeviceService(db *gorm.DB, cfg *config.Config, gateway InterfaceVendorGateway, redisService *RedisService) InterfaceDeviceService {
	return &DeviceService{
		DB:      db,
		Config:  cfg,
		Gateway: gateway,
		Redis:   redisService,
	}
}

// 1 SyncDevices 以平台设备清单为准对账本地库存：
// 已知序列号覆盖元数据并刷新同步状态，未知序列号新建，
// 清单中消失的设备标记停用，永不删除。整个对账在一个事务里提交
func (s *DeviceService) SyncDevices() ([]VendorDevice, *DeviceSyncResult, error) {
	vendorDevices, err := s.Gateway.FetchDeviceList()
	if err != nil {
		return nil, nil, err
	}

	result := &DeviceSyncResult{}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		var locals []models.AttendanceDevice
		if err := tx.Find(&locals).Error; err != nil {
			return err
		}
		localBySerial := make(map[string]*models.AttendanceDevice, len(locals))
		for i := range locals {
			localBySerial[locals[i].SerialNumber] = &locals[i]
		}

		vendorSerials := make(map[string]struct{}, len(vendorDevices))
		for _, vendorDevice := range vendorDevices {
			vendorSerials[vendorDevice.SerialNumber] = struct{}{}

			if local, ok := localBySerial[vendorDevice.SerialNumber]; ok {
				// 同步只覆盖平台元数据，device_type 由管理员设置，永不触碰
				updates := map[string]interface{}{
					"name":        vendorDevice.Alias,
					"ip_address":  vendorDevice.IP,
					"mac_address": vendorDevice.MAC,
					"model":       vendorDevice.Model,
					"firmware":    vendorDevice.Firmware,
					"location":    vendorDevice.Location,
					"last_sync":   time.Now(),
					"sync_status": models.DeviceSyncStatusActive,
				}
				if err := tx.Model(local).Updates(updates).Error; err != nil {
					return err
				}
				result.UpdatedDevices++
			} else {
				device := MapDevice(vendorDevice)
				if err := tx.Create(device).Error; err != nil {
					return err
				}
				result.NewDevices++
			}
		}

		// 本次清单中不存在的设备标记为停用
		for i := range locals {
			if _, ok := vendorSerials[locals[i].SerialNumber]; ok {
				continue
			}
			if err := tx.Model(&locals[i]).Updates(map[string]interface{}{
				"is_active":   false,
				"sync_status": models.DeviceSyncStatusInactive,
			}).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return vendorDevices, result, nil
}

// 2 GetDeviceBySerial 根据序列号获取设备
func (s *DeviceService) GetDeviceBySerial(serialNumber string) (*models.AttendanceDevice, error) {
	var device models.AttendanceDevice
	if err := s.DB.Where("serial_number = ?", serialNumber).First(&device).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDeviceNotFound
		}
		return nil, err
	}
	return &device, nil
}

// 3 SetDeviceType 设置设备分类并刷新同步时间。
// 不会自动重算历史记录的打卡方向，需要显式调用 UpdateAttendanceStatusForDevice
func (s *DeviceService) SetDeviceType(serialNumber string, deviceType models.DeviceType) (*models.AttendanceDevice, error) {
	device, err := s.GetDeviceBySerial(serialNumber)
	if err != nil {
		return nil, err
	}

	if err := s.DB.Model(device).Updates(map[string]interface{}{
		"device_type": deviceType,
		"last_sync":   time.Now(),
	}).Error; err != nil {
		return nil, err
	}

	return s.GetDeviceBySerial(serialNumber)
}

// 4 UpdateAttendanceStatusForDevice 按设备分类批量重算该设备全部记录的打卡方向，
// 返回受影响的记录数。单条批量UPDATE，一次提交
func (s *DeviceService) UpdateAttendanceStatusForDevice(serialNumber string) (int64, error) {
	device, err := s.GetDeviceBySerial(serialNumber)
	if err != nil {
		return 0, err
	}
	if device.DeviceType == nil {
		return 0, ErrDeviceTypeNotSet
	}

	attendanceStatus := "Check Out"
	if *device.DeviceType == models.DeviceTypeCheckIn {
		attendanceStatus = "Check In"
	}

	res := s.DB.Model(&models.AttendanceRecord{}).
		Where("machine_serial = ?", serialNumber).
		Update("attendance_status", attendanceStatus)
	if res.Error != nil {
		return 0, res.Error
	}

	return res.RowsAffected, nil
}

// 5 GetDeviceEmployees 透传平台的员工列表查询，不做本地持久化。
// 结果在Redis里缓存5分钟，缓存不可用时退化为直连平台
func (s *DeviceService) GetDeviceEmployees(serialNumber string) ([]VendorEmployee, error) {
	if s.Redis != nil {
		var cached []VendorEmployee
		if err := s.Redis.GetDeviceEmployees(serialNumber, &cached); err == nil {
			return cached, nil
		}
	}

	employees, err := s.Gateway.FetchEmployeesByDevice(serialNumber)
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if err := s.Redis.CacheDeviceEmployees(serialNumber, employees, 5*time.Minute); err != nil {
			config.Warning("缓存设备 %s 员工列表失败: %v", serialNumber, err)
		}
	}

	return employees, nil
}
