package controllers

import (
	"errors"
	"fmt"

	"github.com/MercTechs/AttPortal/internal/error/code"
	"github.com/MercTechs/AttPortal/internal/error/response"
	"github.com/MercTechs/AttPortal/models"
	"github.com/MercTechs/AttPortal/services"
	"github.com/MercTechs/AttPortal/services/container"

	"github.com/gin-gonic/gin"
)

// InterfaceDeviceController 定义设备控制器接口
type InterfaceDeviceController interface {
	GetDevices()
	GetDeviceEmployees()
	UpdateDeviceType()
	UpdateAttendanceStatus()
}

// DeviceController 处理设备相关的请求
type DeviceController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewDeviceController 创建一个新的设备控制器
func NewDeviceController(ctx *gin.Context, container *container.ServiceContainer) *DeviceController {
	return &DeviceController{
		Ctx:       ctx,
		Container: container,
	}
}

// DeviceTypeRequest 设备分类更新请求
type DeviceTypeRequest struct {
	DeviceType models.DeviceType `json:"device_type" binding:"required" example:"CheckIn"` // CheckIn, CheckOut
}

// DeviceListResponse 设备同步响应，devices 为平台原样的设备清单
type DeviceListResponse struct {
	Devices        []services.VendorDevice `json:"devices"`
	NewDevices     int                     `json:"new_devices"`
	UpdatedDevices int                     `json:"updated_devices"`
}

// RelabelResponse 批量重算打卡方向的响应
type RelabelResponse struct {
	Message        string `json:"message" example:"Successfully updated 42 records for device CJDE193360702"`
	UpdatedRecords int64  `json:"updated_records" example:"42"`
}

// HandleDeviceFunc 返回一个处理设备请求的Gin处理函数
func HandleDeviceFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewDeviceController(ctx, container)

		switch method {
		case "getDevices":
			controller.GetDevices()
		case "getDeviceEmployees":
			controller.GetDeviceEmployees()
		case "updateDeviceType":
			controller.UpdateDeviceType()
		case "updateAttendanceStatus":
			controller.UpdateAttendanceStatus()
		default:
			response.ParamError(ctx, "无效的方法")
		}
	}
}

// 1. GetDevices 拉取平台设备清单并对账本地库存
// @Summary 同步并获取设备列表
// @Description 以平台设备清单为准对账本地库存（新建/更新/停用），返回平台原样的设备列表
// @Tags device
// @Accept json
// @Produce json
// @Security AccessCode
// @Success 200 {object} DeviceListResponse
// @Failure 502 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /devices [get]
func (c *DeviceController) GetDevices() {
	deviceService := c.Container.GetService("device").(services.InterfaceDeviceService)

	vendorDevices, result, err := deviceService.SyncDevices()
	if err != nil {
		handleServiceError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, DeviceListResponse{
		Devices:        vendorDevices,
		NewDevices:     result.NewDevices,
		UpdatedDevices: result.UpdatedDevices,
	})
}

// 2. GetDeviceEmployees 查询设备上登记的员工列表
// @Summary 获取设备员工列表
// @Description 透传平台的员工列表查询，结果短暂缓存，不做本地持久化
// @Tags device
// @Accept json
// @Produce json
// @Security AccessCode
// @Param serial_number path string true "设备序列号"
// @Success 200 {array} services.VendorEmployee
// @Failure 502 {object} response.Response
// @Router /devices/{serial_number}/employees [get]
func (c *DeviceController) GetDeviceEmployees() {
	deviceService := c.Container.GetService("device").(services.InterfaceDeviceService)
	serialNumber := c.Ctx.Param("serial_number")

	employees, err := deviceService.GetDeviceEmployees(serialNumber)
	if err != nil {
		handleServiceError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, employees)
}

// 3. UpdateDeviceType 设置设备分类
// @Summary 设置设备分类
// @Description 把设备分类为 CheckIn 或 CheckOut。不会自动重算历史记录的打卡方向，需另行调用重算接口
// @Tags device
// @Accept json
// @Produce json
// @Security AccessCode
// @Param serial_number path string true "设备序列号"
// @Param body body DeviceTypeRequest true "设备分类"
// @Success 200 {object} models.AttendanceDevice
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /devices/{serial_number}/type [patch]
func (c *DeviceController) UpdateDeviceType() {
	deviceService := c.Container.GetService("device").(services.InterfaceDeviceService)
	serialNumber := c.Ctx.Param("serial_number")

	var req DeviceTypeRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "invalid request body")
		return
	}
	if req.DeviceType != models.DeviceTypeCheckIn && req.DeviceType != models.DeviceTypeCheckOut {
		response.FailWithMessage(c.Ctx, code.ErrValidation,
			"device_type must be CheckIn or CheckOut", nil)
		return
	}

	device, err := deviceService.SetDeviceType(serialNumber, req.DeviceType)
	if err != nil {
		if errors.Is(err, services.ErrDeviceNotFound) {
			response.NotFound(c.Ctx,
				fmt.Sprintf("Device with serial number %s not found", serialNumber))
			return
		}
		handleServiceError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, device)
}

// 4. UpdateAttendanceStatus 按设备分类批量重算打卡方向
// @Summary 重算设备打卡方向
// @Description 按设备当前分类批量重算该设备全部历史记录的打卡方向标签
// @Tags device
// @Accept json
// @Produce json
// @Security AccessCode
// @Param serial_number path string true "设备序列号"
// @Success 200 {object} RelabelResponse
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /devices/{serial_number}/update-attendance-status [post]
func (c *DeviceController) UpdateAttendanceStatus() {
	deviceService := c.Container.GetService("device").(services.InterfaceDeviceService)
	serialNumber := c.Ctx.Param("serial_number")

	updated, err := deviceService.UpdateAttendanceStatusForDevice(serialNumber)
	if err != nil {
		if errors.Is(err, services.ErrDeviceNotFound) {
			response.NotFound(c.Ctx,
				fmt.Sprintf("Device with serial number %s not found", serialNumber))
			return
		}
		handleServiceError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, RelabelResponse{
		Message:        fmt.Sprintf("Successfully updated %d records for device %s", updated, serialNumber),
		UpdatedRecords: updated,
	})
}
