package controllers

import (
	"fmt"
	"time"

	"github.com/MercTechs/AttPortal/internal/error/response"
	"github.com/MercTechs/AttPortal/models"
	"github.com/MercTechs/AttPortal/services"
	"github.com/MercTechs/AttPortal/services/container"

	"github.com/gin-gonic/gin"
)

// InterfaceAttendanceController 定义考勤控制器接口
type InterfaceAttendanceController interface {
	SyncAttendance()
	GetAttendanceRecords()
}

// AttendanceController 处理考勤相关的请求
type AttendanceController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAttendanceController 创建一个新的考勤控制器
func NewAttendanceController(ctx *gin.Context, container *container.ServiceContainer) *AttendanceController {
	return &AttendanceController{
		Ctx:       ctx,
		Container: container,
	}
}

// AttendanceSyncResponse 考勤同步响应
type AttendanceSyncResponse struct {
	Status       string `json:"status" example:"success"`
	Message      string `json:"message" example:"Successfully synced 10 new records"`
	RecordsCount int    `json:"records_count" example:"10"`
}

// AttendanceListResponse 考勤记录列表响应
type AttendanceListResponse struct {
	Records []models.AttendanceRecord `json:"records"`
	Total   int64                     `json:"total"`
}

// HandleAttendanceFunc 返回一个处理考勤请求的Gin处理函数
func HandleAttendanceFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAttendanceController(ctx, container)

		switch method {
		case "syncAttendance":
			controller.SyncAttendance()
		case "getAttendanceRecords":
			controller.GetAttendanceRecords()
		default:
			response.ParamError(ctx, "无效的方法")
		}
	}
}

// 1. SyncAttendance 从考勤平台同步打卡记录
// @Summary 同步考勤记录
// @Description 从考勤平台拉取指定时间窗的打卡记录并去重落库，时间窗默认为最近7天
// @Tags attendance
// @Accept json
// @Produce json
// @Security AccessCode
// @Param from_date query string false "开始日期 (YYYY-MM-DD)"
// @Param to_date query string false "结束日期 (YYYY-MM-DD)"
// @Param employee_id query string false "员工ID过滤"
// @Success 200 {object} AttendanceSyncResponse
// @Failure 400 {object} response.Response
// @Failure 502 {object} response.Response
// @Router /attendance/sync [get]
func (c *AttendanceController) SyncAttendance() {
	attendanceService := c.Container.GetService("attendance").(services.InterfaceAttendanceService)

	fromDate, err := parseDateParam(c.Ctx.Query("from_date"), time.Now().AddDate(0, 0, -7))
	if err != nil {
		response.ParamError(c.Ctx, "invalid from_date format")
		return
	}
	toDate, err := parseDateParam(c.Ctx.Query("to_date"), time.Now())
	if err != nil {
		response.ParamError(c.Ctx, "invalid to_date format")
		return
	}
	employeeID := c.Ctx.Query("employee_id")

	result, err := attendanceService.SyncAttendance(fromDate, toDate, employeeID)
	if err != nil {
		handleServiceError(c.Ctx, err)
		return
	}

	message := fmt.Sprintf("Successfully synced %d new records", result.NewRecords)
	if result.FetchedCount == 0 {
		message = "No new records to sync"
	}

	response.Success(c.Ctx, AttendanceSyncResponse{
		Status:       "success",
		Message:      message,
		RecordsCount: result.NewRecords,
	})
}

// 2. GetAttendanceRecords 查询本地打卡记录
// @Summary 查询考勤记录
// @Description 按时间窗和可选员工ID过滤本地打卡记录，按打卡时间倒序返回
// @Tags attendance
// @Accept json
// @Produce json
// @Security AccessCode
// @Param from_date query string false "开始日期 (YYYY-MM-DD)"
// @Param to_date query string false "结束日期 (YYYY-MM-DD)"
// @Param employee_id query string false "员工ID过滤"
// @Param pageNum query int false "页码"
// @Param pageSize query int false "每页条数，0为不分页"
// @Success 200 {object} AttendanceListResponse
// @Failure 400 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /attendance [get]
func (c *AttendanceController) GetAttendanceRecords() {
	attendanceService := c.Container.GetService("attendance").(services.InterfaceAttendanceService)

	fromDate, err := parseDateParam(c.Ctx.Query("from_date"), time.Now().AddDate(0, 0, -7))
	if err != nil {
		response.ParamError(c.Ctx, "invalid from_date format")
		return
	}
	toDate, err := parseDateParam(c.Ctx.Query("to_date"), time.Now())
	if err != nil {
		response.ParamError(c.Ctx, "invalid to_date format")
		return
	}
	employeeID := c.Ctx.Query("employee_id")

	var page models.PaginationQuery
	if err := c.Ctx.ShouldBindQuery(&page); err != nil {
		response.ParamError(c.Ctx, "invalid pagination parameters")
		return
	}

	records, total, err := attendanceService.GetAttendanceRecords(fromDate, toDate, employeeID, page)
	if err != nil {
		handleServiceError(c.Ctx, err)
		return
	}

	if records == nil {
		records = []models.AttendanceRecord{}
	}

	response.Success(c.Ctx, AttendanceListResponse{
		Records: records,
		Total:   total,
	})
}
