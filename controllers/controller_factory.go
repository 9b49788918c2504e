package controllers

import (
	"errors"
	"time"

	"github.com/MercTechs/AttPortal/config"
	"github.com/MercTechs/AttPortal/internal/error/code"
	"github.com/MercTechs/AttPortal/internal/error/response"
	"github.com/MercTechs/AttPortal/services"
	"github.com/MercTechs/AttPortal/services/container"

	"github.com/gin-gonic/gin"
)

// BaseController 是所有控制器的基础接口
type BaseController interface {
	// 获取服务容器
	GetContainer() *container.ServiceContainer
	// 获取Gin上下文
	GetContext() *gin.Context
}

// BaseControllerImpl 是控制器的基础实现
type BaseControllerImpl struct {
	Container *container.ServiceContainer
	Context   *gin.Context
}

// GetContainer 实现 BaseController 接口
func (c *BaseControllerImpl) GetContainer() *container.ServiceContainer {
	return c.Container
}

// GetContext 实现 BaseController 接口
func (c *BaseControllerImpl) GetContext() *gin.Context {
	return c.Context
}

// 查询参数里日期的可接受格式
var queryDateLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.RFC3339,
	"2006-01-02",
}

// parseDateParam 解析日期查询参数，为空时使用默认值
func parseDateParam(value string, defaultValue time.Time) (time.Time, error) {
	if value == "" {
		return defaultValue, nil
	}
	var lastErr error
	for _, layout := range queryDateLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// handleServiceError 把服务层错误翻译成HTTP响应。
// 平台侧失败透出502和原因，内部失败只记日志不向调用方泄漏细节
func handleServiceError(ctx *gin.Context, err error) {
	var vendorErr *services.VendorError
	var transportErr *services.TransportError
	var malformedErr *services.MalformedResponseError
	var mappingErr *services.MappingError

	switch {
	case errors.Is(err, services.ErrInvalidDateRange):
		response.FailWithMessage(ctx, code.ErrInvalidDateRange, err.Error(), nil)
	case errors.Is(err, services.ErrDeviceNotFound):
		response.Fail(ctx, code.ErrDeviceNotFound, nil)
	case errors.Is(err, services.ErrDeviceTypeNotSet):
		response.Fail(ctx, code.ErrDeviceTypeNotSet, nil)
	case errors.As(err, &vendorErr):
		response.FailWithMessage(ctx, code.ErrVendorAPI,
			"Error communicating with attendance API: "+vendorErr.Reason, nil)
	case errors.As(err, &transportErr):
		config.Error("平台通信失败: %v", transportErr)
		response.FailWithMessage(ctx, code.ErrVendorTransport,
			"Error communicating with attendance API: "+transportErr.Error(), nil)
	case errors.As(err, &malformedErr):
		config.Error("平台响应格式异常: %v", malformedErr)
		response.Fail(ctx, code.ErrVendorMalformed, nil)
	case errors.As(err, &mappingErr):
		config.Error("平台记录解析失败: %v", mappingErr)
		response.Fail(ctx, code.ErrMapping, nil)
	default:
		config.Error("未分类的内部错误: %v", err)
		response.Fail(ctx, code.ErrDatabase, nil)
	}
}
