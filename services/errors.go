package services

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDateRange 查询/同步时间窗起止颠倒
	ErrInvalidDateRange = errors.New("From date must be before or equal to to date")
	// ErrDeviceNotFound 本地不存在该序列号的设备
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDeviceTypeNotSet 设备尚未被管理员分类，无法派生打卡方向
	ErrDeviceTypeNotSet = errors.New("device type is not set")
)

// VendorError 平台返回了失败的响应信封（result != "success"）
type VendorError struct {
	Reason string
}

func (e *VendorError) Error() string {
	return fmt.Sprintf("vendor API error: %s", e.Reason)
}

// TransportError 网络错误、超时或非2xx响应
type TransportError struct {
	Command string
	Err     error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("vendor API transport failure on %s: %v", e.Command, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// MalformedResponseError 响应体不是合法JSON或缺少预期结构
type MalformedResponseError struct {
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed vendor API response: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

// MappingError 平台记录缺少必填字段或日期无法解析
type MappingError struct {
	Field string
	Err   error
}

func (e *MappingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot map vendor record field %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("vendor record is missing required field %s", e.Field)
}

func (e *MappingError) Unwrap() error {
	return e.Err
}
