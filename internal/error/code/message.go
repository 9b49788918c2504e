package code

// 错误码消息映射
var codeMessageMap = map[int]string{
	// 通用错误码
	ErrSuccess:         "success",
	ErrUnknown:         "An unexpected error occurred",
	ErrBind:            "Invalid request parameters",
	ErrValidation:      "Request validation failed",
	ErrTooManyRequests: "Too many requests, please try again later",

	// 认证相关错误码
	ErrAccessCodeRequired: "Access code is required",
	ErrAccessCodeInvalid:  "Invalid access code",

	// 设备相关错误码
	ErrDeviceNotFound:   "Device not found",
	ErrDeviceTypeNotSet: "Device type is not set",

	// 考勤相关错误码
	ErrInvalidDateRange: "From date must be before or equal to to date",
	ErrMapping:          "An unexpected error occurred while parsing attendance records",

	// 考勤平台相关错误码
	ErrVendorAPI:       "Error communicating with attendance API",
	ErrVendorTransport: "Error communicating with attendance API",
	ErrVendorMalformed: "Invalid response from attendance API",

	// 数据库相关错误码
	ErrDatabase:       "Database error occurred",
	ErrRecordNotFound: "Record not found",
}

// 错误码HTTP状态码映射
var codeStatusMap = map[int]int{
	// 通用错误码
	ErrSuccess:         StatusOK,
	ErrUnknown:         StatusInternalServerError,
	ErrBind:            StatusBadRequest,
	ErrValidation:      StatusBadRequest,
	ErrTooManyRequests: StatusTooManyRequests,

	// 认证相关错误码
	ErrAccessCodeRequired: StatusUnauthorized,
	ErrAccessCodeInvalid:  StatusForbidden,

	// 设备相关错误码
	ErrDeviceNotFound:   StatusNotFound,
	ErrDeviceTypeNotSet: StatusBadRequest,

	// 考勤相关错误码
	ErrInvalidDateRange: StatusBadRequest,
	ErrMapping:          StatusInternalServerError,

	// 考勤平台相关错误码
	ErrVendorAPI:       StatusBadGateway,
	ErrVendorTransport: StatusBadGateway,
	ErrVendorMalformed: StatusBadGateway,

	// 数据库相关错误码
	ErrDatabase:       StatusInternalServerError,
	ErrRecordNotFound: StatusNotFound,
}

// GetMessage 获取错误码对应的消息
func GetMessage(errorCode int) string {
	if message, ok := codeMessageMap[errorCode]; ok {
		return message
	}
	return codeMessageMap[ErrUnknown]
}

// GetStatus 获取错误码对应的HTTP状态码
func GetStatus(errorCode int) int {
	if status, ok := codeStatusMap[errorCode]; ok {
		return status
	}
	return StatusInternalServerError
}
