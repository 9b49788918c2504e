package code

// HTTP状态码.
const (
	// StatusOK - 200: 成功.
	StatusOK = 200
	// StatusBadRequest - 400: 请求参数错误.
	StatusBadRequest = 400
	// StatusUnauthorized - 401: 未授权.
	StatusUnauthorized = 401
	// StatusForbidden - 403: 禁止访问.
	StatusForbidden = 403
	// StatusNotFound - 404: 资源不存在.
	StatusNotFound = 404
	// StatusTooManyRequests - 429: 请求过多.
	StatusTooManyRequests = 429
	// StatusInternalServerError - 500: 服务器内部错误.
	StatusInternalServerError = 500
	// StatusBadGateway - 502: 上游服务错误.
	StatusBadGateway = 502
)

// 通用错误码 (100xxx).
const (
	// ErrSuccess - 200: 成功.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: 未知错误.
	ErrUnknown
	// ErrBind - 400: 请求参数绑定错误.
	ErrBind
	// ErrValidation - 400: 请求参数验证错误.
	ErrValidation
	// ErrTooManyRequests - 429: 请求频率过高.
	ErrTooManyRequests
)

// 认证相关错误码 (101xxx).
const (
	// ErrAccessCodeRequired - 401: 缺少访问码.
	ErrAccessCodeRequired int = iota + 101000
	// ErrAccessCodeInvalid - 403: 访问码错误.
	ErrAccessCodeInvalid
)

// 设备相关错误码 (102xxx).
const (
	// ErrDeviceNotFound - 404: 设备不存在.
	ErrDeviceNotFound int = iota + 102000
	// ErrDeviceTypeNotSet - 400: 设备尚未分类.
	ErrDeviceTypeNotSet
)

// 考勤相关错误码 (103xxx).
const (
	// ErrInvalidDateRange - 400: 时间窗起止颠倒.
	ErrInvalidDateRange int = iota + 103000
	// ErrMapping - 500: 平台记录解析失败.
	ErrMapping
)

// 考勤平台相关错误码 (104xxx).
const (
	// ErrVendorAPI - 502: 平台返回失败结果.
	ErrVendorAPI int = iota + 104000
	// ErrVendorTransport - 502: 平台通信失败.
	ErrVendorTransport
	// ErrVendorMalformed - 502: 平台响应格式异常.
	ErrVendorMalformed
)

// 数据库相关错误码 (105xxx).
const (
	// ErrDatabase - 500: 数据库错误.
	ErrDatabase int = iota + 105000
	// ErrRecordNotFound - 404: 记录不存在.
	ErrRecordNotFound
)
