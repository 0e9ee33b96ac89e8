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
	// StatusInternalServerError - 500: 服务器内部错误.
	StatusInternalServerError = 500
	// StatusTooManyRequests - 429: 请求过多.
	StatusTooManyRequests = 429
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
	// ErrTokenInvalid - 401: 令牌无效.
	ErrTokenInvalid
	// ErrTooManyRequests - 429: 请求频率过高.
	ErrTooManyRequests
)

// 用户相关错误码 (101xxx).
const (
	// ErrUserNotFound - 404: 用户不存在.
	ErrUserNotFound int = iota + 101000
	// ErrUserAlreadyExist - 400: 邮箱已被注册.
	ErrUserAlreadyExist
	// ErrUserPasswordIncorrect - 401: 用户密码错误.
	ErrUserPasswordIncorrect
)

// 设备相关错误码 (102xxx).
const (
	// ErrDeviceNotFound - 404: 设备不存在.
	ErrDeviceNotFound int = iota + 102000
	// ErrDeviceAlreadyExist - 400: 设备序列号已存在.
	ErrDeviceAlreadyExist
	// ErrDeviceTypeInvalid - 400: 无效的设备类型.
	ErrDeviceTypeInvalid
)

// 使用记录相关错误码 (103xxx).
const (
	// ErrUsageRecordNotFound - 404: 使用记录不存在.
	ErrUsageRecordNotFound int = iota + 103000
	// ErrUsageRecordInvalid - 400: 使用记录参数无效.
	ErrUsageRecordInvalid
)

// 安防事件相关错误码 (104xxx).
const (
	// ErrSecurityEventNotFound - 404: 安防事件不存在.
	ErrSecurityEventNotFound int = iota + 104000
	// ErrSecurityEventTypeInvalid - 400: 无效的事件类型.
	ErrSecurityEventTypeInvalid
)

// 反馈相关错误码 (105xxx).
const (
	// ErrFeedbackNotFound - 404: 反馈不存在.
	ErrFeedbackNotFound int = iota + 105000
	// ErrFeedbackRatingInvalid - 400: 评分超出范围.
	ErrFeedbackRatingInvalid
)

// 数据库相关错误码 (106xxx).
const (
	// ErrDatabase - 500: 数据库错误.
	ErrDatabase int = iota + 106000
	// ErrRecordNotFound - 404: 记录不存在.
	ErrRecordNotFound
	// ErrDataIntegrity - 500: 数据完整性错误.
	ErrDataIntegrity
)
