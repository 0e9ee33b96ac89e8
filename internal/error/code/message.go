package code

// 错误码消息映射
var codeMessageMap = map[int]string{
	// 通用错误码
	ErrSuccess:         "成功",
	ErrUnknown:         "未知错误",
	ErrBind:            "请求参数绑定错误",
	ErrValidation:      "请求参数验证错误",
	ErrTokenInvalid:    "无效的认证令牌",
	ErrTooManyRequests: "请求频率过高",

	// 用户相关错误码
	ErrUserNotFound:          "用户不存在",
	ErrUserAlreadyExist:      "邮箱已被注册",
	ErrUserPasswordIncorrect: "用户密码错误",

	// 设备相关错误码
	ErrDeviceNotFound:     "设备不存在",
	ErrDeviceAlreadyExist: "设备序列号已存在",
	ErrDeviceTypeInvalid:  "无效的设备类型",

	// 使用记录相关错误码
	ErrUsageRecordNotFound: "使用记录不存在",
	ErrUsageRecordInvalid:  "使用记录参数无效",

	// 安防事件相关错误码
	ErrSecurityEventNotFound:    "安防事件不存在",
	ErrSecurityEventTypeInvalid: "无效的事件类型",

	// 反馈相关错误码
	ErrFeedbackNotFound:      "反馈不存在",
	ErrFeedbackRatingInvalid: "评分必须在1到5之间",

	// 数据库相关错误码
	ErrDatabase:       "数据库错误",
	ErrRecordNotFound: "记录不存在",
	ErrDataIntegrity:  "数据完整性错误",
}

// 错误码HTTP状态码映射
var codeStatusMap = map[int]int{
	// 通用错误码
	ErrSuccess:         StatusOK,
	ErrUnknown:         StatusInternalServerError,
	ErrBind:            StatusBadRequest,
	ErrValidation:      StatusBadRequest,
	ErrTokenInvalid:    StatusUnauthorized,
	ErrTooManyRequests: StatusTooManyRequests,

	// 用户相关错误码
	ErrUserNotFound:          StatusNotFound,
	ErrUserAlreadyExist:      StatusBadRequest,
	ErrUserPasswordIncorrect: StatusUnauthorized,

	// 设备相关错误码
	ErrDeviceNotFound:     StatusNotFound,
	ErrDeviceAlreadyExist: StatusBadRequest,
	ErrDeviceTypeInvalid:  StatusBadRequest,

	// 使用记录相关错误码
	ErrUsageRecordNotFound: StatusNotFound,
	ErrUsageRecordInvalid:  StatusBadRequest,

	// 安防事件相关错误码
	ErrSecurityEventNotFound:    StatusNotFound,
	ErrSecurityEventTypeInvalid: StatusBadRequest,

	// 反馈相关错误码
	ErrFeedbackNotFound:      StatusNotFound,
	ErrFeedbackRatingInvalid: StatusBadRequest,

	// 数据库相关错误码
	ErrDatabase:       StatusInternalServerError,
	ErrRecordNotFound: StatusNotFound,
	ErrDataIntegrity:  StatusInternalServerError,
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
