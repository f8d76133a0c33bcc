package errs

import (
	"errors"
)

// 定义统一的错误类型
var (
	ErrInvalidParameter       = errors.New("参数错误")
	ErrEventNotFound          = errors.New("事件不存在")
	ErrCreateEventFailed      = errors.New("创建事件失败")
	ErrNotificationNotFound   = errors.New("通知记录不存在")
	ErrSendNotificationFailed = errors.New("发送通知失败")
	ErrGenerateMessageFailed  = errors.New("生成通知正文失败")

	ErrChannelNotSupported       = errors.New("不支持的通知渠道")
	ErrChannelDuplicateProcessor = errors.New("渠道处理器重复注册")
)
