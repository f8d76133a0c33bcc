package domain

import (
	"time"
)

// SendStatus 通知状态
type SendStatus string

const (
	SendStatusSetupped SendStatus = "SETUPPED" // 等待发送
	SendStatusSent     SendStatus = "SENT"     // 已发送
	SendStatusSkipped  SendStatus = "SKIPPED"  // 事件被取消时跳过
	SendStatusFailed   SendStatus = "FAILED"   // 重试次数耗尽后的终态
)

// Terminal 是否为终态，终态之后不允许任何状态迁移
func (s SendStatus) Terminal() bool {
	return s == SendStatusSent || s == SendStatusSkipped || s == SendStatusFailed
}

// Channel 通知渠道
type Channel string

const (
	ChannelEmail Channel = "EMAIL"
	ChannelTeams Channel = "TEAMS"
)

// Channels 闭合的渠道集合
func Channels() []Channel {
	return []Channel{ChannelEmail, ChannelTeams}
}

// NotificationType 通知在事件序列中的角色
type NotificationType string

const (
	// NotificationTypeReviewer 首次通知，attempt 为 0
	NotificationTypeReviewer NotificationType = "REVIEWER_NOTIFICATION"
	// NotificationTypeReminder 催办通知，attempt 从 1 开始
	NotificationTypeReminder NotificationType = "REMINDER_NOTIFICATION"
)

// Notification 单次计划投递
type Notification struct {
	ID             int64
	EventID        int64
	Status         SendStatus
	Channel        Channel
	ChannelAddress string // 邮箱地址或 webhook 地址
	SendTime       time.Time
	Attempt        int
	Type           NotificationType
	RetryCount     int8
}

// DueNotification 到期通知和它所属的事件，由查询联表得出
type DueNotification struct {
	Notification
	Event Event
}
