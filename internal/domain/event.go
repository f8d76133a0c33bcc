package domain

import (
	"encoding/json"
	"time"
)

// EventType 事件类型
type EventType string

const (
	// EventTypeTMNotification 通知 TM 发起绩效评审
	EventTypeTMNotification EventType = "TM_NOTIFICATION"
	// EventTypeReviewerNew 首次邀请评审人填写反馈
	EventTypeReviewerNew EventType = "REVIEWER_NEW_NOTIFICATION"
	// EventTypeReviewerReminder 评审人催办序列
	EventTypeReviewerReminder EventType = "REVIEWER_REMINDER_NOTIFICATION"
)

// ReviewerEventTypes 评审人相关的全部事件类型，取消操作按这个集合查找
func ReviewerEventTypes() []EventType {
	return []EventType{EventTypeReviewerNew, EventTypeReviewerReminder}
}

// EventStatus 事件状态
type EventStatus string

const (
	EventStatusOpen   EventStatus = "OPEN"
	EventStatusClosed EventStatus = "CLOSED"
)

// Event 业务事件领域模型，一个事件持有一条或多条通知
type Event struct {
	ID            int64
	Type          EventType
	From          string // 发起人邮箱
	FromName      string
	To            string // 接收人邮箱
	ToName        string
	For           string // 被评审人邮箱，可为空
	ForName       string
	StartDate     time.Time
	EndDate       time.Time // 零值表示未设置
	Status        EventStatus
	CorrelationID string
	// Content 不定形的业务负载，只有消息生成方会解释它
	Content       map[string]any
	Notifications []Notification
	CreatedAt     time.Time
}

// HasEndDate 是否设置了截止日期
func (e *Event) HasEndDate() bool {
	return !e.EndDate.IsZero()
}

// Resolved 所有子通知都已离开 SETUPPED 状态
func (e *Event) Resolved() bool {
	for i := range e.Notifications {
		if e.Notifications[i].Status == SendStatusSetupped {
			return false
		}
	}
	return true
}

func (e *Event) MarshalContent() (string, error) {
	if len(e.Content) == 0 {
		return "", nil
	}
	jsonBytes, err := json.Marshal(e.Content)
	if err != nil {
		return "", err
	}
	return string(jsonBytes), nil
}
