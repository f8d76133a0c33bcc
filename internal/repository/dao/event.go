package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gitee.com/flycash/review-reminder/internal/errs"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

type EventDAO interface {
	// CreateEvent 在一个事务里创建事件和它的全部通知
	CreateEvent(ctx context.Context, evt Event, notifications []Notification) (Event, error)

	// GetEventsByIDs 批量查询事件，worker 拿到到期通知后回填父事件
	GetEventsByIDs(ctx context.Context, ids []int64) (map[int64]Event, error)
	// FindOpenEventByParties 在给定事件类型里查找唯一的 (from, to, for) 开放事件
	FindOpenEventByParties(ctx context.Context, types []string, from, to, forEmail string) (Event, error)
	// FindEventsByFrom 按发起人查询全部事件，报表用
	FindEventsByFrom(ctx context.Context, from string) ([]Event, error)
	// FindResolvedOpenEvents 查找已无 SETUPPED 子通知却还开放的事件
	FindResolvedOpenEvents(ctx context.Context, limit int) ([]Event, error)
	// CloseEventIfResolved 仅当没有 SETUPPED 子通知时才把事件置为 CLOSED
	CloseEventIfResolved(ctx context.Context, eventID int64) (bool, error)

	// FindDueNotifications 查询已到发送时间的 SETUPPED 通知
	FindDueNotifications(ctx context.Context, now int64, limit int) ([]Notification, error)
	NotificationsByEvent(ctx context.Context, eventID int64) ([]Notification, error)
	// MarkNotificationSent 状态从 SETUPPED 迁移到 SENT，同时记录实际发送时间
	MarkNotificationSent(ctx context.Context, id int64, sentAt int64) error
	// RecordDispatchFailure 重试计数加一，达到上限后置为 FAILED 终态
	RecordDispatchFailure(ctx context.Context, id int64, maxRetries int8) error
	// CancelOpenNotifications 把事件下所有 SETUPPED 通知置为 SKIPPED 并关闭事件
	CancelOpenNotifications(ctx context.Context, eventID int64) error
}

// Event 事件记录表
type Event struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	Type          string `gorm:"type:ENUM('TM_NOTIFICATION','REVIEWER_NEW_NOTIFICATION','REVIEWER_REMINDER_NOTIFICATION');NOT NULL;index:idx_parties,priority:1;comment:'事件类型'"`
	FromEmail     string `gorm:"type:VARCHAR(255);NOT NULL;index:idx_parties,priority:2;comment:'发起人邮箱'"`
	FromName      string `gorm:"type:VARCHAR(255);NOT NULL"`
	ToEmail       string `gorm:"type:VARCHAR(255);NOT NULL;index:idx_parties,priority:3"`
	ToName        string `gorm:"type:VARCHAR(255);NOT NULL"`
	ForEmail      string `gorm:"type:VARCHAR(255);index:idx_parties,priority:4;comment:'被评审人邮箱，可为空'"`
	ForName       string `gorm:"type:VARCHAR(255)"`
	StartDate     int64  `gorm:"comment:'评审窗口开始时间'"`
	EndDate       int64  `gorm:"comment:'评审窗口截止时间，0 表示未设置'"`
	Status        string `gorm:"type:ENUM('OPEN','CLOSED');NOT NULL;DEFAULT:'OPEN';index:idx_parties,priority:5"`
	CorrelationID string `gorm:"type:VARCHAR(64);comment:'跨服务追踪标识'"`
	ContentJSON   string `gorm:"column:content_json;type:TEXT;comment:'只由消息生成方解释的业务负载'"`
	Ctime         int64
	Utime         int64
}

// Notification 通知记录表
type Notification struct {
	ID             int64  `gorm:"primaryKey;autoIncrement"`
	EventID        int64  `gorm:"NOT NULL;index:idx_event_id;comment:'所属事件'"`
	Status         string `gorm:"type:ENUM('SETUPPED','SENT','SKIPPED','FAILED');NOT NULL;DEFAULT:'SETUPPED';index:idx_due,priority:1"`
	Channel        string `gorm:"type:ENUM('EMAIL','TEAMS');NOT NULL"`
	ChannelAddress string `gorm:"type:VARCHAR(255);NOT NULL;comment:'邮箱地址或 webhook 地址'"`
	SendTime       int64  `gorm:"index:idx_due,priority:2;comment:'计划发送时间'"`
	Attempt        int    `gorm:"type:INT;NOT NULL;DEFAULT:0;comment:'0 为立即发送，1..k 为催办序号'"`
	Type           string `gorm:"type:ENUM('REVIEWER_NOTIFICATION','REMINDER_NOTIFICATION');NOT NULL"`
	RetryCount     int8   `gorm:"type:TINYINT;NOT NULL;DEFAULT:0;comment:'当前投递失败次数'"`
	Ctime          int64
	Utime          int64
}

type eventDAO struct {
	db *egorm.Component
}

// NewEventDAO 创建事件DAO实例
func NewEventDAO(db *egorm.Component) EventDAO {
	return &eventDAO{
		db: db,
	}
}

func (d *eventDAO) CreateEvent(ctx context.Context, evt Event, notifications []Notification) (Event, error) {
	now := time.Now().UnixMilli()
	evt.Ctime, evt.Utime = now, now

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&evt).Error; err != nil {
			return fmt.Errorf("%w: %w", errs.ErrCreateEventFailed, err)
		}
		for i := range notifications {
			notifications[i].EventID = evt.ID
			notifications[i].Ctime, notifications[i].Utime = now, now
		}
		if err := tx.Create(&notifications).Error; err != nil {
			return fmt.Errorf("%w: %w", errs.ErrCreateEventFailed, err)
		}
		return nil
	})
	return evt, err
}

func (d *eventDAO) GetEventsByIDs(ctx context.Context, ids []int64) (map[int64]Event, error) {
	var events []Event
	err := d.db.WithContext(ctx).Where("id IN ?", ids).Find(&events).Error
	if err != nil {
		return nil, err
	}
	eventMap := make(map[int64]Event, len(events))
	for i := range events {
		eventMap[events[i].ID] = events[i]
	}
	return eventMap, nil
}

func (d *eventDAO) FindOpenEventByParties(ctx context.Context, types []string, from, to, forEmail string) (Event, error) {
	var evt Event
	err := d.db.WithContext(ctx).
		Where("type IN ? AND from_email = ? AND to_email = ? AND for_email = ? AND status = ?",
			types, from, to, forEmail, string(statusOpen)).
		First(&evt).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Event{}, fmt.Errorf("%w: from = %q, to = %q, for = %q", errs.ErrEventNotFound, from, to, forEmail)
	}
	return evt, err
}

func (d *eventDAO) FindEventsByFrom(ctx context.Context, from string) ([]Event, error) {
	var events []Event
	err := d.db.WithContext(ctx).Where("from_email = ?", from).Order("id").Find(&events).Error
	return events, err
}

func (d *eventDAO) FindResolvedOpenEvents(ctx context.Context, limit int) ([]Event, error) {
	var events []Event
	err := d.db.WithContext(ctx).
		Where("status = ?", string(statusOpen)).
		Where("NOT EXISTS (SELECT 1 FROM `notifications` WHERE `notifications`.`event_id` = `events`.`id` AND `notifications`.`status` = ?)",
			string(statusSetupped)).
		Limit(limit).
		Find(&events).Error
	return events, err
}

func (d *eventDAO) CloseEventIfResolved(ctx context.Context, eventID int64) (bool, error) {
	res := d.db.WithContext(ctx).Model(&Event{}).
		Where("id = ? AND status = ?", eventID, string(statusOpen)).
		Where("NOT EXISTS (SELECT 1 FROM `notifications` WHERE `notifications`.`event_id` = ? AND `notifications`.`status` = ?)",
			eventID, string(statusSetupped)).
		Updates(map[string]any{
			"status": string(statusClosed),
			"utime":  time.Now().UnixMilli(),
		})
	return res.RowsAffected > 0, res.Error
}

func (d *eventDAO) FindDueNotifications(ctx context.Context, now int64, limit int) ([]Notification, error) {
	var notifications []Notification
	err := d.db.WithContext(ctx).
		Where("status = ? AND send_time <= ?", string(statusSetupped), now).
		Order("send_time").
		Limit(limit).
		Find(&notifications).Error
	return notifications, err
}

func (d *eventDAO) NotificationsByEvent(ctx context.Context, eventID int64) ([]Notification, error) {
	var notifications []Notification
	err := d.db.WithContext(ctx).Where("event_id = ?", eventID).Order("attempt").Find(&notifications).Error
	return notifications, err
}

func (d *eventDAO) MarkNotificationSent(ctx context.Context, id int64, sentAt int64) error {
	res := d.db.WithContext(ctx).Model(&Notification{}).
		Where("id = ? AND status = ?", id, string(statusSetupped)).
		Updates(map[string]any{
			"status":    string(statusSent),
			"send_time": sentAt,
			"utime":     time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	// 并发下可能已被别的写者迁移走，CAS 失败要暴露出来
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: id = %d", errs.ErrNotificationNotFound, id)
	}
	return nil
}

func (d *eventDAO) RecordDispatchFailure(ctx context.Context, id int64, maxRetries int8) error {
	// SET 子句按书写顺序求值，状态判定写在自增之前，用的是原始计数加一
	return d.db.WithContext(ctx).Exec(
		"UPDATE `notifications` SET `status` = IF(`retry_count` + 1 >= ?, 'FAILED', `status`), `retry_count` = `retry_count` + 1, `utime` = ? WHERE id = ? AND status = ?",
		maxRetries, time.Now().UnixMilli(), id, string(statusSetupped),
	).Error
}

func (d *eventDAO) CancelOpenNotifications(ctx context.Context, eventID int64) error {
	now := time.Now().UnixMilli()
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&Notification{}).
			Where("event_id = ? AND status = ?", eventID, string(statusSetupped)).
			Updates(map[string]any{
				"status": string(statusSkipped),
				"utime":  now,
			}).Error; err != nil {
			return err
		}
		res := tx.Model(&Event{}).
			Where("id = ? AND status = ?", eventID, string(statusOpen)).
			Updates(map[string]any{
				"status": string(statusClosed),
				"utime":  now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: id = %d", errs.ErrEventNotFound, eventID)
		}
		return nil
	})
}

// DAO 层内部使用的状态字面量，避免反向依赖领域包
type daoStatus string

const (
	statusOpen     daoStatus = "OPEN"
	statusClosed   daoStatus = "CLOSED"
	statusSetupped daoStatus = "SETUPPED"
	statusSent     daoStatus = "SENT"
	statusSkipped  daoStatus = "SKIPPED"
)
