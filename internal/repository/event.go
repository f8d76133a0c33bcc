package repository

import (
	"context"
	"encoding/json"
	"time"

	"gitee.com/flycash/review-reminder/internal/domain"
	"gitee.com/flycash/review-reminder/internal/repository/dao"

	"github.com/ecodeclub/ekit/slice"
)

//go:generate mockgen -source=./event.go -destination=./mocks/event.mock.go -package=repomocks -typed EventRepository

// EventRepository 事件仓储接口
type EventRepository interface {
	// Create 原子地创建一个事件和它的全部通知
	Create(ctx context.Context, event domain.Event) (domain.Event, error)

	// FindDueNotifications 查询已到发送时间的通知，连同父事件返回
	FindDueNotifications(ctx context.Context, now time.Time, limit int) ([]domain.DueNotification, error)

	// FindOpenReviewerEvent 查找评审人相关类型下唯一的开放事件
	FindOpenReviewerEvent(ctx context.Context, from, to, forEmail string) (domain.Event, error)

	// FindEventsByInitiator 按发起人邮箱查询全部事件（含通知），报表用
	FindEventsByInitiator(ctx context.Context, from string) ([]domain.Event, error)

	// FindResolvedOpenEvents 查找所有子通知均已进入终态却仍开放的事件
	FindResolvedOpenEvents(ctx context.Context, limit int) ([]domain.Event, error)

	NotificationsByEvent(ctx context.Context, eventID int64) ([]domain.Notification, error)

	// MarkNotificationSent SETUPPED -> SENT，写入实际发送时间
	MarkNotificationSent(ctx context.Context, id int64, sentAt time.Time) error

	// RecordDispatchFailure 投递失败计数加一，达到上限转入 FAILED 终态
	RecordDispatchFailure(ctx context.Context, id int64, maxRetries int8) error

	// CancelOpenNotifications SETUPPED -> SKIPPED 并关闭事件，单事务
	CancelOpenNotifications(ctx context.Context, eventID int64) error

	// CloseEventIfResolved 没有 SETUPPED 子通知时关闭事件，返回是否真的关闭了
	CloseEventIfResolved(ctx context.Context, eventID int64) (bool, error)
}

type eventRepository struct {
	dao dao.EventDAO
}

// NewEventRepository 创建事件仓储实例
func NewEventRepository(d dao.EventDAO) EventRepository {
	return &eventRepository{
		dao: d,
	}
}

func (r *eventRepository) Create(ctx context.Context, event domain.Event) (domain.Event, error) {
	notifications := slice.Map(event.Notifications, func(_ int, src domain.Notification) dao.Notification {
		return r.toNotificationEntity(src)
	})
	created, err := r.dao.CreateEvent(ctx, r.toEntity(event), notifications)
	if err != nil {
		return domain.Event{}, err
	}
	result := r.toDomain(created)
	result.Notifications, err = r.NotificationsByEvent(ctx, created.ID)
	if err != nil {
		return domain.Event{}, err
	}
	return result, nil
}

func (r *eventRepository) FindDueNotifications(ctx context.Context, now time.Time, limit int) ([]domain.DueNotification, error) {
	notifications, err := r.dao.FindDueNotifications(ctx, now.UnixMilli(), limit)
	if err != nil {
		return nil, err
	}
	if len(notifications) == 0 {
		return nil, nil
	}

	eventIDs := make([]int64, 0, len(notifications))
	seen := make(map[int64]struct{}, len(notifications))
	for i := range notifications {
		if _, ok := seen[notifications[i].EventID]; !ok {
			seen[notifications[i].EventID] = struct{}{}
			eventIDs = append(eventIDs, notifications[i].EventID)
		}
	}
	eventMap, err := r.dao.GetEventsByIDs(ctx, eventIDs)
	if err != nil {
		return nil, err
	}

	due := make([]domain.DueNotification, 0, len(notifications))
	for i := range notifications {
		due = append(due, domain.DueNotification{
			Notification: r.toNotificationDomain(notifications[i]),
			Event:        r.toDomain(eventMap[notifications[i].EventID]),
		})
	}
	return due, nil
}

func (r *eventRepository) FindOpenReviewerEvent(ctx context.Context, from, to, forEmail string) (domain.Event, error) {
	types := slice.Map(domain.ReviewerEventTypes(), func(_ int, src domain.EventType) string {
		return string(src)
	})
	evt, err := r.dao.FindOpenEventByParties(ctx, types, from, to, forEmail)
	if err != nil {
		return domain.Event{}, err
	}
	result := r.toDomain(evt)
	result.Notifications, err = r.NotificationsByEvent(ctx, evt.ID)
	if err != nil {
		return domain.Event{}, err
	}
	return result, nil
}

func (r *eventRepository) FindEventsByInitiator(ctx context.Context, from string) ([]domain.Event, error) {
	entities, err := r.dao.FindEventsByFrom(ctx, from)
	if err != nil {
		return nil, err
	}
	events := make([]domain.Event, 0, len(entities))
	for i := range entities {
		evt := r.toDomain(entities[i])
		evt.Notifications, err = r.NotificationsByEvent(ctx, entities[i].ID)
		if err != nil {
			return nil, err
		}
		events = append(events, evt)
	}
	return events, nil
}

func (r *eventRepository) FindResolvedOpenEvents(ctx context.Context, limit int) ([]domain.Event, error) {
	entities, err := r.dao.FindResolvedOpenEvents(ctx, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(_ int, src dao.Event) domain.Event {
		return r.toDomain(src)
	}), nil
}

func (r *eventRepository) NotificationsByEvent(ctx context.Context, eventID int64) ([]domain.Notification, error) {
	entities, err := r.dao.NotificationsByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(_ int, src dao.Notification) domain.Notification {
		return r.toNotificationDomain(src)
	}), nil
}

func (r *eventRepository) MarkNotificationSent(ctx context.Context, id int64, sentAt time.Time) error {
	return r.dao.MarkNotificationSent(ctx, id, sentAt.UnixMilli())
}

func (r *eventRepository) RecordDispatchFailure(ctx context.Context, id int64, maxRetries int8) error {
	return r.dao.RecordDispatchFailure(ctx, id, maxRetries)
}

func (r *eventRepository) CancelOpenNotifications(ctx context.Context, eventID int64) error {
	return r.dao.CancelOpenNotifications(ctx, eventID)
}

func (r *eventRepository) CloseEventIfResolved(ctx context.Context, eventID int64) (bool, error) {
	return r.dao.CloseEventIfResolved(ctx, eventID)
}

// toEntity 将领域对象转换为DAO实体
func (r *eventRepository) toEntity(event domain.Event) dao.Event {
	content, _ := event.MarshalContent()
	var endDate int64
	if event.HasEndDate() {
		endDate = event.EndDate.UnixMilli()
	}
	return dao.Event{
		ID:            event.ID,
		Type:          string(event.Type),
		FromEmail:     event.From,
		FromName:      event.FromName,
		ToEmail:       event.To,
		ToName:        event.ToName,
		ForEmail:      event.For,
		ForName:       event.ForName,
		StartDate:     event.StartDate.UnixMilli(),
		EndDate:       endDate,
		Status:        string(event.Status),
		CorrelationID: event.CorrelationID,
		ContentJSON:   content,
	}
}

func (r *eventRepository) toDomain(evt dao.Event) domain.Event {
	var content map[string]any
	if evt.ContentJSON != "" {
		_ = json.Unmarshal([]byte(evt.ContentJSON), &content)
	}
	var endDate time.Time
	if evt.EndDate > 0 {
		endDate = time.UnixMilli(evt.EndDate)
	}
	return domain.Event{
		ID:            evt.ID,
		Type:          domain.EventType(evt.Type),
		From:          evt.FromEmail,
		FromName:      evt.FromName,
		To:            evt.ToEmail,
		ToName:        evt.ToName,
		For:           evt.ForEmail,
		ForName:       evt.ForName,
		StartDate:     time.UnixMilli(evt.StartDate),
		EndDate:       endDate,
		Status:        domain.EventStatus(evt.Status),
		CorrelationID: evt.CorrelationID,
		Content:       content,
		CreatedAt:     time.UnixMilli(evt.Ctime),
	}
}

func (r *eventRepository) toNotificationEntity(n domain.Notification) dao.Notification {
	return dao.Notification{
		ID:             n.ID,
		EventID:        n.EventID,
		Status:         string(n.Status),
		Channel:        string(n.Channel),
		ChannelAddress: n.ChannelAddress,
		SendTime:       n.SendTime.UnixMilli(),
		Attempt:        n.Attempt,
		Type:           string(n.Type),
		RetryCount:     n.RetryCount,
	}
}

func (r *eventRepository) toNotificationDomain(n dao.Notification) domain.Notification {
	return domain.Notification{
		ID:             n.ID,
		EventID:        n.EventID,
		Status:         domain.SendStatus(n.Status),
		Channel:        domain.Channel(n.Channel),
		ChannelAddress: n.ChannelAddress,
		SendTime:       time.UnixMilli(n.SendTime),
		Attempt:        n.Attempt,
		Type:           domain.NotificationType(n.Type),
		RetryCount:     n.RetryCount,
	}
}
