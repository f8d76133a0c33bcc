package report

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gitee.com/flycash/review-reminder/internal/domain"
	"gitee.com/flycash/review-reminder/internal/errs"
	"gitee.com/flycash/review-reminder/internal/repository"
	"gitee.com/flycash/review-reminder/internal/service/channel"

	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
)

// Service 把某个发起人名下的全部事件汇总成报表，发到发起人邮箱
type Service interface {
	Send(ctx context.Context, email string) error
}

type reportService struct {
	repo    repository.EventRepository
	mailer  channel.Mailer
	logger  *elog.Component
	nowFunc func() time.Time
}

func NewService(repo repository.EventRepository, mailer channel.Mailer) Service {
	return &reportService{
		repo:    repo,
		mailer:  mailer,
		logger:  elog.DefaultLogger.With(elog.String("component", "ReportService")),
		nowFunc: time.Now,
	}
}

type eventView struct {
	ID            int64              `json:"id"`
	Type          string             `json:"type"`
	Status        string             `json:"status"`
	To            string             `json:"to"`
	ToName        string             `json:"toName"`
	For           string             `json:"for,omitempty"`
	ForName       string             `json:"forName,omitempty"`
	EndDate       string             `json:"endDate,omitempty"`
	CorrelationID string             `json:"correlationId,omitempty"`
	Notifications []notificationView `json:"notifications"`
}

type notificationView struct {
	ID       int64  `json:"id"`
	Status   string `json:"status"`
	Channel  string `json:"channel"`
	SendTime string `json:"sendDateTime"`
	Attempt  int    `json:"attempt"`
}

func (s *reportService) Send(ctx context.Context, email string) error {
	if email == "" {
		return fmt.Errorf("%w: 缺少收件邮箱", errs.ErrInvalidParameter)
	}
	events, err := s.repo.FindEventsByInitiator(ctx, email)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		return fmt.Errorf("%w: %s 名下没有任何事件", errs.ErrEventNotFound, email)
	}

	views := make([]eventView, 0, len(events))
	for _, event := range events {
		notifications, err := s.repo.NotificationsByEvent(ctx, event.ID)
		if err != nil {
			return err
		}
		views = append(views, s.toView(event, notifications))
	}

	body, err := json.MarshalIndent(views, "", "  ")
	if err != nil {
		return fmt.Errorf("序列化报表失败: %w", err)
	}
	now := s.nowFunc()
	subject := fmt.Sprintf("Review notification report %s", now.Format(time.DateOnly))
	if err := s.mailer.Deliver(ctx, email, subject, string(body), false); err != nil {
		return fmt.Errorf("%w: 投递报表失败: %w", errs.ErrSendNotificationFailed, err)
	}
	s.logger.Info("报表已发送",
		elog.String("to", email),
		elog.Int("events", len(events)))
	return nil
}

func (s *reportService) toView(event domain.Event, notifications []domain.Notification) eventView {
	view := eventView{
		ID:            event.ID,
		Type:          string(event.Type),
		Status:        string(event.Status),
		To:            event.To,
		ToName:        event.ToName,
		For:           event.For,
		ForName:       event.ForName,
		CorrelationID: event.CorrelationID,
		Notifications: slice.Map(notifications, func(_ int, src domain.Notification) notificationView {
			return notificationView{
				ID:       src.ID,
				Status:   string(src.Status),
				Channel:  string(src.Channel),
				SendTime: src.SendTime.Format(time.RFC3339),
				Attempt:  src.Attempt,
			}
		}),
	}
	if event.HasEndDate() {
		view.EndDate = event.EndDate.Format(time.DateOnly)
	}
	return view
}
