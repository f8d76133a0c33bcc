package event

import (
	"context"
	"fmt"
	"time"

	"gitee.com/flycash/review-reminder/internal/domain"
	"gitee.com/flycash/review-reminder/internal/errs"
	"gitee.com/flycash/review-reminder/internal/repository"
	"gitee.com/flycash/review-reminder/internal/service/schedule"

	"github.com/gofrs/uuid"
	"github.com/gotomicro/ego/core/elog"
)

// TMEventRequest 通知 TM 启动绩效评审
type TMEventRequest struct {
	From            domain.Person
	To              domain.Person
	For             domain.Person
	StartDate       time.Time
	EndDate         time.Time
	ApplicationLink string
	CorrelationID   string
}

// ReviewerEventRequest 给一批评审人建立首次通知和催办计划
type ReviewerEventRequest struct {
	From            domain.Person
	For             domain.Person
	Reviewers       []domain.Person
	EndDate         time.Time
	// 0 表示未指定，取配置默认值
	Attempts        int
	ApplicationLink string
	CorrelationID   string
}

// DeleteReviewerRequest 按三元组定位要撤销的评审人事件
type DeleteReviewerRequest struct {
	From string
	To   string
	For  string
}

type Service interface {
	CreateTMEvent(ctx context.Context, req TMEventRequest) (domain.Event, error)
	CreateReviewerEvent(ctx context.Context, req ReviewerEventRequest) ([]domain.Event, error)
	DeleteReviewerNotifications(ctx context.Context, req DeleteReviewerRequest) error
}

type eventService struct {
	repo            repository.EventRepository
	defaultAttempts int
	logger          *elog.Component
	nowFunc         func() time.Time
}

func NewService(repo repository.EventRepository, defaultAttempts int) Service {
	if defaultAttempts < 1 {
		defaultAttempts = 1
	}
	return &eventService{
		repo:            repo,
		defaultAttempts: defaultAttempts,
		logger:          elog.DefaultLogger.With(elog.String("component", "EventService")),
		nowFunc:         time.Now,
	}
}

func (s *eventService) CreateTMEvent(ctx context.Context, req TMEventRequest) (domain.Event, error) {
	for _, p := range []struct {
		role   string
		person domain.Person
	}{
		{"from", req.From},
		{"to", req.To},
		{"for", req.For},
	} {
		if err := p.person.Validate(); err != nil {
			return domain.Event{}, fmt.Errorf("%s 不合法: %w", p.role, err)
		}
	}
	now := s.nowFunc()
	if err := s.validateDates(req.StartDate, req.EndDate, now); err != nil {
		return domain.Event{}, err
	}

	content := map[string]any{
		"applicationLink": req.ApplicationLink,
	}
	if !req.EndDate.IsZero() {
		content["endDate"] = req.EndDate.Format(time.DateOnly)
	}
	created, err := s.repo.Create(ctx, domain.Event{
		Type:          domain.EventTypeTMNotification,
		From:          req.From.Email,
		FromName:      req.From.Name,
		To:            req.To.Email,
		ToName:        req.To.Name,
		For:           req.For.Email,
		ForName:       req.For.Name,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Status:        domain.EventStatusOpen,
		CorrelationID: s.correlationID(req.CorrelationID),
		Content:       content,
		Notifications: []domain.Notification{
			{
				Status:         domain.SendStatusSetupped,
				Channel:        domain.ChannelEmail,
				ChannelAddress: req.To.Email,
				SendTime:       now,
				Attempt:        0,
				Type:           domain.NotificationTypeReviewer,
			},
		},
	})
	if err != nil {
		return domain.Event{}, err
	}
	s.logger.Info("创建了 TM 通知事件",
		elog.Int64("eventID", created.ID),
		elog.String("to", created.To))
	return created, nil
}

func (s *eventService) CreateReviewerEvent(ctx context.Context, req ReviewerEventRequest) ([]domain.Event, error) {
	if err := req.From.Validate(); err != nil {
		return nil, fmt.Errorf("from 不合法: %w", err)
	}
	if err := req.For.Validate(); err != nil {
		return nil, fmt.Errorf("for 不合法: %w", err)
	}
	if len(req.Reviewers) == 0 {
		return nil, fmt.Errorf("%w: 评审人列表为空", errs.ErrInvalidParameter)
	}
	for i, reviewer := range req.Reviewers {
		if err := reviewer.Validate(); err != nil {
			return nil, fmt.Errorf("第 %d 个评审人不合法: %w", i+1, err)
		}
	}
	now := s.nowFunc()
	// 截止日必须是严格的未来日期，这样催办计划至少有一个可用日
	if !truncateToDay(req.EndDate).After(truncateToDay(now)) {
		return nil, fmt.Errorf("%w: 截止日期 %s 必须晚于今天",
			errs.ErrInvalidParameter, req.EndDate.Format(time.DateOnly))
	}

	attempts := req.Attempts
	if attempts < 1 {
		attempts = s.defaultAttempts
	}
	slots, err := schedule.Plan(now, req.EndDate, attempts)
	if err != nil {
		return nil, err
	}

	correlationID := s.correlationID(req.CorrelationID)
	// 所有评审人共享同一份事件负载
	content := map[string]any{
		"applicationLink": req.ApplicationLink,
		"attempts":        attempts,
		"endDate":         req.EndDate.Format(time.DateOnly),
	}

	events := make([]domain.Event, 0, len(req.Reviewers)*2)
	for _, reviewer := range req.Reviewers {
		base := domain.Event{
			From:          req.From.Email,
			FromName:      req.From.Name,
			To:            reviewer.Email,
			ToName:        reviewer.Name,
			For:           req.For.Email,
			ForName:       req.For.Name,
			StartDate:     now,
			EndDate:       req.EndDate,
			Status:        domain.EventStatusOpen,
			CorrelationID: correlationID,
			Content:       content,
		}

		newEvent := base
		newEvent.Type = domain.EventTypeReviewerNew
		newEvent.Notifications = []domain.Notification{
			{
				Status:         domain.SendStatusSetupped,
				Channel:        domain.ChannelEmail,
				ChannelAddress: reviewer.Email,
				SendTime:       now,
				Attempt:        0,
				Type:           domain.NotificationTypeReviewer,
			},
		}
		created, err := s.repo.Create(ctx, newEvent)
		if err != nil {
			return nil, err
		}
		events = append(events, created)

		if len(slots) == 0 {
			continue
		}
		reminderEvent := base
		reminderEvent.Type = domain.EventTypeReviewerReminder
		reminderEvent.Notifications = make([]domain.Notification, 0, len(slots))
		for i, slot := range slots {
			reminderEvent.Notifications = append(reminderEvent.Notifications, domain.Notification{
				Status:         domain.SendStatusSetupped,
				Channel:        domain.ChannelEmail,
				ChannelAddress: reviewer.Email,
				SendTime:       slot,
				Attempt:        i + 1,
				Type:           domain.NotificationTypeReminder,
			})
		}
		created, err = s.repo.Create(ctx, reminderEvent)
		if err != nil {
			return nil, err
		}
		events = append(events, created)
	}
	s.logger.Info("创建了评审人事件",
		elog.String("correlationID", correlationID),
		elog.Int("reviewers", len(req.Reviewers)),
		elog.Int("slots", len(slots)))
	return events, nil
}

func (s *eventService) DeleteReviewerNotifications(ctx context.Context, req DeleteReviewerRequest) error {
	if req.From == "" || req.To == "" || req.For == "" {
		return fmt.Errorf("%w: from/to/for 均不能为空", errs.ErrInvalidParameter)
	}
	found, err := s.repo.FindOpenReviewerEvent(ctx, req.From, req.To, req.For)
	if err != nil {
		return err
	}
	if err := s.repo.CancelOpenNotifications(ctx, found.ID); err != nil {
		return err
	}
	s.logger.Info("撤销了评审人事件",
		elog.Int64("eventID", found.ID),
		elog.String("to", req.To))
	return nil
}

// validateDates startDate 不能早于今天，endDate 如果存在不能早于 startDate
func (s *eventService) validateDates(start, end, now time.Time) error {
	if start.IsZero() {
		return fmt.Errorf("%w: 缺少开始日期", errs.ErrInvalidParameter)
	}
	if truncateToDay(start).Before(truncateToDay(now)) {
		return fmt.Errorf("%w: 开始日期 %s 早于今天",
			errs.ErrInvalidParameter, start.Format(time.DateOnly))
	}
	if !end.IsZero() && truncateToDay(end).Before(truncateToDay(start)) {
		return fmt.Errorf("%w: 截止日期 %s 早于开始日期 %s",
			errs.ErrInvalidParameter, end.Format(time.DateOnly), start.Format(time.DateOnly))
	}
	return nil
}

func (s *eventService) correlationID(provided string) string {
	if provided != "" {
		return provided
	}
	id, err := uuid.NewV4()
	if err != nil {
		// uuid 生成失败几乎不可能发生，退化为空串也不影响主流程
		s.logger.Warn("生成 correlationID 失败", elog.FieldErr(err))
		return ""
	}
	return id.String()
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
