package channel

import (
	"context"
	"fmt"
	"time"

	"gitee.com/flycash/review-reminder/internal/domain"
	"gitee.com/flycash/review-reminder/internal/errs"
	"gitee.com/flycash/review-reminder/internal/repository"
	"gitee.com/flycash/review-reminder/internal/service/message"
)

// Mailer 屏蔽具体邮件网关。html 为 true 时正文按 text/html 投递。
type Mailer interface {
	Deliver(ctx context.Context, to, subject, body string, html bool) error
}

// emailProcessor 邮件渠道：生成正文、投递、落库置为 SENT。
// 状态写入放在这里，调度方不直接改通知状态。
type emailProcessor struct {
	mailer    Mailer
	generator message.Generator
	repo      repository.EventRepository
	nowFunc   func() time.Time
}

func NewEmailProcessor(mailer Mailer, generator message.Generator, repo repository.EventRepository) Processor {
	return &emailProcessor{
		mailer:    mailer,
		generator: generator,
		repo:      repo,
		nowFunc:   time.Now,
	}
}

func (p *emailProcessor) CanProcess(channel domain.Channel) bool {
	return channel == domain.ChannelEmail
}

func (p *emailProcessor) Send(ctx context.Context, event domain.Event, notification domain.Notification) error {
	body, err := p.generator.Body(ctx, event, notification)
	if err != nil {
		return fmt.Errorf("%w: 生成正文失败: %w", errs.ErrSendNotificationFailed, err)
	}
	subject := p.subject(event)
	if err := p.mailer.Deliver(ctx, notification.ChannelAddress, subject, body, false); err != nil {
		return fmt.Errorf("%w: 投递邮件失败: %w", errs.ErrSendNotificationFailed, err)
	}
	return p.repo.MarkNotificationSent(ctx, notification.ID, p.nowFunc())
}

func (p *emailProcessor) subject(event domain.Event) string {
	switch event.Type {
	case domain.EventTypeTMNotification:
		return fmt.Sprintf("Performance review of %s", event.ForName)
	case domain.EventTypeReviewerNew:
		return fmt.Sprintf("Feedback request: performance review of %s", event.ForName)
	case domain.EventTypeReviewerReminder:
		return fmt.Sprintf("Reminder: feedback for performance review of %s", event.ForName)
	default:
		return "Performance review notification"
	}
}
