package message

import (
	"context"
	"fmt"
	"strings"

	"gitee.com/flycash/review-reminder/internal/domain"
	"gitee.com/flycash/review-reminder/internal/errs"
)

// Generator 生成通知正文。实现方可能依赖外部服务，失败会向上传播为发送失败。
type Generator interface {
	Body(ctx context.Context, event domain.Event, notification domain.Notification) (string, error)
}

// 催办语气的分档阈值
const (
	politeMaxAttempt    = 2
	insistentMaxAttempt = 4
)

// templateGenerator 基于模板的正文实现。
// 事件负载里的 applicationLink / endDate 等字段只在这里被解释。
type templateGenerator struct{}

func NewTemplateGenerator() Generator {
	return &templateGenerator{}
}

func (g *templateGenerator) Body(_ context.Context, event domain.Event, notification domain.Notification) (string, error) {
	switch event.Type {
	case domain.EventTypeTMNotification:
		return g.tmBody(event), nil
	case domain.EventTypeReviewerNew:
		return g.reviewerBody(event), nil
	case domain.EventTypeReviewerReminder:
		return g.reminderBody(event, notification), nil
	default:
		return "", fmt.Errorf("%w: 未知事件类型 %q", errs.ErrGenerateMessageFailed, event.Type)
	}
}

func (g *templateGenerator) tmBody(event domain.Event) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\n", event.ToName)
	fmt.Fprintf(&b, "It is time for the performance review of %s.\n", g.talentName(event))
	fmt.Fprintf(&b, "Please initiate the review here: %s\n", g.contentString(event, "applicationLink"))
	if deadline := g.contentString(event, "endDate"); deadline != "" {
		fmt.Fprintf(&b, "The review should be started no later than %s.\n", deadline)
	}
	b.WriteString("\nThank you.")
	return b.String()
}

func (g *templateGenerator) reviewerBody(event domain.Event) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\n", event.ToName)
	fmt.Fprintf(&b, "You have been asked to provide feedback for the performance review of %s.\n", g.talentName(event))
	fmt.Fprintf(&b, "The feedback form is available here: %s\n", g.contentString(event, "applicationLink"))
	if deadline := g.contentString(event, "endDate"); deadline != "" {
		fmt.Fprintf(&b, "The feedback must be submitted no later than %s.\n", deadline)
	}
	b.WriteString("\nThank you.")
	return b.String()
}

// reminderBody 随催办次数递进语气：先客气，再强调，最后警告升级
func (g *templateGenerator) reminderBody(event domain.Event, notification domain.Notification) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\n", event.ToName)
	switch {
	case notification.Attempt <= politeMaxAttempt:
		fmt.Fprintf(&b, "This is a friendly reminder to provide feedback for the performance review of %s.\n", g.talentName(event))
	case notification.Attempt <= insistentMaxAttempt:
		fmt.Fprintf(&b, "Feedback for the performance review of %s is still missing. Please complete it as soon as possible.\n", g.talentName(event))
	default:
		fmt.Fprintf(&b, "Despite multiple reminders, feedback for the performance review of %s has not been submitted. Further delay will be escalated to upper management.\n", g.talentName(event))
	}
	fmt.Fprintf(&b, "The feedback form is available here: %s\n", g.contentString(event, "applicationLink"))
	if deadline := g.contentString(event, "endDate"); deadline != "" {
		fmt.Fprintf(&b, "The feedback must be submitted no later than %s.\n", deadline)
	}
	b.WriteString("\nThank you.")
	return b.String()
}

func (g *templateGenerator) talentName(event domain.Event) string {
	if event.ForName != "" {
		return event.ForName
	}
	return "the talent"
}

func (g *templateGenerator) contentString(event domain.Event, key string) string {
	val, ok := event.Content[key]
	if !ok {
		return ""
	}
	s, _ := val.(string)
	return s
}
