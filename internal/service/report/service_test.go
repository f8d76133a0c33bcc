package report

import (
	"context"
	"testing"
	"time"

	"gitee.com/flycash/review-reminder/internal/domain"
	"gitee.com/flycash/review-reminder/internal/errs"
	repomocks "gitee.com/flycash/review-reminder/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeMailer struct {
	deliverErr error

	to      string
	subject string
	body    string
}

func (f *fakeMailer) Deliver(_ context.Context, to, subject, body string, _ bool) error {
	f.to = to
	f.subject = subject
	f.body = body
	return f.deliverErr
}

func TestReportService_Send(t *testing.T) {
	t.Parallel()

	t.Run("汇总事件并发送报表", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockEventRepository(ctrl)

		event := domain.Event{
			ID:      1,
			Type:    domain.EventTypeReviewerReminder,
			Status:  domain.EventStatusOpen,
			To:      "alice@example.com",
			ToName:  "Alice Reviewer",
			For:     "bob@example.com",
			ForName: "Bob Talent",
			EndDate: time.Date(2025, time.January, 11, 0, 0, 0, 0, time.UTC),
		}
		notifications := []domain.Notification{
			{
				ID:       10,
				Status:   domain.SendStatusSent,
				Channel:  domain.ChannelEmail,
				SendTime: time.Date(2025, time.January, 4, 12, 0, 0, 0, time.UTC),
				Attempt:  1,
			},
			{
				ID:       11,
				Status:   domain.SendStatusSetupped,
				Channel:  domain.ChannelEmail,
				SendTime: time.Date(2025, time.January, 11, 10, 0, 0, 0, time.UTC),
				Attempt:  2,
			},
		}
		gomock.InOrder(
			repo.EXPECT().FindEventsByInitiator(gomock.Any(), "tm@example.com").
				Return([]domain.Event{event}, nil),
			repo.EXPECT().NotificationsByEvent(gomock.Any(), int64(1)).
				Return(notifications, nil),
		)

		mailer := &fakeMailer{}
		err := NewService(repo, mailer).Send(t.Context(), "tm@example.com")
		require.NoError(t, err)

		assert.Equal(t, "tm@example.com", mailer.to)
		assert.Contains(t, mailer.subject, "Review notification report")
		assert.Contains(t, mailer.body, "REVIEWER_REMINDER_NOTIFICATION")
		assert.Contains(t, mailer.body, "alice@example.com")
		assert.Contains(t, mailer.body, "2025-01-11")
		assert.Contains(t, mailer.body, "SETUPPED")
	})

	t.Run("名下没有事件", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockEventRepository(ctrl)
		repo.EXPECT().FindEventsByInitiator(gomock.Any(), "nobody@example.com").
			Return(nil, nil)

		err := NewService(repo, &fakeMailer{}).Send(t.Context(), "nobody@example.com")
		assert.ErrorIs(t, err, errs.ErrEventNotFound)
	})

	t.Run("缺少收件邮箱", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockEventRepository(ctrl)

		err := NewService(repo, &fakeMailer{}).Send(t.Context(), "")
		assert.ErrorIs(t, err, errs.ErrInvalidParameter)
	})
}
