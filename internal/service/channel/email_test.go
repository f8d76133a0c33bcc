package channel

import (
	"context"
	"errors"
	"testing"

	"gitee.com/flycash/review-reminder/internal/domain"
	"gitee.com/flycash/review-reminder/internal/errs"
	repomocks "gitee.com/flycash/review-reminder/internal/repository/mocks"
	"gitee.com/flycash/review-reminder/internal/service/message"

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

func reminderEvent() domain.Event {
	return domain.Event{
		ID:      11,
		Type:    domain.EventTypeReviewerReminder,
		ToName:  "Alice Reviewer",
		ForName: "Bob Talent",
		Content: map[string]any{
			"applicationLink": "https://review.example.com/form/42",
		},
	}
}

func TestEmailProcessor_Send(t *testing.T) {
	t.Parallel()

	notification := domain.Notification{
		ID:             101,
		EventID:        11,
		Channel:        domain.ChannelEmail,
		ChannelAddress: "alice@example.com",
		Attempt:        1,
	}

	t.Run("投递成功后置为已发送", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockEventRepository(ctrl)
		repo.EXPECT().MarkNotificationSent(gomock.Any(), int64(101), gomock.Any()).Return(nil)

		mailer := &fakeMailer{}
		processor := NewEmailProcessor(mailer, message.NewTemplateGenerator(), repo)

		err := processor.Send(t.Context(), reminderEvent(), notification)
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", mailer.to)
		assert.Contains(t, mailer.subject, "Bob Talent")
		assert.Contains(t, mailer.body, "friendly reminder")
	})

	t.Run("投递失败不改状态", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockEventRepository(ctrl)

		mailer := &fakeMailer{deliverErr: errors.New("smtp unreachable")}
		processor := NewEmailProcessor(mailer, message.NewTemplateGenerator(), repo)

		err := processor.Send(t.Context(), reminderEvent(), notification)
		assert.ErrorIs(t, err, errs.ErrSendNotificationFailed)
	})

	t.Run("生成正文失败不投递", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockEventRepository(ctrl)

		mailer := &fakeMailer{}
		processor := NewEmailProcessor(mailer, message.NewTemplateGenerator(), repo)

		event := reminderEvent()
		event.Type = domain.EventType("UNKNOWN")
		err := processor.Send(t.Context(), event, notification)
		assert.ErrorIs(t, err, errs.ErrSendNotificationFailed)
		assert.Empty(t, mailer.to)
	})
}

func TestEmailProcessor_CanProcess(t *testing.T) {
	t.Parallel()

	processor := NewEmailProcessor(&fakeMailer{}, message.NewTemplateGenerator(), nil)
	assert.True(t, processor.CanProcess(domain.ChannelEmail))
	assert.False(t, processor.CanProcess(domain.ChannelTeams))
}
