package event

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

var testNow = time.Date(2025, time.January, 1, 9, 0, 0, 0, time.UTC)

func newService(repo *repomocks.MockEventRepository) *eventService {
	svc := NewService(repo, 3).(*eventService)
	svc.nowFunc = func() time.Time { return testNow }
	return svc
}

func validPerson(name, email string) domain.Person {
	return domain.Person{Name: name, Email: email}
}

func TestEventService_CreateTMEvent(t *testing.T) {
	t.Parallel()

	validReq := func() TMEventRequest {
		return TMEventRequest{
			From:            validPerson("HR Bot", "hr@example.com"),
			To:              validPerson("Tom Manager", "tm@example.com"),
			For:             validPerson("Bob Talent", "bob@example.com"),
			StartDate:       time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC),
			EndDate:         time.Date(2025, time.January, 20, 0, 0, 0, 0, time.UTC),
			ApplicationLink: "https://review.example.com/form/42",
		}
	}

	t.Run("创建单条立即通知", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockEventRepository(ctrl)

		var persisted domain.Event
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, event domain.Event) (domain.Event, error) {
				persisted = event
				event.ID = 1
				return event, nil
			})

		created, err := newService(repo).CreateTMEvent(t.Context(), validReq())
		require.NoError(t, err)
		assert.Equal(t, int64(1), created.ID)
		assert.Equal(t, domain.EventTypeTMNotification, persisted.Type)
		assert.Equal(t, domain.EventStatusOpen, persisted.Status)
		assert.NotEmpty(t, persisted.CorrelationID)

		require.Len(t, persisted.Notifications, 1)
		notification := persisted.Notifications[0]
		assert.Equal(t, domain.SendStatusSetupped, notification.Status)
		assert.Equal(t, domain.ChannelEmail, notification.Channel)
		assert.Equal(t, "tm@example.com", notification.ChannelAddress)
		assert.Equal(t, 0, notification.Attempt)
		assert.Equal(t, testNow, notification.SendTime)
	})

	t.Run("指定的 correlationID 原样保留", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockEventRepository(ctrl)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, event domain.Event) (domain.Event, error) {
				return event, nil
			})

		req := validReq()
		req.CorrelationID = "trace-42"
		created, err := newService(repo).CreateTMEvent(t.Context(), req)
		require.NoError(t, err)
		assert.Equal(t, "trace-42", created.CorrelationID)
	})

	invalidCases := []struct {
		name   string
		mutate func(req *TMEventRequest)
	}{
		{
			name:   "收件人邮箱不合法",
			mutate: func(req *TMEventRequest) { req.To.Email = "not-an-email" },
		},
		{
			name:   "发起人名字为空",
			mutate: func(req *TMEventRequest) { req.From.Name = "" },
		},
		{
			name:   "开始日期早于今天",
			mutate: func(req *TMEventRequest) { req.StartDate = testNow.AddDate(0, 0, -1) },
		},
		{
			name: "截止日期早于开始日期",
			mutate: func(req *TMEventRequest) {
				req.EndDate = req.StartDate.AddDate(0, 0, -1)
			},
		},
		{
			name:   "缺少开始日期",
			mutate: func(req *TMEventRequest) { req.StartDate = time.Time{} },
		},
	}
	for _, tc := range invalidCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			repo := repomocks.NewMockEventRepository(ctrl)

			req := validReq()
			tc.mutate(&req)
			_, err := newService(repo).CreateTMEvent(t.Context(), req)
			assert.ErrorIs(t, err, errs.ErrInvalidParameter)
		})
	}
}

func TestEventService_CreateReviewerEvent(t *testing.T) {
	t.Parallel()

	validReq := func() ReviewerEventRequest {
		return ReviewerEventRequest{
			From: validPerson("Tom Manager", "tm@example.com"),
			For:  validPerson("Bob Talent", "bob@example.com"),
			Reviewers: []domain.Person{
				validPerson("Alice Reviewer", "alice@example.com"),
				validPerson("Carol Reviewer", "carol@example.com"),
			},
			EndDate:         time.Date(2025, time.January, 11, 0, 0, 0, 0, time.UTC),
			Attempts:        3,
			ApplicationLink: "https://review.example.com/form/42",
		}
	}

	t.Run("每个评审人一条立即事件加一条催办事件", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockEventRepository(ctrl)

		var persisted []domain.Event
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(4).
			DoAndReturn(func(_ context.Context, event domain.Event) (domain.Event, error) {
				persisted = append(persisted, event)
				event.ID = int64(len(persisted))
				return event, nil
			})

		events, err := newService(repo).CreateReviewerEvent(t.Context(), validReq())
		require.NoError(t, err)
		require.Len(t, events, 4)

		// 立即事件在前，催办事件随后
		newEvent, reminder := persisted[0], persisted[1]
		assert.Equal(t, domain.EventTypeReviewerNew, newEvent.Type)
		require.Len(t, newEvent.Notifications, 1)
		assert.Equal(t, 0, newEvent.Notifications[0].Attempt)
		assert.Equal(t, domain.NotificationTypeReviewer, newEvent.Notifications[0].Type)
		assert.Equal(t, testNow, newEvent.Notifications[0].SendTime)

		assert.Equal(t, domain.EventTypeReviewerReminder, reminder.Type)
		require.Len(t, reminder.Notifications, 3)
		for i, notification := range reminder.Notifications {
			assert.Equal(t, i+1, notification.Attempt)
			assert.Equal(t, domain.NotificationTypeReminder, notification.Type)
			assert.Equal(t, "alice@example.com", notification.ChannelAddress)
		}
		// 最后一次催办固定在截止日 10 点
		last := reminder.Notifications[2].SendTime
		assert.Equal(t, time.Date(2025, time.January, 11, 10, 0, 0, 0, time.UTC), last)

		// 两个评审人共享同一个 correlationID 和同一份负载
		assert.Equal(t, persisted[0].CorrelationID, persisted[2].CorrelationID)
		assert.Equal(t, persisted[0].Content, persisted[2].Content)
		assert.Equal(t, "carol@example.com", persisted[2].To)
	})

	t.Run("未指定尝试次数时取配置默认值", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockEventRepository(ctrl)

		var reminders []domain.Event
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(2).
			DoAndReturn(func(_ context.Context, event domain.Event) (domain.Event, error) {
				if event.Type == domain.EventTypeReviewerReminder {
					reminders = append(reminders, event)
				}
				return event, nil
			})

		req := validReq()
		req.Reviewers = req.Reviewers[:1]
		req.Attempts = 0
		_, err := newService(repo).CreateReviewerEvent(t.Context(), req)
		require.NoError(t, err)
		require.Len(t, reminders, 1)
		// 配置默认 3 次
		assert.Len(t, reminders[0].Notifications, 3)
	})

	invalidCases := []struct {
		name   string
		mutate func(req *ReviewerEventRequest)
	}{
		{
			name:   "评审人列表为空",
			mutate: func(req *ReviewerEventRequest) { req.Reviewers = nil },
		},
		{
			name: "评审人邮箱不合法",
			mutate: func(req *ReviewerEventRequest) {
				req.Reviewers[0].Email = "broken"
			},
		},
		{
			name:   "截止日期是今天",
			mutate: func(req *ReviewerEventRequest) { req.EndDate = testNow },
		},
		{
			name: "截止日期在过去",
			mutate: func(req *ReviewerEventRequest) {
				req.EndDate = testNow.AddDate(0, 0, -3)
			},
		},
	}
	for _, tc := range invalidCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			repo := repomocks.NewMockEventRepository(ctrl)

			req := validReq()
			tc.mutate(&req)
			_, err := newService(repo).CreateReviewerEvent(t.Context(), req)
			assert.ErrorIs(t, err, errs.ErrInvalidParameter)
		})
	}
}

func TestEventService_DeleteReviewerNotifications(t *testing.T) {
	t.Parallel()

	t.Run("找到事件后撤销", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockEventRepository(ctrl)
		gomock.InOrder(
			repo.EXPECT().FindOpenReviewerEvent(gomock.Any(), "tm@example.com", "alice@example.com", "bob@example.com").
				Return(domain.Event{ID: 7}, nil),
			repo.EXPECT().CancelOpenNotifications(gomock.Any(), int64(7)).Return(nil),
		)

		err := newService(repo).DeleteReviewerNotifications(t.Context(), DeleteReviewerRequest{
			From: "tm@example.com",
			To:   "alice@example.com",
			For:  "bob@example.com",
		})
		require.NoError(t, err)
	})

	t.Run("没有匹配的 Open 事件", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockEventRepository(ctrl)
		repo.EXPECT().FindOpenReviewerEvent(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(domain.Event{}, errs.ErrEventNotFound)

		err := newService(repo).DeleteReviewerNotifications(t.Context(), DeleteReviewerRequest{
			From: "tm@example.com",
			To:   "alice@example.com",
			For:  "bob@example.com",
		})
		assert.ErrorIs(t, err, errs.ErrEventNotFound)
	})

	t.Run("缺少定位参数", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockEventRepository(ctrl)

		err := newService(repo).DeleteReviewerNotifications(t.Context(), DeleteReviewerRequest{
			From: "tm@example.com",
		})
		assert.ErrorIs(t, err, errs.ErrInvalidParameter)
	})
}
