package dispatch

import (
	"context"
	"time"

	"gitee.com/flycash/review-reminder/internal/domain"
	"gitee.com/flycash/review-reminder/internal/pkg/loopjob"
	"gitee.com/flycash/review-reminder/internal/repository"
	"gitee.com/flycash/review-reminder/internal/service/channel"

	"github.com/gotomicro/ego/core/elog"
	"github.com/hashicorp/go-multierror"
	"github.com/meoying/dlock-go"
)

// Task 扫描到期通知并逐条投递的后台任务。
// 借助分布式锁保证同一时刻只有一个实例在派发，所以不用考虑并发投递同一条通知。
type Task struct {
	dclient    dlock.Client
	repo       repository.EventRepository
	resolver   *channel.Resolver
	logger     *elog.Component
	interval   time.Duration
	batchSize  int
	maxRetries int8
	nowFunc    func() time.Time
}

func NewTask(
	dclient dlock.Client,
	repo repository.EventRepository,
	resolver *channel.Resolver,
	interval time.Duration,
	batchSize int,
	maxRetries int8,
) *Task {
	return &Task{
		dclient:    dclient,
		repo:       repo,
		resolver:   resolver,
		logger:     elog.DefaultLogger.With(elog.String("task", "notification_dispatch")),
		interval:   interval,
		batchSize:  batchSize,
		maxRetries: maxRetries,
		nowFunc:    time.Now,
	}
}

// 空闲时 process 会在锁内睡满一个轮询周期，锁的有效期必须盖过这段等待
const lockMargin = time.Minute

func (t *Task) Start(ctx context.Context) {
	job := loopjob.NewInfiniteLoop(t.dclient, t.process, "notification_dispatch",
		loopjob.WithLockDuration(t.interval+lockMargin))
	job.Run(ctx)
}

func (t *Task) process(ctx context.Context) error {
	now := t.nowFunc()
	due, err := t.repo.FindDueNotifications(ctx, now, t.batchSize)
	if err != nil {
		return err
	}

	var errCollector *multierror.Error
	for _, item := range due {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := t.dispatch(ctx, item); err != nil {
			errCollector = multierror.Append(errCollector, err)
		}
	}

	if err := t.sweepResolvedEvents(ctx); err != nil {
		errCollector = multierror.Append(errCollector, err)
	}

	// 这一批没扫满说明暂时没有积压，等下一个周期
	if len(due) < t.batchSize {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(t.interval):
		}
	}
	return errCollector.ErrorOrNil()
}

// dispatch 单条投递失败只累加重试计数，不中断整批
func (t *Task) dispatch(ctx context.Context, item domain.DueNotification) error {
	processor, err := t.resolver.Resolve(item.Channel)
	if err != nil {
		return t.recordFailure(ctx, item, err)
	}
	if err := processor.Send(ctx, item.Event, item.Notification); err != nil {
		return t.recordFailure(ctx, item, err)
	}

	// 发送成功后事件可能已经全部落定，尝试关闭
	closed, err := t.repo.CloseEventIfResolved(ctx, item.EventID)
	if err != nil {
		t.logger.Error("尝试关闭事件失败",
			elog.Int64("eventID", item.EventID),
			elog.FieldErr(err))
		return err
	}
	if closed {
		t.logger.Info("事件已关闭",
			elog.Int64("eventID", item.EventID),
			elog.String("correlationID", item.Event.CorrelationID))
	}
	return nil
}

func (t *Task) recordFailure(ctx context.Context, item domain.DueNotification, cause error) error {
	t.logger.Error("投递通知失败",
		elog.Int64("notificationID", item.ID),
		elog.Int64("eventID", item.EventID),
		elog.String("channel", string(item.Channel)),
		elog.FieldErr(cause))
	if err := t.repo.RecordDispatchFailure(ctx, item.ID, t.maxRetries); err != nil {
		t.logger.Error("记录投递失败次数失败",
			elog.Int64("notificationID", item.ID),
			elog.FieldErr(err))
		return multierror.Append(cause, err)
	}
	return cause
}

// sweepResolvedEvents 兜底：上次循环在改完状态和关闭事件之间崩溃，会留下已落定但未关闭的事件
func (t *Task) sweepResolvedEvents(ctx context.Context) error {
	stranded, err := t.repo.FindResolvedOpenEvents(ctx, t.batchSize)
	if err != nil {
		return err
	}
	var errCollector *multierror.Error
	for _, event := range stranded {
		closed, err := t.repo.CloseEventIfResolved(ctx, event.ID)
		if err != nil {
			errCollector = multierror.Append(errCollector, err)
			continue
		}
		if closed {
			t.logger.Info("补偿关闭了遗留事件",
				elog.Int64("eventID", event.ID),
				elog.String("correlationID", event.CorrelationID))
		}
	}
	return errCollector.ErrorOrNil()
}
