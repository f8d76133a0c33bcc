package ioc

import (
	"context"
	"time"

	"gitee.com/flycash/review-reminder/internal/repository"
	"gitee.com/flycash/review-reminder/internal/service/channel"
	"gitee.com/flycash/review-reminder/internal/service/dispatch"

	"github.com/gotomicro/ego/core/econf"
	"github.com/meoying/dlock-go"
)

// Task 后台长任务，Start 在 ctx 被取消时返回
type Task interface {
	Start(ctx context.Context)
}

func InitDispatchTask(
	dclient dlock.Client,
	repo repository.EventRepository,
	resolver *channel.Resolver,
) *dispatch.Task {
	type Config struct {
		Interval   time.Duration
		BatchSize  int
		MaxRetries int8
	}
	cfg := Config{
		Interval:   time.Minute,
		BatchSize:  100,
		MaxRetries: 5,
	}
	if err := econf.UnmarshalKey("dispatch", &cfg); err != nil {
		panic(err)
	}
	return dispatch.NewTask(dclient, repo, resolver, cfg.Interval, cfg.BatchSize, cfg.MaxRetries)
}

func InitTasks(t1 *dispatch.Task) []Task {
	return []Task{
		t1,
	}
}
