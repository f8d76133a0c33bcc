package loopjob

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gotomicro/ego/core/elog"
	"github.com/meoying/dlock-go"
)

// 没有分布式任务调度平台，用分布式锁保证同一时刻只有一个实例在跑循环任务

const defaultTimeout = time.Second * 3

type InfiniteLoop struct {
	dclient dlock.Client
	key     string
	// 锁的过期时间，同时也是抢锁失败后的重试间隔
	lockDuration time.Duration
	logger       *elog.Component
	biz          func(ctx context.Context) error
}

type Option func(*InfiniteLoop)

// WithLockDuration 调整锁的有效期。biz 内部会阻塞等待的任务必须把有效期
// 设置得比单次 biz 的耗时长，否则续约之前锁就过期了
func WithLockDuration(d time.Duration) Option {
	return func(l *InfiniteLoop) {
		if d > 0 {
			l.lockDuration = d
		}
	}
}

func NewInfiniteLoop(
	dclient dlock.Client,
	// 要执行的业务。ctx 被取消的时候会退出全部循环
	biz func(ctx context.Context) error,
	key string,
	opts ...Option,
) *InfiniteLoop {
	l := &InfiniteLoop{
		dclient:      dclient,
		key:          key,
		lockDuration: time.Minute,
		logger:       elog.DefaultLogger.With(elog.String("key", key)),
		biz:          biz,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Run ctx 被取消的时候就会退出
func (l *InfiniteLoop) Run(ctx context.Context) {
	for {
		lock, err := l.dclient.NewLock(ctx, l.key, l.lockDuration)
		if err != nil {
			l.logger.Error("初始化分布式锁失败，重试",
				elog.Any("err", err))
			time.Sleep(l.lockDuration)
			continue
		}

		lockCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
		// 没拿到锁，不管是系统错误还是锁被别的实例持有，暂停一段时间之后继续
		err = lock.Lock(lockCtx)
		cancel()
		if err != nil {
			l.logger.Warn("没有抢到分布式锁", elog.Any("err", err))
			time.Sleep(l.lockDuration)
			continue
		}

		err = l.bizLoop(ctx, lock)
		// 要么是续约失败，要么是 ctx 本身已经过期了
		if err != nil {
			l.logger.Error("执行业务失败，将执行重试", elog.FieldErr(err))
		}
		// 释放锁要摆脱 ctx 的控制，此时 ctx 可能已经被取消了
		unCtx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
		//nolint:contextcheck // 原始 ctx 可能已被取消，但仍要尝试解锁
		unErr := lock.Unlock(unCtx)
		cancel()
		if unErr != nil {
			l.logger.Error("释放分布式锁失败", elog.Any("err", unErr))
		}
		err = ctx.Err()
		switch {
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			l.logger.Info("任务被取消，退出任务循环")
			return
		default:
			time.Sleep(l.lockDuration)
		}
	}
}

func (l *InfiniteLoop) bizLoop(ctx context.Context, lock dlock.Lock) error {
	for {
		err := l.biz(ctx)
		if err != nil {
			l.logger.Error("业务执行失败", elog.FieldErr(err))
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		refCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
		err = lock.Refresh(refCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("分布式锁续约失败 %w", err)
		}
	}
}
