package channel

import (
	"context"
	"fmt"

	"gitee.com/flycash/review-reminder/internal/domain"
	"gitee.com/flycash/review-reminder/internal/errs"
)

// Processor 负责把一条通知投递到某个具体渠道
type Processor interface {
	CanProcess(channel domain.Channel) bool
	Send(ctx context.Context, event domain.Event, notification domain.Notification) error
}

// Resolver 按通知上的渠道找到对应的 Processor
type Resolver struct {
	processors []Processor
}

// NewResolver 校验每个渠道至多一个 Processor，重复注册直接报错。
// 允许某个渠道没有实现，投递时才会返回 ErrChannelNotSupported。
func NewResolver(processors ...Processor) (*Resolver, error) {
	for _, ch := range domain.Channels() {
		count := 0
		for _, p := range processors {
			if p.CanProcess(ch) {
				count++
			}
		}
		if count > 1 {
			return nil, fmt.Errorf("%w: channel = %s", errs.ErrChannelDuplicateProcessor, ch)
		}
	}
	return &Resolver{processors: processors}, nil
}

func (r *Resolver) Resolve(channel domain.Channel) (Processor, error) {
	for _, p := range r.processors {
		if p.CanProcess(channel) {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: channel = %s", errs.ErrChannelNotSupported, channel)
}
