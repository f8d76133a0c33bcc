package channel

import (
	"context"
	"strconv"

	"gitee.com/flycash/review-reminder/internal/domain"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// ObservabilityProcessor 为渠道投递添加链路追踪的装饰器
type ObservabilityProcessor struct {
	processor Processor
	tracer    trace.Tracer
}

// NewObservabilityProcessor 创建一个新的带有链路追踪的渠道实现
func NewObservabilityProcessor(p Processor) *ObservabilityProcessor {
	return &ObservabilityProcessor{
		processor: p,
		tracer:    otel.Tracer("review-reminder/channel"),
	}
}

func (o *ObservabilityProcessor) CanProcess(channel domain.Channel) bool {
	return o.processor.CanProcess(channel)
}

func (o *ObservabilityProcessor) Send(ctx context.Context, event domain.Event, notification domain.Notification) error {
	ctx, span := o.tracer.Start(ctx, "ChannelProcessor.Send",
		trace.WithAttributes(
			attribute.String("notification.id", strconv.FormatInt(notification.ID, 10)),
			attribute.String("notification.channel", string(notification.Channel)),
			attribute.String("event.id", strconv.FormatInt(event.ID, 10)),
			attribute.String("event.type", string(event.Type)),
			attribute.String("event.correlationId", event.CorrelationID),
		))
	defer span.End()

	err := o.processor.Send(ctx, event, notification)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	return err
}
