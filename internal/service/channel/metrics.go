package channel

import (
	"context"
	"sync"
	"time"

	"gitee.com/flycash/review-reminder/internal/domain"

	"github.com/prometheus/client_golang/prometheus"
)

// 所有渠道共享同一组指标，按 channel 维度打标签
var (
	metricsOnce         sync.Once
	sendDurationSummary *prometheus.SummaryVec
	sendCounter         *prometheus.CounterVec
)

func initMetrics() {
	metricsOnce.Do(func() {
		sendDurationSummary = prometheus.NewSummaryVec(
			prometheus.SummaryOpts{
				Name:       "channel_send_duration_seconds",
				Help:       "渠道投递通知耗时统计（秒）",
				Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.95: 0.005, 0.99: 0.001},
				MaxAge:     time.Minute * 5,
			},
			[]string{"channel", "event_type", "result"},
		)

		sendCounter = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "channel_send_total",
				Help: "渠道投递通知总数",
			},
			[]string{"channel", "event_type", "result"},
		)

		// 注册指标
		prometheus.MustRegister(sendDurationSummary, sendCounter)
	})
}

// MetricsProcessor 为渠道实现添加指标收集的装饰器
type MetricsProcessor struct {
	processor Processor
	name      string
}

// NewMetricsProcessor 创建一个新的带有指标收集的渠道实现
func NewMetricsProcessor(name string, p Processor) *MetricsProcessor {
	initMetrics()
	return &MetricsProcessor{
		processor: p,
		name:      name,
	}
}

func (p *MetricsProcessor) CanProcess(channel domain.Channel) bool {
	return p.processor.CanProcess(channel)
}

// Send 投递通知并记录指标
func (p *MetricsProcessor) Send(ctx context.Context, event domain.Event, notification domain.Notification) error {
	startTime := time.Now()

	err := p.processor.Send(ctx, event, notification)

	duration := time.Since(startTime).Seconds()
	result := "success"
	if err != nil {
		result = "failure"
	}

	sendCounter.WithLabelValues(
		p.name,
		string(event.Type),
		result,
	).Inc()

	sendDurationSummary.WithLabelValues(
		p.name,
		string(event.Type),
		result,
	).Observe(duration)

	return err
}
