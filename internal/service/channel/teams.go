package channel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"gitee.com/flycash/review-reminder/internal/domain"
	"gitee.com/flycash/review-reminder/internal/errs"
	"gitee.com/flycash/review-reminder/internal/repository"
	"gitee.com/flycash/review-reminder/internal/service/message"
)

// TeamsCard 发往 Teams webhook 的消息卡片
type TeamsCard struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// TeamsClient 屏蔽 Teams webhook 调用
type TeamsClient interface {
	Post(ctx context.Context, webhookURL string, card TeamsCard) error
}

type teamsWebhookClient struct {
	client *http.Client
}

func NewTeamsWebhookClient(client *http.Client) TeamsClient {
	return &teamsWebhookClient{client: client}
}

func (c *teamsWebhookClient) Post(ctx context.Context, webhookURL string, card TeamsCard) error {
	payload, err := json.Marshal(card)
	if err != nil {
		return fmt.Errorf("序列化消息卡片失败: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, webhookURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("构造 webhook 请求失败: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("调用 webhook 失败: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode >= http.StatusBadRequest {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("webhook 返回 %d: %s", resp.StatusCode, respBody)
	}
	return nil
}

// teamsProcessor Teams 渠道。通知上的 ChannelAddress 即 webhook 地址。
type teamsProcessor struct {
	client    TeamsClient
	generator message.Generator
	repo      repository.EventRepository
	nowFunc   func() time.Time
}

func NewTeamsProcessor(client TeamsClient, generator message.Generator, repo repository.EventRepository) Processor {
	return &teamsProcessor{
		client:    client,
		generator: generator,
		repo:      repo,
		nowFunc:   time.Now,
	}
}

func (p *teamsProcessor) CanProcess(channel domain.Channel) bool {
	return channel == domain.ChannelTeams
}

func (p *teamsProcessor) Send(ctx context.Context, event domain.Event, notification domain.Notification) error {
	body, err := p.generator.Body(ctx, event, notification)
	if err != nil {
		return fmt.Errorf("%w: 生成正文失败: %w", errs.ErrSendNotificationFailed, err)
	}
	card := TeamsCard{
		Title: fmt.Sprintf("Performance review of %s", event.ForName),
		Text:  body,
	}
	if err := p.client.Post(ctx, notification.ChannelAddress, card); err != nil {
		return fmt.Errorf("%w: 投递 Teams 消息失败: %w", errs.ErrSendNotificationFailed, err)
	}
	return p.repo.MarkNotificationSent(ctx, notification.ID, p.nowFunc())
}
