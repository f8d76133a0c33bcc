package message

import (
	"context"
	"fmt"

	"gitee.com/flycash/review-reminder/internal/domain"

	"github.com/patrickmn/go-cache"
)

// cachedGenerator 按通知缓存生成结果，重试同一条通知时不再重新生成
type cachedGenerator struct {
	generator Generator
	cache     *cache.Cache
}

func NewCachedGenerator(generator Generator, c *cache.Cache) Generator {
	return &cachedGenerator{
		generator: generator,
		cache:     c,
	}
}

func (g *cachedGenerator) Body(ctx context.Context, event domain.Event, notification domain.Notification) (string, error) {
	key := fmt.Sprintf("notification:%d:body", notification.ID)
	if cached, ok := g.cache.Get(key); ok {
		if body, isString := cached.(string); isString {
			return body, nil
		}
	}
	body, err := g.generator.Body(ctx, event, notification)
	if err != nil {
		return "", err
	}
	g.cache.Set(key, body, cache.DefaultExpiration)
	return body, nil
}
