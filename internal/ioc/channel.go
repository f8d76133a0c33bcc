package ioc

import (
	"gitee.com/flycash/review-reminder/internal/repository"
	"gitee.com/flycash/review-reminder/internal/service/channel"
	"gitee.com/flycash/review-reminder/internal/service/message"

	"github.com/patrickmn/go-cache"
)

func InitMessageGenerator(c *cache.Cache) message.Generator {
	return message.NewCachedGenerator(message.NewTemplateGenerator(), c)
}

// InitChannelResolver 每个渠道实现都套上指标和链路追踪装饰器
func InitChannelResolver(
	mailer channel.Mailer,
	teamsClient channel.TeamsClient,
	generator message.Generator,
	repo repository.EventRepository,
) *channel.Resolver {
	email := channel.NewObservabilityProcessor(
		channel.NewMetricsProcessor("email", channel.NewEmailProcessor(mailer, generator, repo)))
	teams := channel.NewObservabilityProcessor(
		channel.NewMetricsProcessor("teams", channel.NewTeamsProcessor(teamsClient, generator, repo)))
	resolver, err := channel.NewResolver(email, teams)
	if err != nil {
		panic(err)
	}
	return resolver
}
