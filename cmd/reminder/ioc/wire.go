//go:build wireinject

package ioc

import (
	"gitee.com/flycash/review-reminder/internal/ioc"
	"gitee.com/flycash/review-reminder/internal/repository"
	"gitee.com/flycash/review-reminder/internal/repository/dao"
	"gitee.com/flycash/review-reminder/internal/service/report"
	"gitee.com/flycash/review-reminder/internal/web"
	"github.com/google/wire"
)

var (
	// BaseSet 基础设施
	BaseSet = wire.NewSet(
		ioc.InitDB,
		ioc.InitRedisClient,
		ioc.InitDistributedLock,
		ioc.InitGoCache,
		ioc.InitMailer,
		ioc.InitTeamsClient,
	)
	eventSvcSet = wire.NewSet(
		ioc.InitEventService,
		repository.NewEventRepository,
		dao.NewEventDAO,
	)
	channelSvcSet = wire.NewSet(
		ioc.InitMessageGenerator,
		ioc.InitChannelResolver,
	)
)

func InitApp() *ioc.App {
	wire.Build(
		// 基础设施
		BaseSet,

		// 事件服务
		eventSvcSet,

		// 渠道投递
		channelSvcSet,

		// 报表服务
		report.NewService,

		// 派发任务
		ioc.InitDispatchTask,
		ioc.InitTasks,

		// HTTP 服务器
		web.NewHandler,
		ioc.InitWebServer,
		wire.Struct(new(ioc.App), "*"),
	)

	return new(ioc.App)
}
