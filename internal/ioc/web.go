package ioc

import (
	"gitee.com/flycash/review-reminder/internal/web"

	"github.com/gotomicro/ego/server/egin"
)

func InitWebServer(handler *web.Handler) *egin.Component {
	server := egin.Load("server.http").Build()
	handler.PublicRoutes(server.Engine)
	return server
}
