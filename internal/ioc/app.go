package ioc

import (
	"github.com/gotomicro/ego/server/egin"
)

type App struct {
	WebServer *egin.Component
	Tasks     []Task
}
