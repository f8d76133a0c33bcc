package ioc

import (
	"gitee.com/flycash/review-reminder/internal/repository"
	"gitee.com/flycash/review-reminder/internal/service/event"

	"github.com/gotomicro/ego/core/econf"
)

func InitEventService(repo repository.EventRepository) event.Service {
	type Config struct {
		DefaultAttempts int
	}
	cfg := Config{DefaultAttempts: 3}
	if err := econf.UnmarshalKey("reviewer", &cfg); err != nil {
		panic(err)
	}
	return event.NewService(repo, cfg.DefaultAttempts)
}
