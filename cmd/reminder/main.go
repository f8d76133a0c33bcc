package main

import (
	"context"

	"gitee.com/flycash/review-reminder/cmd/reminder/ioc"

	"github.com/gotomicro/ego"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

func main() {
	app := ioc.InitApp()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	var eg errgroup.Group
	for _, task := range app.Tasks {
		eg.Go(func() error {
			task.Start(ctx)
			return nil
		})
	}

	if err := ego.New().Serve(app.WebServer).Run(); err != nil {
		elog.Panic("启动失败", elog.FieldErr(err))
	}
	cancel()
	_ = eg.Wait()
}
