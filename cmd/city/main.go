package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"CityBuilder/internal/game"
	"CityBuilder/internal/game/actor"
	"CityBuilder/internal/game/interfaces"
	"CityBuilder/internal/shared/logs"
	"CityBuilder/internal/shared/serverconfig"
	transporthttp "CityBuilder/internal/shared/transport/http"
	"CityBuilder/internal/shared/transport/ws"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	serverconfig.Load()
	conf := serverconfig.Conf
	if err := logs.Init("city", conf.Log); err != nil {
		panic(err)
	}
	defer logs.Sync()
	logs.Info("conf", zap.Any("conf", conf))

	baseLogger := logs.Logx()
	gc := conf.Game
	g := game.New(game.Config{
		ViewportWidth:     gc.ViewportWidth,
		ViewportHeight:    gc.ViewportHeight,
		TileSize:          gc.TileSize,
		StartingResources: gc.StartingResources,
	}, baseLogger)

	runtime := actor.NewRuntime(g, actor.Options{
		FrameHz:    gc.FrameHz,
		AskTimeout: gc.AskTimeout(),
		Logger:     baseLogger,
	})
	defer runtime.Shutdown()

	// 热加载只影响日志级别和推送间隔，其余配置需重启。
	serverconfig.OnChange(func(c serverconfig.Config) {
		logs.SetLevel(c.Log.Level)
		logs.Info("config reloaded", zap.String("log_level", c.Log.Level), zap.Duration("push_interval", c.Game.PushInterval()))
	})
	pushInterval := func() time.Duration {
		return serverconfig.Current().Game.PushInterval()
	}
	module := interfaces.New(runtime, pushInterval, baseLogger)

	wsRouter := ws.NewRouter(baseLogger)
	for _, m := range []ws.Registrar{module} {
		m.WsRegister(wsRouter)
	}
	wsServer := ws.NewServer(wsRouter, baseLogger)
	wsServer.OnConnect(module.ConnectHook())

	addr := fmt.Sprintf("%s:%d", conf.HTTPServer.Host, conf.HTTPServer.Port)
	httpServer := transporthttp.NewHttpServer(addr, nil,
		transporthttp.WithLogger(baseLogger),
		transporthttp.WithAllowOrigins(conf.HTTPServer.AllowOrigins),
	)
	for _, m := range []transporthttp.Registrar{module} {
		m.HttpRegister(httpServer.Group())
	}
	httpServer.Engine().GET("/ws", gin.WrapH(wsServer))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		logs.Info("city host listening", zap.String("addr", addr))
		if err := httpServer.Start(); err != nil {
			return fmt.Errorf("city host start failed: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		<-egCtx.Done()
		logs.Info("收到退出信号，准备优雅退出")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	if err := eg.Wait(); err != nil {
		logs.Error("服务异常退出", zap.Error(err))
	}
}
