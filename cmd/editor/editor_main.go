package main

import (
	"HexRealm/internal/camera"
	editoractor "HexRealm/internal/editor/actor"
	"HexRealm/internal/editor/interfaces"
	"HexRealm/internal/shared/logs"
	"HexRealm/internal/shared/serverconfig"
	transporthttp "HexRealm/internal/shared/transport/http"
	"HexRealm/internal/shared/transport/ws"
	"HexRealm/modules/kit/logx"
	"context"
	"errors"
	"fmt"
	nethttp "net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func main() {
	cfgPath := pflag.StringP("config", "c", "", "config file (default: configs/conf.yml searched upward)")
	pflag.Parse()

	conf, err := serverconfig.Load(*cfgPath, func(err error) {
		logs.Warn("config reload failed", zap.Error(err))
	})
	if err != nil {
		panic(err)
	}
	if err := logs.Init("editor", conf.Log); err != nil {
		panic(err)
	}
	defer func() { _ = logs.Sync() }()
	serverconfig.OnChange(func(c serverconfig.Config) {
		logs.SetLevel(c.Log.Level)
		logs.Info("config reloaded", zap.String("log_level", c.Log.Level))
	})
	logs.Info("conf", zap.Any("conf", conf))

	host := conf.HTTPServer.Host
	if host == "" {
		host = "0.0.0.0"
	}
	addr := fmt.Sprintf("%s:%d", host, conf.HTTPServer.Port)
	baseLogger := logx.NewZapLogger(logs.Logger())

	startCtx, cancelStart := context.WithTimeout(context.Background(), 10*time.Second)
	presets, closeCatalog, err := openCatalog(startCtx, conf)
	cancelStart()
	if err != nil {
		logs.Fatal("open preset catalog failed", zap.Error(err))
	}
	defer closeCatalog()

	layout := camera.NewLayout(conf.Editor.Layout.Side)
	if conf.Editor.Layout.Apothem > 0 {
		layout.Apothem = conf.Editor.Layout.Apothem
	}
	rt := editoractor.NewRuntime(editoractor.Options{
		Catalog:    presets,
		Layout:     layout,
		AskTimeout: conf.Editor.AskTimeout,
		Log:        baseLogger,
		Defaults: editoractor.CreateMapRequest{
			Width:  conf.Editor.Width,
			Height: conf.Editor.Height,
			Policy: conf.Editor.Policy,
			Fill:   conf.Editor.Fill,
			Seed:   conf.Editor.Seed,
			Preset: conf.Editor.Preset,
		},
	})
	defer rt.Shutdown()

	// 启动时按默认参数打开一张地图，前端可直接使用
	summary, err := rt.CreateMap(context.Background(), editoractor.CreateMapRequest{})
	if err != nil {
		logs.Fatal("create default map failed", zap.Error(err))
	}
	logs.Info("default map ready",
		zap.String("map_id", summary.MapId),
		zap.Int("width", summary.Width),
		zap.Int("height", summary.Height),
	)

	editorModule := interfaces.New(rt, baseLogger)

	httpServer := transporthttp.NewHttpServer(addr, nil, baseLogger)
	httpServer.Register(editorModule.Http())

	if path := conf.HTTPServer.WSPath; path != "" {
		wsRouter := ws.NewRouter(baseLogger)
		wsRouter.Register(editorModule.Ws())
		wsServer := ws.NewServer(wsRouter, baseLogger)
		httpServer.Engine().GET(path, gin.WrapH(wsServer))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logs.Info("editor server listening", zap.String("addr", addr))
		if err := httpServer.Start(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			errCh <- fmt.Errorf("editor server start failed: %w", err)
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		logs.Info("收到退出信号，准备优雅退出")
	case err := <-errCh:
		if err != nil {
			logs.Error("服务异常退出", zap.Error(err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = httpServer.Shutdown(shutdownCtx)
}
