package cmd

import (
	"HexRealm/internal/shared/serverconfig"
	"testing"

	"HexRealm/internal/shared/logs"

	"go.uber.org/zap"
)

func TestReadConfig(t *testing.T) {
	conf, err := serverconfig.Load("", nil)
	if err != nil {
		t.Fatalf("load config err=%v", err)
	}
	if err := logs.Init("TestReadConfig", conf.Log); err != nil {
		t.Fatalf("init logs err=%v", err)
	}
	logs.Info("conf", zap.Any("conf", conf))

	if conf.HTTPServer.WSPath == "" || conf.Editor.AskTimeout <= 0 {
		t.Fatalf("conf 不符合预期: %+v", conf)
	}
	if len(conf.Catalog.Drivers) != 2 || conf.Catalog.Drivers[1] != "dir" {
		t.Fatalf("drivers 应按逗号拆分: %v", conf.Catalog.Drivers)
	}
}
