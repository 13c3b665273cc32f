package main

import (
	"HexRealm/internal/editor/catalog"
	"HexRealm/internal/shared/infrastructure/db"
	"HexRealm/internal/shared/infrastructure/mongo"
	"HexRealm/internal/shared/logs"
	"HexRealm/internal/shared/serverconfig"
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// openCatalog 按 drivers 顺序拼出预设目录链，返回的 closeFn 释放数据库连接。
func openCatalog(ctx context.Context, conf serverconfig.Config) (catalog.Catalog, func(), error) {
	drivers := conf.Catalog.Drivers
	if len(drivers) == 0 {
		drivers = []string{"builtin"}
	}

	var (
		chain   catalog.Chain
		closers []func()
	)
	closeFn := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	for _, d := range drivers {
		switch strings.ToLower(strings.TrimSpace(d)) {
		case "builtin":
			chain = append(chain, catalog.Builtin{})
		case "dir":
			chain = append(chain, catalog.NewDir(conf.Catalog.Dir))
		case "mongodb", "mongo":
			client, database, err := mongo.Open(ctx, conf.MongoDB, logs.Logger())
			if err != nil {
				closeFn()
				return nil, nil, err
			}
			closers = append(closers, func() { _ = client.Disconnect(context.Background()) })
			chain = append(chain, catalog.NewMongo(database))
		case "mysql":
			g, err := db.Open(conf.MySQL)
			if err != nil {
				closeFn()
				return nil, nil, err
			}
			closers = append(closers, func() {
				if sqlDB, err := g.DB(); err == nil {
					_ = sqlDB.Close()
				}
			})
			chain = append(chain, catalog.NewMySQL(g))
		default:
			closeFn()
			return nil, nil, fmt.Errorf("unknown catalog driver %q", d)
		}
		logs.Info("preset catalog enabled", zap.String("driver", d))
	}
	return chain, closeFn, nil
}
