package mongo

import (
	"HexRealm/internal/shared/serverconfig"
	"HexRealm/modules/kit/errx"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.uber.org/zap"
)

// Open 连接并 ping 一次，返回配置里指定的数据库。
func Open(ctx context.Context, cfg serverconfig.MongoDBConfig, l *zap.Logger) (*mongo.Client, *mongo.Database, error) {
	if cfg.URI == "" {
		return nil, nil, errx.ErrReqParamERR.WithData("reason", "mongodb uri is empty")
	}
	if cfg.Database == "" {
		return nil, nil, errx.ErrReqParamERR.WithData("reason", "mongodb database is empty")
	}
	if l == nil {
		l = zap.NewNop()
	}

	timeout := time.Duration(cfg.ConnectTimeoutS) * time.Second
	if timeout <= 0 {
		timeout = 3 * time.Second
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(options.Client().ApplyURI(cfg.URI).SetConnectTimeout(timeout))
	if err != nil {
		return nil, nil, errx.ErrUnavailable.WithData("dependency", "mongodb").WithCause(err)
	}
	if err = client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, errx.ErrUnavailable.WithData("dependency", "mongodb").WithCause(err)
	}

	l.Info("open mongodb success",
		zap.String("database", cfg.Database),
	)
	return client, client.Database(cfg.Database), nil
}
