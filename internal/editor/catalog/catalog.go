// Package catalog 提供只读的地图预设来源。预设内容是序列化后的地图字符串，
// 这里不做解析，解析交给 tilemap 的解码器。
package catalog

import (
	"context"
	"errors"
	"sort"

	"HexRealm/internal/tilemap"
	"HexRealm/modules/kit/errx"
)

type Catalog interface {
	Lookup(ctx context.Context, name string) (string, error)
	Names(ctx context.Context) ([]string, error)
}

// ErrUnavailable 是预设存储的技术故障。
var ErrUnavailable = errx.ErrUnavailable

func notFound(name string) error {
	return tilemap.ErrPresetNotFound.WithData("preset", name)
}

// Chain 依次查询各个来源，第一个命中的结果生效。
// 某个来源返回技术错误时直接返回，不会跳到下一个来源掩盖故障。
type Chain []Catalog

func (c Chain) Lookup(ctx context.Context, name string) (string, error) {
	for _, cat := range c {
		data, err := cat.Lookup(ctx, name)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, tilemap.ErrPresetNotFound) {
			return "", err
		}
	}
	return "", notFound(name)
}

// Names 合并去重后按字典序返回。
func (c Chain) Names(ctx context.Context) ([]string, error) {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, cat := range c {
		names, err := cat.Names(ctx)
		if err != nil {
			return nil, err
		}
		for _, n := range names {
			if _, ok := seen[n]; ok {
				continue
			}
			seen[n] = struct{}{}
			out = append(out, n)
		}
	}
	sort.Strings(out)
	return out, nil
}
