package catalog

import (
	"context"

	"HexRealm/internal/tilemap"
)

// Builtin 是编进二进制的预设。
type Builtin struct{}

func (Builtin) Lookup(_ context.Context, name string) (string, error) {
	data, ok := tilemap.PresetData(name)
	if !ok {
		return "", notFound(name)
	}
	return data, nil
}

func (Builtin) Names(context.Context) ([]string, error) {
	return tilemap.PresetNames(), nil
}
