package catalog

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const presetExt = ".json"

// Dir 从目录读取 <name>.json。
type Dir struct {
	root string
}

func NewDir(root string) *Dir {
	return &Dir{root: root}
}

func validName(name string) bool {
	return name != "" && !strings.ContainsAny(name, `/\.`)
}

func (d *Dir) Lookup(_ context.Context, name string) (string, error) {
	if !validName(name) {
		return "", notFound(name)
	}
	b, err := os.ReadFile(filepath.Join(d.root, name+presetExt))
	if errors.Is(err, fs.ErrNotExist) {
		return "", notFound(name)
	}
	if err != nil {
		return "", ErrUnavailable.WithData("preset", name).WithCause(err)
	}
	return string(b), nil
}

// Names 目录不存在时视为空目录。
func (d *Dir) Names(context.Context) ([]string, error) {
	entries, err := os.ReadDir(d.root)
	if errors.Is(err, fs.ErrNotExist) {
		return []string{}, nil
	}
	if err != nil {
		return nil, ErrUnavailable.WithData("dir", d.root).WithCause(err)
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != presetExt {
			continue
		}
		name := strings.TrimSuffix(e.Name(), presetExt)
		if validName(name) {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out, nil
}
