package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"HexRealm/internal/tilemap"
)

type stubCatalog struct {
	presets map[string]string
	err     error
}

func (s stubCatalog) Lookup(_ context.Context, name string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	if d, ok := s.presets[name]; ok {
		return d, nil
	}
	return "", notFound(name)
}

func (s stubCatalog) Names(context.Context) ([]string, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]string, 0, len(s.presets))
	for n := range s.presets {
		out = append(out, n)
	}
	return out, nil
}

func TestBuiltin_Island(t *testing.T) {
	ctx := context.Background()
	data, err := Builtin{}.Lookup(ctx, "island")
	if err != nil {
		t.Fatalf("Lookup island err=%v", err)
	}
	m, err := tilemap.Deserialise(data)
	if err != nil || m.Width() != 24 || m.Height() != 16 {
		t.Fatalf("island 预设应能解码为 24x16, err=%v", err)
	}
	if _, err := (Builtin{}).Lookup(ctx, "atlantis"); !errors.Is(err, tilemap.ErrPresetNotFound) {
		t.Fatalf("未知预设应返回 ErrPresetNotFound, got=%v", err)
	}
}

func TestDir_读取目录中的预设(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	m, _ := tilemap.New(2, 2, tilemap.Snow)
	if err := os.WriteFile(filepath.Join(root, "tundra.json"), []byte(m.Serialise()), 0o644); err != nil {
		t.Fatalf("write preset err=%v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write notes err=%v", err)
	}

	d := NewDir(root)
	data, err := d.Lookup(ctx, "tundra")
	if err != nil || data != m.Serialise() {
		t.Fatalf("Lookup tundra data=%q err=%v", data, err)
	}
	if _, err := d.Lookup(ctx, "../tundra"); !errors.Is(err, tilemap.ErrPresetNotFound) {
		t.Fatalf("路径穿越应视为不存在, got=%v", err)
	}
	if _, err := d.Lookup(ctx, "missing"); !errors.Is(err, tilemap.ErrPresetNotFound) {
		t.Fatalf("缺失文件应返回 ErrPresetNotFound, got=%v", err)
	}
	names, err := d.Names(ctx)
	if err != nil || !reflect.DeepEqual(names, []string{"tundra"}) {
		t.Fatalf("Names=%v err=%v", names, err)
	}

	names, err = NewDir(filepath.Join(root, "absent")).Names(ctx)
	if err != nil || len(names) != 0 {
		t.Fatalf("不存在的目录应视为空, names=%v err=%v", names, err)
	}
}

func TestChain_按顺序查找(t *testing.T) {
	ctx := context.Background()
	first := stubCatalog{presets: map[string]string{"a": "first-a"}}
	second := stubCatalog{presets: map[string]string{"a": "second-a", "b": "second-b"}}
	c := Chain{first, second}

	if d, err := c.Lookup(ctx, "a"); err != nil || d != "first-a" {
		t.Fatalf("应由第一个来源命中, d=%q err=%v", d, err)
	}
	if d, err := c.Lookup(ctx, "b"); err != nil || d != "second-b" {
		t.Fatalf("应回落到第二个来源, d=%q err=%v", d, err)
	}
	_, err := c.Lookup(ctx, "z")
	if !errors.Is(err, tilemap.ErrPresetNotFound) {
		t.Fatalf("全部未命中应返回 ErrPresetNotFound, got=%v", err)
	}
	names, err := c.Names(ctx)
	if err != nil || !reflect.DeepEqual(names, []string{"a", "b"}) {
		t.Fatalf("Names 应合并去重排序, got=%v err=%v", names, err)
	}
}

func TestChain_技术错误不被掩盖(t *testing.T) {
	ctx := context.Background()
	broken := stubCatalog{err: ErrUnavailable.WithCause(errors.New("connection refused"))}
	c := Chain{broken, Builtin{}}
	if _, err := c.Lookup(ctx, "island"); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("技术错误应原样返回, got=%v", err)
	}
	if _, err := c.Names(ctx); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("Names 技术错误应原样返回, got=%v", err)
	}
}
