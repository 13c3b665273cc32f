package tilemap

import (
	"errors"
	"reflect"
	"testing"
)

func TestGenerate_统一填充(t *testing.T) {
	m, err := Generate(4, 3, GenConfig{Policy: PolicyUniform, Fill: Sand})
	if err != nil {
		t.Fatalf("Generate 失败: %v", err)
	}
	if got := m.Counts()[Sand]; got != 12 {
		t.Fatalf("期望 12 格 sand, got=%d", got)
	}
	if _, err := Generate(2, 2, GenConfig{Policy: PolicyUniform, Fill: "lava"}); !errors.Is(err, ErrUnknownTileType) {
		t.Fatalf("未知填充地形应报错, err=%v", err)
	}
}

func TestGenerate_随机策略_同种子可复现且都是合法地形(t *testing.T) {
	a, _ := Generate(10, 10, GenConfig{Policy: PolicyRandom, Seed: 5})
	b, _ := Generate(10, 10, GenConfig{Policy: PolicyRandom, Seed: 5})
	if !reflect.DeepEqual(a.Tiles(), b.Tiles()) {
		t.Fatalf("同种子应生成相同地图")
	}
	for _, tile := range a.Tiles() {
		if !tile.Type.Valid() {
			t.Fatalf("随机地形不合法: %+v", tile)
		}
	}
}

func TestGenerate_噪声策略覆盖完整矩形(t *testing.T) {
	m, err := Generate(30, 20, GenConfig{Policy: PolicyNoise, Seed: 11})
	if err != nil {
		t.Fatalf("Generate 失败: %v", err)
	}
	if m.Len() != 600 {
		t.Fatalf("期望 600 格, got=%d", m.Len())
	}
	for _, tile := range m.Tiles() {
		if !tile.Type.Valid() {
			t.Fatalf("噪声地形不合法: %+v", tile)
		}
	}
	// 四角衰减到海面以下
	if tile, _ := m.GetTile(0, 0); tile.Type != DeepWater && tile.Type != Ice {
		t.Fatalf("角落应为水域, got=%s", tile.Type)
	}
}

func TestGenerate_内置island预设(t *testing.T) {
	m, err := Generate(0, 0, DefaultGenConfig())
	if err != nil {
		t.Fatalf("加载 island 失败: %v", err)
	}
	if m.Width() != 24 || m.Height() != 16 {
		t.Fatalf("island 尺寸不符合预期: %dx%d", m.Width(), m.Height())
	}
	if tile, _ := m.GetTile(11, 7); tile.Type != Snow {
		t.Fatalf("island 中心应为雪山, got=%s", tile.Type)
	}
	if _, err := Generate(10, 10, DefaultGenConfig()); !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("尺寸与预设不一致应报错, err=%v", err)
	}
	if _, err := Generate(0, 0, GenConfig{Policy: PolicyPreset, Preset: "atlantis"}); !errors.Is(err, ErrPresetNotFound) {
		t.Fatalf("未知预设应报错, err=%v", err)
	}
	if names := PresetNames(); len(names) == 0 || names[0] != "island" {
		t.Fatalf("PresetNames 不符合预期: %v", names)
	}
}

func TestGenerate_PresetData优先于名字(t *testing.T) {
	data := mustUniform(t, 2, 2, Ice).Serialise()
	m, err := Generate(0, 0, GenConfig{Policy: PolicyPreset, Preset: "custom", PresetData: data})
	if err != nil {
		t.Fatalf("Generate 失败: %v", err)
	}
	if m.Counts()[Ice] != 4 {
		t.Fatalf("应使用 PresetData 解码")
	}
}

func TestGenerate_非法参数(t *testing.T) {
	if _, err := Generate(-1, 3, GenConfig{Policy: PolicyUniform}); !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("负尺寸应报错, err=%v", err)
	}
	for _, size := range [][2]int{{1 << 32, 1 << 32}, {0, MaxSide + 1}, {MaxSide, MaxSide}} {
		for _, p := range []Policy{PolicyUniform, PolicyRandom, PolicyNoise} {
			if _, err := Generate(size[0], size[1], GenConfig{Policy: p}); !errors.Is(err, ErrInvalidSize) {
				t.Fatalf("%s %dx%d 应返回 ErrInvalidSize, err=%v", p, size[0], size[1], err)
			}
		}
	}
	if m, err := Generate(MaxSide, MaxTiles/MaxSide, GenConfig{Policy: PolicyUniform}); err != nil || m.Len() != MaxTiles {
		t.Fatalf("上限内的尺寸应成功, err=%v", err)
	}
	if _, err := Generate(3, 3, GenConfig{Policy: Policy(42)}); !errors.Is(err, ErrUnknownPolicy) {
		t.Fatalf("未知策略应报错, err=%v", err)
	}
	if p, err := ParsePolicy(" Noise "); err != nil || p != PolicyNoise {
		t.Fatalf("ParsePolicy got=%v err=%v", p, err)
	}
	if _, err := ParsePolicy("perlin"); !errors.Is(err, ErrUnknownPolicy) {
		t.Fatalf("未知策略名应报错, err=%v", err)
	}
}
