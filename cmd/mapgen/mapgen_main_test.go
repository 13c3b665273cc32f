package main

import (
	"HexRealm/internal/tilemap"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRun_输出可解码的地图(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"-w", "5", "-h", "4", "-p", "uniform", "--fill", "sand"}, &stdout, &stderr)
	if err != nil {
		t.Fatalf("run err=%v", err)
	}
	m, err := tilemap.Deserialise(strings.TrimSpace(stdout.String()))
	if err != nil {
		t.Fatalf("输出应能解码: %v", err)
	}
	if m.Width() != 5 || m.Height() != 4 || m.Counts()[tilemap.Sand] != 20 {
		t.Fatalf("地图不符合预期: %dx%d %v", m.Width(), m.Height(), m.Counts())
	}
	if !strings.Contains(stderr.String(), "uniform map 5x4, 20 tiles") {
		t.Fatalf("统计信息不符合预期: %s", stderr.String())
	}
}

func TestRun_预设与目录(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if err := run([]string{"-p", "preset", "-q"}, &stdout, &stderr); err != nil {
		t.Fatalf("island 预设 err=%v", err)
	}
	if stderr.Len() != 0 {
		t.Fatalf("-q 不应输出统计: %s", stderr.String())
	}

	dir := t.TempDir()
	small, err := tilemap.Generate(2, 2, tilemap.GenConfig{Policy: tilemap.PolicyUniform, Fill: tilemap.Ice})
	if err != nil {
		t.Fatalf("Generate err=%v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "tiny.json"), []byte(small.Serialise()), 0o644); err != nil {
		t.Fatalf("write preset err=%v", err)
	}
	out := filepath.Join(dir, "out.json")
	if err := run([]string{"-p", "preset", "--preset", "tiny", "--preset-dir", dir, "-o", out, "-q"}, &stdout, &stderr); err != nil {
		t.Fatalf("目录预设 err=%v", err)
	}
	raw, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read out err=%v", err)
	}
	m, err := tilemap.Deserialise(string(raw))
	if err != nil || m.Counts()[tilemap.Ice] != 4 {
		t.Fatalf("输出文件不符合预期: err=%v", err)
	}
}

func TestRun_参数错误(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if err := run([]string{"-p", "volcano"}, &stdout, &stderr); err == nil {
		t.Fatalf("未知策略应报错")
	}
	if err := run([]string{"-p", "preset", "--preset", "atlantis"}, &stdout, &stderr); err == nil {
		t.Fatalf("未知预设应报错")
	}
	if err := run([]string{"-w", "-1", "-p", "uniform"}, &stdout, &stderr); err == nil {
		t.Fatalf("负宽度应报错")
	}
}
