package tilemap

import (
	"embed"
	"path"
	"sort"
	"strings"
)

//go:embed presets/*.json
var presetFS embed.FS

// PresetData 返回内置预设的序列化数据。
func PresetData(name string) (string, bool) {
	if name == "" || strings.ContainsAny(name, "/\\.") {
		return "", false
	}
	raw, err := presetFS.ReadFile(path.Join("presets", name+".json"))
	if err != nil {
		return "", false
	}
	return string(raw), true
}

// PresetNames 列出全部内置预设（按名字排序）。
func PresetNames() []string {
	entries, err := presetFS.ReadDir("presets")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".json" {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".json"))
	}
	sort.Strings(names)
	return names
}
