package main

import (
	"HexRealm/internal/editor/catalog"
	"HexRealm/internal/tilemap"
	"context"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "mapgen:", err)
		os.Exit(1)
	}
}

// run 生成一张地图：序列化结果写到 -o 指定的文件或 stdout，统计信息写到 stderr。
func run(args []string, stdout, stderr io.Writer) error {
	fs := pflag.NewFlagSet("mapgen", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	width := fs.IntP("width", "w", 24, "map width in columns")
	height := fs.IntP("height", "h", 16, "map height in rows")
	policy := fs.StringP("policy", "p", "noise", "uniform | random | preset | noise")
	fill := fs.String("fill", string(tilemap.Grass), "tile type for the uniform policy")
	seed := fs.Int64("seed", 0, "random seed, 0 picks one")
	preset := fs.String("preset", "island", "preset name for the preset policy")
	presetDir := fs.String("preset-dir", "", "directory searched for <preset>.json before the built-in presets")
	sea := fs.Float64("sea", 0, "sea level for the noise policy (0..1)")
	snow := fs.Float64("snow", 0, "snow line for the noise policy (0..1)")
	out := fs.StringP("out", "o", "", "output file, stdout when empty")
	quiet := fs.BoolP("quiet", "q", false, "do not print the summary")
	if err := fs.Parse(args); err != nil {
		return err
	}

	p, err := tilemap.ParsePolicy(*policy)
	if err != nil {
		return err
	}
	cfg := tilemap.GenConfig{
		Policy:    p,
		Fill:      tilemap.TileType(*fill),
		Seed:      *seed,
		Preset:    *preset,
		SeaLevel:  *sea,
		SnowLevel: *snow,
	}
	w, h := *width, *height
	if p == tilemap.PolicyPreset {
		presets := catalog.Chain{catalog.Builtin{}}
		if *presetDir != "" {
			presets = catalog.Chain{catalog.NewDir(*presetDir), catalog.Builtin{}}
		}
		if cfg.PresetData, err = presets.Lookup(context.Background(), *preset); err != nil {
			return err
		}
		// 预设自带尺寸，没有显式指定时不校验
		if !fs.Changed("width") && !fs.Changed("height") {
			w, h = 0, 0
		}
	}

	m, err := tilemap.Generate(w, h, cfg)
	if err != nil {
		return err
	}
	data := m.Serialise()

	if *out == "" {
		if _, err := fmt.Fprintln(stdout, data); err != nil {
			return err
		}
	} else if err := os.WriteFile(*out, []byte(data), 0o644); err != nil {
		return err
	}

	if !*quiet {
		printSummary(stderr, m, p, len(data))
	}
	return nil
}

func printSummary(w io.Writer, m *tilemap.HexTilemap, p tilemap.Policy, size int) {
	total := m.Len()
	fmt.Fprintf(w, "%s map %dx%d, %s tiles, %s serialised\n",
		p, m.Width(), m.Height(), humanize.Comma(int64(total)), humanize.Bytes(uint64(size)))

	counts := m.Counts()
	types := make([]tilemap.TileType, 0, len(counts))
	for t := range counts {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return counts[types[i]] > counts[types[j]] })
	for _, t := range types {
		pct := 0.0
		if total > 0 {
			pct = float64(counts[t]) * 100 / float64(total)
		}
		fmt.Fprintf(w, "  %-14s %8s  %5s%%\n", t, humanize.Comma(int64(counts[t])), humanize.FtoaWithDigits(pct, 1))
	}
	if n := len(m.Cities()); n > 0 {
		fmt.Fprintf(w, "  cities: %d\n", n)
	}
}
