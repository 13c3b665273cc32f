package tilemap

import (
	"math"
	"math/rand"
	"strings"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// Policy 决定构造时每个瓦片的地形。
type Policy uint8

const (
	PolicyUniform Policy = iota // 统一填充 GenConfig.Fill
	PolicyRandom                // 每格随机取一种地形
	PolicyPreset                // 加载命名预设的序列化数据
	PolicyNoise                 // simplex 噪声生成海陆与雪线
)

var policyNames = map[Policy]string{
	PolicyUniform: "uniform",
	PolicyRandom:  "random",
	PolicyPreset:  "preset",
	PolicyNoise:   "noise",
}

func (p Policy) String() string {
	if s, ok := policyNames[p]; ok {
		return s
	}
	return "unknown"
}

// ParsePolicy 接受配置文件/接口里的策略名，大小写不敏感。
func ParsePolicy(name string) (Policy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for p, s := range policyNames {
		if s == name {
			return p, nil
		}
	}
	return 0, ErrUnknownPolicy.WithData("policy", name)
}

// GenConfig 是地图生成参数，只有与 Policy 对应的字段会被读取。
type GenConfig struct {
	Policy Policy
	Fill   TileType // PolicyUniform
	Seed   int64    // PolicyRandom / PolicyNoise，0 表示随机种子

	// PolicyPreset：PresetData 非空时直接解码它，否则按 Preset 名字查内置预设。
	Preset     string
	PresetData string

	// PolicyNoise：海平面与雪线阈值（0..1），为 0 时使用默认值。
	SeaLevel  float64
	SnowLevel float64
}

// DefaultGenConfig 与编辑器默认地图一致：内置 island 预设。
func DefaultGenConfig() GenConfig {
	return GenConfig{Policy: PolicyPreset, Preset: "island"}
}

// Generate 按策略生成一张完整的地图。
// PolicyPreset 的尺寸来自预设本身，width/height 为 0 时不做校验，否则必须一致。
func Generate(width, height int, cfg GenConfig) (*HexTilemap, error) {
	if cfg.Policy == PolicyPreset {
		return generatePreset(width, height, cfg)
	}
	if !sizeOK(width, height) {
		return nil, ErrInvalidSize.WithDataMap(map[string]any{"width": width, "height": height})
	}

	switch cfg.Policy {
	case PolicyUniform:
		fill := cfg.Fill
		if fill == "" {
			fill = Grass
		}
		if !fill.Valid() {
			return nil, ErrUnknownTileType.WithData("tile_type", string(fill))
		}
		return newFilled(width, height, func(int, int) TileType { return fill }), nil
	case PolicyRandom:
		r := rand.New(rand.NewSource(seedOrRandom(cfg.Seed)))
		return newFilled(width, height, func(int, int) TileType {
			return tileTypes[r.Intn(len(tileTypes))]
		}), nil
	case PolicyNoise:
		return generateNoise(width, height, cfg), nil
	default:
		return nil, ErrUnknownPolicy.WithData("policy", int(cfg.Policy))
	}
}

func generatePreset(width, height int, cfg GenConfig) (*HexTilemap, error) {
	data := cfg.PresetData
	if data == "" {
		var ok bool
		if data, ok = PresetData(cfg.Preset); !ok {
			return nil, ErrPresetNotFound.WithData("preset", cfg.Preset)
		}
	}
	m, err := Deserialise(data)
	if err != nil {
		return nil, err
	}
	if (width != 0 || height != 0) && (width != m.width || height != m.height) {
		return nil, ErrInvalidSize.WithDataMap(map[string]any{
			"preset":        cfg.Preset,
			"width":         width,
			"height":        height,
			"preset_width":  m.width,
			"preset_height": m.height,
		})
	}
	return m, nil
}

func seedOrRandom(seed int64) int64 {
	if seed == 0 {
		return rand.Int63()
	}
	return seed
}

const (
	defaultSeaLevel  = 0.42
	defaultSnowLevel = 0.82
)

// generateNoise 用两层噪声（海拔、温度）映射到地形枚举，四周向海面衰减形成岛屿。
func generateNoise(width, height int, cfg GenConfig) *HexTilemap {
	seed := seedOrRandom(cfg.Seed)
	elevNoise := opensimplex.NewNormalized(seed)
	tempNoise := opensimplex.NewNormalized(seed + 1)

	sea := cfg.SeaLevel
	if sea <= 0 {
		sea = defaultSeaLevel
	}
	snow := cfg.SnowLevel
	if snow <= 0 {
		snow = defaultSnowLevel
	}

	return newFilled(width, height, func(column, row int) TileType {
		// offset 坐标 → 平面坐标：列间距 1.5，偶数列下移半格
		x := float64(column) * 1.5
		y := float64(row) * math.Sqrt(3)
		if column%2 == 0 {
			y += math.Sqrt(3) / 2
		}

		elev := octaveNoise(elevNoise, x, y, 4, 0.08, 0.5)
		temp := octaveNoise(tempNoise, x, y, 2, 0.05, 0.5)
		elev *= edgeFalloff(column, row, width, height)

		return classify(elev, temp, sea, snow)
	})
}

func classify(elev, temp, sea, snow float64) TileType {
	switch {
	case elev < sea*0.7:
		if temp < 0.2 {
			return Ice
		}
		return DeepWater
	case elev < sea:
		if temp < 0.2 {
			return Ice
		}
		return ShallowWater
	case elev < sea+0.04:
		return Sand
	case elev >= snow:
		return Snow
	case elev >= snow-0.1:
		return Mountain
	case temp > 0.5:
		return Forest
	default:
		return Grass
	}
}

// edgeFalloff 在地图中心为 1，向边缘降到 0。
func edgeFalloff(column, row, width, height int) float64 {
	if width <= 1 || height <= 1 {
		return 1
	}
	dx := (float64(column)/float64(width-1))*2 - 1
	dy := (float64(row)/float64(height-1))*2 - 1
	d := math.Sqrt(dx*dx+dy*dy) / math.Sqrt2
	f := 1 - math.Pow(d, 3)
	if f < 0 {
		return 0
	}
	return f
}

func octaveNoise(n opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxAmp := 0.0
	for i := 0; i < octaves; i++ {
		total += n.Eval2(x*frequency, y*frequency) * amplitude
		maxAmp += amplitude
		amplitude *= persistence
		frequency *= 2
	}
	return total / maxAmp
}
