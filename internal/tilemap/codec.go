package tilemap

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// FormatVersion 是当前序列化格式版本。
// 版本 1 只包含地形：控制者和城池不参与序列化，往返后会丢失。
const FormatVersion = 1

type wireOut struct {
	Version int      `json:"version"`
	Width   int      `json:"width"`
	Height  int      `json:"height"`
	TileIDs []string `json:"tileIds"`
	Tiles   []int    `json:"tiles"`
}

// wireIn 用指针/nil 切片区分“字段缺失”和“零值”。
type wireIn struct {
	Version *int     `json:"version"`
	Width   *int     `json:"width"`
	Height  *int     `json:"height"`
	TileIDs []string `json:"tileIds"`
	Tiles   []int    `json:"tiles"`
}

// Serialise 输出 {version,width,height,tileIds,tiles}，tiles 是行优先的扁平下标数组，
// 下标指向 tileIds（完整地形枚举）。不在枚举内的地形写成 -1，读取时视为数据损坏。
func (m *HexTilemap) Serialise() string {
	ids := make([]string, len(tileTypes))
	for i, t := range tileTypes {
		ids[i] = string(t)
	}
	out := wireOut{
		Version: FormatVersion,
		Width:   m.width,
		Height:  m.height,
		TileIDs: ids,
		Tiles:   make([]int, len(m.tiles)),
	}
	for i, t := range m.tiles {
		out.Tiles[i] = t.Type.Index()
	}
	// 只有 int 和 string，Marshal 不会失败
	b, _ := json.Marshal(out)
	return string(b)
}

// Deserialise 解码 Serialise 的输出，任何不满足格式的输入都返回 ErrMalformedTilemap。
func Deserialise(data string) (*HexTilemap, error) {
	var in wireIn
	if err := json.Unmarshal([]byte(data), &in); err != nil {
		return nil, malformed(ReasonInvalidJSON, err)
	}
	if in.Version != nil && *in.Version != FormatVersion {
		return nil, malformed(ReasonUnsupportedVersion, fmt.Errorf("version %d", *in.Version)).
			WithData("version", *in.Version)
	}
	for _, f := range []struct {
		name    string
		missing bool
	}{
		{"width", in.Width == nil},
		{"height", in.Height == nil},
		{"tileIds", in.TileIDs == nil},
		{"tiles", in.Tiles == nil},
	} {
		if f.missing {
			return nil, malformed(ReasonMissingField, fmt.Errorf("missing field %q", f.name)).
				WithData("field", f.name)
		}
	}

	width, height := *in.Width, *in.Height
	if width < 0 || height < 0 {
		return nil, malformed(ReasonNegativeSize, fmt.Errorf("size %dx%d", width, height))
	}
	if !sizeOK(width, height) {
		return nil, malformed(ReasonSizeTooLarge, fmt.Errorf("size %dx%d", width, height)).
			WithDataMap(map[string]any{"width": width, "height": height})
	}
	if len(in.Tiles) != width*height {
		return nil, malformed(ReasonTileCount,
			fmt.Errorf("got %d tiles, want %d", len(in.Tiles), width*height))
	}

	types := make([]TileType, len(in.Tiles))
	for pos, idx := range in.Tiles {
		if idx < 0 || idx >= len(in.TileIDs) {
			return nil, malformed(ReasonIndexOutOfRange,
				fmt.Errorf("tile %d: index %d outside tileIds[%d]", pos, idx, len(in.TileIDs))).
				WithData("position", pos)
		}
		t := TileType(in.TileIDs[idx])
		if !t.Valid() {
			return nil, malformed(ReasonUnknownTileID,
				fmt.Errorf("tile %d: unknown tile id %q", pos, in.TileIDs[idx])).
				WithData("position", pos)
		}
		types[pos] = t
	}

	return newFilled(width, height, func(column, row int) TileType {
		return types[row*width+column]
	}), nil
}

// Load 用序列化数据整体替换当前地图（包括尺寸，城池一并清空）。
// 解码失败时地图保持原样。
func (m *HexTilemap) Load(data string) error {
	next, err := Deserialise(data)
	if err != nil {
		return err
	}
	*m = *next
	return nil
}

func malformed(reason Reason, cause error) *Error {
	return ErrMalformedTilemap.WithReason(reason).WithCause(cause)
}
