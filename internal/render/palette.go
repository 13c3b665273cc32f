package render

import "HexRealm/internal/tilemap"

const (
	StrokeColour = "#000000"
	TextColour   = "#000000"
	FontFamily   = "Consolas"
	BaseFontSize = 24.0
	// 未知类型的兜底填充色
	unknownFill = "#ff00ff"
)

var fills = map[tilemap.TileType]string{
	tilemap.DeepWater:    "#0b3d91",
	tilemap.ShallowWater: "#3f8fd2",
	tilemap.Sand:         "#e8d38a",
	tilemap.Grass:        "#07bb07",
	tilemap.Forest:       "#176b2c",
	tilemap.Mountain:     "#7d7468",
	tilemap.Snow:         "#f2f5f7",
	tilemap.Ice:          "#bfe6f2",
}

// FillColour 返回瓦片类型的填充色。
func FillColour(t tilemap.TileType) string {
	if c, ok := fills[t]; ok {
		return c
	}
	return unknownFill
}
