// Package tilemap 实现六边形地图：按 (column,row) 寻址的瓦片网格，
// 支持单点读写、邻接查询、泛洪填充以及 JSON 序列化。
//
// 坐标采用 offset 方案：奇偶列的纵向错位不同，决定对角邻居落在上一行还是下一行。
package tilemap

import "fmt"

// TileType 是封闭的地形枚举，字符串值即序列化时 tileIds 里的名字。
type TileType string

const (
	DeepWater    TileType = "deep_water"
	ShallowWater TileType = "shallow_water"
	Sand         TileType = "sand"
	Grass        TileType = "grass"
	Forest       TileType = "forest"
	Mountain     TileType = "mountain"
	Snow         TileType = "snow"
	Ice          TileType = "ice"
)

// tileTypes 的顺序就是序列化查找表的顺序，只能在末尾追加。
var tileTypes = [...]TileType{
	DeepWater,
	ShallowWater,
	Sand,
	Grass,
	Forest,
	Mountain,
	Snow,
	Ice,
}

// TileTypes 返回完整的地形枚举（有序拷贝）。
func TileTypes() []TileType {
	out := make([]TileType, len(tileTypes))
	copy(out, tileTypes[:])
	return out
}

// Index 返回地形在枚举中的下标，未知地形返回 -1。
func (t TileType) Index() int {
	for i, v := range tileTypes {
		if v == t {
			return i
		}
	}
	return -1
}

func (t TileType) Valid() bool {
	return t.Index() >= 0
}

// ParseTileType 把外部输入的名字转换成地形。
func ParseTileType(name string) (TileType, error) {
	t := TileType(name)
	if !t.Valid() {
		return "", ErrUnknownTileType.WithData("tile_type", name)
	}
	return t, nil
}

// Coord 是瓦片坐标，可直接作为 map key。
type Coord struct {
	Column int `json:"column"`
	Row    int `json:"row"`
}

func (c Coord) String() string {
	return fmt.Sprintf("%d,%d", c.Column, c.Row)
}

// PlayerID 引用 Players 中的玩家（从 1 开始）；零值表示无人控制。
type PlayerID int

const NoPlayer PlayerID = 0

// Tile 是值类型，GetTile 返回的是拷贝。
type Tile struct {
	Type         TileType `json:"type"`
	Column       int      `json:"column"`
	Row          int      `json:"row"`
	ControlledBy PlayerID `json:"controlledBy,omitempty"`
}

func (t Tile) Coord() Coord {
	return Coord{Column: t.Column, Row: t.Row}
}

func (t Tile) Controlled() bool {
	return t.ControlledBy != NoPlayer
}
