package tilemap

import "sort"

// HexTilemap 按行优先稠密存储 width*height 个瓦片。
// 不是并发安全的：同一时刻只能有一个 goroutine（编辑器里是地图 actor）访问。
type HexTilemap struct {
	width  int
	height int
	tiles  []Tile
	cities map[Coord]City
}

// 单边与总格数上限，超出的尺寸在分配内存之前就被拒绝。
const (
	MaxSide  = 4096
	MaxTiles = 1 << 20
)

// sizeOK 要求宽高非负、单边不超过 MaxSide、总格数不超过 MaxTiles。
// 先限制单边，width*height 就不会溢出。
func sizeOK(width, height int) bool {
	if width < 0 || height < 0 || width > MaxSide || height > MaxSide {
		return false
	}
	return width*height <= MaxTiles
}

// newFilled 按 typeAt 生成全部瓦片，保证矩形内没有空洞。
func newFilled(width, height int, typeAt func(column, row int) TileType) *HexTilemap {
	m := &HexTilemap{
		width:  width,
		height: height,
		tiles:  make([]Tile, width*height),
		cities: make(map[Coord]City),
	}
	for row := 0; row < height; row++ {
		for column := 0; column < width; column++ {
			m.tiles[m.index(column, row)] = Tile{
				Type:   typeAt(column, row),
				Column: column,
				Row:    row,
			}
		}
	}
	return m
}

// New 创建统一填充 fill 的地图。
func New(width, height int, fill TileType) (*HexTilemap, error) {
	return Generate(width, height, GenConfig{Policy: PolicyUniform, Fill: fill})
}

func (m *HexTilemap) Width() int {
	return m.width
}

func (m *HexTilemap) Height() int {
	return m.height
}

// Len 是瓦片总数，恒等于 width*height。
func (m *HexTilemap) Len() int {
	return len(m.tiles)
}

func (m *HexTilemap) InBounds(column, row int) bool {
	return column >= 0 && column < m.width && row >= 0 && row < m.height
}

func (m *HexTilemap) index(column, row int) int {
	return row*m.width + column
}

// GetTile 是纯查询：越界或不存在时返回 false，从不报错。
func (m *HexTilemap) GetTile(column, row int) (Tile, bool) {
	if !m.InBounds(column, row) {
		return Tile{}, false
	}
	return m.tiles[m.index(column, row)], true
}

// SetTile 覆盖坐标处的地形并刷新坐标字段，控制者保持不变。
// 越界时静默忽略：编辑工具在地图边缘误操作不能破坏地图形状。
func (m *HexTilemap) SetTile(column, row int, t TileType) {
	if !m.InBounds(column, row) {
		return
	}
	i := m.index(column, row)
	m.tiles[i] = Tile{
		Type:         t,
		Column:       column,
		Row:          row,
		ControlledBy: m.tiles[i].ControlledBy,
	}
}

// SetController 修改瓦片的控制者，越界同样静默忽略。
func (m *HexTilemap) SetController(column, row int, player PlayerID) {
	if !m.InBounds(column, row) {
		return
	}
	m.tiles[m.index(column, row)].ControlledBy = player
}

// Tiles 按行优先顺序返回全部瓦片的拷贝。
func (m *HexTilemap) Tiles() []Tile {
	out := make([]Tile, len(m.tiles))
	copy(out, m.tiles)
	return out
}

// Counts 统计每种地形的瓦片数量。
func (m *HexTilemap) Counts() map[TileType]int {
	out := make(map[TileType]int, len(tileTypes))
	for _, t := range m.tiles {
		out[t.Type]++
	}
	return out
}

// neighbourCoords 按固定顺序列出六个邻居坐标：上、下、左、右，
// 然后奇数列取上一行的两个对角，偶数列取下一行的两个对角。
func neighbourCoords(column, row int) [6]Coord {
	out := [6]Coord{
		{column, row - 1},
		{column, row + 1},
		{column - 1, row},
		{column + 1, row},
	}
	if column%2 != 0 {
		out[4] = Coord{column - 1, row - 1}
		out[5] = Coord{column + 1, row - 1}
	} else {
		out[4] = Coord{column - 1, row + 1}
		out[5] = Coord{column + 1, row + 1}
	}
	return out
}

// GetAdjacentTiles 返回存在的邻居瓦片，顺序同 neighbourCoords；原点不存在时返回空。
func (m *HexTilemap) GetAdjacentTiles(column, row int) []Tile {
	if _, ok := m.GetTile(column, row); !ok {
		return nil
	}
	out := make([]Tile, 0, 6)
	for _, c := range neighbourCoords(column, row) {
		if t, ok := m.GetTile(c.Column, c.Row); ok {
			out = append(out, t)
		}
	}
	return out
}

// FloodFill 把与原点同地形且连通的整块区域改成 newType。
// 先用显式栈找出完整连通块，再统一重绘，不会出现填了一半的中间状态。
// 返回被重绘的坐标（行优先，只对连通块排序，不扫描整张地图）；原点不存在时什么也不做。
func (m *HexTilemap) FloodFill(column, row int, newType TileType) []Coord {
	origin, ok := m.GetTile(column, row)
	if !ok {
		return nil
	}
	target := origin.Type

	visited := make(map[Coord]struct{})
	stack := []Coord{origin.Coord()}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, seen := visited[cur]; seen {
			continue
		}
		visited[cur] = struct{}{}
		for _, n := range m.GetAdjacentTiles(cur.Column, cur.Row) {
			if n.Type != target {
				continue
			}
			if _, seen := visited[n.Coord()]; !seen {
				stack = append(stack, n.Coord())
			}
		}
	}

	region := make([]Coord, 0, len(visited))
	for c := range visited {
		region = append(region, c)
	}
	sort.Slice(region, func(i, j int) bool {
		if region[i].Row != region[j].Row {
			return region[i].Row < region[j].Row
		}
		return region[i].Column < region[j].Column
	})
	for _, c := range region {
		m.SetTile(c.Column, c.Row, newType)
	}
	return region
}
