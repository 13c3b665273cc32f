package tilemap

import (
	"reflect"
	"testing"
)

func mustUniform(t *testing.T, w, h int, fill TileType) *HexTilemap {
	t.Helper()
	m, err := New(w, h, fill)
	if err != nil {
		t.Fatalf("New(%d,%d,%s) 失败: %v", w, h, fill, err)
	}
	return m
}

func snapshot(m *HexTilemap) []Tile {
	return m.Tiles()
}

func TestNew_矩形内每格都存在且坐标一致(t *testing.T) {
	m := mustUniform(t, 7, 5, Forest)
	if m.Len() != 35 {
		t.Fatalf("期望 35 个瓦片, got=%d", m.Len())
	}
	for row := 0; row < 5; row++ {
		for column := 0; column < 7; column++ {
			tile, ok := m.GetTile(column, row)
			if !ok {
				t.Fatalf("(%d,%d) 应该存在", column, row)
			}
			if tile.Type != Forest || tile.Column != column || tile.Row != row {
				t.Fatalf("(%d,%d) 瓦片不符合预期: %+v", column, row, tile)
			}
		}
	}
}

func TestGetTile_越界返回不存在(t *testing.T) {
	m := mustUniform(t, 3, 3, Grass)
	for _, c := range []Coord{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {100, 100}} {
		if _, ok := m.GetTile(c.Column, c.Row); ok {
			t.Fatalf("%v 越界却返回了瓦片", c)
		}
	}
}

func TestSetTile_越界静默忽略(t *testing.T) {
	m := mustUniform(t, 3, 3, Grass)
	before := snapshot(m)
	for _, c := range []Coord{{-1, 0}, {0, -1}, {3, 1}, {1, 3}} {
		m.SetTile(c.Column, c.Row, Sand)
		m.SetController(c.Column, c.Row, 1)
	}
	if !reflect.DeepEqual(before, snapshot(m)) {
		t.Fatalf("越界写入不应修改地图")
	}
}

func TestSetTile_覆盖地形并保留控制者(t *testing.T) {
	m := mustUniform(t, 3, 3, Grass)
	m.SetController(1, 2, 3)
	m.SetTile(1, 2, Mountain)
	tile, _ := m.GetTile(1, 2)
	if tile.Type != Mountain || tile.Column != 1 || tile.Row != 2 || tile.ControlledBy != 3 {
		t.Fatalf("SetTile 结果不符合预期: %+v", tile)
	}
}

func TestGetAdjacentTiles_奇偶列邻居与顺序(t *testing.T) {
	m := mustUniform(t, 5, 5, Grass)

	coords := func(ts []Tile) []Coord {
		out := make([]Coord, len(ts))
		for i, tile := range ts {
			out[i] = tile.Coord()
		}
		return out
	}

	odd := coords(m.GetAdjacentTiles(1, 2))
	wantOdd := []Coord{{1, 1}, {1, 3}, {0, 2}, {2, 2}, {0, 1}, {2, 1}}
	if !reflect.DeepEqual(odd, wantOdd) {
		t.Fatalf("奇数列邻居 got=%v want=%v", odd, wantOdd)
	}

	even := coords(m.GetAdjacentTiles(2, 2))
	wantEven := []Coord{{2, 1}, {2, 3}, {1, 2}, {3, 2}, {1, 3}, {3, 3}}
	if !reflect.DeepEqual(even, wantEven) {
		t.Fatalf("偶数列邻居 got=%v want=%v", even, wantEven)
	}

	corner := coords(m.GetAdjacentTiles(0, 0))
	wantCorner := []Coord{{0, 1}, {1, 0}, {1, 1}}
	if !reflect.DeepEqual(corner, wantCorner) {
		t.Fatalf("角落邻居应过滤掉不存在的坐标 got=%v want=%v", corner, wantCorner)
	}

	if got := m.GetAdjacentTiles(-1, 0); len(got) != 0 {
		t.Fatalf("原点不存在时应返回空, got=%v", got)
	}
}

func TestGetAdjacentTiles_邻接关系对称(t *testing.T) {
	m := mustUniform(t, 6, 5, Grass)
	for row := 0; row < m.Height(); row++ {
		for column := 0; column < m.Width(); column++ {
			for _, b := range m.GetAdjacentTiles(column, row) {
				found := false
				for _, back := range m.GetAdjacentTiles(b.Column, b.Row) {
					if back.Column == column && back.Row == row {
						found = true
						break
					}
				}
				if !found {
					t.Fatalf("(%d,%d) 邻接 %v，反向却不邻接", column, row, b.Coord())
				}
			}
		}
	}
}

func TestFloodFill_统一地图全部重绘(t *testing.T) {
	m := mustUniform(t, 3, 3, Grass)
	changed := m.FloodFill(1, 1, Sand)
	if len(changed) != 9 {
		t.Fatalf("期望重绘 9 格, got=%d", len(changed))
	}
	for _, tile := range m.Tiles() {
		if tile.Type != Sand {
			t.Fatalf("%v 应该是 sand, got=%s", tile.Coord(), tile.Type)
		}
	}
}

func TestFloodFill_不同地形的格子不受影响(t *testing.T) {
	m := mustUniform(t, 3, 3, Grass)
	m.SetTile(0, 0, Sand)

	changed := m.FloodFill(1, 1, ShallowWater)
	if len(changed) != 8 {
		t.Fatalf("期望重绘 8 格, got=%d", len(changed))
	}
	if tile, _ := m.GetTile(0, 0); tile.Type != Sand {
		t.Fatalf("(0,0) 应保持 sand, got=%s", tile.Type)
	}
	for _, tile := range m.Tiles() {
		if tile.Coord() == (Coord{0, 0}) {
			continue
		}
		if tile.Type != ShallowWater {
			t.Fatalf("%v 应该是 shallow_water, got=%s", tile.Coord(), tile.Type)
		}
	}
}

func TestFloodFill_只重绘连通块(t *testing.T) {
	// 第 2 列整列为山，把草地切成左右两块
	m := mustUniform(t, 5, 4, Grass)
	for row := 0; row < 4; row++ {
		m.SetTile(2, row, Mountain)
	}
	m.FloodFill(0, 0, Forest)

	for _, tile := range m.Tiles() {
		switch {
		case tile.Column < 2 && tile.Type != Forest:
			t.Fatalf("左侧 %v 应被填充, got=%s", tile.Coord(), tile.Type)
		case tile.Column == 2 && tile.Type != Mountain:
			t.Fatalf("山脉 %v 不应改变, got=%s", tile.Coord(), tile.Type)
		case tile.Column > 2 && tile.Type != Grass:
			t.Fatalf("右侧 %v 不连通不应改变, got=%s", tile.Coord(), tile.Type)
		}
	}
}

func TestFloodFill_返回坐标按行优先排列(t *testing.T) {
	m := mustUniform(t, 5, 4, Grass)
	for row := 0; row < 4; row++ {
		m.SetTile(2, row, Mountain)
	}
	got := m.FloodFill(4, 3, Snow)
	want := []Coord{
		{3, 0}, {4, 0},
		{3, 1}, {4, 1},
		{3, 2}, {4, 2},
		{3, 3}, {4, 3},
	}
	if len(got) != len(want) {
		t.Fatalf("FloodFill 返回 %d 格, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("第 %d 个坐标 got=%v want=%v", i, got[i], want[i])
		}
	}
}

func TestFloodFill_幂等(t *testing.T) {
	m, err := Generate(12, 9, GenConfig{Policy: PolicyRandom, Seed: 7})
	if err != nil {
		t.Fatalf("Generate 失败: %v", err)
	}
	m.FloodFill(4, 4, Snow)
	once := snapshot(m)
	m.FloodFill(4, 4, Snow)
	if !reflect.DeepEqual(once, snapshot(m)) {
		t.Fatalf("同一地形重复填充应不改变结果")
	}
}

func TestFloodFill_同地形填充与越界原点(t *testing.T) {
	m := mustUniform(t, 4, 4, Grass)
	before := snapshot(m)
	if changed := m.FloodFill(2, 2, Grass); len(changed) != 16 {
		t.Fatalf("同地形填充应遍历整块, got=%d", len(changed))
	}
	if changed := m.FloodFill(9, 9, Sand); changed != nil {
		t.Fatalf("原点不存在时应返回 nil, got=%v", changed)
	}
	if !reflect.DeepEqual(before, snapshot(m)) {
		t.Fatalf("地图不应改变")
	}
}

func TestFloodFill_可达集合全部重绘_其余不变(t *testing.T) {
	m, err := Generate(15, 11, GenConfig{Policy: PolicyRandom, Seed: 42})
	if err != nil {
		t.Fatalf("Generate 失败: %v", err)
	}
	before := snapshot(m)
	origin, _ := m.GetTile(7, 5)

	// 独立计算期望的可达集合（BFS）
	reach := map[Coord]bool{origin.Coord(): true}
	queue := []Coord{origin.Coord()}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range m.GetAdjacentTiles(cur.Column, cur.Row) {
			if n.Type == origin.Type && !reach[n.Coord()] {
				reach[n.Coord()] = true
				queue = append(queue, n.Coord())
			}
		}
	}

	newType := Ice
	if origin.Type == Ice {
		newType = Sand
	}
	changed := m.FloodFill(7, 5, newType)
	if len(changed) != len(reach) {
		t.Fatalf("重绘数量 got=%d want=%d", len(changed), len(reach))
	}
	for i, tile := range m.Tiles() {
		if reach[tile.Coord()] {
			if tile.Type != newType {
				t.Fatalf("可达格 %v 未重绘", tile.Coord())
			}
		} else if tile.Type != before[i].Type {
			t.Fatalf("不可达格 %v 被修改", tile.Coord())
		}
	}
}

func TestCities_按坐标存取_越界忽略(t *testing.T) {
	m := mustUniform(t, 4, 4, Grass)
	m.PutCity(City{Column: 3, Row: 1, ControlledBy: 2, Population: 1200})
	m.PutCity(City{Column: 0, Row: 1, Population: 300})
	m.PutCity(City{Column: 9, Row: 9, Population: 1})

	if got := len(m.Cities()); got != 2 {
		t.Fatalf("越界城池不应写入, got=%d", got)
	}
	c, ok := m.GetCity(3, 1)
	if !ok || c.Population != 1200 || c.ControlledBy != 2 {
		t.Fatalf("GetCity 结果不符合预期: %+v ok=%v", c, ok)
	}
	if first := m.Cities()[0]; first.Column != 0 {
		t.Fatalf("Cities 应按行优先排序, got=%+v", first)
	}
	if !m.RemoveCity(3, 1) || m.RemoveCity(3, 1) {
		t.Fatalf("RemoveCity 只应成功一次")
	}
}

func TestPlayers_ID从1开始(t *testing.T) {
	p := DefaultPlayers()
	if p.Len() != 6 {
		t.Fatalf("默认玩家应为 6 个, got=%d", p.Len())
	}
	first, ok := p.Get(1)
	if !ok || first.Colour != "#ff0000" {
		t.Fatalf("Player 1 不符合预期: %+v", first)
	}
	if _, ok := p.Get(NoPlayer); ok {
		t.Fatalf("NoPlayer 不应对应任何玩家")
	}
	id := p.Add(Player{Name: "Player 7", Colour: "#123456"})
	if id != 7 || !p.Has(7) || p.Has(8) {
		t.Fatalf("Add 返回的 ID 不符合预期: %d", id)
	}
}

func TestTileType_枚举顺序与解析(t *testing.T) {
	types := TileTypes()
	if len(types) != 8 || types[0] != DeepWater || types[7] != Ice {
		t.Fatalf("枚举顺序不符合预期: %v", types)
	}
	if TileType("lava").Index() != -1 {
		t.Fatalf("未知地形下标应为 -1")
	}
	if _, err := ParseTileType("lava"); err == nil {
		t.Fatalf("未知地形应报错")
	}
	if got, err := ParseTileType("snow"); err != nil || got != Snow {
		t.Fatalf("ParseTileType(snow) got=%v err=%v", got, err)
	}
}
