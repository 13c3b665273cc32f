package tilemap

import "sort"

// City 与地图共用坐标系，按坐标存放，同一格最多一座城。
type City struct {
	Column       int      `json:"column"`
	Row          int      `json:"row"`
	ControlledBy PlayerID `json:"controlledBy,omitempty"`
	Population   int      `json:"population"`
}

func (c City) Coord() Coord {
	return Coord{Column: c.Column, Row: c.Row}
}

// PutCity 新建或覆盖城池；越界坐标静默忽略，规则与 SetTile 一致。
func (m *HexTilemap) PutCity(city City) {
	if !m.InBounds(city.Column, city.Row) {
		return
	}
	m.cities[city.Coord()] = city
}

func (m *HexTilemap) GetCity(column, row int) (City, bool) {
	c, ok := m.cities[Coord{Column: column, Row: row}]
	return c, ok
}

// RemoveCity 返回是否确实删除了城池。
func (m *HexTilemap) RemoveCity(column, row int) bool {
	key := Coord{Column: column, Row: row}
	if _, ok := m.cities[key]; !ok {
		return false
	}
	delete(m.cities, key)
	return true
}

// Cities 按行优先顺序返回全部城池。
func (m *HexTilemap) Cities() []City {
	out := make([]City, 0, len(m.cities))
	for _, c := range m.cities {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Column < out[j].Column
	})
	return out
}
