// Package render 把地图与相机换算成一帧可直接绘制的数据。
// 只读消费 tilemap，不做任何修改。
package render

import (
	"fmt"

	"HexRealm/internal/camera"
	"HexRealm/internal/tilemap"
)

type Hex struct {
	Column      int              `json:"column"`
	Row         int              `json:"row"`
	Type        tilemap.TileType `json:"type"`
	Center      camera.Point     `json:"center"`
	Fill        string           `json:"fill"`
	OwnerColour string           `json:"ownerColour,omitempty"`
	Label       string           `json:"label"`
}

type CityMarker struct {
	Column      int          `json:"column"`
	Row         int          `json:"row"`
	Center      camera.Point `json:"center"`
	Population  int          `json:"population"`
	OwnerColour string       `json:"ownerColour,omitempty"`
}

type Frame struct {
	View     camera.View     `json:"view"`
	Range    camera.Range    `json:"range"`
	Outline  [6]camera.Point `json:"outline"`
	FontSize float64         `json:"fontSize"`
	Font     string          `json:"font"`
	Stroke   string          `json:"stroke"`
	Hexes    []Hex           `json:"hexes"`
	Cities   []CityMarker    `json:"cities"`
}

// BuildFrame 只收集画布可见范围内的瓦片与城市，按列优先、行次之的绘制顺序排列。
func BuildFrame(m *tilemap.HexTilemap, players *tilemap.Players, v camera.View, l camera.Layout, canvasW, canvasH float64) Frame {
	zoom := v.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	r := camera.VisibleRange(v, l, canvasW, canvasH).Clip(m.Width(), m.Height())
	f := Frame{
		View:     v,
		Range:    r,
		Outline:  camera.HexOutline(l, zoom),
		FontSize: BaseFontSize * zoom,
		Font:     fmt.Sprintf("%gpx %s", BaseFontSize*zoom, FontFamily),
		Stroke:   StrokeColour,
		Hexes:    make([]Hex, 0, max(0, (r.MaxColumn-r.MinColumn)*(r.MaxRow-r.MinRow))),
		Cities:   []CityMarker{},
	}
	for column := r.MinColumn; column < r.MaxColumn; column++ {
		for row := r.MinRow; row < r.MaxRow; row++ {
			t, ok := m.GetTile(column, row)
			if !ok {
				continue
			}
			f.Hexes = append(f.Hexes, Hex{
				Column:      column,
				Row:         row,
				Type:        t.Type,
				Center:      camera.WorldToScreen(v, camera.TileToWorld(l, column, row)),
				Fill:        FillColour(t.Type),
				OwnerColour: ownerColour(players, t.ControlledBy),
				Label:       fmt.Sprintf("%d,%d", column, row),
			})
		}
	}
	for _, c := range m.Cities() {
		if c.Column < r.MinColumn || c.Column >= r.MaxColumn || c.Row < r.MinRow || c.Row >= r.MaxRow {
			continue
		}
		f.Cities = append(f.Cities, CityMarker{
			Column:      c.Column,
			Row:         c.Row,
			Center:      camera.WorldToScreen(v, camera.TileToWorld(l, c.Column, c.Row)),
			Population:  c.Population,
			OwnerColour: ownerColour(players, c.ControlledBy),
		})
	}
	return f
}

func ownerColour(players *tilemap.Players, id tilemap.PlayerID) string {
	if players == nil || id == tilemap.NoPlayer {
		return ""
	}
	p, ok := players.Get(id)
	if !ok {
		return ""
	}
	return p.Colour
}
