package dto

import (
	"HexRealm/internal/shared/actor/messages"
)

type CreateMapReq struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Policy string `json:"policy"`
	Fill   string `json:"fill"`
	Seed   int64  `json:"seed"`
	Preset string `json:"preset"`
	// Data 非空时按序列化数据创建，等同于 policy=preset。
	Data string `json:"data"`
}

type MapURI struct {
	MapId string `uri:"id" binding:"required"`
}

type TileURI struct {
	MapId  string `uri:"id" binding:"required"`
	Column int    `uri:"c"`
	Row    int    `uri:"r"`
}

type SetTileReq struct {
	Type string `json:"type" binding:"required"`
}

// FillReq 的 Type 为空时使用当前画笔地形。
type FillReq struct {
	Column int    `json:"column"`
	Row    int    `json:"row"`
	Type   string `json:"type"`
}

// ClaimReq 的 Player 为 0 时使用当前扮演的玩家。
type ClaimReq struct {
	Column int `json:"column"`
	Row    int `json:"row"`
	Player int `json:"player"`
}

type ApplyReq struct {
	Column int `json:"column"`
	Row    int `json:"row"`
}

type ImportReq struct {
	Data string `json:"data" binding:"required"`
}

type CityReq struct {
	Population   int `json:"population"`
	ControlledBy int `json:"controlledBy"`
}

type PlayerReq struct {
	Name   string `json:"name"`
	Colour string `json:"colour"`
}

type PlayingAsReq struct {
	Player int `json:"player"`
}

// SelectionReq 的 Coord 为 null 表示清空选区。
type SelectionReq struct {
	Coord *messages.Coord `json:"coord"`
}

type ToolReq struct {
	Tool     string `json:"tool"`
	TileType string `json:"tileType"`
}

type ViewReq struct {
	View    *messages.MapView `json:"view"`
	PanX    float64           `json:"panX"`
	PanY    float64           `json:"panY"`
	Zoom    float64           `json:"zoom"`
	AnchorX float64           `json:"anchorX"`
	AnchorY float64           `json:"anchorY"`
}

type FrameQuery struct {
	Width  float64 `form:"w"`
	Height float64 `form:"h"`
}

type ChangedResp struct {
	Coords  []messages.Coord `json:"coords"`
	Version uint64           `json:"version"`
}

func Changed(m *messages.MHChanged) ChangedResp {
	if m == nil {
		return ChangedResp{Coords: []messages.Coord{}}
	}
	return ChangedResp{Coords: m.Coords, Version: m.Version}
}

type TileResp struct {
	Tile  messages.MapTile `json:"tile"`
	Found bool             `json:"found"`
}

type CityResp struct {
	City  messages.MapCity `json:"city"`
	Found bool             `json:"found"`
}

type PlayersResp struct {
	Players   []messages.MapPlayer `json:"players"`
	PlayingAs int                  `json:"playingAs"`
}

func Players(m *messages.MHPlayers) PlayersResp {
	if m == nil {
		return PlayersResp{}
	}
	return PlayersResp{Players: m.Players, PlayingAs: m.PlayingAs}
}

type SelectionResp struct {
	Selected *messages.Coord   `json:"selected"`
	Tile     *messages.MapTile `json:"tile,omitempty"`
	City     *messages.MapCity `json:"city,omitempty"`
}

func Selection(m *messages.MHSelection) SelectionResp {
	if m == nil {
		return SelectionResp{}
	}
	resp := SelectionResp{Selected: m.Selected}
	if m.HasTile {
		t := m.Tile
		resp.Tile = &t
	}
	if m.HasCity {
		c := m.City
		resp.City = &c
	}
	return resp
}

type ToolResp struct {
	Tool     string `json:"tool"`
	TileType string `json:"tileType"`
}

type ExportResp struct {
	Data string `json:"data"`
}
