package dto

import "HexRealm/internal/shared/actor/messages"

// PushMapChanged 是推给订阅者的 WS 消息名。
const PushMapChanged = "map.changed"

type WatchReq struct {
	MapId string `json:"map_id"`
}

type WatchResp struct {
	MapId   string `json:"map_id"`
	Version uint64 `json:"version"`
}

// PaintReq 的 Type 为空时按当前工具作用于该格。
type PaintReq struct {
	MapId  string `json:"map_id"`
	Column int    `json:"column"`
	Row    int    `json:"row"`
	Type   string `json:"type"`
}

type TileReq struct {
	MapId  string `json:"map_id"`
	Column int    `json:"column"`
	Row    int    `json:"row"`
}

type MapChangedPush struct {
	MapId   string           `json:"map_id"`
	Kind    string           `json:"kind"`
	Coords  []messages.Coord `json:"coords"`
	Version uint64           `json:"version"`
}

func MapChanged(e *messages.MapChanged) MapChangedPush {
	coords := e.Coords
	if coords == nil {
		coords = []messages.Coord{}
	}
	return MapChangedPush{MapId: e.MapId, Kind: e.Kind, Coords: coords, Version: e.Version}
}
