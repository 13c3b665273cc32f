package messages

import (
	"HexRealm/internal/camera"
	"HexRealm/internal/render"
	"HexRealm/internal/tilemap"
)

type Coord = tilemap.Coord

type MapTile = tilemap.Tile

type MapCity = tilemap.City

type MapPlayer struct {
	Id     int    `json:"id"`
	Name   string `json:"name"`
	Colour string `json:"colour"`
}

type MapView = camera.View

type MapFrame = render.Frame

type MapSummary struct {
	MapId            string         `json:"map_id"`
	Width            int            `json:"width"`
	Height           int            `json:"height"`
	Version          uint64         `json:"version"`
	Counts           map[string]int `json:"counts"`
	Cities           int            `json:"cities"`
	PlayingAs        int            `json:"playing_as"`
	SelectedTileType string         `json:"selected_tile_type"`
	Tool             string         `json:"tool"`
	Selected         *Coord         `json:"selected,omitempty"`
	View             MapView        `json:"view"`
}
