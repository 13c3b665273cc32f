// Package entity 是编辑器会话：一张地图加上只属于编辑器的状态
// （玩家表、当前扮演的玩家、选区、画笔类型、相机）。
package entity

import (
	"HexRealm/internal/camera"
	"HexRealm/internal/tilemap"
)

type MapID string

type Session struct {
	id        MapID
	tilemap   *tilemap.HexTilemap
	players   *tilemap.Players
	playingAs tilemap.PlayerID
	selected  *tilemap.Coord
	tileType  tilemap.TileType
	tool      Tool
	view      camera.View
	version   uint64
}

// NewSession 接管 m 的所有权；players 为空时使用默认的六个玩家。
func NewSession(id MapID, m *tilemap.HexTilemap, players *tilemap.Players) *Session {
	if players == nil {
		players = tilemap.DefaultPlayers()
	}
	s := &Session{
		id:       id,
		tilemap:  m,
		players:  players,
		tileType: tilemap.TileTypes()[0],
		tool:     ToolPaint,
		view:     camera.DefaultView(),
	}
	if players.Len() > 0 {
		s.playingAs = 1
	}
	return s
}

func (s *Session) ID() MapID {
	return s.id
}

func (s *Session) Tilemap() *tilemap.HexTilemap {
	return s.tilemap
}

func (s *Session) Players() *tilemap.Players {
	return s.players
}

// Version 每次地图内容变化加一，用于推送与客户端去重。
func (s *Session) Version() uint64 {
	return s.version
}

func (s *Session) touch(changed []tilemap.Coord) []tilemap.Coord {
	if len(changed) > 0 {
		s.version++
	}
	return changed
}

func (s *Session) PlayingAs() tilemap.PlayerID {
	return s.playingAs
}

func (s *Session) SetPlayingAs(id tilemap.PlayerID) error {
	if !s.players.Has(id) {
		return ErrUnknownPlayer.WithData("player", int(id))
	}
	s.playingAs = id
	return nil
}

func (s *Session) AddPlayer(p tilemap.Player) (tilemap.PlayerID, error) {
	if p.Name == "" || p.Colour == "" {
		return tilemap.NoPlayer, ErrInvalidPlayer
	}
	return s.players.Add(p), nil
}

// Select 设置选区；传 nil 清空。
func (s *Session) Select(c *tilemap.Coord) {
	if c == nil {
		s.selected = nil
		return
	}
	cp := *c
	s.selected = &cp
}

func (s *Session) SelectedCoords() (tilemap.Coord, bool) {
	if s.selected == nil {
		return tilemap.Coord{}, false
	}
	return *s.selected, true
}

// selectedOrOrigin 没有选区时落在 (0,0)。
func (s *Session) selectedOrOrigin() tilemap.Coord {
	if s.selected == nil {
		return tilemap.Coord{}
	}
	return *s.selected
}

func (s *Session) SelectedTile() (tilemap.Tile, bool) {
	c := s.selectedOrOrigin()
	return s.tilemap.GetTile(c.Column, c.Row)
}

func (s *Session) SelectedCity() (tilemap.City, bool) {
	c := s.selectedOrOrigin()
	return s.tilemap.GetCity(c.Column, c.Row)
}

func (s *Session) SelectedTileType() tilemap.TileType {
	return s.tileType
}

func (s *Session) SetSelectedTileType(t tilemap.TileType) error {
	if !t.Valid() {
		return tilemap.ErrUnknownTileType.WithData("type", string(t))
	}
	s.tileType = t
	return nil
}

func (s *Session) Tool() Tool {
	return s.tool
}

func (s *Session) SetTool(t Tool) error {
	if t > ToolClaim {
		return ErrUnknownTool.WithData("tool", int(t))
	}
	s.tool = t
	return nil
}

// SetTile 把单格改成 t，返回实际变化的坐标；不影响画笔类型。
func (s *Session) SetTile(column, row int, t tilemap.TileType) []tilemap.Coord {
	before, ok := s.tilemap.GetTile(column, row)
	if !ok || before.Type == t {
		return nil
	}
	s.tilemap.SetTile(column, row, t)
	return s.touch([]tilemap.Coord{{Column: column, Row: row}})
}

// Paint 用当前画笔类型覆盖单格。
func (s *Session) Paint(column, row int) []tilemap.Coord {
	return s.SetTile(column, row, s.tileType)
}

// FillWith 对同地形连通块执行填充；原点已是 t 时没有变化。
func (s *Session) FillWith(column, row int, t tilemap.TileType) []tilemap.Coord {
	origin, ok := s.tilemap.GetTile(column, row)
	if !ok || origin.Type == t {
		return nil
	}
	return s.touch(s.tilemap.FloodFill(column, row, t))
}

func (s *Session) Fill(column, row int) []tilemap.Coord {
	return s.FillWith(column, row, s.tileType)
}

// ClaimFor 把瓦片划给 player；player 必须已登记。
func (s *Session) ClaimFor(column, row int, player tilemap.PlayerID) ([]tilemap.Coord, error) {
	if !s.players.Has(player) {
		return nil, ErrUnknownPlayer.WithData("player", int(player))
	}
	before, ok := s.tilemap.GetTile(column, row)
	if !ok || before.ControlledBy == player {
		return nil, nil
	}
	s.tilemap.SetController(column, row, player)
	return s.touch([]tilemap.Coord{{Column: column, Row: row}}), nil
}

// Claim 把瓦片划给当前扮演的玩家；没有可扮演的玩家时返回 ErrUnknownPlayer。
func (s *Session) Claim(column, row int) ([]tilemap.Coord, error) {
	return s.ClaimFor(column, row, s.playingAs)
}

// Apply 以当前工具点击 (column,row)。选择工具不改地图，返回空。
func (s *Session) Apply(column, row int) ([]tilemap.Coord, error) {
	switch s.tool {
	case ToolPaint:
		return s.Paint(column, row), nil
	case ToolFill:
		return s.Fill(column, row), nil
	case ToolClaim:
		return s.Claim(column, row)
	default:
		s.Select(&tilemap.Coord{Column: column, Row: row})
		return nil, nil
	}
}

// PutCity 越界时静默忽略；控制者必须是已登记的玩家。
func (s *Session) PutCity(c tilemap.City) ([]tilemap.Coord, error) {
	if c.ControlledBy != tilemap.NoPlayer && !s.players.Has(c.ControlledBy) {
		return nil, ErrUnknownPlayer.WithData("player", int(c.ControlledBy))
	}
	if !s.tilemap.InBounds(c.Column, c.Row) {
		return nil, nil
	}
	s.tilemap.PutCity(c)
	return s.touch([]tilemap.Coord{c.Coord()}), nil
}

func (s *Session) RemoveCity(column, row int) []tilemap.Coord {
	if !s.tilemap.RemoveCity(column, row) {
		return nil
	}
	return s.touch([]tilemap.Coord{{Column: column, Row: row}})
}

// Replace 整体替换地图（导入）；选区越界时清空。
func (s *Session) Replace(m *tilemap.HexTilemap) {
	s.tilemap = m
	if s.selected != nil && !m.InBounds(s.selected.Column, s.selected.Row) {
		s.selected = nil
	}
	s.version++
}

func (s *Session) View() camera.View {
	return s.view
}

func (s *Session) SetView(v camera.View) {
	v.Zoom = camera.ClampZoom(v.Zoom)
	s.view = v
}

func (s *Session) Pan(dx, dy float64) camera.View {
	s.view = s.view.Panned(dx, dy)
	return s.view
}

func (s *Session) Zoom(factor float64, anchor camera.Point) camera.View {
	s.view = s.view.Zoomed(factor, anchor)
	return s.view
}
