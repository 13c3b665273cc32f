package actors

import (
	"HexRealm/internal/camera"
	"HexRealm/internal/editor/entity"
	"HexRealm/internal/render"
	"HexRealm/internal/shared/actor/messages"
	"HexRealm/internal/tilemap"

	"github.com/asynkron/protoactor-go/actor"
)

type MapHandler struct{}

var MH = &MapHandler{}

func (h *MapHandler) HandleHMMapSummary(ctx actor.Context, p *MapActor, req *messages.HMMapSummary) {
	ctx.Respond(&messages.MHMapSummary{Summary: summarize(p.session)})
}

func (h *MapHandler) HandleHMGetTile(ctx actor.Context, p *MapActor, req *messages.HMGetTile) {
	t, ok := p.session.Tilemap().GetTile(req.Column, req.Row)
	ctx.Respond(&messages.MHGetTile{Tile: t, Found: ok})
}

func (h *MapHandler) HandleHMSetTile(ctx actor.Context, p *MapActor, req *messages.HMSetTile) {
	t, err := tilemap.ParseTileType(req.Type)
	if err != nil {
		ctx.Respond(fail(err))
		return
	}
	h.changed(ctx, p, messages.ChangeKindTile, p.session.SetTile(req.Column, req.Row, t))
}

func (h *MapHandler) HandleHMAdjacent(ctx actor.Context, p *MapActor, req *messages.HMAdjacent) {
	tiles := p.session.Tilemap().GetAdjacentTiles(req.Column, req.Row)
	if tiles == nil {
		tiles = []messages.MapTile{}
	}
	ctx.Respond(&messages.MHTiles{Tiles: tiles})
}

func (h *MapHandler) HandleHMFill(ctx actor.Context, p *MapActor, req *messages.HMFill) {
	s := p.session
	t := s.SelectedTileType()
	if req.Type != "" {
		var err error
		if t, err = tilemap.ParseTileType(req.Type); err != nil {
			ctx.Respond(fail(err))
			return
		}
	}
	h.changed(ctx, p, messages.ChangeKindFill, s.FillWith(req.Column, req.Row, t))
}

func (h *MapHandler) HandleHMClaim(ctx actor.Context, p *MapActor, req *messages.HMClaim) {
	s := p.session
	player := s.PlayingAs()
	if req.Player != 0 {
		player = tilemap.PlayerID(req.Player)
	}
	changed, err := s.ClaimFor(req.Column, req.Row, player)
	if err != nil {
		ctx.Respond(fail(err))
		return
	}
	h.changed(ctx, p, messages.ChangeKindClaim, changed)
}

func (h *MapHandler) HandleHMApplyTool(ctx actor.Context, p *MapActor, req *messages.HMApplyTool) {
	kind := messages.ChangeKindTile
	switch p.session.Tool() {
	case entity.ToolFill:
		kind = messages.ChangeKindFill
	case entity.ToolClaim:
		kind = messages.ChangeKindClaim
	}
	changed, err := p.session.Apply(req.Column, req.Row)
	if err != nil {
		ctx.Respond(fail(err))
		return
	}
	h.changed(ctx, p, kind, changed)
}

func (h *MapHandler) HandleHMExport(ctx actor.Context, p *MapActor, req *messages.HMExport) {
	ctx.Respond(&messages.MHExport{Data: p.session.Tilemap().Serialise()})
}

// HandleHMImport 解码失败时会话保持不变。
func (h *MapHandler) HandleHMImport(ctx actor.Context, p *MapActor, req *messages.HMImport) {
	m, err := tilemap.Deserialise(req.Data)
	if err != nil {
		ctx.Respond(fail(err))
		return
	}
	p.session.Replace(m)
	all := make([]messages.Coord, 0, m.Len())
	for _, t := range m.Tiles() {
		all = append(all, t.Coord())
	}
	h.changed(ctx, p, messages.ChangeKindImport, all)
}

func (h *MapHandler) HandleHMListCities(ctx actor.Context, p *MapActor, req *messages.HMListCities) {
	ctx.Respond(&messages.MHCities{Cities: p.session.Tilemap().Cities()})
}

func (h *MapHandler) HandleHMGetCity(ctx actor.Context, p *MapActor, req *messages.HMGetCity) {
	c, ok := p.session.Tilemap().GetCity(req.Column, req.Row)
	ctx.Respond(&messages.MHGetCity{City: c, Found: ok})
}

func (h *MapHandler) HandleHMPutCity(ctx actor.Context, p *MapActor, req *messages.HMPutCity) {
	changed, err := p.session.PutCity(req.City)
	if err != nil {
		ctx.Respond(fail(err))
		return
	}
	h.changed(ctx, p, messages.ChangeKindCity, changed)
}

func (h *MapHandler) HandleHMRemoveCity(ctx actor.Context, p *MapActor, req *messages.HMRemoveCity) {
	h.changed(ctx, p, messages.ChangeKindCity, p.session.RemoveCity(req.Column, req.Row))
}

func (h *MapHandler) HandleHMListPlayers(ctx actor.Context, p *MapActor, req *messages.HMListPlayers) {
	ctx.Respond(players(p.session))
}

func (h *MapHandler) HandleHMAddPlayer(ctx actor.Context, p *MapActor, req *messages.HMAddPlayer) {
	if _, err := p.session.AddPlayer(tilemap.Player{Name: req.Name, Colour: req.Colour}); err != nil {
		ctx.Respond(fail(err))
		return
	}
	ctx.Respond(players(p.session))
}

func (h *MapHandler) HandleHMSetPlayingAs(ctx actor.Context, p *MapActor, req *messages.HMSetPlayingAs) {
	if err := p.session.SetPlayingAs(tilemap.PlayerID(req.Player)); err != nil {
		ctx.Respond(fail(err))
		return
	}
	ctx.Respond(players(p.session))
}

func (h *MapHandler) HandleHMSelect(ctx actor.Context, p *MapActor, req *messages.HMSelect) {
	s := p.session
	s.Select(req.Coord)
	resp := &messages.MHSelection{}
	if c, ok := s.SelectedCoords(); ok {
		resp.Selected = &c
	}
	resp.Tile, resp.HasTile = s.SelectedTile()
	resp.City, resp.HasCity = s.SelectedCity()
	ctx.Respond(resp)
}

func (h *MapHandler) HandleHMSetTool(ctx actor.Context, p *MapActor, req *messages.HMSetTool) {
	s := p.session
	if req.Tool != "" {
		tool, err := entity.ParseTool(req.Tool)
		if err != nil {
			ctx.Respond(fail(err))
			return
		}
		if err := s.SetTool(tool); err != nil {
			ctx.Respond(fail(err))
			return
		}
	}
	if req.TileType != "" {
		if err := s.SetSelectedTileType(tilemap.TileType(req.TileType)); err != nil {
			ctx.Respond(fail(err))
			return
		}
	}
	ctx.Respond(&messages.MHTool{Tool: s.Tool().String(), TileType: string(s.SelectedTileType())})
}

func (h *MapHandler) HandleHMSetView(ctx actor.Context, p *MapActor, req *messages.HMSetView) {
	s := p.session
	if req.View != nil {
		s.SetView(*req.View)
	}
	if req.PanX != 0 || req.PanY != 0 {
		s.Pan(req.PanX, req.PanY)
	}
	if req.ZoomFactor != 0 {
		s.Zoom(req.ZoomFactor, camera.Point{X: req.AnchorX, Y: req.AnchorY})
	}
	ctx.Respond(&messages.MHView{View: s.View()})
}

func (h *MapHandler) HandleHMFrame(ctx actor.Context, p *MapActor, req *messages.HMFrame) {
	s := p.session
	f := render.BuildFrame(s.Tilemap(), s.Players(), s.View(), p.layout, req.CanvasW, req.CanvasH)
	ctx.Respond(&messages.MHFrame{Frame: f})
}

// changed 应答修改结果并在有变化时广播。
func (h *MapHandler) changed(ctx actor.Context, p *MapActor, kind string, coords []messages.Coord) {
	if coords == nil {
		coords = []messages.Coord{}
	}
	p.publish(ctx, kind, coords)
	ctx.Respond(&messages.MHChanged{Coords: coords, Version: p.session.Version()})
}

func players(s *entity.Session) *messages.MHPlayers {
	list := s.Players().List()
	out := make([]messages.MapPlayer, 0, len(list))
	for i, pl := range list {
		out = append(out, messages.MapPlayer{Id: i + 1, Name: pl.Name, Colour: pl.Colour})
	}
	return &messages.MHPlayers{Players: out, PlayingAs: int(s.PlayingAs())}
}

func summarize(s *entity.Session) messages.MapSummary {
	m := s.Tilemap()
	counts := make(map[string]int)
	for t, n := range m.Counts() {
		counts[string(t)] = n
	}
	sum := messages.MapSummary{
		MapId:            string(s.ID()),
		Width:            m.Width(),
		Height:           m.Height(),
		Version:          s.Version(),
		Counts:           counts,
		Cities:           len(m.Cities()),
		PlayingAs:        int(s.PlayingAs()),
		SelectedTileType: string(s.SelectedTileType()),
		Tool:             s.Tool().String(),
		View:             s.View(),
	}
	if c, ok := s.SelectedCoords(); ok {
		sum.Selected = &c
	}
	return sum
}
