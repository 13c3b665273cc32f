package http

import (
	editoractor "HexRealm/internal/editor/actor"
	"HexRealm/internal/editor/interfaces/handler"
	"HexRealm/internal/editor/interfaces/handler/dto"
	"HexRealm/internal/shared/actor/messages"
	"HexRealm/internal/shared/transport"
	"HexRealm/internal/tilemap"
	"context"
	nethttp "net/http"

	"github.com/gin-gonic/gin"
)

const invalidParamMsg = "参数有误"

type HttpHandler struct {
	editor *handler.Editor
}

func NewHttpHandler(e *handler.Editor) *HttpHandler {
	return &HttpHandler{editor: e}
}

func (h *HttpHandler) RegisterRoutes(group *gin.RouterGroup) {
	group.GET("/presets", h.Presets)

	maps := group.Group("/maps")
	maps.GET("", h.ListMaps)
	maps.POST("", h.CreateMap)
	maps.GET("/:id", h.Summary)
	maps.DELETE("/:id", h.CloseMap)

	maps.GET("/:id/tiles/:c/:r", h.GetTile)
	maps.PUT("/:id/tiles/:c/:r", h.SetTile)
	maps.GET("/:id/tiles/:c/:r/adjacent", h.Adjacent)
	maps.POST("/:id/fill", h.Fill)
	maps.POST("/:id/claim", h.Claim)
	maps.POST("/:id/apply", h.Apply)

	maps.GET("/:id/export", h.Export)
	maps.PUT("/:id/import", h.Import)

	maps.GET("/:id/cities", h.Cities)
	maps.GET("/:id/cities/:c/:r", h.GetCity)
	maps.PUT("/:id/cities/:c/:r", h.PutCity)
	maps.DELETE("/:id/cities/:c/:r", h.RemoveCity)

	maps.GET("/:id/players", h.Players)
	maps.POST("/:id/players", h.AddPlayer)
	maps.PUT("/:id/players/playing", h.SetPlayingAs)

	maps.PUT("/:id/selection", h.Select)
	maps.PUT("/:id/tool", h.SetTool)
	maps.PUT("/:id/view", h.SetView)
	maps.GET("/:id/frame", h.Frame)
}

// ============ Maps ============

func (h *HttpHandler) Presets(c *gin.Context) {
	ctx := c.Request.Context()
	names, err := h.editor.Runtime.Presets(ctx)
	if err != nil {
		h.error(ctx, c, "list presets", err)
		return
	}
	h.ok(c, names)
}

func (h *HttpHandler) ListMaps(c *gin.Context) {
	ctx := c.Request.Context()
	ids, err := h.editor.Runtime.ListMaps(ctx)
	if err != nil {
		h.error(ctx, c, "list maps", err)
		return
	}
	h.ok(c, ids)
}

func (h *HttpHandler) CreateMap(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateMapReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, transport.InvalidParam, invalidParamMsg)
		return
	}
	if req.Data != "" || (req.Policy == "" && req.Preset != "") {
		req.Policy = tilemap.PolicyPreset.String()
	}

	summary, err := h.editor.Runtime.CreateMap(ctx, editoractor.CreateMapRequest{
		Width:      req.Width,
		Height:     req.Height,
		Policy:     req.Policy,
		Fill:       req.Fill,
		Seed:       req.Seed,
		Preset:     req.Preset,
		PresetData: req.Data,
	})
	if err != nil {
		h.error(ctx, c, "create map", err)
		return
	}
	h.ok(c, summary)
}

func (h *HttpHandler) Summary(c *gin.Context) {
	ctx := c.Request.Context()
	uri, ok := h.bindMap(c)
	if !ok {
		return
	}
	summary, err := h.editor.Runtime.Summary(ctx, uri.MapId)
	if err != nil {
		h.error(ctx, c, "map summary", err)
		return
	}
	h.ok(c, summary)
}

func (h *HttpHandler) CloseMap(c *gin.Context) {
	ctx := c.Request.Context()
	uri, ok := h.bindMap(c)
	if !ok {
		return
	}
	if err := h.editor.Runtime.CloseMap(ctx, uri.MapId); err != nil {
		h.error(ctx, c, "close map", err)
		return
	}
	h.ok(c, nil)
}

// ============ Tiles ============

func (h *HttpHandler) GetTile(c *gin.Context) {
	ctx := c.Request.Context()
	uri, ok := h.bindTile(c)
	if !ok {
		return
	}
	tile, found, err := h.editor.Runtime.GetTile(ctx, uri.MapId, uri.Column, uri.Row)
	if err != nil {
		h.error(ctx, c, "get tile", err)
		return
	}
	h.ok(c, dto.TileResp{Tile: tile, Found: found})
}

func (h *HttpHandler) SetTile(c *gin.Context) {
	ctx := c.Request.Context()
	uri, ok := h.bindTile(c)
	if !ok {
		return
	}
	var req dto.SetTileReq
	if !h.bindJSON(c, &req) {
		return
	}
	changed, err := h.editor.Runtime.SetTile(ctx, uri.MapId, uri.Column, uri.Row, req.Type)
	if err != nil {
		h.error(ctx, c, "set tile", err)
		return
	}
	h.ok(c, dto.Changed(changed))
}

func (h *HttpHandler) Adjacent(c *gin.Context) {
	ctx := c.Request.Context()
	uri, ok := h.bindTile(c)
	if !ok {
		return
	}
	tiles, err := h.editor.Runtime.Adjacent(ctx, uri.MapId, uri.Column, uri.Row)
	if err != nil {
		h.error(ctx, c, "adjacent tiles", err)
		return
	}
	h.ok(c, tiles)
}

func (h *HttpHandler) Fill(c *gin.Context) {
	ctx := c.Request.Context()
	uri, ok := h.bindMap(c)
	if !ok {
		return
	}
	var req dto.FillReq
	if !h.bindJSON(c, &req) {
		return
	}
	changed, err := h.editor.Runtime.Fill(ctx, uri.MapId, req.Column, req.Row, req.Type)
	if err != nil {
		h.error(ctx, c, "flood fill", err)
		return
	}
	h.ok(c, dto.Changed(changed))
}

func (h *HttpHandler) Claim(c *gin.Context) {
	ctx := c.Request.Context()
	uri, ok := h.bindMap(c)
	if !ok {
		return
	}
	var req dto.ClaimReq
	if !h.bindJSON(c, &req) {
		return
	}
	changed, err := h.editor.Runtime.Claim(ctx, uri.MapId, req.Column, req.Row, req.Player)
	if err != nil {
		h.error(ctx, c, "claim", err)
		return
	}
	h.ok(c, dto.Changed(changed))
}

func (h *HttpHandler) Apply(c *gin.Context) {
	ctx := c.Request.Context()
	uri, ok := h.bindMap(c)
	if !ok {
		return
	}
	var req dto.ApplyReq
	if !h.bindJSON(c, &req) {
		return
	}
	changed, err := h.editor.Runtime.ApplyTool(ctx, uri.MapId, req.Column, req.Row)
	if err != nil {
		h.error(ctx, c, "apply tool", err)
		return
	}
	h.ok(c, dto.Changed(changed))
}

func (h *HttpHandler) Export(c *gin.Context) {
	ctx := c.Request.Context()
	uri, ok := h.bindMap(c)
	if !ok {
		return
	}
	data, err := h.editor.Runtime.Export(ctx, uri.MapId)
	if err != nil {
		h.error(ctx, c, "export map", err)
		return
	}
	h.ok(c, dto.ExportResp{Data: data})
}

func (h *HttpHandler) Import(c *gin.Context) {
	ctx := c.Request.Context()
	uri, ok := h.bindMap(c)
	if !ok {
		return
	}
	var req dto.ImportReq
	if !h.bindJSON(c, &req) {
		return
	}
	changed, err := h.editor.Runtime.Import(ctx, uri.MapId, req.Data)
	if err != nil {
		h.error(ctx, c, "import map", err)
		return
	}
	h.ok(c, dto.Changed(changed))
}

// ============ Cities ============

func (h *HttpHandler) Cities(c *gin.Context) {
	ctx := c.Request.Context()
	uri, ok := h.bindMap(c)
	if !ok {
		return
	}
	cities, err := h.editor.Runtime.Cities(ctx, uri.MapId)
	if err != nil {
		h.error(ctx, c, "list cities", err)
		return
	}
	h.ok(c, cities)
}

func (h *HttpHandler) GetCity(c *gin.Context) {
	ctx := c.Request.Context()
	uri, ok := h.bindTile(c)
	if !ok {
		return
	}
	city, found, err := h.editor.Runtime.GetCity(ctx, uri.MapId, uri.Column, uri.Row)
	if err != nil {
		h.error(ctx, c, "get city", err)
		return
	}
	h.ok(c, dto.CityResp{City: city, Found: found})
}

func (h *HttpHandler) PutCity(c *gin.Context) {
	ctx := c.Request.Context()
	uri, ok := h.bindTile(c)
	if !ok {
		return
	}
	var req dto.CityReq
	if !h.bindJSON(c, &req) {
		return
	}
	changed, err := h.editor.Runtime.PutCity(ctx, uri.MapId, messages.MapCity{
		Column:       uri.Column,
		Row:          uri.Row,
		ControlledBy: tilemap.PlayerID(req.ControlledBy),
		Population:   req.Population,
	})
	if err != nil {
		h.error(ctx, c, "put city", err)
		return
	}
	h.ok(c, dto.Changed(changed))
}

func (h *HttpHandler) RemoveCity(c *gin.Context) {
	ctx := c.Request.Context()
	uri, ok := h.bindTile(c)
	if !ok {
		return
	}
	changed, err := h.editor.Runtime.RemoveCity(ctx, uri.MapId, uri.Column, uri.Row)
	if err != nil {
		h.error(ctx, c, "remove city", err)
		return
	}
	h.ok(c, dto.Changed(changed))
}

// ============ Session ============

func (h *HttpHandler) Players(c *gin.Context) {
	ctx := c.Request.Context()
	uri, ok := h.bindMap(c)
	if !ok {
		return
	}
	players, err := h.editor.Runtime.Players(ctx, uri.MapId)
	if err != nil {
		h.error(ctx, c, "list players", err)
		return
	}
	h.ok(c, dto.Players(players))
}

func (h *HttpHandler) AddPlayer(c *gin.Context) {
	ctx := c.Request.Context()
	uri, ok := h.bindMap(c)
	if !ok {
		return
	}
	var req dto.PlayerReq
	if !h.bindJSON(c, &req) {
		return
	}
	players, err := h.editor.Runtime.AddPlayer(ctx, uri.MapId, req.Name, req.Colour)
	if err != nil {
		h.error(ctx, c, "add player", err)
		return
	}
	h.ok(c, dto.Players(players))
}

func (h *HttpHandler) SetPlayingAs(c *gin.Context) {
	ctx := c.Request.Context()
	uri, ok := h.bindMap(c)
	if !ok {
		return
	}
	var req dto.PlayingAsReq
	if !h.bindJSON(c, &req) {
		return
	}
	players, err := h.editor.Runtime.SetPlayingAs(ctx, uri.MapId, req.Player)
	if err != nil {
		h.error(ctx, c, "set playing as", err)
		return
	}
	h.ok(c, dto.Players(players))
}

func (h *HttpHandler) Select(c *gin.Context) {
	ctx := c.Request.Context()
	uri, ok := h.bindMap(c)
	if !ok {
		return
	}
	var req dto.SelectionReq
	if !h.bindJSON(c, &req) {
		return
	}
	sel, err := h.editor.Runtime.Select(ctx, uri.MapId, req.Coord)
	if err != nil {
		h.error(ctx, c, "select", err)
		return
	}
	h.ok(c, dto.Selection(sel))
}

func (h *HttpHandler) SetTool(c *gin.Context) {
	ctx := c.Request.Context()
	uri, ok := h.bindMap(c)
	if !ok {
		return
	}
	var req dto.ToolReq
	if !h.bindJSON(c, &req) {
		return
	}
	tool, err := h.editor.Runtime.SetTool(ctx, uri.MapId, req.Tool, req.TileType)
	if err != nil {
		h.error(ctx, c, "set tool", err)
		return
	}
	h.ok(c, dto.ToolResp{Tool: tool.Tool, TileType: tool.TileType})
}

func (h *HttpHandler) SetView(c *gin.Context) {
	ctx := c.Request.Context()
	uri, ok := h.bindMap(c)
	if !ok {
		return
	}
	var req dto.ViewReq
	if !h.bindJSON(c, &req) {
		return
	}
	view, err := h.editor.Runtime.SetView(ctx, &messages.HMSetView{
		MapBaseMessage: messages.MapBaseMessage{MapId: uri.MapId},
		View:           req.View,
		PanX:           req.PanX,
		PanY:           req.PanY,
		ZoomFactor:     req.Zoom,
		AnchorX:        req.AnchorX,
		AnchorY:        req.AnchorY,
	})
	if err != nil {
		h.error(ctx, c, "set view", err)
		return
	}
	h.ok(c, view)
}

func (h *HttpHandler) Frame(c *gin.Context) {
	ctx := c.Request.Context()
	uri, ok := h.bindMap(c)
	if !ok {
		return
	}
	var q dto.FrameQuery
	if err := c.ShouldBindQuery(&q); err != nil || q.Width <= 0 || q.Height <= 0 {
		h.fail(c, transport.InvalidParam, invalidParamMsg)
		return
	}
	frame, err := h.editor.Runtime.Frame(ctx, uri.MapId, q.Width, q.Height)
	if err != nil {
		h.error(ctx, c, "render frame", err)
		return
	}
	h.ok(c, frame)
}

// ============ Binding ============

func (h *HttpHandler) bindMap(c *gin.Context) (dto.MapURI, bool) {
	var uri dto.MapURI
	if err := c.ShouldBindUri(&uri); err != nil {
		h.fail(c, transport.InvalidParam, invalidParamMsg)
		return uri, false
	}
	return uri, true
}

func (h *HttpHandler) bindTile(c *gin.Context) (dto.TileURI, bool) {
	var uri dto.TileURI
	if err := c.ShouldBindUri(&uri); err != nil {
		h.fail(c, transport.InvalidParam, invalidParamMsg)
		return uri, false
	}
	return uri, true
}

func (h *HttpHandler) bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		h.fail(c, transport.InvalidParam, invalidParamMsg)
		return false
	}
	return true
}

// ============ Response Helpers ============

func (h *HttpHandler) ok(c *gin.Context, data any) {
	c.JSON(nethttp.StatusOK, dto.Success(transport.OK, data))
}

func (h *HttpHandler) fail(c *gin.Context, code int, msg string) {
	c.JSON(nethttp.StatusOK, dto.Error(code, msg))
}

func (h *HttpHandler) error(ctx context.Context, c *gin.Context, action string, err error) {
	code, msg := h.editor.HandleError(ctx, action, err)
	h.fail(c, code, msg)
}
