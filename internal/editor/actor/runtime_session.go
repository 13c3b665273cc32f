package actor

import (
	"HexRealm/internal/shared/actor/messages"
	"context"
)

func (r *Runtime) Cities(ctx context.Context, mapID string) ([]messages.MapCity, error) {
	resp, err := ask[*messages.MHCities](ctx, r, &messages.HMListCities{MapBaseMessage: base(mapID)})
	if err != nil {
		return nil, err
	}
	return resp.Cities, nil
}

func (r *Runtime) GetCity(ctx context.Context, mapID string, column, row int) (messages.MapCity, bool, error) {
	resp, err := ask[*messages.MHGetCity](ctx, r, &messages.HMGetCity{MapBaseMessage: base(mapID), Column: column, Row: row})
	if err != nil {
		return messages.MapCity{}, false, err
	}
	return resp.City, resp.Found, nil
}

func (r *Runtime) PutCity(ctx context.Context, mapID string, city messages.MapCity) (*messages.MHChanged, error) {
	return ask[*messages.MHChanged](ctx, r, &messages.HMPutCity{MapBaseMessage: base(mapID), City: city})
}

func (r *Runtime) RemoveCity(ctx context.Context, mapID string, column, row int) (*messages.MHChanged, error) {
	return ask[*messages.MHChanged](ctx, r, &messages.HMRemoveCity{MapBaseMessage: base(mapID), Column: column, Row: row})
}

func (r *Runtime) Players(ctx context.Context, mapID string) (*messages.MHPlayers, error) {
	return ask[*messages.MHPlayers](ctx, r, &messages.HMListPlayers{MapBaseMessage: base(mapID)})
}

func (r *Runtime) AddPlayer(ctx context.Context, mapID, name, colour string) (*messages.MHPlayers, error) {
	return ask[*messages.MHPlayers](ctx, r, &messages.HMAddPlayer{MapBaseMessage: base(mapID), Name: name, Colour: colour})
}

func (r *Runtime) SetPlayingAs(ctx context.Context, mapID string, player int) (*messages.MHPlayers, error) {
	return ask[*messages.MHPlayers](ctx, r, &messages.HMSetPlayingAs{MapBaseMessage: base(mapID), Player: player})
}

// Select 的 coord 为 nil 时清空选区。
func (r *Runtime) Select(ctx context.Context, mapID string, coord *messages.Coord) (*messages.MHSelection, error) {
	return ask[*messages.MHSelection](ctx, r, &messages.HMSelect{MapBaseMessage: base(mapID), Coord: coord})
}

func (r *Runtime) SetTool(ctx context.Context, mapID, tool, tileType string) (*messages.MHTool, error) {
	return ask[*messages.MHTool](ctx, r, &messages.HMSetTool{MapBaseMessage: base(mapID), Tool: tool, TileType: tileType})
}

func (r *Runtime) SetView(ctx context.Context, req *messages.HMSetView) (messages.MapView, error) {
	resp, err := ask[*messages.MHView](ctx, r, req)
	if err != nil {
		return messages.MapView{}, err
	}
	return resp.View, nil
}

func (r *Runtime) Frame(ctx context.Context, mapID string, canvasW, canvasH float64) (messages.MapFrame, error) {
	resp, err := ask[*messages.MHFrame](ctx, r, &messages.HMFrame{MapBaseMessage: base(mapID), CanvasW: canvasW, CanvasH: canvasH})
	if err != nil {
		return messages.MapFrame{}, err
	}
	return resp.Frame, nil
}
