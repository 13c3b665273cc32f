package actor

import (
	"HexRealm/internal/shared/actor/messages"
	"context"
)

func (r *Runtime) GetTile(ctx context.Context, mapID string, column, row int) (messages.MapTile, bool, error) {
	resp, err := ask[*messages.MHGetTile](ctx, r, &messages.HMGetTile{MapBaseMessage: base(mapID), Column: column, Row: row})
	if err != nil {
		return messages.MapTile{}, false, err
	}
	return resp.Tile, resp.Found, nil
}

func (r *Runtime) SetTile(ctx context.Context, mapID string, column, row int, tileType string) (*messages.MHChanged, error) {
	return ask[*messages.MHChanged](ctx, r, &messages.HMSetTile{MapBaseMessage: base(mapID), Column: column, Row: row, Type: tileType})
}

func (r *Runtime) Adjacent(ctx context.Context, mapID string, column, row int) ([]messages.MapTile, error) {
	resp, err := ask[*messages.MHTiles](ctx, r, &messages.HMAdjacent{MapBaseMessage: base(mapID), Column: column, Row: row})
	if err != nil {
		return nil, err
	}
	return resp.Tiles, nil
}

// Fill 的 tileType 为空时使用会话的画笔类型。
func (r *Runtime) Fill(ctx context.Context, mapID string, column, row int, tileType string) (*messages.MHChanged, error) {
	return ask[*messages.MHChanged](ctx, r, &messages.HMFill{MapBaseMessage: base(mapID), Column: column, Row: row, Type: tileType})
}

// Claim 的 player 为 0 时使用会话当前扮演的玩家。
func (r *Runtime) Claim(ctx context.Context, mapID string, column, row, player int) (*messages.MHChanged, error) {
	return ask[*messages.MHChanged](ctx, r, &messages.HMClaim{MapBaseMessage: base(mapID), Column: column, Row: row, Player: player})
}

func (r *Runtime) ApplyTool(ctx context.Context, mapID string, column, row int) (*messages.MHChanged, error) {
	return ask[*messages.MHChanged](ctx, r, &messages.HMApplyTool{MapBaseMessage: base(mapID), Column: column, Row: row})
}

func (r *Runtime) Export(ctx context.Context, mapID string) (string, error) {
	resp, err := ask[*messages.MHExport](ctx, r, &messages.HMExport{MapBaseMessage: base(mapID)})
	if err != nil {
		return "", err
	}
	return resp.Data, nil
}

func (r *Runtime) Import(ctx context.Context, mapID, data string) (*messages.MHChanged, error) {
	return ask[*messages.MHChanged](ctx, r, &messages.HMImport{MapBaseMessage: base(mapID), Data: data})
}
