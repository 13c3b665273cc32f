package actor

import (
	"HexRealm/internal/shared/actor/messages"
	"HexRealm/internal/tilemap"
	"context"
	"strings"
)

// CreateMapRequest 是新建地图的参数；Policy 为 preset 且没有 PresetData 时按 Preset 查预设目录。
type CreateMapRequest struct {
	Width      int
	Height     int
	Policy     string
	Fill       string
	Seed       int64
	Preset     string
	PresetData string
}

func (req CreateMapRequest) isZero() bool {
	return req == CreateMapRequest{}
}

// CreateMap 新建一张地图；空请求按 Options.Defaults 创建。
func (r *Runtime) CreateMap(ctx context.Context, req CreateMapRequest) (messages.MapSummary, error) {
	if req.isZero() {
		req = r.defaults
	}
	if strings.EqualFold(strings.TrimSpace(req.Policy), tilemap.PolicyPreset.String()) && req.PresetData == "" {
		data, err := r.catalog.Lookup(ctx, req.Preset)
		if err != nil {
			return messages.MapSummary{}, err
		}
		req.PresetData = data
	}
	resp, err := ask[*messages.MHCreateMap](ctx, r, &messages.HMCreateMap{
		Width:      req.Width,
		Height:     req.Height,
		Policy:     req.Policy,
		Fill:       req.Fill,
		Seed:       req.Seed,
		Preset:     req.Preset,
		PresetData: req.PresetData,
	})
	if err != nil {
		return messages.MapSummary{}, err
	}
	return resp.Summary, nil
}

func (r *Runtime) ListMaps(ctx context.Context) ([]string, error) {
	resp, err := ask[*messages.MHListMaps](ctx, r, &messages.HMListMaps{})
	if err != nil {
		return nil, err
	}
	return resp.MapIds, nil
}

func (r *Runtime) CloseMap(ctx context.Context, mapID string) error {
	_, err := ask[*messages.MHOK](ctx, r, &messages.HMCloseMap{MapBaseMessage: base(mapID)})
	return err
}

func (r *Runtime) Summary(ctx context.Context, mapID string) (messages.MapSummary, error) {
	resp, err := ask[*messages.MHMapSummary](ctx, r, &messages.HMMapSummary{MapBaseMessage: base(mapID)})
	if err != nil {
		return messages.MapSummary{}, err
	}
	return resp.Summary, nil
}

// Presets 列出预设目录里的全部名字。
func (r *Runtime) Presets(ctx context.Context) ([]string, error) {
	return r.catalog.Names(ctx)
}

func base(mapID string) messages.MapBaseMessage {
	return messages.MapBaseMessage{MapId: mapID}
}
