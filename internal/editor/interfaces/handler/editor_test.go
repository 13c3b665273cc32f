package handler

import (
	"HexRealm/internal/editor/entity"
	"HexRealm/internal/shared/transport"
	"HexRealm/internal/tilemap"
	"HexRealm/modules/kit/errx"
	"errors"
	"testing"
)

func TestHandleError_业务码与提示(t *testing.T) {
	e := NewEditor(nil, nil)

	cases := []struct {
		name string
		err  error
		code int
		msg  string
	}{
		{"地图不存在", entity.ErrMapNotFound.WithData("map_id", "x"), transport.NotFound, "地图不存在"},
		{"预设不存在", tilemap.ErrPresetNotFound, transport.NotFound, "预设地图不存在"},
		{"格式错误", tilemap.ErrMalformedTilemap.WithCause(errors.New("eof")), transport.InvalidParam, "地图数据格式错误"},
		{"系统错误", errx.ErrUnavailable.WithCause(errors.New("down")), transport.SystemError, busyMsg},
		{"普通错误", errors.New("boom"), transport.SystemError, busyMsg},
	}
	for _, tc := range cases {
		ctx := transport.NewContext("http", tc.name)
		code, msg := e.HandleError(ctx, tc.name, tc.err)
		if code != tc.code || msg != tc.msg {
			t.Fatalf("%s: code=%d msg=%q, want %d %q", tc.name, code, msg, tc.code, tc.msg)
		}
		al := transport.FromContext(ctx)
		if !al.Resolved() || int(al.BizCode) != tc.code {
			t.Fatalf("%s: access log 业务码未设置: %+v", tc.name, al)
		}
	}
}
