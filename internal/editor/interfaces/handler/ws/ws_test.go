package ws

import (
	editoractor "HexRealm/internal/editor/actor"
	"HexRealm/internal/editor/interfaces/handler"
	"HexRealm/internal/editor/interfaces/handler/dto"
	"HexRealm/internal/shared/transport"
	"HexRealm/internal/shared/transport/ws"
	"context"
	"sync"
	"testing"
	"time"
)

type push struct {
	name string
	data any
}

type fakeConn struct {
	mu     sync.Mutex
	props  map[string]any
	pushes chan push
	done   chan struct{}
	once   sync.Once
}

func newFakeConn() *fakeConn {
	return &fakeConn{
		props:  make(map[string]any),
		pushes: make(chan push, 16),
		done:   make(chan struct{}),
	}
}

func (c *fakeConn) SetProperty(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.props[key] = value
}

func (c *fakeConn) GetProperty(key string) any {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.props[key]
}

func (c *fakeConn) RemoveProperty(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.props, key)
}

func (c *fakeConn) Addr() string               { return "fake" }
func (c *fakeConn) Push(name string, data any) { c.pushes <- push{name: name, data: data} }
func (c *fakeConn) Close()                     { c.once.Do(func() { close(c.done) }) }
func (c *fakeConn) Done() <-chan struct{}      { return c.done }

func setup(t *testing.T) (*ws.Router, *editoractor.Runtime) {
	t.Helper()
	rt := editoractor.NewRuntime(editoractor.Options{})
	t.Cleanup(rt.Shutdown)

	r := ws.NewRouter(nil)
	r.Register(NewWsHandler(handler.NewEditor(rt, nil)))
	return r, rt
}

func dispatch(r *ws.Router, conn ws.WSConn, name string, msg any) *ws.RespBody {
	req := &ws.WsMsgReq{Body: &ws.ReqBody{Seq: 1, Name: name, Msg: msg}, Conn: conn}
	resp := &ws.WsMsgResp{Body: &ws.RespBody{Seq: 1, Name: name}}
	r.Dispatch(req, resp)
	return resp.Body
}

func waitPush(t *testing.T, c *fakeConn) dto.MapChangedPush {
	t.Helper()
	select {
	case p := <-c.pushes:
		if p.name != dto.PushMapChanged {
			t.Fatalf("推送名称不符合预期: %s", p.name)
		}
		return p.data.(dto.MapChangedPush)
	case <-time.After(time.Second):
		t.Fatalf("没有收到推送")
	}
	return dto.MapChangedPush{}
}

func TestWs_订阅后收到变更推送(t *testing.T) {
	r, rt := setup(t)
	summary, err := rt.CreateMap(context.Background(), editoractor.CreateMapRequest{Width: 3, Height: 3, Policy: "uniform", Fill: "grass"})
	if err != nil {
		t.Fatalf("CreateMap err=%v", err)
	}
	id := summary.MapId
	conn := newFakeConn()

	body := dispatch(r, conn, "map.watch", map[string]any{"map_id": id})
	if body.Code != transport.OK {
		t.Fatalf("watch code=%d msg=%v", body.Code, body.Msg)
	}

	body = dispatch(r, conn, "map.paint", map[string]any{"map_id": id, "column": 1, "row": 1, "type": "mountain"})
	if body.Code != transport.OK {
		t.Fatalf("paint code=%d msg=%v", body.Code, body.Msg)
	}
	p := waitPush(t, conn)
	if p.MapId != id || p.Kind != "tile" || len(p.Coords) != 1 {
		t.Fatalf("推送内容不符合预期: %+v", p)
	}

	body = dispatch(r, conn, "map.tile", map[string]any{"map_id": id, "column": 1, "row": 1})
	tile, ok := body.Msg.(dto.TileResp)
	if body.Code != transport.OK || !ok || tile.Tile.Type != "mountain" {
		t.Fatalf("tile 应答不符合预期: %+v", body)
	}

	body = dispatch(r, conn, "map.fill", map[string]any{"map_id": id, "column": 0, "row": 0, "type": "sand"})
	changed, ok := body.Msg.(dto.ChangedResp)
	if body.Code != transport.OK || !ok || len(changed.Coords) != 8 {
		t.Fatalf("fill 应绕开山地改动 8 格: %+v", body)
	}
	if p := waitPush(t, conn); p.Kind != "fill" || p.Version != changed.Version {
		t.Fatalf("fill 推送不符合预期: %+v", p)
	}

	if err := rt.CloseMap(context.Background(), id); err != nil {
		t.Fatalf("CloseMap err=%v", err)
	}
	if p := waitPush(t, conn); p.Kind != "closed" {
		t.Fatalf("关闭地图应推送 closed: %+v", p)
	}
}

func TestWs_参数与错误码(t *testing.T) {
	r, _ := setup(t)
	conn := newFakeConn()
	defer conn.Close()

	if body := dispatch(r, conn, "map.watch", map[string]any{"map_id": "missing"}); body.Code != transport.NotFound {
		t.Fatalf("未知地图应返回 NotFound: %+v", body)
	}
	if body := dispatch(r, conn, "map.paint", "not an object"); body.Code != transport.InvalidParam {
		t.Fatalf("参数错误应返回 InvalidParam: %+v", body)
	}
	if body := dispatch(r, conn, "map.nothing", nil); body.Code != transport.NotFound {
		t.Fatalf("未知路由应返回 NotFound: %+v", body)
	}
}

func TestWs_连接关闭后释放订阅(t *testing.T) {
	r, rt := setup(t)
	summary, err := rt.CreateMap(context.Background(), editoractor.CreateMapRequest{Width: 2, Height: 2, Policy: "uniform"})
	if err != nil {
		t.Fatalf("CreateMap err=%v", err)
	}
	conn := newFakeConn()
	dispatch(r, conn, "map.watch", map[string]any{"map_id": summary.MapId})
	key := watchKeyPrefix + summary.MapId
	if conn.GetProperty(key) == nil {
		t.Fatalf("watch 后应记录订阅")
	}

	conn.Close()
	deadline := time.Now().Add(time.Second)
	for conn.GetProperty(key) != nil {
		if time.Now().After(deadline) {
			t.Fatalf("连接关闭后订阅没有释放")
		}
		time.Sleep(5 * time.Millisecond)
	}

	if _, err := rt.SetTile(context.Background(), summary.MapId, 0, 0, "forest"); err != nil {
		t.Fatalf("SetTile err=%v", err)
	}
	select {
	case p := <-conn.pushes:
		t.Fatalf("释放后不应再收到推送: %+v", p)
	case <-time.After(50 * time.Millisecond):
	}
}
