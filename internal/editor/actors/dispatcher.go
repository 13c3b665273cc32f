package actors

import (
	"HexRealm/internal/shared/actor/messages"
	"HexRealm/modules/kit/errx"
	"reflect"

	"github.com/asynkron/protoactor-go/actor"
)

type Dispatcher struct {
	handlers map[reflect.Type]Handler
}

type Handler struct {
	fn      reflect.Value
	reqType reflect.Type
}

func NewDispatcher() *Dispatcher {
	d := &Dispatcher{
		handlers: make(map[reflect.Type]Handler),
	}
	d.registerAll()
	return d
}

func (d *Dispatcher) registerAll() {
	register(d, MH.HandleHMMapSummary)
	register(d, MH.HandleHMGetTile)
	register(d, MH.HandleHMSetTile)
	register(d, MH.HandleHMAdjacent)
	register(d, MH.HandleHMFill)
	register(d, MH.HandleHMClaim)
	register(d, MH.HandleHMApplyTool)
	register(d, MH.HandleHMExport)
	register(d, MH.HandleHMImport)
	register(d, MH.HandleHMListCities)
	register(d, MH.HandleHMGetCity)
	register(d, MH.HandleHMPutCity)
	register(d, MH.HandleHMRemoveCity)
	register(d, MH.HandleHMListPlayers)
	register(d, MH.HandleHMAddPlayer)
	register(d, MH.HandleHMSetPlayingAs)
	register(d, MH.HandleHMSelect)
	register(d, MH.HandleHMSetTool)
	register(d, MH.HandleHMSetView)
	register(d, MH.HandleHMFrame)
}

func register[Req any](
	d *Dispatcher,
	fn func(ctx actor.Context, p *MapActor, req Req),
) {
	reqType := reflect.TypeOf((*Req)(nil)).Elem()
	if reqType == nil {
		panic("dispatcher req type cannot be nil")
	}

	d.handlers[reqType] = Handler{
		fn:      reflect.ValueOf(fn),
		reqType: reqType,
	}
}

// Has 报告某个请求类型是否已注册。
func (d *Dispatcher) Has(req any) bool {
	_, ok := d.handlers[reflect.TypeOf(req)]
	return ok
}

func (d *Dispatcher) Dispatch(ctx actor.Context, p *MapActor, req messages.MapMessage) {
	if req == nil {
		ctx.Respond(fail(errx.ErrReqParamERR.WithData("reason", "nil req")))
		return
	}

	bodyType := reflect.TypeOf(req)
	handler, ok := d.handlers[bodyType]
	if !ok {
		ctx.Respond(fail(errx.ErrInternal.WithData("reason", "no handler for request body").WithData("type", bodyType.String())))
		return
	}

	if bodyType != handler.reqType {
		ctx.Respond(fail(errx.ErrInternal.WithData("reason", "request body type mismatch")))
		return
	}

	handler.fn.Call([]reflect.Value{
		reflect.ValueOf(ctx),
		reflect.ValueOf(p),
		reflect.ValueOf(req),
	})
}

func fail(err error) *messages.FailResp {
	return &messages.FailResp{Err: err}
}
