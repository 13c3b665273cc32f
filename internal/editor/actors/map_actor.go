package actors

import (
	"HexRealm/internal/camera"
	"HexRealm/internal/editor/entity"
	"HexRealm/internal/shared/actor/messages"
	"HexRealm/modules/kit/errx"
	"HexRealm/modules/kit/logx"

	"github.com/asynkron/protoactor-go/actor"
	"go.uber.org/zap"
)

type State int

const (
	None State = iota
	Init
	Online
	Offline
	Stopping
)

// MapActor 独占一个编辑会话，所有读写都在它的消息循环里串行执行。
type MapActor struct {
	state      State
	session    *entity.Session
	layout     camera.Layout
	dispatcher *Dispatcher
	log        logx.Logger
}

func NewMapActor(session *entity.Session, layout camera.Layout, log logx.Logger) *MapActor {
	var id string
	if session != nil {
		id = string(session.ID())
	}
	return &MapActor{
		state:      None,
		session:    session,
		layout:     layout,
		dispatcher: NewDispatcher(),
		log:        logx.ForMap(log, id),
	}
}

func (p *MapActor) Receive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case *actor.Started:
		p.state = Init
		p.init(ctx)
		return
	case *actor.Stopping:
		p.state = Stopping
		return
	case *actor.Stopped:
		p.state = Offline
		if p.session != nil {
			p.log.Info("map actor stopped", zap.Uint64("version", p.session.Version()))
		}
		return
	case *actor.Restarting:
		p.state = Init
		return
	case messages.MapMessage:
		if msg == nil {
			ctx.Respond(fail(errx.ErrReqParamERR.WithData("reason", "nil request")))
			return
		}

		if p.state != Online {
			ctx.Respond(fail(errx.ErrUnavailable.WithData("reason", "map not online").WithData("map_id", msg.MapID())))
			return
		}

		p.dispatcher.Dispatch(ctx, p, msg)
	default:
		return
	}
}

func (p *MapActor) init(ctx actor.Context) {
	if p.session == nil || p.session.Tilemap() == nil {
		p.state = Stopping
		ctx.Stop(ctx.Self())
		return
	}
	p.state = Online
	p.log.Debug("map actor online")
}

func (p *MapActor) MapID() MapID {
	return p.session.ID()
}

func (p *MapActor) Session() *entity.Session {
	return p.session
}

// publish 把变化广播到 EventStream，没有变化时不发。
func (p *MapActor) publish(ctx actor.Context, kind string, changed []messages.Coord) {
	if len(changed) == 0 {
		return
	}
	ctx.ActorSystem().EventStream.Publish(&messages.MapChanged{
		MapId:   string(p.session.ID()),
		Kind:    kind,
		Coords:  changed,
		Version: p.session.Version(),
	})
}
