package actors

import (
	"HexRealm/internal/camera"
	"HexRealm/internal/editor/entity"
	"HexRealm/internal/shared/actor/messages"
	"HexRealm/internal/tilemap"
	"HexRealm/modules/kit/logx"
	"sort"

	"github.com/asynkron/protoactor-go/actor"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MapID = entity.MapID

// ManagerActor 为每张地图派生一个 MapActor，并按 MapID 转发请求。
type ManagerActor struct {
	layout    camera.Layout
	log       logx.Logger
	mapActors map[MapID]*actor.PID
	byPID     map[string]MapID
}

func NewManagerActor(layout camera.Layout, log logx.Logger) *ManagerActor {
	if log == nil {
		log = logx.Nop()
	}
	return &ManagerActor{
		layout:    layout,
		log:       log,
		mapActors: make(map[MapID]*actor.PID),
		byPID:     make(map[string]MapID),
	}
}

func (m *ManagerActor) Receive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case *messages.HMCreateMap:
		m.create(ctx, msg)
	case *messages.HMListMaps:
		ids := make([]string, 0, len(m.mapActors))
		for id := range m.mapActors {
			ids = append(ids, string(id))
		}
		sort.Strings(ids)
		ctx.Respond(&messages.MHListMaps{MapIds: ids})
	case *messages.HMCloseMap:
		pid, ok := m.mapActors[MapID(msg.MapID())]
		if !ok {
			ctx.Respond(fail(entity.ErrMapNotFound.WithData("map_id", msg.MapID())))
			return
		}
		m.forget(pid)
		ctx.Stop(pid)
		ctx.ActorSystem().EventStream.Publish(&messages.MapChanged{
			MapId: msg.MapID(),
			Kind:  messages.ChangeKindClosed,
		})
		ctx.Respond(&messages.MHOK{})
	case *actor.Terminated:
		if id, ok := m.byPID[msg.Who.String()]; ok {
			m.log.Warn("map actor terminated", zap.String("map_id", string(id)))
		}
		m.forget(msg.Who)
	case messages.MapMessage:
		if msg == nil {
			ctx.Respond(fail(entity.ErrMapNotFound))
			return
		}
		pid, ok := m.mapActors[MapID(msg.MapID())]
		if !ok {
			ctx.Respond(fail(entity.ErrMapNotFound.WithData("map_id", msg.MapID())))
			return
		}
		ctx.Forward(pid)
	}
}

func (m *ManagerActor) create(ctx actor.Context, msg *messages.HMCreateMap) {
	cfg, err := genConfig(msg)
	if err != nil {
		ctx.Respond(fail(err))
		return
	}
	tm, err := tilemap.Generate(msg.Width, msg.Height, cfg)
	if err != nil {
		ctx.Respond(fail(err))
		return
	}

	id := MapID(uuid.NewString())
	session := entity.NewSession(id, tm, nil)
	props := actor.PropsFromProducer(func() actor.Actor {
		return NewMapActor(session, m.layout, m.log)
	})
	pid := ctx.Spawn(props)
	m.mapActors[id] = pid
	m.byPID[pid.String()] = id

	m.log.Info("map created",
		zap.String("map_id", string(id)),
		zap.String("policy", cfg.Policy.String()),
		zap.Int("width", tm.Width()),
		zap.Int("height", tm.Height()),
	)
	ctx.Respond(&messages.MHCreateMap{Summary: summarize(session)})
}

func (m *ManagerActor) forget(pid *actor.PID) {
	if pid == nil {
		return
	}
	if id, ok := m.byPID[pid.String()]; ok {
		delete(m.mapActors, id)
		delete(m.byPID, pid.String())
	}
}

func genConfig(msg *messages.HMCreateMap) (tilemap.GenConfig, error) {
	cfg := tilemap.GenConfig{
		Seed:       msg.Seed,
		Preset:     msg.Preset,
		PresetData: msg.PresetData,
	}
	if msg.Policy != "" {
		p, err := tilemap.ParsePolicy(msg.Policy)
		if err != nil {
			return cfg, err
		}
		cfg.Policy = p
	}
	if msg.Fill != "" {
		fill, err := tilemap.ParseTileType(msg.Fill)
		if err != nil {
			return cfg, err
		}
		cfg.Fill = fill
	}
	return cfg, nil
}
