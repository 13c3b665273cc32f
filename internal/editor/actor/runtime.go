package actor

import (
	"HexRealm/internal/camera"
	"HexRealm/internal/editor/actors"
	"HexRealm/internal/editor/catalog"
	"HexRealm/internal/editor/entity"
	"HexRealm/internal/shared/actor/messages"
	"HexRealm/internal/shared/transport"
	"HexRealm/internal/tilemap"
	"HexRealm/modules/kit/errx"
	"HexRealm/modules/kit/logx"
	"context"
	"errors"
	"fmt"
	"time"

	protoactor "github.com/asynkron/protoactor-go/actor"
	"github.com/asynkron/protoactor-go/eventstream"
)

const defaultAskTimeout = 3 * time.Second

type RuntimeError struct {
	Code    int
	Message string
	Cause   error
}

func (e *RuntimeError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Cause == nil {
		return e.Message
	}
	return e.Message + ": " + e.Cause.Error()
}

func (e *RuntimeError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

type Runtime struct {
	system   *protoactor.ActorSystem
	root     *protoactor.RootContext
	manager  *protoactor.PID
	catalog  catalog.Catalog
	timeout  time.Duration
	defaults CreateMapRequest
}

type Options struct {
	Catalog    catalog.Catalog
	Layout     camera.Layout
	AskTimeout time.Duration
	Log        logx.Logger
	// Defaults 用于完全为空的新建请求；零值时为内置 island 预设。
	Defaults CreateMapRequest
}

func NewRuntime(opts Options) *Runtime {
	if opts.AskTimeout <= 0 {
		opts.AskTimeout = defaultAskTimeout
	}
	if opts.Catalog == nil {
		opts.Catalog = catalog.Builtin{}
	}
	if opts.Layout.Side <= 0 {
		opts.Layout = camera.NewLayout(32)
	}
	if opts.Defaults.isZero() {
		opts.Defaults = CreateMapRequest{Policy: tilemap.PolicyPreset.String(), Preset: "island"}
	}

	system := protoactor.NewActorSystem()
	root := system.Root
	managerProps := protoactor.PropsFromProducer(func() protoactor.Actor {
		return actors.NewManagerActor(opts.Layout, opts.Log)
	})
	manager := root.Spawn(managerProps)

	return &Runtime{
		system:   system,
		root:     root,
		manager:  manager,
		catalog:  opts.Catalog,
		timeout:  opts.AskTimeout,
		defaults: opts.Defaults,
	}
}

func (r *Runtime) Shutdown() {
	if r == nil {
		return
	}
	if r.root != nil && r.manager != nil {
		_ = r.root.StopFuture(r.manager).Wait()
	}
	if r.system != nil {
		r.system.Shutdown()
	}
}

func (r *Runtime) request(pid *protoactor.PID, msg any, timeout time.Duration) (any, error) {
	if r == nil || r.root == nil {
		return nil, &RuntimeError{Code: transport.SystemError, Message: "actor runtime 未初始化", Cause: errx.ErrUnavailable}
	}
	if pid == nil {
		return nil, &RuntimeError{Code: transport.SystemError, Message: "actor pid 为空", Cause: errx.ErrUnavailable}
	}

	future := r.root.RequestFuture(pid, msg, timeout)
	res, err := future.Result()
	if err != nil {
		cause := errx.ErrUnavailable.WithCause(err)
		if errors.Is(err, protoactor.ErrTimeout) {
			cause = errx.ErrTimeout.WithData("timeout", timeout.String()).WithCause(err)
		}
		return nil, &RuntimeError{
			Code:    transport.SystemError,
			Message: "actor 请求失败",
			Cause:   cause,
		}
	}
	return res, nil
}

func (r *Runtime) timeoutFromContext(ctx context.Context) time.Duration {
	if r == nil || r.timeout <= 0 {
		return defaultAskTimeout
	}
	if ctx == nil {
		return r.timeout
	}
	deadline, ok := ctx.Deadline()
	if !ok {
		return r.timeout
	}
	remain := time.Until(deadline)
	if remain <= 0 {
		return time.Millisecond
	}
	if remain < r.timeout {
		return remain
	}
	return r.timeout
}

// ask 发给 manager 并把应答断言成 T；FailResp 还原为其中的错误。
func ask[T any](ctx context.Context, r *Runtime, msg any) (T, error) {
	var zero T
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return zero, &RuntimeError{Code: transport.SystemError, Message: "请求已取消", Cause: errx.ErrTimeout.WithCause(err)}
		}
	}
	res, err := r.request(r.manager, msg, r.timeoutFromContext(ctx))
	if err != nil {
		return zero, err
	}
	switch v := res.(type) {
	case *messages.FailResp:
		if v == nil || v.Err == nil {
			return zero, errx.ErrInternal.WithData("reason", "empty fail response")
		}
		return zero, v.Err
	case T:
		return v, nil
	default:
		return zero, &RuntimeError{
			Code:    transport.SystemError,
			Message: fmt.Sprintf("unexpected reply %T", res),
			Cause:   errx.ErrInternal,
		}
	}
}

// CodeFromError 把错误映射为对外业务码。
func CodeFromError(err error) int {
	if err == nil {
		return transport.OK
	}
	switch errx.CodeOf(err) {
	case "":
	case errx.CodeNotFound, tilemap.CodePresetNotFound, entity.CodeMapNotFound:
		return transport.NotFound
	default:
		return int(transport.BizCodeOf(err))
	}
	var re *RuntimeError
	if errors.As(err, &re) && re != nil && re.Code != 0 {
		return re.Code
	}
	return transport.SystemError
}

// Watch 订阅 mapID 的变化；返回的订阅需要调用 Unwatch 释放。
func (r *Runtime) Watch(mapID string, fn func(*messages.MapChanged)) *eventstream.Subscription {
	return r.system.EventStream.SubscribeWithPredicate(func(evt any) {
		fn(evt.(*messages.MapChanged))
	}, func(evt any) bool {
		e, ok := evt.(*messages.MapChanged)
		return ok && e.MapId == mapID
	})
}

func (r *Runtime) Unwatch(sub *eventstream.Subscription) {
	if sub != nil {
		r.system.EventStream.Unsubscribe(sub)
	}
}
