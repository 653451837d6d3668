package actor

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"CityBuilder/internal/city/domain"
	"CityBuilder/internal/game"
	"CityBuilder/internal/shared/transport"
	"CityBuilder/modules/kit/logx"

	protoactor "github.com/asynkron/protoactor-go/actor"
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

// Options FrameHz <= 0 时不启动帧驱动，只能通过 Step 推进。
type Options struct {
	FrameHz    int
	AskTimeout time.Duration
	Logger     logx.Logger
}

// Runtime 对外的同步门面：每次调用都是一次 RequestFuture。
type Runtime struct {
	system  *protoactor.ActorSystem
	root    *protoactor.RootContext
	pid     *protoactor.PID
	timeout time.Duration
	closed  atomic.Bool
}

func NewRuntime(g *game.Game, opts Options) *Runtime {
	if opts.AskTimeout <= 0 {
		opts.AskTimeout = defaultAskTimeout
	}
	var every time.Duration
	if opts.FrameHz > 0 {
		every = time.Second / time.Duration(opts.FrameHz)
	}

	system := protoactor.NewActorSystem()
	root := system.Root
	props := protoactor.PropsFromProducer(func() protoactor.Actor {
		return NewGameActor(g, every, opts.Logger)
	})
	pid := root.Spawn(props)

	return &Runtime{
		system:  system,
		root:    root,
		pid:     pid,
		timeout: opts.AskTimeout,
	}
}

func (r *Runtime) Shutdown() {
	if r == nil || !r.closed.CompareAndSwap(false, true) {
		return
	}
	if r.root != nil && r.pid != nil {
		_ = r.root.StopFuture(r.pid).Wait()
	}
	if r.system != nil {
		r.system.Shutdown()
	}
}

func (r *Runtime) View(ctx context.Context) (game.View, error) {
	return ask[game.View](ctx, r, ViewRequest{})
}

func (r *Runtime) NewGame(ctx context.Context) (game.View, error) {
	return ask[game.View](ctx, r, NewGameRequest{})
}

func (r *Runtime) Resize(ctx context.Context, w, h float64) (game.View, error) {
	return ask[game.View](ctx, r, ResizeRequest{Width: w, Height: h})
}

func (r *Runtime) Click(ctx context.Context, x, y float64) (game.ClickResult, error) {
	return ask[game.ClickResult](ctx, r, ClickRequest{X: x, Y: y})
}

func (r *Runtime) Select(ctx context.Context, x, y int) (domain.Building, error) {
	return ask[domain.Building](ctx, r, SelectRequest{X: x, Y: y})
}

func (r *Runtime) Upgrade(ctx context.Context, x, y int) (domain.Building, error) {
	return ask[domain.Building](ctx, r, UpgradeRequest{X: x, Y: y})
}

func (r *Runtime) Downgrade(ctx context.Context, x, y int) (domain.Building, error) {
	return ask[domain.Building](ctx, r, DowngradeRequest{X: x, Y: y})
}

func (r *Runtime) Step(ctx context.Context, frames int) (game.View, error) {
	return ask[game.View](ctx, r, StepRequest{Frames: frames})
}

// ask 业务错误原样返回，运行时故障包装成 RuntimeError。
func ask[T any](ctx context.Context, r *Runtime, body any) (T, error) {
	var zero T
	res, err := r.request(ctx, body)
	if err != nil {
		return zero, err
	}
	rep, ok := res.(*reply)
	if !ok || rep == nil {
		return zero, &RuntimeError{Code: transport.SystemError, Message: "actor 回复类型错误"}
	}
	if rep.err != nil {
		return zero, rep.err
	}
	v, ok := rep.value.(T)
	if !ok {
		return zero, &RuntimeError{Code: transport.SystemError, Message: "actor 回复值类型错误"}
	}
	return v, nil
}

func (r *Runtime) request(ctx context.Context, body any) (any, error) {
	if r == nil || r.root == nil {
		return nil, &RuntimeError{Code: transport.SystemError, Message: "actor runtime 未初始化"}
	}
	if r.closed.Load() {
		return nil, &RuntimeError{Code: transport.Unavailable, Message: "actor runtime 已关闭"}
	}
	if r.pid == nil {
		return nil, &RuntimeError{Code: transport.SystemError, Message: "actor pid 为空"}
	}

	future := r.root.RequestFuture(r.pid, &envelope{ctx: ctx, body: body}, r.timeoutFromContext(ctx))
	res, err := future.Result()
	if err != nil {
		code := transport.SystemError
		if errors.Is(err, protoactor.ErrTimeout) {
			code = transport.Timeout
		}
		return nil, &RuntimeError{
			Code:    code,
			Message: "actor 请求失败",
			Cause:   err,
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

// CodeFromError 只识别运行时错误，业务错误码的映射在接口层。
func CodeFromError(err error) int {
	if err == nil {
		return transport.OK
	}
	var re *RuntimeError
	if errors.As(err, &re) && re != nil && re.Code != 0 {
		return re.Code
	}
	return transport.SystemError
}
