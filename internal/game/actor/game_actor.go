package actor

import (
	"context"
	"time"

	"CityBuilder/internal/game"
	"CityBuilder/modules/kit/errx"
	"CityBuilder/modules/kit/logx"

	protoactor "github.com/asynkron/protoactor-go/actor"
	"go.uber.org/zap"
)

// maxStepFrames 单次 StepRequest 的上限。
const maxStepFrames = 60 * 60

// GameActor 唯一持有 Game 的写者：帧驱动和外部命令都以消息进入，串行执行。
type GameActor struct {
	game       *game.Game
	frameEvery time.Duration
	frameStop  chan struct{}
	frames     uint64
	log        logx.Logger
}

func NewGameActor(g *game.Game, frameEvery time.Duration, log logx.Logger) *GameActor {
	if log == nil {
		log = logx.Nop()
	}
	return &GameActor{game: g, frameEvery: frameEvery, log: log}
}

func (a *GameActor) Receive(ctx protoactor.Context) {
	switch msg := ctx.Message().(type) {
	case *protoactor.Started:
		a.startFrameLoop(ctx)
	case *protoactor.Stopping:
		a.stopFrameLoop()
		a.log.Info("game actor stopping", zap.Uint64("frames", a.frames))
	case *protoactor.Stopped:
		a.stopFrameLoop()
	case *protoactor.Restarting:
		a.stopFrameLoop()
	case frameTick:
		a.step()
	case *envelope:
		if msg == nil {
			ctx.Respond(&reply{err: errx.ErrInvalidParam.WithData("reason", "nil request")})
			return
		}
		ctx.Respond(a.dispatch(msg))
	default:
	}
}

func (a *GameActor) step() {
	a.game.Update()
	a.frames++
}

func (a *GameActor) dispatch(env *envelope) *reply {
	ctx := env.ctx
	if ctx == nil {
		ctx = context.Background()
	}
	g := a.game

	switch body := env.body.(type) {
	case ViewRequest, *ViewRequest:
		return &reply{value: g.View()}
	case NewGameRequest, *NewGameRequest:
		g.NewGame()
		return &reply{value: g.View()}
	case ResizeRequest:
		if body.Width <= 0 || body.Height <= 0 {
			return &reply{err: errx.ErrInvalidParam.WithData("reason", "viewport must be positive")}
		}
		g.Resize(body.Width, body.Height)
		return &reply{value: g.View()}
	case ClickRequest:
		res, err := g.HandleClick(ctx, body.X, body.Y)
		return &reply{value: res, err: err}
	case SelectRequest:
		b, err := g.Select(ctx, body.X, body.Y)
		return &reply{value: b, err: err}
	case UpgradeRequest:
		b, err := g.UpgradeBuilding(ctx, body.X, body.Y)
		return &reply{value: b, err: err}
	case DowngradeRequest:
		b, err := g.DowngradeBuilding(ctx, body.X, body.Y)
		return &reply{value: b, err: err}
	case StepRequest:
		if body.Frames < 0 || body.Frames > maxStepFrames {
			return &reply{err: errx.ErrInvalidParam.WithData("frames", body.Frames)}
		}
		for i := 0; i < body.Frames; i++ {
			a.step()
		}
		return &reply{value: g.View()}
	default:
		return &reply{err: errx.ErrInvalidParam.WithData("reason", "unknown command")}
	}
}

func (a *GameActor) startFrameLoop(ctx protoactor.Context) {
	if a.frameStop != nil || a.frameEvery <= 0 {
		return
	}
	a.frameStop = make(chan struct{})
	self := ctx.Self()
	root := ctx.ActorSystem().Root
	a.log.Info("frame driver started", zap.Duration("every", a.frameEvery))

	go func(stop <-chan struct{}, every time.Duration) {
		ticker := time.NewTicker(every)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				root.Send(self, frameTick{})
			case <-stop:
				return
			}
		}
	}(a.frameStop, a.frameEvery)
}

func (a *GameActor) stopFrameLoop() {
	if a.frameStop == nil {
		return
	}
	close(a.frameStop)
	a.frameStop = nil
}
