package actor

import (
	"context"
	"errors"
	"testing"
	"time"

	"CityBuilder/internal/city/domain"
	"CityBuilder/internal/game"
	"CityBuilder/internal/shared/transport"
	"CityBuilder/modules/kit/errx"
)

func newTestRuntime(t *testing.T, frameHz int) *Runtime {
	t.Helper()
	zero := domain.Resources{}
	g := game.New(game.Config{StartingResources: &zero}, nil)
	r := NewRuntime(g, Options{FrameHz: frameHz, AskTimeout: time.Second})
	t.Cleanup(r.Shutdown)
	return r
}

func TestRuntime_手动推进完整流程(t *testing.T) {
	ctx := context.Background()
	r := newTestRuntime(t, 0)

	v, err := r.View(ctx)
	if err != nil || v.State != "main_menu" {
		t.Fatalf("初始 view state=%v err=%v", v.State, err)
	}
	if _, err := r.Upgrade(ctx, 2, 2); !errors.Is(err, game.ErrNotPlaying) {
		t.Fatalf("主菜单升级期望 ErrNotPlaying, got=%v", err)
	}

	if _, err := r.NewGame(ctx); err != nil {
		t.Fatalf("NewGame err=%v", err)
	}
	v, err = r.Step(ctx, 101)
	if err != nil || v.State != "playing" {
		t.Fatalf("加载后 state=%v err=%v", v.State, err)
	}

	v, _ = r.Step(ctx, 120)
	if v.City.Resources != domain.Uniform(2) {
		t.Fatalf("120 帧后 res=%+v", v.City.Resources)
	}

	if _, err := r.Upgrade(ctx, 2, 2); !errors.Is(err, domain.ErrInsufficientResources) {
		t.Fatalf("期望资源不足, got=%v", err)
	}
	if _, err := r.Step(ctx, 60*98); err != nil {
		t.Fatalf("Step err=%v", err)
	}
	b, err := r.Upgrade(ctx, 2, 2)
	if err != nil || b.Level != 2 {
		t.Fatalf("升级 b=%+v err=%v", b, err)
	}
	b, err = r.Downgrade(ctx, 2, 2)
	if err != nil || b.Level != 1 {
		t.Fatalf("降级 b=%+v err=%v", b, err)
	}
}

func TestRuntime_点击与选择(t *testing.T) {
	ctx := context.Background()
	r := newTestRuntime(t, 0)

	if _, err := r.Resize(ctx, 800, 600); err != nil {
		t.Fatalf("Resize err=%v", err)
	}
	if _, err := r.Resize(ctx, 0, 600); !errors.Is(err, errx.ErrInvalidParam) {
		t.Fatalf("非法视口期望 ErrInvalidParam, got=%v", err)
	}

	res, err := r.Click(ctx, 400, 190) // New Game
	if err != nil || res.MenuItem != game.MenuNewGame {
		t.Fatalf("菜单点击 res=%+v err=%v", res, err)
	}
	if _, err := r.Step(ctx, 101); err != nil {
		t.Fatalf("Step err=%v", err)
	}

	// 800x600 下网格偏移 (150,50)，格子 (6,2) 的中心在 (475,175)。
	res, err = r.Click(ctx, 475, 175)
	if err != nil || res.Kind != game.ClickSelect || res.Building.Name != domain.Quarry {
		t.Fatalf("选择点击 res=%+v err=%v", res, err)
	}
	v, _ := r.View(ctx)
	if v.City.Selected == nil || v.City.Selected.Cell != (domain.Cell{X: 6, Y: 2}) {
		t.Fatalf("selected=%+v", v.City.Selected)
	}

	if _, err := r.Select(ctx, 9, 9); !errors.Is(err, domain.ErrTileEmpty) {
		t.Fatalf("选空格期望 ErrTileEmpty, got=%v", err)
	}
	if _, err := r.Step(ctx, -1); !errors.Is(err, errx.ErrInvalidParam) {
		t.Fatalf("负帧数期望 ErrInvalidParam, got=%v", err)
	}
}

func TestRuntime_帧驱动自动推进(t *testing.T) {
	ctx := context.Background()
	r := newTestRuntime(t, 1000)

	if _, err := r.NewGame(ctx); err != nil {
		t.Fatalf("NewGame err=%v", err)
	}
	deadline := time.Now().Add(5 * time.Second)
	for {
		v, err := r.View(ctx)
		if err != nil {
			t.Fatalf("View err=%v", err)
		}
		if v.State == "playing" {
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("帧驱动未推进到 playing, progress=%d", v.LoadingProgress)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestRuntime_关闭后请求失败(t *testing.T) {
	r := newTestRuntime(t, 0)
	r.Shutdown()
	r.Shutdown()

	_, err := r.View(context.Background())
	var re *RuntimeError
	if !errors.As(err, &re) || re.Code != transport.Unavailable {
		t.Fatalf("期望 Unavailable RuntimeError, got=%v", err)
	}
	if CodeFromError(err) != transport.Unavailable {
		t.Fatalf("CodeFromError=%d", CodeFromError(err))
	}
}

func TestCodeFromError(t *testing.T) {
	if CodeFromError(nil) != transport.OK {
		t.Fatalf("nil 应为 OK")
	}
	if CodeFromError(errors.New("x")) != transport.SystemError {
		t.Fatalf("普通错误应为 SystemError")
	}
}

func TestTimeoutFromContext(t *testing.T) {
	r := &Runtime{timeout: time.Second}
	if got := r.timeoutFromContext(context.Background()); got != time.Second {
		t.Fatalf("无 deadline got=%v", got)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	if got := r.timeoutFromContext(ctx); got > 100*time.Millisecond {
		t.Fatalf("应取较小的剩余时间 got=%v", got)
	}
	expired, cancel2 := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel2()
	if got := r.timeoutFromContext(expired); got != time.Millisecond {
		t.Fatalf("已过期 got=%v", got)
	}
}
