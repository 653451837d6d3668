package game

import (
	"context"
	"errors"
	"testing"

	"CityBuilder/internal/city/domain"
)

func zero() *domain.Resources {
	r := domain.Resources{}
	return &r
}

// 默认视口 1280x720：网格偏移 (390,110)，信息面板左上角 (980,20)。
func newPlayingGame(t *testing.T) *Game {
	t.Helper()
	g := New(Config{StartingResources: zero()}, nil)
	if !g.NewGame() {
		t.Fatalf("NewGame 未生效")
	}
	for g.State() != Playing {
		g.Update()
	}
	return g
}

func cellCenter(g *Game, x, y int) (float64, float64) {
	p := g.Translator().CellToPixel(x, y)
	return p.X + 25, p.Y + 25
}

func TestGame_状态机(t *testing.T) {
	g := New(Config{StartingResources: zero()}, nil)
	if g.State() != MainMenu {
		t.Fatalf("初始状态=%v", g.State())
	}
	for i := 0; i < 300; i++ {
		g.Update()
	}
	if got := g.City().Resources(); got != (domain.Resources{}) {
		t.Fatalf("主菜单不应推进城市, res=%+v", got)
	}

	g.NewGame()
	if g.State() != Loading || g.NewGame() {
		t.Fatalf("期望进入 Loading 且重复 NewGame 无效, state=%v", g.State())
	}
	for i := 0; i < 100; i++ {
		g.Update()
	}
	if g.State() != Loading || g.LoadingProgress() != 100 {
		t.Fatalf("100 帧后 state=%v progress=%d", g.State(), g.LoadingProgress())
	}
	g.Update()
	if g.State() != Playing {
		t.Fatalf("进度满后应进入 Playing, got=%v", g.State())
	}
	if got := g.City().Resources(); got != (domain.Resources{}) {
		t.Fatalf("加载期间不应推进城市, res=%+v", got)
	}

	for i := 0; i < 60; i++ {
		g.Update()
	}
	if got := g.City().Resources(); got != domain.Uniform(1) {
		t.Fatalf("Playing 60 帧后 res=%+v", got)
	}
}

func TestGame_主菜单点击(t *testing.T) {
	g := New(Config{}, nil)

	res, err := g.HandleClick(context.Background(), 640, 240) // Load Game
	if res.Kind != ClickMenu || res.MenuItem != MenuLoadGame || !errors.Is(err, ErrUnavailable) {
		t.Fatalf("Load Game 点击 res=%+v err=%v", res, err)
	}
	if g.State() != MainMenu {
		t.Fatalf("未开放的菜单项不应切换状态")
	}

	if res, _ := g.HandleClick(context.Background(), 10, 10); res.Kind != ClickNone {
		t.Fatalf("空白处点击 res=%+v", res)
	}

	res, err = g.HandleClick(context.Background(), 640, 190)
	if err != nil || res.MenuItem != MenuNewGame || g.State() != Loading {
		t.Fatalf("New Game 点击 res=%+v err=%v state=%v", res, err, g.State())
	}
}

func TestGame_点击选择与面板按钮(t *testing.T) {
	ctx := context.Background()
	g := newPlayingGame(t)

	px, py := cellCenter(g, 2, 2)
	res, err := g.HandleClick(ctx, px, py)
	if err != nil || res.Kind != ClickSelect || res.Building.Name != domain.TimberCamp {
		t.Fatalf("选择 res=%+v err=%v", res, err)
	}

	// 资源不足时升级按钮置灰，点击不命中，也不会改变选择。
	res, _ = g.HandleClick(ctx, 1050, 230)
	if res.Kind != ClickNone {
		t.Fatalf("置灰按钮不应命中, res=%+v", res)
	}
	if _, b, ok := g.SelectedBuilding(); !ok || b.Name != domain.TimberCamp {
		t.Fatalf("点击空白处应保留选择, b=%+v ok=%v", b, ok)
	}

	g.City().SetResources(domain.Uniform(100))
	res, err = g.HandleClick(ctx, 1050, 230)
	if err != nil || res.Kind != ClickUpgrade || res.Building.Level != 2 {
		t.Fatalf("升级 res=%+v err=%v", res, err)
	}
	if g.City().Resources() != domain.Uniform(0) {
		t.Fatalf("升级后 res=%+v", g.City().Resources())
	}

	res, err = g.HandleClick(ctx, 1180, 230)
	if err != nil || res.Kind != ClickDowngrade || res.Building.Level != 1 {
		t.Fatalf("降级 res=%+v err=%v", res, err)
	}
	if g.City().Resources() != domain.Uniform(50) {
		t.Fatalf("降级后 res=%+v", g.City().Resources())
	}

	// 1 级时降级按钮置灰。
	if res, _ := g.HandleClick(ctx, 1180, 230); res.Kind != ClickNone {
		t.Fatalf("1 级降级按钮不应命中, res=%+v", res)
	}
}

func TestGame_选择按坐标重新解析(t *testing.T) {
	ctx := context.Background()
	g := newPlayingGame(t)
	g.City().SetResources(domain.Uniform(200))

	if _, err := g.Select(ctx, 6, 2); err != nil {
		t.Fatalf("Select err=%v", err)
	}
	if _, err := g.UpgradeBuilding(ctx, 6, 2); err != nil {
		t.Fatalf("Upgrade err=%v", err)
	}
	_, b, ok := g.SelectedBuilding()
	if !ok || b.Level != 2 {
		t.Fatalf("选择应反映最新等级, b=%+v", b)
	}

	v := g.View()
	if v.City.Selected == nil || v.City.Selected.Building.Level != 2 || !v.City.Selected.CanDowngrade {
		t.Fatalf("View.Selected=%+v", v.City.Selected)
	}
}

func TestGame_非Playing拒绝修改(t *testing.T) {
	ctx := context.Background()
	g := New(Config{}, nil)

	if _, err := g.UpgradeBuilding(ctx, 2, 2); !errors.Is(err, ErrNotPlaying) {
		t.Fatalf("期望 ErrNotPlaying, got=%v", err)
	}
	if _, err := g.Select(ctx, 2, 2); !errors.Is(err, ErrNotPlaying) {
		t.Fatalf("期望 ErrNotPlaying, got=%v", err)
	}
	if g.City().Resources() != domain.DefaultStartingResources {
		t.Fatalf("资源被修改: %+v", g.City().Resources())
	}
}

func TestGame_无选择时升降级(t *testing.T) {
	g := newPlayingGame(t)
	if _, err := g.UpgradeSelected(context.Background()); !errors.Is(err, ErrNoSelection) {
		t.Fatalf("期望 ErrNoSelection, got=%v", err)
	}
	if _, err := g.Select(context.Background(), 0, 0); !errors.Is(err, domain.ErrTileEmpty) {
		t.Fatalf("选择空格期望 ErrTileEmpty, got=%v", err)
	}
}

func TestGame_View(t *testing.T) {
	g := New(Config{ViewportWidth: 800, ViewportHeight: 600}, nil)
	v := g.View()

	if v.State != "main_menu" || v.Title != Title || len(v.Menu) != 4 {
		t.Fatalf("View=%+v", v)
	}
	if v.City.Offset != (Point{X: 150, Y: 50}) || v.City.TileSize != 50 {
		t.Fatalf("布局 offset=%+v tile=%v", v.City.Offset, v.City.TileSize)
	}
	if len(v.City.Tiles) != 4 || v.City.Selected != nil {
		t.Fatalf("tiles=%d selected=%v", len(v.City.Tiles), v.City.Selected)
	}
	if v.City.Rates != (domain.Rates{Wood: 1, Stone: 1, Silver: 1}) {
		t.Fatalf("rates=%+v", v.City.Rates)
	}

	g.Resize(1000, 1000)
	if g.View().City.Offset != (Point{X: 250, Y: 250}) {
		t.Fatalf("Resize 后 offset=%+v", g.View().City.Offset)
	}
	g.Resize(0, 100)
	if g.View().Viewport != (Point{X: 1000, Y: 1000}) {
		t.Fatalf("非法尺寸应忽略")
	}
}
