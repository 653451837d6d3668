package game

import (
	"context"

	"CityBuilder/internal/city/domain"
	"CityBuilder/internal/city/hittest"
	"CityBuilder/modules/kit/logx"

	"go.uber.org/zap"
)

// Config 游戏层参数。
type Config struct {
	ViewportWidth     float64
	ViewportHeight    float64
	TileSize          float64
	StartingResources *domain.Resources
}

const (
	DefaultViewportWidth  = 1280.0
	DefaultViewportHeight = 720.0
)

// Game 顶层状态机：MainMenu -> Loading -> Playing。
// 所有修改都在单一写者上同步执行，View 是只读副本。
type Game struct {
	state           State
	loadingProgress int

	player     *Player
	translator *hittest.Translator
	menu       *MenuLayout
	panel      InfoPanel
	selection  Selection

	viewportW float64
	viewportH float64

	log logx.Logger
}

func New(cfg Config, log logx.Logger) *Game {
	if log == nil {
		log = logx.Nop()
	}
	if cfg.ViewportWidth <= 0 {
		cfg.ViewportWidth = DefaultViewportWidth
	}
	if cfg.ViewportHeight <= 0 {
		cfg.ViewportHeight = DefaultViewportHeight
	}

	var opts []domain.Option
	if cfg.StartingResources != nil {
		opts = append(opts, domain.WithStartingResources(*cfg.StartingResources))
	}
	player := &Player{}
	player.Initialize(opts...)

	g := &Game{
		state:      MainMenu,
		player:     player,
		translator: hittest.NewTranslator(cfg.TileSize),
		menu:       NewMainMenu(),
		log:        log,
	}
	g.Resize(cfg.ViewportWidth, cfg.ViewportHeight)
	log.Info("game initialized", zap.String("city_id", player.ActiveCity().ID().String()))
	return g
}

func (g *Game) State() State {
	return g.state
}

func (g *Game) LoadingProgress() int {
	return g.loadingProgress
}

func (g *Game) Player() *Player {
	return g.player
}

func (g *Game) City() *domain.City {
	return g.player.ActiveCity()
}

func (g *Game) Translator() *hittest.Translator {
	return g.translator
}

// Update 推进一帧。城市只在 Playing 状态下 Tick。
func (g *Game) Update() {
	switch g.state {
	case MainMenu:
	case Loading:
		g.updateLoading()
	case Playing:
		g.player.Update()
	}
}

func (g *Game) updateLoading() {
	if g.loadingProgress < 100 {
		g.loadingProgress += LoadingStep
		if g.loadingProgress > 100 {
			g.loadingProgress = 100
		}
		return
	}
	g.state = Playing
	g.log.Info("game state changed", zap.Stringer("state", g.state))
}

// NewGame 主菜单进入加载；其它状态忽略，返回是否生效。
func (g *Game) NewGame() bool {
	if g.state != MainMenu {
		return false
	}
	g.state = Loading
	g.loadingProgress = 0
	g.log.Info("game state changed", zap.Stringer("state", g.state))
	return true
}

// Resize 视口变化后重新排版网格、主菜单和信息面板。
func (g *Game) Resize(w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	g.viewportW, g.viewportH = w, h
	g.translator.Layout(w, h)
	g.menu.Layout(w)
	g.panel.Layout(w)
}

// ClickKind 一次点击产生的效果。
type ClickKind string

const (
	ClickNone      ClickKind = "none"
	ClickMenu      ClickKind = "menu"
	ClickSelect    ClickKind = "select"
	ClickUpgrade   ClickKind = "upgrade"
	ClickDowngrade ClickKind = "downgrade"
)

type ClickResult struct {
	Kind     ClickKind       `json:"kind"`
	MenuItem MenuItem        `json:"menu_item,omitempty"`
	Cell     *domain.Cell    `json:"cell,omitempty"`
	Building domain.Building `json:"building"`
}

// HandleClick 把视口坐标的点击分发到主菜单、信息面板按钮或网格选择。
func (g *Game) HandleClick(ctx context.Context, px, py float64) (ClickResult, error) {
	p := Point{X: px, Y: py}
	switch g.state {
	case MainMenu:
		item, ok := g.menu.ItemAt(p)
		if !ok {
			return ClickResult{Kind: ClickNone}, nil
		}
		res := ClickResult{Kind: ClickMenu, MenuItem: item}
		if item == MenuNewGame {
			g.NewGame()
			return res, nil
		}
		err := ErrUnavailable.WithData("item", string(item))
		g.reportReject(ctx, "game menu", err)
		return res, err
	case Playing:
		return g.handlePlayingClick(ctx, p)
	default:
		return ClickResult{Kind: ClickNone}, nil
	}
}

func (g *Game) handlePlayingClick(ctx context.Context, p Point) (ClickResult, error) {
	if cell, _, ok := g.SelectedBuilding(); ok {
		canUp := g.City().CanUpgrade(cell.X, cell.Y) == nil
		canDown := g.City().CanDowngrade(cell.X, cell.Y) == nil
		switch g.panel.ButtonAt(p, canUp, canDown) {
		case ButtonUpgrade:
			b, err := g.UpgradeSelected(ctx)
			return ClickResult{Kind: ClickUpgrade, Cell: &cell, Building: b}, err
		case ButtonDowngrade:
			b, err := g.DowngradeSelected(ctx)
			return ClickResult{Kind: ClickDowngrade, Cell: &cell, Building: b}, err
		}
	}

	cell, b, ok := g.translator.PixelToBuilding(g.City(), p.X, p.Y)
	if !ok {
		return ClickResult{Kind: ClickNone}, nil
	}
	g.selection.Select(cell)
	return ClickResult{Kind: ClickSelect, Cell: &cell, Building: b}, nil
}

// Select 按格子选中建筑。
func (g *Game) Select(ctx context.Context, x, y int) (domain.Building, error) {
	if g.state != Playing {
		return domain.Building{}, ErrNotPlaying
	}
	b, ok := g.City().BuildingAt(x, y)
	if !ok {
		err := domain.ErrTileEmpty.WithData("x", x).WithData("y", y)
		g.reportReject(ctx, "game select", err)
		return domain.Building{}, err
	}
	g.selection.Select(domain.Cell{X: x, Y: y})
	return b, nil
}

// SelectedBuilding 从网格重新解析当前选中的建筑。
func (g *Game) SelectedBuilding() (domain.Cell, domain.Building, bool) {
	cell, active := g.selection.Cell()
	if !active {
		return domain.Cell{}, domain.Building{}, false
	}
	b, ok := g.selection.Resolve(g.City())
	return cell, b, ok
}

func (g *Game) ClearSelection() {
	g.selection.Clear()
}

// UpgradeBuilding 城市内部会再次校验资源，按钮状态只做展示。
func (g *Game) UpgradeBuilding(ctx context.Context, x, y int) (domain.Building, error) {
	if g.state != Playing {
		return domain.Building{}, ErrNotPlaying
	}
	b, err := g.City().UpgradeBuilding(x, y)
	if err != nil {
		g.reportReject(ctx, "city upgrade", err)
		return domain.Building{}, err
	}
	g.log.WithContext(ctx).Info("building upgraded",
		zap.String("name", b.Name), zap.Int("level", b.Level), zap.Int("x", x), zap.Int("y", y))
	return b, nil
}

func (g *Game) DowngradeBuilding(ctx context.Context, x, y int) (domain.Building, error) {
	if g.state != Playing {
		return domain.Building{}, ErrNotPlaying
	}
	b, err := g.City().DowngradeBuilding(x, y)
	if err != nil {
		g.reportReject(ctx, "city downgrade", err)
		return domain.Building{}, err
	}
	g.log.WithContext(ctx).Info("building downgraded",
		zap.String("name", b.Name), zap.Int("level", b.Level), zap.Int("x", x), zap.Int("y", y))
	return b, nil
}

func (g *Game) UpgradeSelected(ctx context.Context) (domain.Building, error) {
	cell, ok := g.selection.Cell()
	if !ok {
		return domain.Building{}, ErrNoSelection
	}
	return g.UpgradeBuilding(ctx, cell.X, cell.Y)
}

func (g *Game) DowngradeSelected(ctx context.Context) (domain.Building, error) {
	cell, ok := g.selection.Cell()
	if !ok {
		return domain.Building{}, ErrNoSelection
	}
	return g.DowngradeBuilding(ctx, cell.X, cell.Y)
}

func (g *Game) reportReject(ctx context.Context, action string, err error) {
	logx.ReportErrorWithLoggerContext(ctx, g.log, action, err)
}
