package game

import (
	"CityBuilder/internal/city/domain"
	"CityBuilder/internal/city/hittest"
)

// View 渲染和概览面板使用的只读快照。
type View struct {
	State           string      `json:"state"`
	LoadingProgress int         `json:"loading_progress"`
	Title           string      `json:"title"`
	Menu            []MenuEntry `json:"menu"`
	Viewport        Point       `json:"viewport"`
	City            CityView    `json:"city"`
}

type CityView struct {
	ID        string            `json:"id"`
	Resources domain.Resources  `json:"resources"`
	Rates     domain.Rates      `json:"rates"`
	Buildings []domain.Building `json:"buildings"`
	Tiles     []TileView        `json:"tiles"`
	TileSize  float64           `json:"tile_size"`
	Offset    hittest.Point     `json:"offset"`
	Panel     InfoPanel         `json:"panel"`
	Selected  *SelectedView     `json:"selected,omitempty"`
}

// TileView 只列出有建筑的格子。
type TileView struct {
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Kind  string `json:"kind"`
	Name  string `json:"name"`
	Level int    `json:"level"`
}

type SelectedView struct {
	Cell         domain.Cell     `json:"cell"`
	Building     domain.Building `json:"building"`
	CanUpgrade   bool            `json:"can_upgrade"`
	CanDowngrade bool            `json:"can_downgrade"`
}

// View 构造快照，不修改任何状态。
func (g *Game) View() View {
	city := g.City()
	grid := city.Grid()

	cv := CityView{
		ID:        city.ID().String(),
		Resources: city.Resources(),
		Rates:     city.Rates(),
		Buildings: city.Buildings(),
		TileSize:  g.translator.TileSize(),
		Offset:    g.translator.Offset(),
		Panel:     g.panel,
	}
	grid.ForEach(func(c domain.Cell, t domain.Tile) {
		if !t.Occupied() {
			return
		}
		b, _ := city.BuildingAt(c.X, c.Y)
		cv.Tiles = append(cv.Tiles, TileView{X: c.X, Y: c.Y, Kind: t.Kind.String(), Name: b.Name, Level: b.Level})
	})
	if cell, b, ok := g.SelectedBuilding(); ok {
		cv.Selected = &SelectedView{
			Cell:         cell,
			Building:     b,
			CanUpgrade:   city.CanUpgrade(cell.X, cell.Y) == nil,
			CanDowngrade: city.CanDowngrade(cell.X, cell.Y) == nil,
		}
	}

	return View{
		State:           g.state.String(),
		LoadingProgress: g.loadingProgress,
		Title:           g.menu.Title,
		Menu:            g.menu.Entries(),
		Viewport:        Point{X: g.viewportW, Y: g.viewportH},
		City:            cv,
	}
}
