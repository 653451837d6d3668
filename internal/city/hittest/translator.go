// Package hittest 负责指针坐标与城市网格格子之间的换算。
//
// Translator 只记住最近一次布局得到的偏移量和格子边长，不持有城市状态；
// 视口尺寸变化时由渲染侧调用 Layout 重新计算。
package hittest

import (
	"CityBuilder/internal/city/domain"
)

// DefaultTileSize 格子边长（视口单位）。
const DefaultTileSize = 50.0

// Point 视口坐标。
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect 半开矩形 [X, X+W) × [Y, Y+H)。
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// BuildingLocator 按格子查建筑，*domain.City 实现了它。
type BuildingLocator interface {
	BuildingAt(x, y int) (domain.Building, bool)
}

type Translator struct {
	gridSize int
	tileSize float64
	offsetX  float64
	offsetY  float64
}

// NewTranslator tileSize <= 0 时使用 DefaultTileSize。
func NewTranslator(tileSize float64) *Translator {
	if tileSize <= 0 {
		tileSize = DefaultTileSize
	}
	return &Translator{gridSize: domain.GridSize, tileSize: tileSize}
}

// Layout 让网格在视口内居中：offset = (viewport - N*tileSize) / 2。
func (t *Translator) Layout(viewportW, viewportH float64) {
	span := float64(t.gridSize) * t.tileSize
	t.offsetX = (viewportW - span) / 2
	t.offsetY = (viewportH - span) / 2
}

func (t *Translator) TileSize() float64 {
	return t.tileSize
}

// Offset 最近一次 Layout 的偏移量。
func (t *Translator) Offset() Point {
	return Point{X: t.offsetX, Y: t.offsetY}
}

// CellToPixel 格子左上角的视口坐标。
func (t *Translator) CellToPixel(x, y int) Point {
	return Point{
		X: t.offsetX + float64(x)*t.tileSize,
		Y: t.offsetY + float64(y)*t.tileSize,
	}
}

// CellRect 格子的包围盒。
func (t *Translator) CellRect(x, y int) Rect {
	p := t.CellToPixel(x, y)
	return Rect{X: p.X, Y: p.Y, W: t.tileSize, H: t.tileSize}
}

// PixelToCell 按行优先顺序返回第一个包含该点的格子，点在网格外时返回 false。
// 格子互不重叠，最多只有一个格子命中。
func (t *Translator) PixelToCell(px, py float64) (domain.Cell, bool) {
	p := Point{X: px, Y: py}
	for y := 0; y < t.gridSize; y++ {
		for x := 0; x < t.gridSize; x++ {
			if t.CellRect(x, y).Contains(p) {
				return domain.Cell{X: x, Y: y}, true
			}
		}
	}
	return domain.Cell{}, false
}

// CellToBuilding Occupied 格子上的建筑；空格或越界返回 false。
func (t *Translator) CellToBuilding(loc BuildingLocator, x, y int) (domain.Building, bool) {
	if loc == nil {
		return domain.Building{}, false
	}
	return loc.BuildingAt(x, y)
}

// PixelToBuilding 先换算格子再查建筑。
func (t *Translator) PixelToBuilding(loc BuildingLocator, px, py float64) (domain.Cell, domain.Building, bool) {
	cell, ok := t.PixelToCell(px, py)
	if !ok {
		return domain.Cell{}, domain.Building{}, false
	}
	b, ok := t.CellToBuilding(loc, cell.X, cell.Y)
	if !ok {
		return cell, domain.Building{}, false
	}
	return cell, b, true
}
