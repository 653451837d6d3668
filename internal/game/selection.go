package game

import (
	"CityBuilder/internal/city/domain"
	"CityBuilder/internal/city/hittest"
)

// Selection 只记坐标，每次读取都从网格重新解析建筑，不缓存建筑本身。
type Selection struct {
	cell   domain.Cell
	active bool
}

func (s *Selection) Select(c domain.Cell) {
	s.cell = c
	s.active = true
}

func (s *Selection) Clear() {
	*s = Selection{}
}

func (s Selection) Cell() (domain.Cell, bool) {
	return s.cell, s.active
}

// Resolve 按坐标从当前网格取建筑；格子已空时返回 false。
func (s Selection) Resolve(loc hittest.BuildingLocator) (domain.Building, bool) {
	if !s.active || loc == nil {
		return domain.Building{}, false
	}
	return loc.BuildingAt(s.cell.X, s.cell.Y)
}
