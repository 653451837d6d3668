package domain

import "testing"

func TestGrid_InBounds(t *testing.T) {
	var g Grid
	cases := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{9, 9, true},
		{10, 0, false},
		{0, 10, false},
		{-1, 3, false},
	}
	for _, c := range cases {
		if got := g.InBounds(c.x, c.y); got != c.want {
			t.Fatalf("InBounds(%d,%d)=%v, want=%v", c.x, c.y, got, c.want)
		}
	}
}

func TestGrid_ForEach_行优先(t *testing.T) {
	var g Grid
	var cells []Cell
	g.ForEach(func(c Cell, _ Tile) { cells = append(cells, c) })

	if len(cells) != GridSize*GridSize {
		t.Fatalf("遍历格子数=%d", len(cells))
	}
	if cells[1] != (Cell{X: 1, Y: 0}) || cells[GridSize] != (Cell{X: 0, Y: 1}) {
		t.Fatalf("期望 y 外层 x 内层, got cells[1]=%v cells[%d]=%v", cells[1], GridSize, cells[GridSize])
	}
}

func TestGrid_值拷贝互不影响(t *testing.T) {
	c := NewCity()
	g := c.Grid()
	g.occupy(0, 0, 0)

	if _, ok := c.BuildingAt(0, 0); ok {
		t.Fatalf("修改网格副本不应影响城市")
	}
}
