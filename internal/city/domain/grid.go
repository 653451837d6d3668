package domain

// GridSize 城市网格边长。
const GridSize = 10

// TileKind 格子状态。
type TileKind uint8

const (
	TileEmpty TileKind = iota
	TileOccupied
)

func (k TileKind) String() string {
	if k == TileOccupied {
		return "building"
	}
	return "empty"
}

// Tile 一个格子。Occupied 时 Building 指向名册中的建筑。
type Tile struct {
	Kind     TileKind   `json:"kind"`
	Building BuildingID `json:"building"`
}

func (t Tile) Occupied() bool {
	return t.Kind == TileOccupied
}

// Cell 网格坐标。
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Grid 固定 GridSize×GridSize 的行优先网格，tiles[y][x]。
// 以值传递时会复制整张网格，可以安全地交给只读方。
type Grid struct {
	tiles [GridSize][GridSize]Tile
}

func (g *Grid) Size() int {
	return GridSize
}

func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < GridSize && y >= 0 && y < GridSize
}

// Tile 越界时返回 false。
func (g *Grid) Tile(x, y int) (Tile, bool) {
	if !g.InBounds(x, y) {
		return Tile{}, false
	}
	return g.tiles[y][x], true
}

// ForEach 行优先遍历（y 外层，x 内层）。
func (g *Grid) ForEach(fn func(c Cell, t Tile)) {
	for y := 0; y < GridSize; y++ {
		for x := 0; x < GridSize; x++ {
			fn(Cell{X: x, Y: y}, g.tiles[y][x])
		}
	}
}

func (g *Grid) occupy(x, y int, id BuildingID) {
	g.tiles[y][x] = Tile{Kind: TileOccupied, Building: id}
}
