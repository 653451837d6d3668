package domain

import "github.com/google/uuid"

// 升级统一花费、降级统一返还，与建筑种类和当前等级无关。
var (
	UpgradeCost     = Uniform(100)
	DowngradeRefund = Uniform(50)
)

// DefaultStartingResources 新城市的初始资源。
var DefaultStartingResources = Uniform(100)

// StartingLayout 新城市的开局建筑及其位置。
var StartingLayout = []struct {
	Name string
	Cell Cell
}{
	{TownHall, Cell{X: 4, Y: 4}},
	{TimberCamp, Cell{X: 2, Y: 2}},
	{Quarry, Cell{X: 6, Y: 2}},
	{SilverMine, Cell{X: 2, Y: 6}},
}

type CityID = uuid.UUID

// City 组合账本、名册和网格，负责帧更新、放置、升降级规则。
// City 不加锁，调用方需要保证单写者。
type City struct {
	id       CityID
	ledger   Ledger
	registry *Registry
	grid     Grid
	placed   map[BuildingID]Cell
}

type options struct {
	starting Resources
}

type Option func(*options)

// WithStartingResources 指定初始资源。
func WithStartingResources(r Resources) Option {
	return func(o *options) {
		o.starting = r
	}
}

// NewCity 创建城市并摆好开局建筑。
func NewCity(opts ...Option) *City {
	o := options{starting: DefaultStartingResources}
	for _, opt := range opts {
		opt(&o)
	}

	c := &City{
		id:       uuid.New(),
		ledger:   NewLedger(o.starting),
		registry: NewRegistry(),
		placed:   make(map[BuildingID]Cell, len(StartingLayout)),
	}
	for _, s := range StartingLayout {
		// 开局表是静态配置，名称不重复。
		_, _ = c.registry.Add(s.Name, 1)
		_ = c.PlaceBuilding(s.Cell.X, s.Cell.Y, s.Name)
	}
	return c
}

func (c *City) ID() CityID {
	return c.id
}

// Tick 推进一帧：每种资源增加 生产建筑等级 / TicksPerSecond。只修改账本。
func (c *City) Tick() {
	c.ledger.Produce(c.registry.Rates())
}

// PlaceBuilding 把名册中的建筑放到 (x, y)。名称未知时不做任何修改。
func (c *City) PlaceBuilding(x, y int, name string) error {
	if !c.grid.InBounds(x, y) {
		return ErrOutOfBounds.WithData("x", x).WithData("y", y)
	}
	id, ok := c.registry.Lookup(name)
	if !ok {
		return ErrUnknownBuilding.WithData("name", name)
	}
	if t, _ := c.grid.Tile(x, y); t.Occupied() {
		return ErrTileOccupied.WithData("x", x).WithData("y", y)
	}
	if at, ok := c.placed[id]; ok {
		return ErrBuildingPlaced.WithData("name", name).WithData("at", at)
	}
	c.grid.occupy(x, y, id)
	c.placed[id] = Cell{X: x, Y: y}
	return nil
}

// CanUpgrade 校验 (x, y) 上的建筑能否升级，不修改状态。
func (c *City) CanUpgrade(x, y int) error {
	if _, err := c.occupiedAt(x, y); err != nil {
		return err
	}
	if !c.ledger.Covers(UpgradeCost) {
		return ErrInsufficientResources.
			WithData("have", c.ledger.Snapshot()).
			WithData("need", UpgradeCost)
	}
	return nil
}

// UpgradeBuilding 扣除 UpgradeCost 并把等级加 1；校验失败时不扣费也不改等级。
func (c *City) UpgradeBuilding(x, y int) (Building, error) {
	if err := c.CanUpgrade(x, y); err != nil {
		return Building{}, err
	}
	id, _ := c.occupiedAt(x, y)
	c.ledger.Credit(negate(UpgradeCost))
	return c.registry.shiftLevel(id, 1), nil
}

// CanDowngrade 校验 (x, y) 上的建筑能否降级，不修改状态。
func (c *City) CanDowngrade(x, y int) error {
	id, err := c.occupiedAt(x, y)
	if err != nil {
		return err
	}
	if b, _ := c.registry.Get(id); b.Level <= 1 {
		return ErrLevelFloor.WithData("name", b.Name)
	}
	return nil
}

// DowngradeBuilding 等级减 1 并返还 DowngradeRefund；1 级建筑不降级也不返还。
func (c *City) DowngradeBuilding(x, y int) (Building, error) {
	if err := c.CanDowngrade(x, y); err != nil {
		return Building{}, err
	}
	id, _ := c.occupiedAt(x, y)
	b := c.registry.shiftLevel(id, -1)
	c.ledger.Credit(DowngradeRefund)
	return b, nil
}

// BuildingAt 返回 (x, y) 上的建筑；空格或越界返回 false。
func (c *City) BuildingAt(x, y int) (Building, bool) {
	id, err := c.occupiedAt(x, y)
	if err != nil {
		return Building{}, false
	}
	return c.registry.Get(id)
}

// CellOf 返回建筑所在格子。
func (c *City) CellOf(id BuildingID) (Cell, bool) {
	cell, ok := c.placed[id]
	return cell, ok
}

func (c *City) ProductionRate(name string) int {
	return c.registry.ProductionRate(name)
}

func (c *City) Rates() Rates {
	return c.registry.Rates()
}

func (c *City) Resources() Resources {
	return c.ledger.Snapshot()
}

// SetResources 覆盖账本，用于调试和测试场景。
func (c *City) SetResources(r Resources) {
	c.ledger.Set(r)
}

// CanAfford 当前资源是否覆盖 cost。
func (c *City) CanAfford(cost Resources) bool {
	return c.ledger.Covers(cost)
}

func (c *City) Buildings() []Building {
	return c.registry.Buildings()
}

// Grid 返回网格副本。
func (c *City) Grid() Grid {
	return c.grid
}

func (c *City) occupiedAt(x, y int) (BuildingID, error) {
	t, ok := c.grid.Tile(x, y)
	if !ok {
		return 0, ErrOutOfBounds.WithData("x", x).WithData("y", y)
	}
	if !t.Occupied() {
		return 0, ErrTileEmpty.WithData("x", x).WithData("y", y)
	}
	return t.Building, nil
}

func negate(r Resources) Resources {
	return Resources{Wood: -r.Wood, Stone: -r.Stone, Silver: -r.Silver}
}
