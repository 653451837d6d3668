package domain

// 开局建筑名。
const (
	TownHall   = "Town Hall"
	TimberCamp = "Timber Camp"
	Quarry     = "Quarry"
	SilverMine = "Silver Mine"
)

// productionSources 资源 -> 生产建筑名的静态表。Town Hall 不生产任何资源。
var productionSources = [kindCount]string{
	Wood:   TimberCamp,
	Stone:  Quarry,
	Silver: SilverMine,
}

// SourceOf 返回生产该资源的建筑名。
func SourceOf(k Kind) string {
	if k >= kindCount {
		return ""
	}
	return productionSources[k]
}

// BuildingID 建筑在城市内的下标。格子和名册都只存这个下标。
type BuildingID int

// Building 建筑的只读视图。
type Building struct {
	ID    BuildingID `json:"id"`
	Name  string     `json:"name"`
	Level int        `json:"level"`
}

// Registry 城市的建筑名册，是建筑的唯一存储。
type Registry struct {
	items  []Building
	byName map[string]BuildingID
}

func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]BuildingID)}
}

// Add 登记一个建筑。名称在城市内唯一，等级至少为 1。
func (r *Registry) Add(name string, level int) (BuildingID, error) {
	if name == "" {
		return 0, ErrUnknownBuilding.WithData("name", name)
	}
	if level < 1 {
		return 0, ErrInvalidLevel.WithData("name", name).WithData("level", level)
	}
	if _, ok := r.byName[name]; ok {
		return 0, ErrDuplicateBuilding.WithData("name", name)
	}
	id := BuildingID(len(r.items))
	r.items = append(r.items, Building{ID: id, Name: name, Level: level})
	r.byName[name] = id
	return id, nil
}

func (r *Registry) Lookup(name string) (BuildingID, bool) {
	id, ok := r.byName[name]
	return id, ok
}

func (r *Registry) Get(id BuildingID) (Building, bool) {
	if id < 0 || int(id) >= len(r.items) {
		return Building{}, false
	}
	return r.items[id], true
}

// ProductionRate 返回同名建筑的等级，不存在时为 0。
func (r *Registry) ProductionRate(name string) int {
	id, ok := r.byName[name]
	if !ok {
		return 0
	}
	return r.items[id].Level
}

// Rates 按静态生产表汇总每秒产出。
func (r *Registry) Rates() Rates {
	return Rates{
		Wood:   r.ProductionRate(SourceOf(Wood)),
		Stone:  r.ProductionRate(SourceOf(Stone)),
		Silver: r.ProductionRate(SourceOf(Silver)),
	}
}

// Buildings 按登记顺序返回名册副本。
func (r *Registry) Buildings() []Building {
	out := make([]Building, len(r.items))
	copy(out, r.items)
	return out
}

func (r *Registry) Len() int {
	return len(r.items)
}

func (r *Registry) shiftLevel(id BuildingID, delta int) Building {
	r.items[id].Level += delta
	return r.items[id]
}
