package domain

import "math"

// TicksPerSecond 每秒的模拟帧数。产出公式按它折算：每帧产出 = 等级 / TicksPerSecond。
const TicksPerSecond = 60

const (
	// 账本的最小记账单位：把 0.01 再切成 TicksPerSecond 份，每帧产出在这个粒度下是整数。
	unitsPerCent  = TicksPerSecond
	unitsPerWhole = 100 * unitsPerCent
)

// Kind 资源种类。
type Kind uint8

const (
	Wood Kind = iota
	Stone
	Silver
	kindCount
)

// AllKinds 按固定顺序列出全部资源种类。
var AllKinds = [kindCount]Kind{Wood, Stone, Silver}

func (k Kind) String() string {
	switch k {
	case Wood:
		return "wood"
	case Stone:
		return "stone"
	case Silver:
		return "silver"
	default:
		return "unknown"
	}
}

// Resources 三种资源的数量，对外始终是保留两位小数的值。
type Resources struct {
	Wood   float64 `json:"wood" mapstructure:"wood"`
	Stone  float64 `json:"stone" mapstructure:"stone"`
	Silver float64 `json:"silver" mapstructure:"silver"`
}

func (r Resources) Get(k Kind) float64 {
	switch k {
	case Wood:
		return r.Wood
	case Stone:
		return r.Stone
	case Silver:
		return r.Silver
	default:
		return 0
	}
}

func (r *Resources) set(k Kind, v float64) {
	switch k {
	case Wood:
		r.Wood = v
	case Stone:
		r.Stone = v
	case Silver:
		r.Silver = v
	}
}

// Uniform 三种资源数量相同的 Resources。
func Uniform(v float64) Resources {
	return Resources{Wood: v, Stone: v, Silver: v}
}

// Rates 每秒产出，等于对应生产建筑的等级。
type Rates struct {
	Wood   int `json:"wood"`
	Stone  int `json:"stone"`
	Silver int `json:"silver"`
}

func (r Rates) Get(k Kind) int {
	switch k {
	case Wood:
		return r.Wood
	case Stone:
		return r.Stone
	case Silver:
		return r.Silver
	default:
		return 0
	}
}

// Round2 四舍五入到两位小数（half away from zero）。
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Ledger 资源账本。产出按 1/6000 精确累加，对外读数统一舍入到两位小数，
// 因此逐帧累加不会产生舍入漂移。Covers 和 Credit 都以两位小数读数为准，
// 扣减前由调用方用 Covers 判断，Covers 通过后 Credit 结果不会为负。
type Ledger struct {
	units [kindCount]int64
}

// NewLedger 以给定资源初始化账本。
func NewLedger(initial Resources) Ledger {
	var l Ledger
	l.Set(initial)
	return l
}

// Set 覆盖三种资源的数量。
func (l *Ledger) Set(r Resources) {
	for _, k := range AllKinds {
		l.units[k] = toUnits(r.Get(k))
	}
}

// Credit 按增量调整资源（可为负）：读数加增量后再舍入到两位小数，未满一分的产出随之结清。
func (l *Ledger) Credit(delta Resources) {
	for _, k := range AllKinds {
		l.units[k] = centsOf(l.units[k])*unitsPerCent + toUnits(delta.Get(k))
	}
}

// Produce 记入一帧产出：每种资源增加 rate / TicksPerSecond。
func (l *Ledger) Produce(rates Rates) {
	for _, k := range AllKinds {
		l.units[k] += int64(rates.Get(k)) * unitsPerWhole / TicksPerSecond
	}
}

// Covers 两位小数读数是否覆盖 cost，与界面显示一致。
func (l *Ledger) Covers(cost Resources) bool {
	for _, k := range AllKinds {
		if centsOf(l.units[k])*unitsPerCent < toUnits(cost.Get(k)) {
			return false
		}
	}
	return true
}

// Snapshot 返回两位小数的读数。
func (l *Ledger) Snapshot() Resources {
	var out Resources
	for _, k := range AllKinds {
		out.set(k, fromUnits(l.units[k]))
	}
	return out
}

func toUnits(v float64) int64 {
	return int64(math.Round(v*100)) * unitsPerCent
}

// centsOf 舍入到分（half away from zero）。
func centsOf(u int64) int64 {
	return int64(math.Round(float64(u) / unitsPerCent))
}

func fromUnits(u int64) float64 {
	c := centsOf(u)
	if c == 0 {
		// 避免 -0
		return 0
	}
	return float64(c) / 100
}
