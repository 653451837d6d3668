package game

import "CityBuilder/internal/city/domain"

// Player 持有唯一的一座城市，城市随玩家初始化创建。
type Player struct {
	city *domain.City
}

// Initialize 创建玩家的城市。
func (p *Player) Initialize(opts ...domain.Option) {
	p.city = domain.NewCity(opts...)
}

// Update 推进一帧。
func (p *Player) Update() {
	if p.city == nil {
		return
	}
	p.city.Tick()
}

func (p *Player) ActiveCity() *domain.City {
	return p.city
}
