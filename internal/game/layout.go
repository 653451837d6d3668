package game

import "CityBuilder/internal/city/hittest"

type Point = hittest.Point
type Rect = hittest.Rect

const Title = "Grepolis Clone"

// MenuItem 主菜单项。
type MenuItem string

const (
	MenuNewGame  MenuItem = "New Game"
	MenuLoadGame MenuItem = "Load Game"
	MenuOptions  MenuItem = "Options"
	MenuExit     MenuItem = "Exit"
)

// 主菜单排版：第一项基线 y=200，行距 50；文字宽度按每字符 12 估算。
const (
	menuFirstBaseline = 200.0
	menuLineSpacing   = 50.0
	menuAscent        = 24.0
	menuItemHeight    = 30.0
	menuCharWidth     = 12.0
)

type MenuEntry struct {
	Item MenuItem `json:"item"`
	Area Rect     `json:"area"`
}

// MenuLayout 主菜单的标题、菜单项和点击区域。
type MenuLayout struct {
	Title   string
	entries []MenuEntry
}

func NewMainMenu() *MenuLayout {
	m := &MenuLayout{Title: Title}
	for _, item := range []MenuItem{MenuNewGame, MenuLoadGame, MenuOptions, MenuExit} {
		m.entries = append(m.entries, MenuEntry{Item: item})
	}
	return m
}

// Layout 菜单项水平居中。
func (m *MenuLayout) Layout(viewportW float64) {
	cx := viewportW / 2
	for i := range m.entries {
		w := float64(len(m.entries[i].Item)) * menuCharWidth
		baseline := menuFirstBaseline + float64(i)*menuLineSpacing
		m.entries[i].Area = Rect{X: cx - w/2, Y: baseline - menuAscent, W: w, H: menuItemHeight}
	}
}

// ItemAt 返回包含该点的菜单项。菜单文字框四条边都算命中，面板按钮仍是半开区间。
func (m *MenuLayout) ItemAt(p Point) (MenuItem, bool) {
	for _, e := range m.entries {
		if containsClosed(e.Area, p) {
			return e.Item, true
		}
	}
	return "", false
}

func containsClosed(r Rect, p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

func (m *MenuLayout) Entries() []MenuEntry {
	out := make([]MenuEntry, len(m.entries))
	copy(out, m.entries)
	return out
}

// PanelButton 建筑信息面板上的按钮。
type PanelButton int

const (
	ButtonNone PanelButton = iota
	ButtonUpgrade
	ButtonDowngrade
)

func (b PanelButton) String() string {
	switch b {
	case ButtonUpgrade:
		return "upgrade"
	case ButtonDowngrade:
		return "downgrade"
	default:
		return "none"
	}
}

// 信息面板贴右上角。
const (
	panelWidth   = 280.0
	panelHeight  = 320.0
	panelPadding = 20.0
	buttonWidth  = 110.0
	buttonHeight = 40.0
)

// InfoPanel 建筑信息面板及其升降级按钮的区域。
type InfoPanel struct {
	Area      Rect `json:"area"`
	Upgrade   Rect `json:"upgrade"`
	Downgrade Rect `json:"downgrade"`
}

func (p *InfoPanel) Layout(viewportW float64) {
	x := viewportW - panelWidth - panelPadding
	y := panelPadding
	p.Area = Rect{X: x, Y: y, W: panelWidth, H: panelHeight}
	p.Upgrade = Rect{X: x + 20, Y: y + 190, W: buttonWidth, H: buttonHeight}
	p.Downgrade = Rect{X: x + 150, Y: y + 190, W: buttonWidth, H: buttonHeight}
}

// ButtonAt 置灰的按钮不算命中。
func (p *InfoPanel) ButtonAt(pt Point, canUpgrade, canDowngrade bool) PanelButton {
	if canUpgrade && p.Upgrade.Contains(pt) {
		return ButtonUpgrade
	}
	if canDowngrade && p.Downgrade.Contains(pt) {
		return ButtonDowngrade
	}
	return ButtonNone
}
