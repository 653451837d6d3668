package game

// State 顶层游戏状态。只有 Playing 会推进城市模拟。
type State int

const (
	MainMenu State = iota
	Loading
	Playing
)

func (s State) String() string {
	switch s {
	case MainMenu:
		return "main_menu"
	case Loading:
		return "loading"
	case Playing:
		return "playing"
	default:
		return "unknown"
	}
}

// LoadingStep 每帧增加的加载进度（百分比）。
const LoadingStep = 1
