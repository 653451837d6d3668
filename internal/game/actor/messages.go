package actor

import "context"

// 发给游戏 actor 的命令。坐标含义见各字段：像素坐标用 float64，格子坐标用 int。

type ViewRequest struct{}

type NewGameRequest struct{}

type ResizeRequest struct {
	Width  float64
	Height float64
}

// ClickRequest 视口像素坐标。
type ClickRequest struct {
	X float64
	Y float64
}

type SelectRequest struct {
	X int
	Y int
}

type UpgradeRequest struct {
	X int
	Y int
}

type DowngradeRequest struct {
	X int
	Y int
}

// StepRequest 同步推进若干帧，帧驱动关闭时使用。
type StepRequest struct {
	Frames int
}

// envelope 携带调用方 context，用于日志里的 trace_id。
type envelope struct {
	ctx  context.Context
	body any
}

type reply struct {
	value any
	err   error
}

type frameTick struct{}

func (frameTick) NotInfluenceReceiveTimeout() {}
