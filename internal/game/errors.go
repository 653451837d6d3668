package game

import "CityBuilder/modules/kit/errx"

const (
	CodeNotPlaying  errx.Code = "GAME_NOT_PLAYING"
	CodeNoSelection errx.Code = "GAME_NO_SELECTION"
	CodeUnavailable errx.Code = "GAME_MENU_UNAVAILABLE"
)

var (
	ErrNotPlaying  = errx.NewBiz(CodeNotPlaying, "游戏未开始")
	ErrNoSelection = errx.NewBiz(CodeNoSelection, "未选中建筑")
	// ErrUnavailable 菜单项尚未提供（读档、选项、退出）。
	ErrUnavailable = errx.NewBiz(CodeUnavailable, "功能未开放")
)
