package handler

import (
	"context"
	"errors"

	"CityBuilder/internal/city/domain"
	"CityBuilder/internal/game"
	"CityBuilder/internal/game/actor"
	"CityBuilder/internal/shared/transport"
	"CityBuilder/modules/kit/errx"
)

var bizCodes = map[errx.Code]int{
	errx.CodeInvalidParam:            transport.InvalidParam,
	game.CodeNotPlaying:              transport.NotPlaying,
	game.CodeNoSelection:             transport.NoSelection,
	game.CodeUnavailable:             transport.MenuUnavailable,
	domain.CodeOutOfBounds:           transport.OutOfBounds,
	domain.CodeTileEmpty:             transport.TileEmpty,
	domain.CodeTileOccupied:          transport.TileOccupied,
	domain.CodeUnknownBuilding:       transport.UnknownBuilding,
	domain.CodeDuplicateBuilding:     transport.DuplicateBuilding,
	domain.CodeBuildingPlaced:        transport.BuildingPlaced,
	domain.CodeInsufficientResources: transport.InsufficientResources,
	domain.CodeLevelFloor:            transport.LevelFloor,
	domain.CodeInvalidLevel:          transport.InvalidLevel,
}

const busyMsg = "系统繁忙，请稍后重试"

// HandleError 把错误映射成客户端业务码和提示语，并登记 access 日志的错误原因。
func HandleError(ctx context.Context, err error) (int, string) {
	if err == nil {
		return transport.OK, ""
	}

	var re *actor.RuntimeError
	if errors.As(err, &re) {
		transport.SetErrorReason(ctx, re.Message)
		return actor.CodeFromError(err), busyMsg
	}

	var xe *errx.Error
	if !errors.As(err, &xe) {
		transport.SetErrorReason(ctx, err.Error())
		return transport.SystemError, busyMsg
	}

	transport.SetErrorReason(ctx, xe.CodeText())
	if !xe.IsBiz() {
		return transport.SystemError, busyMsg
	}
	if code, ok := bizCodes[xe.Code()]; ok {
		return code, xe.Msg()
	}
	return transport.InvalidParam, xe.Msg()
}
