package domain

import "CityBuilder/modules/kit/errx"

type Code = errx.Code

const (
	CodeOutOfBounds           Code = "CITY_OUT_OF_BOUNDS"
	CodeTileEmpty             Code = "CITY_TILE_EMPTY"
	CodeTileOccupied          Code = "CITY_TILE_OCCUPIED"
	CodeUnknownBuilding       Code = "CITY_UNKNOWN_BUILDING"
	CodeDuplicateBuilding     Code = "CITY_DUPLICATE_BUILDING"
	CodeBuildingPlaced        Code = "CITY_BUILDING_PLACED"
	CodeInsufficientResources Code = "CITY_INSUFFICIENT_RESOURCES"
	CodeLevelFloor            Code = "CITY_LEVEL_FLOOR"
	CodeInvalidLevel          Code = "CITY_INVALID_LEVEL"
)

// 城市操作的业务拒绝。返回这些错误时城市状态保证未被修改。
var (
	ErrOutOfBounds           = errx.NewBiz(CodeOutOfBounds, "坐标超出网格")
	ErrTileEmpty             = errx.NewBiz(CodeTileEmpty, "格子上没有建筑")
	ErrTileOccupied          = errx.NewBiz(CodeTileOccupied, "格子已被占用")
	ErrUnknownBuilding       = errx.NewBiz(CodeUnknownBuilding, "建筑不存在")
	ErrDuplicateBuilding     = errx.NewBiz(CodeDuplicateBuilding, "建筑名重复")
	ErrBuildingPlaced        = errx.NewBiz(CodeBuildingPlaced, "建筑已放置在其它格子")
	ErrInsufficientResources = errx.NewBiz(CodeInsufficientResources, "资源不足")
	ErrLevelFloor            = errx.NewBiz(CodeLevelFloor, "已是最低等级")
	ErrInvalidLevel          = errx.NewBiz(CodeInvalidLevel, "建筑等级非法")
)
