package transport

// BizCode 表示业务码的强类型封装，用于在日志上下文中减少误传风险。
type BizCode int

// 客户端业务码：0 成功，4xx 业务拒绝（access 记 WARN），5xx 系统错误（access 记 ERROR）。
const (
	OK = 0

	InvalidParam    = 400
	NotPlaying      = 409
	NoSelection     = 410
	MenuUnavailable = 411

	OutOfBounds           = 420
	TileEmpty             = 421
	TileOccupied          = 422
	UnknownBuilding       = 423
	DuplicateBuilding     = 424
	BuildingPlaced        = 425
	InsufficientResources = 430
	LevelFloor            = 431
	InvalidLevel          = 432

	SystemError = 500
	Unavailable = 503
	Timeout     = 504
)
