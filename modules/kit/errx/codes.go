package errx

// 跨模块统一的系统类错误码。领域错误码（例如 CITY_TILE_EMPTY）由各领域包自行定义。
const (
	// CodeInternal 兜底的内部错误。
	CodeInternal Code = "INTERNAL_ERROR"
	// CodeUnavailable 运行时/依赖不可用（actor 已停止、连接已关闭等）。
	CodeUnavailable Code = "SERVICE_UNAVAILABLE"
	// CodeTimeout 请求等待超时。
	CodeTimeout Code = "TIMEOUT"
	// CodeInvalidParam 请求参数错误。
	CodeInvalidParam Code = "INVALID_PARAM"
)

// 系统类哨兵错误，派生上下文请用 WithData/WithCause。
var (
	ErrInternal     = NewSys(CodeInternal, "服务器内部错误")
	ErrUnavailable  = NewSys(CodeUnavailable, "服务不可用")
	ErrTimeout      = NewSys(CodeTimeout, "请求超时")
	ErrInvalidParam = NewBiz(CodeInvalidParam, "请求参数错误")
)
