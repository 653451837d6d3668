package dto

// Response HTTP 统一响应体，access 日志从 code 字段取业务码。
type Response struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data any    `json:"data,omitempty"`
}

func Success(code int, data any) Response {
	return Response{Code: code, Msg: "ok", Data: data}
}

func Error(code int, msg string) Response {
	return Response{Code: code, Msg: msg}
}

type ViewportReq struct {
	Width  float64 `json:"width" binding:"required,gt=0"`
	Height float64 `json:"height" binding:"required,gt=0"`
}

// ClickReq 视口像素坐标。
type ClickReq struct {
	X *float64 `json:"x" binding:"required"`
	Y *float64 `json:"y" binding:"required"`
}

// CellReq 网格坐标，0 是合法值，所以用指针区分缺省。
type CellReq struct {
	X *int `json:"x" binding:"required"`
	Y *int `json:"y" binding:"required"`
}
