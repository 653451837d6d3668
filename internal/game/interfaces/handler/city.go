package handler

import (
	"context"
	nethttp "net/http"

	"CityBuilder/internal/city/domain"
	"CityBuilder/internal/game"
	"CityBuilder/internal/game/interfaces/handler/dto"
	"CityBuilder/internal/shared/transport"
	"CityBuilder/internal/shared/transport/ws"

	"github.com/gin-gonic/gin"
)

// ============ Types ============

// GameService 对游戏 actor 的同步调用，由 actor.Runtime 实现。
type GameService interface {
	View(ctx context.Context) (game.View, error)
	NewGame(ctx context.Context) (game.View, error)
	Resize(ctx context.Context, w, h float64) (game.View, error)
	Click(ctx context.Context, x, y float64) (game.ClickResult, error)
	Select(ctx context.Context, x, y int) (domain.Building, error)
	Upgrade(ctx context.Context, x, y int) (domain.Building, error)
	Downgrade(ctx context.Context, x, y int) (domain.Building, error)
}

type WsHandler struct {
	svc GameService
}

type HttpHandler struct {
	svc GameService
}

// ============ Constructors ============

func NewWsHandler(svc GameService) *WsHandler {
	return &WsHandler{svc: svc}
}

func NewHttpHandler(svc GameService) *HttpHandler {
	return &HttpHandler{svc: svc}
}

// ============ Route Registration ============

func (h *WsHandler) RegisterRoutes(r *ws.Router) {
	r.Group("game").
		Handle("view", h.View).
		Handle("new", h.NewGame).
		Handle("click", h.Click).
		Handle("viewport", h.Resize)
	r.Group("city").
		Handle("upgrade", h.Upgrade).
		Handle("downgrade", h.Downgrade).
		Handle("select", h.Select)
}

func (h *HttpHandler) RegisterRoutes(group *gin.RouterGroup) {
	api := group.Group("/api")
	api.GET("/view", h.View)
	api.POST("/game/new", h.NewGame)
	api.POST("/viewport", h.Resize)
	api.POST("/click", h.Click)
	api.POST("/selection", h.Select)
	api.POST("/buildings/upgrade", h.Upgrade)
	api.POST("/buildings/downgrade", h.Downgrade)
}

// ============ WS Handlers ============

func (h *WsHandler) View(ctx context.Context, req *ws.WsMsgReq, resp *ws.WsMsgResp) {
	v, err := h.svc.View(ctx)
	h.reply(ctx, resp, v, err)
}

func (h *WsHandler) NewGame(ctx context.Context, req *ws.WsMsgReq, resp *ws.WsMsgResp) {
	v, err := h.svc.NewGame(ctx)
	h.reply(ctx, resp, v, err)
}

func (h *WsHandler) Click(ctx context.Context, req *ws.WsMsgReq, resp *ws.WsMsgResp) {
	var p dto.ClickReq
	if err := ws.BindMsg(req, &p); err != nil || p.X == nil || p.Y == nil {
		h.fail(resp, transport.InvalidParam, "参数有误")
		return
	}
	res, err := h.svc.Click(ctx, *p.X, *p.Y)
	h.reply(ctx, resp, res, err)
}

func (h *WsHandler) Resize(ctx context.Context, req *ws.WsMsgReq, resp *ws.WsMsgResp) {
	var p dto.ViewportReq
	if err := ws.BindMsg(req, &p); err != nil || p.Width <= 0 || p.Height <= 0 {
		h.fail(resp, transport.InvalidParam, "参数有误")
		return
	}
	v, err := h.svc.Resize(ctx, p.Width, p.Height)
	h.reply(ctx, resp, v, err)
}

func (h *WsHandler) Upgrade(ctx context.Context, req *ws.WsMsgReq, resp *ws.WsMsgResp) {
	h.cellOp(ctx, req, resp, h.svc.Upgrade)
}

func (h *WsHandler) Downgrade(ctx context.Context, req *ws.WsMsgReq, resp *ws.WsMsgResp) {
	h.cellOp(ctx, req, resp, h.svc.Downgrade)
}

func (h *WsHandler) Select(ctx context.Context, req *ws.WsMsgReq, resp *ws.WsMsgResp) {
	h.cellOp(ctx, req, resp, h.svc.Select)
}

type cellFunc func(ctx context.Context, x, y int) (domain.Building, error)

func (h *WsHandler) cellOp(ctx context.Context, req *ws.WsMsgReq, resp *ws.WsMsgResp, fn cellFunc) {
	var p dto.CellReq
	if err := ws.BindMsg(req, &p); err != nil || p.X == nil || p.Y == nil {
		h.fail(resp, transport.InvalidParam, "参数有误")
		return
	}
	b, err := fn(ctx, *p.X, *p.Y)
	h.reply(ctx, resp, b, err)
}

// ============ HTTP Handlers ============

func (h *HttpHandler) View(c *gin.Context) {
	ctx := c.Request.Context()
	v, err := h.svc.View(ctx)
	h.reply(ctx, c, v, err)
}

func (h *HttpHandler) NewGame(c *gin.Context) {
	ctx := c.Request.Context()
	v, err := h.svc.NewGame(ctx)
	h.reply(ctx, c, v, err)
}

func (h *HttpHandler) Resize(c *gin.Context) {
	ctx := c.Request.Context()
	var req dto.ViewportReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, transport.InvalidParam, "参数有误")
		return
	}
	v, err := h.svc.Resize(ctx, req.Width, req.Height)
	h.reply(ctx, c, v, err)
}

func (h *HttpHandler) Click(c *gin.Context) {
	ctx := c.Request.Context()
	var req dto.ClickReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, transport.InvalidParam, "参数有误")
		return
	}
	res, err := h.svc.Click(ctx, *req.X, *req.Y)
	h.reply(ctx, c, res, err)
}

func (h *HttpHandler) Select(c *gin.Context) {
	h.cellOp(c, h.svc.Select)
}

func (h *HttpHandler) Upgrade(c *gin.Context) {
	h.cellOp(c, h.svc.Upgrade)
}

func (h *HttpHandler) Downgrade(c *gin.Context) {
	h.cellOp(c, h.svc.Downgrade)
}

func (h *HttpHandler) cellOp(c *gin.Context, fn cellFunc) {
	ctx := c.Request.Context()
	var req dto.CellReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, transport.InvalidParam, "参数有误")
		return
	}
	b, err := fn(ctx, *req.X, *req.Y)
	h.reply(ctx, c, b, err)
}

// ============ Response Helpers ============

func (h *WsHandler) reply(ctx context.Context, resp *ws.WsMsgResp, data any, err error) {
	if err != nil {
		code, msg := HandleError(ctx, err)
		h.fail(resp, code, msg)
		return
	}
	h.ok(resp, data)
}

func (h *WsHandler) ok(resp *ws.WsMsgResp, data any) {
	if resp == nil || resp.Body == nil {
		return
	}
	resp.Body.Code = transport.OK
	resp.Body.Msg = data
}

func (h *WsHandler) fail(resp *ws.WsMsgResp, code int, msg string) {
	if resp == nil || resp.Body == nil {
		return
	}
	resp.Body.Code = code
	if msg != "" {
		resp.Body.Msg = msg
	}
}

func (h *HttpHandler) reply(ctx context.Context, c *gin.Context, data any, err error) {
	if err != nil {
		code, msg := HandleError(ctx, err)
		h.fail(c, code, msg)
		return
	}
	c.JSON(nethttp.StatusOK, dto.Success(transport.OK, data))
}

func (h *HttpHandler) fail(c *gin.Context, code int, msg string) {
	c.JSON(nethttp.StatusOK, dto.Error(code, msg))
}
