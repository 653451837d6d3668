package interfaces

import (
	"CityBuilder/internal/game/interfaces/handler"
	transporthttp "CityBuilder/internal/shared/transport/http"
	"CityBuilder/internal/shared/transport/ws"
	"CityBuilder/modules/kit/logx"

	"github.com/gin-gonic/gin"
)

type Module struct {
	svc          handler.GameService
	wsHandler    *handler.WsHandler
	httpHandler  *handler.HttpHandler
	pushInterval handler.Interval
	log          logx.Logger
}

func New(svc handler.GameService, pushInterval handler.Interval, log logx.Logger) *Module {
	return &Module{
		svc:          svc,
		wsHandler:    handler.NewWsHandler(svc),
		httpHandler:  handler.NewHttpHandler(svc),
		pushInterval: pushInterval,
		log:          log,
	}
}

func (m *Module) WsRegister(r *ws.Router) {
	m.wsHandler.RegisterRoutes(r)
}

func (m *Module) HttpRegister(g *gin.RouterGroup) {
	m.httpHandler.RegisterRoutes(g)
}

// ConnectHook 每条 WS 连接的定时快照推送。
func (m *Module) ConnectHook() ws.ConnectHook {
	return handler.ViewPusher(m.svc, m.pushInterval, m.log)
}

var _ ws.Registrar = (*Module)(nil)
var _ transporthttp.Registrar = (*Module)(nil)
