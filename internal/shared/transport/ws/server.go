package ws

import (
	"net/http"

	"CityBuilder/modules/kit/logx"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// ConnectHook 连接建立后调用，可用于启动该连接的定时推送。
type ConnectHook func(conn WSConn)

type Server struct {
	router    *Router
	log       logx.Logger
	upgrader  websocket.Upgrader
	onConnect []ConnectHook
}

func NewServer(r *Router, l logx.Logger) *Server {
	if l == nil {
		l = logx.Nop()
	}
	return &Server{
		router: r,
		log:    l,
		upgrader: websocket.Upgrader{
			// 来源校验由 HTTP 层的 CORS 配置负责
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

func (s *Server) OnConnect(h ConnectHook) {
	s.onConnect = append(s.onConnect, h)
}

func (s *Server) ServeHTTP(resp http.ResponseWriter, req *http.Request) {
	wsConn, err := s.upgrader.Upgrade(resp, req, nil)
	if err != nil {
		s.log.Error("websocket upgrade error", zap.Error(err))
		return
	}

	wsServer := NewWsServer(wsConn, s.log)
	wsServer.Router(s.router)
	wsServer.Run()
	s.log.Info("websocket connected", zap.String("session_id", wsServer.SessionID()), zap.String("addr", wsServer.Addr()))

	for _, h := range s.onConnect {
		h(wsServer)
	}
}
