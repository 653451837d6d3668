package http

import (
	"context"
	"errors"
	nethttp "net/http"
	"time"

	"CityBuilder/internal/shared/transport/http/middleware"
	"CityBuilder/modules/kit/logx"

	"github.com/gin-gonic/gin"
)

type Server struct {
	engine *gin.Engine
	group  *gin.RouterGroup
	srv    *nethttp.Server
}

type Option func(*options)

type options struct {
	logger       logx.Logger
	allowOrigins []string
}

func WithLogger(l logx.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithAllowOrigins 为空时允许任意来源。
func WithAllowOrigins(origins []string) Option {
	return func(o *options) { o.allowOrigins = origins }
}

func NewHttpServer(addr string, engine *gin.Engine, opts ...Option) *Server {
	o := options{logger: logx.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	if engine == nil {
		engine = gin.New()
	}
	engine.Use(gin.Recovery())
	engine.Use(middleware.Cors(o.allowOrigins))
	engine.Use(middleware.AccessLog(o.logger))
	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(nethttp.StatusOK, gin.H{"status": "ok"})
	})

	return &Server{
		engine: engine,
		group:  engine.Group(""),
		srv: &nethttp.Server{
			Addr:              addr,
			Handler:           engine,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
	}
}

// Start 阻塞直到服务关闭；正常 Shutdown 返回 nil。
func (s *Server) Start() error {
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

func (s *Server) Group() *gin.RouterGroup {
	return s.group
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) Handler() nethttp.Handler {
	return s.engine
}

func (s *Server) Addr() string {
	return s.srv.Addr
}
