package http

import "github.com/gin-gonic/gin"

// Registrar 业务模块向 HTTP 路由组注册自己的接口。
type Registrar interface {
	HttpRegister(g *gin.RouterGroup)
}
