package api

import (
	"net/http"
	"time"

	"fleet_ui/pkg/config"
	"fleet_ui/pkg/fleetctl"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Server 服务端
type Server struct {
	router         *gin.Engine
	fleetService   *FleetService
	payloadService *PayloadService
}

// NewServer 创建服务端
func NewServer(cfg *config.Config) *Server {
	runner := fleetctl.NewRunner(cfg.FleetctlPath, cfg.MaxOutputBytes)
	timeout := time.Duration(cfg.CommandTimeoutSec) * time.Second

	router := gin.Default()
	router.Use(cors.Default())

	server := &Server{
		router:         router,
		fleetService:   NewFleetService(runner, timeout),
		payloadService: NewPayloadService(cfg.PayloadDir, runner, timeout),
	}

	server.setupRoutes()
	return server
}

// setupRoutes 设置路由
func (s *Server) setupRoutes() {
	api := s.router.Group("/api")
	{
		// fleetctl代理API
		api.GET("/check-fleetctl", s.fleetService.CheckFleetctl)
		api.POST("/config", s.fleetService.SetConfig)
		api.POST("/login", s.fleetService.Login)
		api.GET("/hosts", s.fleetService.ListHosts)

		// payload API
		api.GET("/payloads", s.payloadService.ListPayloads)
		api.POST("/run-command", s.payloadService.RunCommand)

		// 系统API
		api.GET("/health", s.healthCheck)
	}

	// 静态文件和Web界面
	s.router.Static("/web", "./web/static")
	s.router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/web")
	})
}

// healthCheck 健康检查
func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now(),
	})
}

// Run 启动服务器
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}
