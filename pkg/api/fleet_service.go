package api

import (
	"context"
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"fleet_ui/pkg/fleetctl"
	"fleet_ui/pkg/models"

	"github.com/gin-gonic/gin"
)

// FleetService fleetctl命令服务
type FleetService struct {
	runner  *fleetctl.Runner
	timeout time.Duration
}

// NewFleetService 创建fleetctl命令服务, timeout为0时不限制命令执行时间
func NewFleetService(runner *fleetctl.Runner, timeout time.Duration) *FleetService {
	return &FleetService{
		runner:  runner,
		timeout: timeout,
	}
}

// commandContext 为单次命令执行创建上下文
func (s *FleetService) commandContext() (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), s.timeout)
}

// CheckFleetctl 检查fleetctl可执行文件是否存在(不执行任何进程)
func (s *FleetService) CheckFleetctl(c *gin.Context) {
	_, err := os.Stat(s.runner.Path())
	c.JSON(http.StatusOK, gin.H{
		"exists": err == nil,
		"path":   s.runner.Path(),
	})
}

// SetConfig 配置fleet服务器地址
func (s *FleetService) SetConfig(c *gin.Context) {
	var request models.ConfigRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}

	if !strings.HasPrefix(request.Address, "http") {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Address must start with http",
		})
		return
	}
	if !validContext(request.Context) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid context name",
		})
		return
	}

	ctx, cancel := s.commandContext()
	defer cancel()

	output, err := s.runner.Run(ctx, []string{
		"config", "set",
		"--address", request.Address,
		"--context", request.Context,
	})
	if err != nil {
		respondRunError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"output":  string(output),
	})
}

// Login 登录fleet服务器, 密码参数在日志中会被脱敏
func (s *FleetService) Login(c *gin.Context) {
	var request models.LoginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}

	if !validEmail(request.Email) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid email address",
		})
		return
	}
	if !validContext(request.Context) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid context name",
		})
		return
	}

	ctx, cancel := s.commandContext()
	defer cancel()

	output, err := s.runner.Run(ctx, []string{
		"login",
		"--email", request.Email,
		"--password", request.Password,
		"--context", request.Context,
	})
	if err != nil {
		respondRunError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"output":  string(output),
	})
}

// ListHosts 获取设备列表: 执行fleetctl → 解析JSON输出 → 规范化设备记录
func (s *FleetService) ListHosts(c *gin.Context) {
	contextName := c.Query("context")
	if !validContext(contextName) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid context name",
		})
		return
	}

	ctx, cancel := s.commandContext()
	defer cancel()

	output, err := s.runner.Run(ctx, []string{
		"get", "hosts",
		"--json",
		"--context", contextName,
	})
	if err != nil {
		respondRunError(c, err)
		return
	}

	value, err := fleetctl.Interpret(output)
	if err != nil {
		respondRunError(c, err)
		return
	}

	hosts := fleetctl.Normalize(value)
	c.JSON(http.StatusOK, gin.H{
		"hosts": hosts,
		"total": len(hosts),
	})
}

// respondRunError 将命令执行/解析错误映射为HTTP响应, 只透出上游诊断信息
func respondRunError(c *gin.Context, err error) {
	var execErr *fleetctl.ExecError
	if errors.As(err, &execErr) {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "fleetctl execution failed",
			"details": execErr.ExitDetail,
			"stderr":  execErr.Stderr,
		})
		return
	}

	var parseErr *fleetctl.ParseError
	if errors.As(err, &parseErr) {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to parse fleetctl output",
			"details": parseErr.Detail,
		})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   "Command failed",
		"details": err.Error(),
	})
}
