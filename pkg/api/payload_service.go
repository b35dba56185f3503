package api

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"fleet_ui/pkg/fleetctl"
	"fleet_ui/pkg/models"

	"github.com/gin-gonic/gin"
)

// PayloadService MDM payload文件服务
type PayloadService struct {
	dir     string
	runner  *fleetctl.Runner
	timeout time.Duration
}

// NewPayloadService 创建payload服务
func NewPayloadService(dir string, runner *fleetctl.Runner, timeout time.Duration) *PayloadService {
	return &PayloadService{
		dir:     dir,
		runner:  runner,
		timeout: timeout,
	}
}

// ListPayloads 列出payload目录下的xml文件
func (s *PayloadService) ListPayloads(c *gin.Context) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			// 目录未配置和目录为空对前端是一回事
			c.JSON(http.StatusOK, gin.H{
				"payloads": []string{},
				"total":    0,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to read payload directory",
			"details": err.Error(),
		})
		return
	}

	payloads := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(entry.Name(), ".xml") {
			payloads = append(payloads, entry.Name())
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"payloads": payloads,
		"total":    len(payloads),
	})
}

// RunCommand 通过fleetctl向目标设备下发MDM命令
func (s *PayloadService) RunCommand(c *gin.Context) {
	var request models.RunCommandRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}

	if !validPayloadName(request.Payload) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid payload name",
		})
		return
	}
	if len(request.Hosts) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "At least one host is required",
		})
		return
	}
	for _, host := range request.Hosts {
		if !validHostIdent(host) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid host identifier: " + host,
			})
			return
		}
	}
	if !validContext(request.Context) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid context name",
		})
		return
	}

	payloadPath := filepath.Join(s.dir, request.Payload)
	if _, err := os.Stat(payloadPath); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Payload not found: " + request.Payload,
		})
		return
	}

	ctx, cancel := s.commandContext()
	defer cancel()

	output, err := s.runner.Run(ctx, []string{
		"mdm", "run-command",
		"--payload", payloadPath,
		"--hosts", strings.Join(request.Hosts, ","),
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

// commandContext 为单次命令执行创建上下文
func (s *PayloadService) commandContext() (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), s.timeout)
}
