package main

import (
	"log"
	"os"

	"fleet_ui/pkg/api"
	"fleet_ui/pkg/config"

	"github.com/spf13/cobra"
)

var (
	port         string
	fleetctlPath string
	payloadDir   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "fleet-ui",
		Short: "Fleet Web UI Server",
		Long:  "fleetctl的Web管理界面 - 通过HTTP接口代理设备管理命令",
		Run:   runServer,
	}

	rootCmd.Flags().StringVarP(&port, "port", "p", "", "HTTP服务器端口(覆盖HTTP_PORT)")
	rootCmd.Flags().StringVarP(&fleetctlPath, "fleetctl", "f", "", "fleetctl可执行文件路径(覆盖FLEETCTL_PATH)")
	rootCmd.Flags().StringVarP(&payloadDir, "payload-dir", "d", "", "payload文件目录(覆盖PAYLOAD_DIR)")

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("命令执行失败: %v", err)
	}
}

func runServer(cmd *cobra.Command, args []string) {
	cfg := config.LoadConfig()

	// 命令行参数优先于配置文件
	if port != "" {
		cfg.HTTPPort = port
	}
	if fleetctlPath != "" {
		cfg.FleetctlPath = fleetctlPath
	}
	if payloadDir != "" {
		cfg.PayloadDir = payloadDir
	}

	if _, err := os.Stat(cfg.FleetctlPath); err != nil {
		log.Printf("⚠️  fleetctl不存在: %s (可稍后通过/api/check-fleetctl确认)", cfg.FleetctlPath)
	}

	server := api.NewServer(cfg)

	log.Printf("🌐 HTTP服务器启动在端口 %s", cfg.HTTPPort)
	log.Printf("🔧 fleetctl路径: %s", cfg.FleetctlPath)
	log.Printf("📦 payload目录: %s", cfg.PayloadDir)
	log.Printf("🎨 Web界面: http://localhost:%s/web", cfg.HTTPPort)

	if err := server.Run(":" + cfg.HTTPPort); err != nil {
		log.Fatalf("HTTP服务器启动失败: %v", err)
	}
}
