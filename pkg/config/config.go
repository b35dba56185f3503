package config

import (
	"bufio"
	"os"
	"strconv"
	"strings"
)

// Config 应用程序配置, 启动时读取一次, 之后不再修改
type Config struct {
	FleetctlPath      string // fleetctl可执行文件的绝对路径
	PayloadDir        string // MDM payload文件目录
	HTTPPort          string // HTTP监听端口
	MaxOutputBytes    int    // 单次命令输出的上限(字节)
	CommandTimeoutSec int    // 命令超时时间(秒), 0表示不限制
}

// LoadConfig 从.env文件和环境变量加载配置
func LoadConfig() *Config {
	config := &Config{
		FleetctlPath:      "/usr/local/bin/fleetctl",
		PayloadDir:        "./payloads",
		HTTPPort:          "8080",
		MaxOutputBytes:    10 << 20,
		CommandTimeoutSec: 30,
	}

	// 先尝试从.env文件加载
	loadFromEnvFile(config)

	// 然后从环境变量覆盖（如果存在）
	if path := os.Getenv("FLEETCTL_PATH"); path != "" {
		config.FleetctlPath = path
	}
	if dir := os.Getenv("PAYLOAD_DIR"); dir != "" {
		config.PayloadDir = dir
	}
	if port := os.Getenv("HTTP_PORT"); port != "" {
		config.HTTPPort = port
	}
	if max := os.Getenv("MAX_OUTPUT_BYTES"); max != "" {
		setInt(&config.MaxOutputBytes, max)
	}
	if timeout := os.Getenv("COMMAND_TIMEOUT_SEC"); timeout != "" {
		setInt(&config.CommandTimeoutSec, timeout)
	}

	return config
}

// loadFromEnvFile 从.env文件加载配置
func loadFromEnvFile(config *Config) error {
	file, err := os.Open(".env")
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		// 简单去除引号
		value = strings.Trim(value, `"'`)

		switch key {
		case "FLEETCTL_PATH":
			config.FleetctlPath = value
		case "PAYLOAD_DIR":
			config.PayloadDir = value
		case "HTTP_PORT":
			config.HTTPPort = value
		case "MAX_OUTPUT_BYTES":
			setInt(&config.MaxOutputBytes, value)
		case "COMMAND_TIMEOUT_SEC":
			setInt(&config.CommandTimeoutSec, value)
		}
	}

	return scanner.Err()
}

// setInt 解析整数配置项, 非法值保持默认
func setInt(dst *int, value string) {
	if n, err := strconv.Atoi(value); err == nil && n >= 0 {
		*dst = n
	}
}
