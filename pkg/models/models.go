package models

// ConfigRequest 设置fleet服务器地址的请求
type ConfigRequest struct {
	Address string `json:"address" binding:"required"` // fleet服务器地址, 必须以http开头
	Context string `json:"context" binding:"required"` // fleetctl context名称
}

// LoginRequest 登录fleet服务器的请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`    // 登录邮箱
	Password string `json:"password" binding:"required"` // 登录密码, 日志中会被脱敏
	Context  string `json:"context" binding:"required"`  // fleetctl context名称
}

// RunCommandRequest 向设备下发MDM命令的请求
type RunCommandRequest struct {
	Payload string   `json:"payload" binding:"required"` // payload文件名(不含路径)
	Hosts   []string `json:"hosts" binding:"required"`   // 目标设备标识列表(UUID或主机名/序列号)
	Context string   `json:"context" binding:"required"` // fleetctl context名称
}
