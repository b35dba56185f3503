package api

import (
	"path/filepath"
	"regexp"
	"strings"
)

// 请求参数校验规则, 校验失败的请求不会触发任何fleetctl进程
var (
	contextPattern = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)
	emailPattern   = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	uuidPattern    = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)
	// 主机名或序列号
	hostNamePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)
)

// validContext 校验fleetctl context名称
func validContext(name string) bool {
	return contextPattern.MatchString(name)
}

// validEmail 校验登录邮箱格式
func validEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// validHostIdent 校验设备标识: UUID或主机名/序列号
func validHostIdent(ident string) bool {
	return uuidPattern.MatchString(ident) || hostNamePattern.MatchString(ident)
}

// validPayloadName 校验payload文件名, 拒绝路径穿越
func validPayloadName(name string) bool {
	if name == "" || name != filepath.Base(name) {
		return false
	}
	if strings.Contains(name, "..") {
		return false
	}
	return strings.HasSuffix(name, ".xml")
}
