package id

import (
	"strings"

	"github.com/google/uuid"
)

// GetUUID 返回去掉连字符的 uuid 字符串
func GetUUID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}
