package utils

import (
	"encoding/json"
	"os"
	"strings"
)

// PrettyPrint 以2空格缩进序列化任意值
func PrettyPrint(i interface{}) string {
	s, _ := json.MarshalIndent(i, "", "  ")
	return string(s)
}

// FileExists 判断路径是否指向一个已存在的普通文件
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// StripQuotes 去掉路径两端成对的引号
// 从资源管理器"复制为路径"或拖拽到终端得到的路径往往带引号
func StripQuotes(path string) string {
	path = strings.TrimSpace(path)
	for _, quote := range []string{`"`, `'`} {
		if len(path) >= 2 && strings.HasPrefix(path, quote) && strings.HasSuffix(path, quote) {
			path = path[1 : len(path)-1]
		}
	}
	return strings.TrimSpace(path)
}
