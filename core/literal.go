// Package core - 配置对象字面量的文本转换
// 用户从控制台复制出来的是一段JS对象字面量，不是合法JSON
// 这里做纯文本修正: 去掉声明头和结尾分号、给裸键加引号、去掉尾随逗号
package core

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

var (
	// 声明头: const firebaseConfig = / var cfg = / let cfg =
	declarationRe = regexp.MustCompile(`^(?:const|let|var)\s+[A-Za-z_$][A-Za-z0-9_$]*\s*=\s*`)
	// 裸键: { 或 , 之后的未加引号的标识符键
	bareKeyRe = regexp.MustCompile(`([{,]\s*)([A-Za-z_$][A-Za-z0-9_$]*)\s*:`)
	// 尾随逗号: } 或 ] 之前多余的逗号
	trailingCommaRe = regexp.MustCompile(`,(\s*[}\]])`)
)

// NormalizeLiteral 将粘贴的JS对象字面量修正为可解析的JSON文本
// 纯函数，不做任何IO；对嵌套对象里的裸键同样生效，
// 但并不是完整的JS解析器，病态输入的行为不做保证
func NormalizeLiteral(raw string) string {
	text := strings.TrimSpace(raw)
	text = declarationRe.ReplaceAllString(text, "")
	text = strings.TrimSuffix(strings.TrimSpace(text), ";")
	text = bareKeyRe.ReplaceAllString(text, `$1"$2":`)
	text = trailingCommaRe.ReplaceAllString(text, `$1`)
	return strings.TrimSpace(text)
}

// ParseLiteral 将粘贴的配置对象文本解析为 Config
// 解析失败时返回错误，由调用方决定如何向用户提示
func ParseLiteral(raw string) (*Config, error) {
	normalized := NormalizeLiteral(raw)
	if normalized == "" {
		return nil, errors.New("粘贴的配置为空")
	}

	var config Config
	if err := json.Unmarshal([]byte(normalized), &config); err != nil {
		return nil, errors.Wrap(err, "配置对象解析失败")
	}
	return &config, nil
}
