// Package storage - Firebase Storage 实现
// 使用 Web 凭据直接调用 Firebase Storage 的 REST 接口
// 官方 Go SDK 只接受服务账号，无法使用粘贴的 Web 配置，故直接走 REST
package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/pkg/errors"

	"github.com/lukemora/fireshare/core"
)

// firebaseEndpoint Firebase Storage REST 接口的默认地址
const firebaseEndpoint = "https://firebasestorage.googleapis.com"

// FirebasePlatform Firebase Storage 平台
type FirebasePlatform struct {
	config   *core.Config
	storage  *core.StorageConfig
	endpoint string
	client   *http.Client
}

// NewFirebasePlatform 创建 Firebase Storage 平台实例
func NewFirebasePlatform(cfg *core.Config, sc *core.StorageConfig) (*FirebasePlatform, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &FirebasePlatform{
		config:   cfg,
		storage:  sc,
		endpoint: firebaseEndpoint,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}, nil
}

// GetName 获取平台名称
func (p *FirebasePlatform) GetName() string {
	return "Firebase Storage"
}

// uploadResponse Firebase 上传接口的响应体（只取需要的字段）
type uploadResponse struct {
	Name           string `json:"name"`
	DownloadTokens string `json:"downloadTokens"`
}

// Upload 上传对象到 Firebase Storage 并返回带下载令牌的公开URL
func (p *FirebasePlatform) Upload(ctx context.Context, buffer []byte, objectName string) (string, error) {
	objectKey := p.getObjectKey(objectName)

	// POST /v0/b/{bucket}/o?name={objectKey}
	uploadURL := fmt.Sprintf("%s/v0/b/%s/o?name=%s",
		p.endpoint, p.config.StorageBucket, url.QueryEscape(objectKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uploadURL, bytes.NewReader(buffer))
	if err != nil {
		return "", errors.Wrap(err, "构建上传请求失败")
	}
	req.Header.Set("Content-Type", mimetype.Detect(buffer).String())
	req.Header.Set("X-Goog-Api-Key", p.config.APIKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "上传失败")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "读取上传响应失败")
	}
	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("上传失败: HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var result uploadResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", errors.Wrap(err, "解析上传响应失败")
	}

	// 下载令牌是公开访问的凭证，响应里没有就退回无令牌URL
	downloadURL := p.BuildURL(objectKey)
	if result.DownloadTokens != "" {
		// 多个令牌以逗号分隔，取第一个
		token := strings.SplitN(result.DownloadTokens, ",", 2)[0]
		downloadURL = fmt.Sprintf("%s&token=%s", downloadURL, token)
	}
	return downloadURL, nil
}

// getObjectKey 获取对象键（带路径前缀）
func (p *FirebasePlatform) getObjectKey(objectName string) string {
	if p.storage != nil && p.storage.PrefixKey != "" {
		return path.Join(p.storage.PrefixKey, objectName)
	}
	return objectName
}

// BuildURL 根据对象键构建下载URL（不含下载令牌）
// 对象键位于URL路径段中，必须按路径段规则转义:
// 空格转成%20而不是+，路径分隔符转成%2F
func (p *FirebasePlatform) BuildURL(objectKey string) string {
	return fmt.Sprintf("%s/v0/b/%s/o/%s?alt=media",
		p.endpoint, p.config.StorageBucket, url.PathEscape(objectKey))
}
