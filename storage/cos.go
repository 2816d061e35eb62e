// Package storage - 腾讯云COS实现
package storage

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/pkg/errors"
	"github.com/tencentyun/cos-go-sdk-v5"

	"github.com/lukemora/fireshare/core"
)

// COSPlatform 腾讯云COS平台
type COSPlatform struct {
	config *core.StorageConfig
	client *cos.Client
}

// NewCOSPlatform 创建腾讯云COS平台实例
func NewCOSPlatform(cfg *core.StorageConfig) (*COSPlatform, error) {
	// 构建Bucket URL
	bucketURL := fmt.Sprintf("https://%s.cos.%s.myqcloud.com", cfg.Bucket, cfg.Region)
	u, err := url.Parse(bucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "解析Bucket URL失败")
	}

	// 创建COS客户端
	b := &cos.BaseURL{BucketURL: u}
	client := cos.NewClient(b, &http.Client{
		Transport: &cos.AuthorizationTransport{
			SecretID:  cfg.SecretID,
			SecretKey: cfg.SecretKey,
		},
	})

	return &COSPlatform{
		config: cfg,
		client: client,
	}, nil
}

// GetName 获取平台名称
func (p *COSPlatform) GetName() string {
	return "腾讯云COS"
}

// Upload 上传对象到COS
func (p *COSPlatform) Upload(ctx context.Context, buffer []byte, objectName string) (string, error) {
	// 构建对象键（带路径前缀）
	objectKey := p.getObjectKey(objectName)

	// 上传文件
	_, err := p.client.Object.Put(ctx, objectKey, bytes.NewReader(buffer), nil)
	if err != nil {
		return "", errors.Wrap(err, "上传失败")
	}

	// 构建并返回URL
	return p.getObjectURL(objectKey), nil
}

// getObjectKey 获取对象键（带路径前缀）
func (p *COSPlatform) getObjectKey(objectName string) string {
	if p.config.PrefixKey != "" {
		return path.Join(p.config.PrefixKey, objectName)
	}
	return objectName
}

// getObjectURL 获取对象URL
func (p *COSPlatform) getObjectURL(objectKey string) string {
	// 如果配置了自定义域名，使用自定义域名
	if p.config.Host != "" {
		host := strings.TrimPrefix(p.config.Host, "https://")
		host = strings.TrimPrefix(host, "http://")
		return fmt.Sprintf("https://%s/%s", host, objectKey)
	}

	// 使用默认的COS域名
	return fmt.Sprintf("https://%s.cos.%s.myqcloud.com/%s",
		p.config.Bucket, p.config.Region, objectKey)
}

// BuildURL 根据对象名构建下载URL（不检查是否存在）
func (p *COSPlatform) BuildURL(objectName string) string {
	return p.getObjectURL(p.getObjectKey(objectName))
}
