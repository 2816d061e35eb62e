// Package storage - 阿里云OSS实现
package storage

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/pkg/errors"

	"github.com/lukemora/fireshare/core"
)

// OSSPlatform 阿里云OSS平台
type OSSPlatform struct {
	config *core.StorageConfig
	client *oss.Client
	bucket *oss.Bucket
}

// NewOSSPlatform 创建阿里云OSS平台实例
func NewOSSPlatform(cfg *core.StorageConfig) (*OSSPlatform, error) {
	// 构建endpoint
	endpoint := fmt.Sprintf("https://oss-%s.aliyuncs.com", cfg.Region)

	// 创建OSS客户端
	client, err := oss.New(endpoint, cfg.SecretID, cfg.SecretKey)
	if err != nil {
		return nil, errors.Wrap(err, "创建OSS客户端失败")
	}

	// 获取Bucket
	bucket, err := client.Bucket(cfg.Bucket)
	if err != nil {
		return nil, errors.Wrap(err, "获取Bucket失败")
	}

	return &OSSPlatform{
		config: cfg,
		client: client,
		bucket: bucket,
	}, nil
}

// GetName 获取平台名称
func (p *OSSPlatform) GetName() string {
	return "阿里云OSS"
}

// Upload 上传对象到OSS
func (p *OSSPlatform) Upload(ctx context.Context, buffer []byte, objectName string) (string, error) {
	// 构建对象键（带路径前缀）
	objectKey := p.getObjectKey(objectName)

	// 上传文件
	err := p.bucket.PutObject(objectKey, bytes.NewReader(buffer))
	if err != nil {
		return "", errors.Wrap(err, "上传失败")
	}

	// 构建并返回URL
	return p.getObjectURL(objectKey), nil
}

// getObjectKey 获取对象键（带路径前缀）
func (p *OSSPlatform) getObjectKey(objectName string) string {
	if p.config.PrefixKey != "" {
		return path.Join(p.config.PrefixKey, objectName)
	}
	return objectName
}

// getObjectURL 获取对象URL
func (p *OSSPlatform) getObjectURL(objectKey string) string {
	// 如果配置了自定义域名，使用自定义域名
	if p.config.Host != "" {
		host := strings.TrimPrefix(p.config.Host, "https://")
		host = strings.TrimPrefix(host, "http://")
		return fmt.Sprintf("https://%s/%s", host, objectKey)
	}

	// 使用默认的OSS域名
	return fmt.Sprintf("https://%s.oss-%s.aliyuncs.com/%s",
		p.config.Bucket, p.config.Region, objectKey)
}

// BuildURL 根据对象名构建下载URL（不检查是否存在）
func (p *OSSPlatform) BuildURL(objectName string) string {
	return p.getObjectURL(p.getObjectKey(objectName))
}
