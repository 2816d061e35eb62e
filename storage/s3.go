// Package storage - S3/MinIO 实现
package storage

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"

	"github.com/lukemora/fireshare/core"
)

// presignExpiry 预签名URL的有效期，取协议允许的最大值
const presignExpiry = 7 * 24 * time.Hour

// S3Platform S3兼容存储平台（MinIO、AWS S3等）
type S3Platform struct {
	config *core.StorageConfig
	client *minio.Client
}

// NewS3Platform 创建S3平台实例
func NewS3Platform(cfg *core.StorageConfig) (*S3Platform, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.SecretID, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "创建S3客户端失败")
	}

	return &S3Platform{
		config: cfg,
		client: client,
	}, nil
}

// GetName 获取平台名称
func (p *S3Platform) GetName() string {
	return "S3/MinIO"
}

// Upload 上传对象并返回预签名下载URL
// 桶没有公共读策略时预签名是唯一能直接分享的链接形式
func (p *S3Platform) Upload(ctx context.Context, buffer []byte, objectName string) (string, error) {
	objectKey := p.getObjectKey(objectName)

	_, err := p.client.PutObject(ctx, p.config.Bucket, objectKey,
		bytes.NewReader(buffer), int64(len(buffer)), minio.PutObjectOptions{})
	if err != nil {
		return "", errors.Wrap(err, "上传失败")
	}

	// 配置了自定义域名时认为桶是公共读，直接拼URL
	if p.config.Host != "" {
		return p.BuildURL(objectName), nil
	}

	u, err := p.client.PresignedGetObject(ctx, p.config.Bucket, objectKey, presignExpiry, nil)
	if err != nil {
		return "", errors.Wrap(err, "生成下载URL失败")
	}
	return u.String(), nil
}

// getObjectKey 获取对象键（带路径前缀）
func (p *S3Platform) getObjectKey(objectName string) string {
	if p.config.PrefixKey != "" {
		return path.Join(p.config.PrefixKey, objectName)
	}
	return objectName
}

// BuildURL 根据对象名构建下载URL（不检查是否存在）
func (p *S3Platform) BuildURL(objectName string) string {
	objectKey := p.getObjectKey(objectName)

	if p.config.Host != "" {
		host := strings.TrimPrefix(p.config.Host, "https://")
		host = strings.TrimPrefix(host, "http://")
		return fmt.Sprintf("https://%s/%s", host, objectKey)
	}

	scheme := "https"
	if !p.config.UseSSL {
		scheme = "http"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, p.config.Endpoint, p.config.Bucket, objectKey)
}
