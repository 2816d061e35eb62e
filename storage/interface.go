// Package storage 提供对象存储上传功能
// 支持多种存储平台（Firebase Storage、阿里云OSS、腾讯云COS、S3/MinIO）
package storage

import "context"

// Platform 存储平台接口
type Platform interface {
	// Upload 上传对象到存储桶
	// buffer: 文件二进制数据
	// objectName: 远端对象名
	// 返回公开下载URL和错误
	Upload(ctx context.Context, buffer []byte, objectName string) (string, error)

	// GetName 获取平台名称
	GetName() string

	// BuildURL 根据对象名构建下载URL（不检查是否存在）
	BuildURL(objectName string) string
}
