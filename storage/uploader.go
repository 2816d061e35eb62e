// Package storage - 文件上传核心逻辑
package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/lukemora/fireshare/core"
	"github.com/lukemora/fireshare/utils"
)

// Uploader 文件上传器
type Uploader struct {
	platform Platform
}

// NewUploader 创建文件上传器
func NewUploader(platform Platform) *Uploader {
	return &Uploader{platform: platform}
}

// GetPlatform 获取存储平台实例
func (u *Uploader) GetPlatform() Platform {
	return u.platform
}

// UploadFile 上传本地文件并返回公开下载URL
// localPath: 本地文件路径，两端的引号会被去掉
func (u *Uploader) UploadFile(ctx context.Context, localPath string) (string, error) {
	localPath = utils.StripQuotes(localPath)

	// 读取本地文件
	buffer, err := os.ReadFile(localPath)
	if err != nil {
		return "", errors.Wrap(err, "读取本地文件失败")
	}

	// 远端对象名插入毫秒时间戳，避免同名文件重复上传时相互覆盖
	objectName := RemoteName(filepath.Base(localPath), time.Now())

	url, err := u.platform.Upload(ctx, buffer, objectName)
	if err != nil {
		return "", errors.Wrapf(err, "上传到%s失败", u.platform.GetName())
	}
	return url, nil
}

// RemoteName 在文件基础名和扩展名之间插入毫秒级Unix时间戳
// photo.png -> photo_1700000000000.png
func RemoteName(base string, t time.Time) string {
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext)
	return fmt.Sprintf("%s_%d%s", name, t.UnixMilli(), ext)
}

// NewPlatform 根据存储配置创建对应的平台实例
// 平台为 firebase 时使用持久化的凭据配置，其余平台校验环境变量凭据
func NewPlatform(cfg *core.Config, sc *core.StorageConfig) (Platform, error) {
	switch sc.Platform {
	case "", "firebase":
		return NewFirebasePlatform(cfg, sc)
	case "oss", "cos", "s3":
		if err := validateBucketConfig(sc); err != nil {
			return nil, err
		}
	default:
		return nil, errors.Errorf("不支持的存储平台: %s (支持: firebase, oss, cos, s3)", sc.Platform)
	}

	switch sc.Platform {
	case "oss":
		return NewOSSPlatform(sc)
	case "cos":
		return NewCOSPlatform(sc)
	default:
		return NewS3Platform(sc)
	}
}

// validateBucketConfig 校验桶类平台的必需配置
func validateBucketConfig(sc *core.StorageConfig) error {
	if sc.SecretID == "" || sc.SecretKey == "" {
		return errors.New("存储密钥配置不完整 (FIRESHARE_SECRET_ID / FIRESHARE_SECRET_KEY)")
	}
	if sc.Bucket == "" {
		return errors.New("未配置存储桶 (FIRESHARE_BUCKET)")
	}
	if sc.Platform == "s3" {
		if sc.Endpoint == "" {
			return errors.New("未配置服务端点 (FIRESHARE_ENDPOINT)")
		}
	} else if sc.Region == "" {
		return errors.New("未配置存储区域 (FIRESHARE_REGION)")
	}
	return nil
}
