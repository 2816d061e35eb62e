// Package core 为 fireshare 提供配置管理功能
// 此文件处理凭据配置的读写、校验，以及存储平台的环境变量配置
package core

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/lukemora/fireshare/utils"
)

// 配置文件固定存放在用户主目录下的 .fireshare/ 中
const (
	configDirName  = ".fireshare"
	configFileName = "config.json"
)

// ErrDeclined 表示用户在确认提示中选择了放弃
// 调用方应以退出码 0 静默结束，不打印错误
var ErrDeclined = errors.New("用户取消操作")

// Config 表示持久化的 Firebase 凭据配置
// 六个凭据字段全部非空时配置才视为有效
type Config struct {
	APIKey            string `json:"apiKey"`
	AuthDomain        string `json:"authDomain"`
	ProjectID         string `json:"projectId"`
	StorageBucket     string `json:"storageBucket"`
	MessagingSenderID string `json:"messagingSenderId"`
	AppID             string `json:"appId"`
	AutoCopy          bool   `json:"autoCopy"` // 上传后自动复制链接到剪贴板
}

// Validate 校验六个必需字段是否全部非空
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"apiKey", c.APIKey},
		{"authDomain", c.AuthDomain},
		{"projectId", c.ProjectID},
		{"storageBucket", c.StorageBucket},
		{"messagingSenderId", c.MessagingSenderID},
		{"appId", c.AppID},
	}
	for _, f := range fields {
		if f.value == "" {
			return errors.Errorf("配置缺少必需字段: %s", f.name)
		}
	}
	return nil
}

// DefaultPath 返回配置文件的默认路径 (~/.fireshare/config.json)
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "获取用户主目录失败")
	}
	return filepath.Join(home, configDirName, configFileName), nil
}

// Load 从指定路径读取并解析配置
// 路径作为显式参数传入，便于使用临时目录进行隔离测试
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "读取配置文件失败")
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, errors.Wrap(err, "配置文件不是有效的JSON")
	}
	return &config, nil
}

// Save 将完整配置写入指定路径，覆盖之前的内容
// 始终整体覆盖，不做字段级的部分更新
func Save(path string, config *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "创建配置目录失败")
	}

	// 2空格缩进，与控制台里复制出来的配置对象保持同样的可读性
	data := utils.PrettyPrint(config)
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		return errors.Wrap(err, "写入配置文件失败")
	}
	return nil
}

// StorageConfig 包含存储平台选择及对应凭据
// 全部来自环境变量，持久化的JSON配置文件只保存Firebase凭据
type StorageConfig struct {
	Platform  string // 存储平台: firebase(默认), oss, cos, s3
	SecretID  string // 密钥ID (阿里云AccessKeyID / 腾讯云SecretID / S3 AccessKey)
	SecretKey string // 密钥Key
	Bucket    string // 存储桶名称
	Region    string // 存储区域
	Endpoint  string // 服务端点 (仅 s3)
	Host      string // 自定义域名（可选）
	PrefixKey string // 上传路径前缀（可选）
	UseSSL    bool   // s3 是否使用HTTPS，默认开启
}

// LoadStorageConfig 从环境变量加载存储平台配置
// 未设置 FIRESHARE_PLATFORM 时使用 firebase，凭据取自持久化配置
func LoadStorageConfig() *StorageConfig {
	sc := &StorageConfig{
		Platform: "firebase",
		UseSSL:   true,
	}

	if platform := os.Getenv("FIRESHARE_PLATFORM"); platform != "" {
		sc.Platform = platform
	}
	if secretID := os.Getenv("FIRESHARE_SECRET_ID"); secretID != "" {
		sc.SecretID = secretID
	}
	if secretKey := os.Getenv("FIRESHARE_SECRET_KEY"); secretKey != "" {
		sc.SecretKey = secretKey
	}
	if bucket := os.Getenv("FIRESHARE_BUCKET"); bucket != "" {
		sc.Bucket = bucket
	}
	if region := os.Getenv("FIRESHARE_REGION"); region != "" {
		sc.Region = region
	}
	if endpoint := os.Getenv("FIRESHARE_ENDPOINT"); endpoint != "" {
		sc.Endpoint = endpoint
	}
	if host := os.Getenv("FIRESHARE_HOST"); host != "" {
		sc.Host = host
	}
	if prefixKey := os.Getenv("FIRESHARE_PREFIX_KEY"); prefixKey != "" {
		sc.PrefixKey = prefixKey
	}
	if useSSL := os.Getenv("FIRESHARE_USE_SSL"); useSSL == "false" || useSSL == "0" {
		sc.UseSSL = false
	}

	return sc
}
