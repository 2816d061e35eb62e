package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lukemora/fireshare/core"
)

func validConfig() *core.Config {
	return &core.Config{
		APIKey:            "key",
		AuthDomain:        "p.firebaseapp.com",
		ProjectID:         "p",
		StorageBucket:     "p.appspot.com",
		MessagingSenderID: "42",
		AppID:             "1:42:web:x",
	}
}

func TestResolveConfigReturnsValidUnchanged(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	config := validConfig()
	config.AutoCopy = true
	require.NoError(t, core.Save(path, config))

	before, err := os.ReadFile(path)
	require.NoError(t, err)

	// 有效配置且未强制编辑: 不提示、不落盘，原样返回
	// 测试环境没有终端，一旦走到任何交互提示此调用就会报错
	resolved, err := resolveConfig(path, false)
	require.NoError(t, err)
	assert.Equal(t, config, resolved)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after, "配置文件不应被重写")
}

func TestLoadExisting(t *testing.T) {
	dir := t.TempDir()

	t.Run("文件缺失", func(t *testing.T) {
		// 没有历史配置时直接进入初始设置，不出现"编辑已有配置"的询问
		_, valid := loadExisting(filepath.Join(dir, "missing.json"))
		assert.False(t, valid)
	})

	t.Run("JSON损坏", func(t *testing.T) {
		path := filepath.Join(dir, "broken.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))
		_, valid := loadExisting(path)
		assert.False(t, valid)
	})

	t.Run("字段不全", func(t *testing.T) {
		path := filepath.Join(dir, "partial.json")
		config := validConfig()
		config.StorageBucket = ""
		require.NoError(t, core.Save(path, config))
		_, valid := loadExisting(path)
		assert.False(t, valid)
	})

	t.Run("完整配置", func(t *testing.T) {
		path := filepath.Join(dir, "full.json")
		require.NoError(t, core.Save(path, validConfig()))
		existing, valid := loadExisting(path)
		assert.True(t, valid)
		assert.Equal(t, validConfig(), existing)
	})
}
