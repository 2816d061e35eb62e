package core

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		APIKey:            "key",
		AuthDomain:        "p.firebaseapp.com",
		ProjectID:         "p",
		StorageBucket:     "p.appspot.com",
		MessagingSenderID: "42",
		AppID:             "1:42:web:x",
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, validConfig().Validate())

	// 任意一个必需字段为空都应判定无效
	mutations := []struct {
		field  string
		mutate func(*Config)
	}{
		{"apiKey", func(c *Config) { c.APIKey = "" }},
		{"authDomain", func(c *Config) { c.AuthDomain = "" }},
		{"projectId", func(c *Config) { c.ProjectID = "" }},
		{"storageBucket", func(c *Config) { c.StorageBucket = "" }},
		{"messagingSenderId", func(c *Config) { c.MessagingSenderID = "" }},
		{"appId", func(c *Config) { c.AppID = "" }},
	}
	for _, m := range mutations {
		t.Run(m.field, func(t *testing.T) {
			config := validConfig()
			m.mutate(config)
			err := config.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), m.field)
		})
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	config := validConfig()
	config.AutoCopy = true
	require.NoError(t, Save(path, config))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, config, loaded)
}

func TestSaveWritesTwoSpaceIndent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, Save(path, validConfig()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "\n  \"apiKey\""), "应使用2空格缩进: %s", data)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	broken := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte("{not json"), 0o600))
	_, err = Load(broken)
	assert.Error(t, err)
}

func TestLoadStorageConfigDefaults(t *testing.T) {
	sc := LoadStorageConfig()
	assert.Equal(t, "firebase", sc.Platform)
	assert.True(t, sc.UseSSL)
}

func TestLoadStorageConfigFromEnv(t *testing.T) {
	t.Setenv("FIRESHARE_PLATFORM", "s3")
	t.Setenv("FIRESHARE_SECRET_ID", "id")
	t.Setenv("FIRESHARE_SECRET_KEY", "secret")
	t.Setenv("FIRESHARE_BUCKET", "files")
	t.Setenv("FIRESHARE_ENDPOINT", "minio.local:9000")
	t.Setenv("FIRESHARE_PREFIX_KEY", "uploads")
	t.Setenv("FIRESHARE_USE_SSL", "false")

	sc := LoadStorageConfig()
	assert.Equal(t, "s3", sc.Platform)
	assert.Equal(t, "id", sc.SecretID)
	assert.Equal(t, "secret", sc.SecretKey)
	assert.Equal(t, "files", sc.Bucket)
	assert.Equal(t, "minio.local:9000", sc.Endpoint)
	assert.Equal(t, "uploads", sc.PrefixKey)
	assert.False(t, sc.UseSSL)
}
