package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripQuotes(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`"/tmp/a.png"`, "/tmp/a.png"},
		{`'/tmp/a.png'`, "/tmp/a.png"},
		{`  "/tmp/a.png"  `, "/tmp/a.png"},
		{`/tmp/a.png`, "/tmp/a.png"},
		{`"`, `"`},
		{``, ``},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StripQuotes(tt.input), "输入: %q", tt.input)
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))

	assert.True(t, FileExists(file))
	assert.False(t, FileExists(filepath.Join(dir, "missing.txt")))
	// 目录不算文件
	assert.False(t, FileExists(dir))
}

func TestPrettyPrint(t *testing.T) {
	out := PrettyPrint(map[string]string{"key": "value"})
	assert.Equal(t, "{\n  \"key\": \"value\"\n}", out)
}
