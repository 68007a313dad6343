package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/kcaldas/console/pkg/config"
	"github.com/kcaldas/console/pkg/fileops"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSampleConfig(t *testing.T) {
	files := fileops.NewFileOpsManager()
	path := filepath.Join(t.TempDir(), "console", "config.yaml")

	written, err := writeSampleConfig(files, path, false)
	require.NoError(t, err)
	assert.Equal(t, path, written)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.Sample(), cfg)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "whoami: jackharper")

	_, err = writeSampleConfig(files, path, false)
	assert.ErrorIs(t, err, fileops.ErrFileExists)

	_, err = writeSampleConfig(files, path, true)
	assert.NoError(t, err)
}

func TestInitCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	configPath = path
	defer func() { configPath = "" }()

	var out bytes.Buffer
	cmd := NewInitCommand(fileops.NewFileOpsManager())
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "wrote "+path+"\n", out.String())
	assert.FileExists(t, path)
}
