package configcmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/mdslides/internal/config"
)

func TestRunClear_WithExistingConfig(t *testing.T) {
	clearEnv(t)
	configPath := filepath.Join(t.TempDir(), "mdslides", "config.yml")
	require.NoError(t, (&config.Config{Title: "Talk"}).Save(configPath))

	var out bytes.Buffer
	require.NoError(t, runClear(configPath, &out, true))

	_, err := os.Stat(configPath)
	assert.True(t, os.IsNotExist(err))
	assert.Contains(t, out.String(), "Configuration cleared from "+configPath)
}

func TestRunClear_NoConfigFile(t *testing.T) {
	clearEnv(t)

	var out bytes.Buffer
	require.NoError(t, runClear(filepath.Join(t.TempDir(), "config.yml"), &out, true))
	assert.Contains(t, out.String(), "No config file to remove")
}

func TestRunClear_Idempotent(t *testing.T) {
	clearEnv(t)
	configPath := filepath.Join(t.TempDir(), "config.yml")

	require.NoError(t, runClear(configPath, &bytes.Buffer{}, true))
	require.NoError(t, runClear(configPath, &bytes.Buffer{}, true))
}

func TestRunClear_EnvNote(t *testing.T) {
	clearEnv(t)
	t.Setenv("MDSLIDES_THEME", "black")

	var out bytes.Buffer
	require.NoError(t, runClear(filepath.Join(t.TempDir(), "config.yml"), &out, true))
	assert.Contains(t, out.String(), "Environment variables will still be used: MDSLIDES_THEME")
}

func TestNewCmdConfig(t *testing.T) {
	cmd := NewCmdConfig()

	var names []string
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"show", "validate", "clear"}, names)
}
