// internal/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jason-s-yu/shbot/engine/agent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	t.Setenv("SHBOT_HOST", "")
	t.Setenv("SHBOT_INSECURE", "")
	t.Setenv("SHBOT_MOVE_DELAY_MS", "")
	t.Setenv("SHBOT_LOG_LEVEL", "")

	assert.Equal(t, "localhost:8080", Host())
	assert.Equal(t, "https://localhost:8080", HTTPBaseURL())
	assert.Equal(t, "wss://localhost:8080", WSBaseURL())
	assert.Equal(t, 1500*time.Millisecond, MoveDelay())
	assert.Equal(t, "info", LogLevel())
	assert.Equal(t, "/gameplay", GameplayPath())
}

func TestOverrides(t *testing.T) {
	t.Setenv("SHBOT_HOST", "sh.example.com")
	t.Setenv("SHBOT_INSECURE", "true")
	t.Setenv("SHBOT_MOVE_DELAY_MS", "250")
	t.Setenv("SHBOT_LOG_LEVEL", "DEBUG")

	assert.Equal(t, "http://sh.example.com", HTTPBaseURL())
	assert.Equal(t, "ws://sh.example.com", WSBaseURL())
	assert.Equal(t, 250*time.Millisecond, MoveDelay())
	assert.Equal(t, "debug", LogLevel())
}

func TestLoadReadsEnvFileAndSecret(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, "bots.env")
	require.NoError(t, os.WriteFile(envFile, []byte("SHBOT_TEST_HOST_FROM_FILE=from-file\n"), 0o600))
	require.NoError(t, os.WriteFile(envFile+".secret", []byte("SHBOT_TEST_PASSWORD_FROM_FILE=hunter2\n"), 0o600))
	t.Setenv("SHBOT_ENV", envFile)
	t.Cleanup(func() {
		os.Unsetenv("SHBOT_TEST_HOST_FROM_FILE")
		os.Unsetenv("SHBOT_TEST_PASSWORD_FROM_FILE")
	})

	require.NoError(t, Load())
	assert.Equal(t, "from-file", os.Getenv("SHBOT_TEST_HOST_FROM_FILE"))
	assert.Equal(t, "hunter2", os.Getenv("SHBOT_TEST_PASSWORD_FROM_FILE"))
}

func TestValidateRequiresPassword(t *testing.T) {
	t.Setenv("SHBOT_ROBOT_PASSWORD", "")
	assert.Error(t, Validate())
	t.Setenv("SHBOT_ROBOT_PASSWORD", "secret")
	assert.NoError(t, Validate())
}

func TestDecodeTuningOverridesSomeFields(t *testing.T) {
	tuning, err := DecodeTuning(strings.NewReader("kill_factor: 0.5\nliberal_policy_chosen: 300\n"))
	require.NoError(t, err)

	want := agent.DefaultTuning()
	want.KillFactor = 0.5
	want.LiberalPolicyChosen = 300
	assert.Equal(t, want, tuning)
}

func TestDecodeTuningRejectsUnknownKeys(t *testing.T) {
	_, err := DecodeTuning(strings.NewReader("kil_factor: 0.5\n"))
	assert.Error(t, err)
}

func TestDecodeTuningEmptyDocument(t *testing.T) {
	tuning, err := DecodeTuning(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, agent.DefaultTuning(), tuning)
}

func TestLoadTuningFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("president_blame_share: 0.5\n"), 0o600))

	tuning, err := LoadTuning(path)
	require.NoError(t, err)
	assert.Equal(t, 0.5, tuning.PresidentBlameShare)

	_, err = LoadTuning(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	tuning, err = LoadTuning("")
	require.NoError(t, err)
	assert.Equal(t, agent.DefaultTuning(), tuning)
}
