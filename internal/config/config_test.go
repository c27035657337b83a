package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "data/audio", cfg.AudioDir)
	require.Equal(t, "data/sounds", cfg.SoundsDir)
	require.Equal(t, "Kore", cfg.NarrationVoice)
	require.Equal(t, "Puck", cfg.DialogueVoice)
	require.Equal(t, time.Minute, cfg.SynthesisTimeout)
	require.Empty(t, cfg.Models)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	yaml := []byte("port: \"9090\"\naudio_dir: /tmp/audio\nmodels:\n  - gemini-2.5-pro-preview-tts\nsynthesis_timeout: 30s\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "kazka.yaml"), yaml, 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, "/tmp/audio", cfg.AudioDir)
	require.Equal(t, []string{"gemini-2.5-pro-preview-tts"}, cfg.Models)
	require.Equal(t, 30*time.Second, cfg.SynthesisTimeout)
}

func TestLoadGeminiKeyFromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("GEMINI_API_KEY", "test-key")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "test-key", cfg.GeminiAPIKey)
}
