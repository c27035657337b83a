package config

import (
	"errors"
	"time"

	"github.com/spf13/viper"
)

// Config holds runtime configuration.
type Config struct {
	Port             string
	AudioDir         string
	SoundsDir        string
	GeminiAPIKey     string
	Models           []string
	NarrationVoice   string
	DialogueVoice    string
	SynthesisTimeout time.Duration
}

// Load reads kazka.yaml (working directory or $HOME/.kazka) merged with
// environment variables. The Gemini key is not required here: the stub
// synthesizer runs without one, and a real client reports the missing key
// on first use.
func Load() (Config, error) {
	v := viper.New()
	v.SetConfigName("kazka")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.kazka")

	v.SetDefault("port", "8080")
	v.SetDefault("audio_dir", "data/audio")
	v.SetDefault("sounds_dir", "data/sounds")
	v.SetDefault("models", []string{})
	v.SetDefault("narration_voice", "Kore")
	v.SetDefault("dialogue_voice", "Puck")
	v.SetDefault("synthesis_timeout", time.Minute)

	v.SetEnvPrefix("kazka")
	v.AutomaticEnv()
	v.BindEnv("gemini_api_key", "GEMINI_API_KEY")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, err
		}
	}

	cfg := Config{
		Port:             v.GetString("port"),
		AudioDir:         v.GetString("audio_dir"),
		SoundsDir:        v.GetString("sounds_dir"),
		GeminiAPIKey:     v.GetString("gemini_api_key"),
		Models:           v.GetStringSlice("models"),
		NarrationVoice:   v.GetString("narration_voice"),
		DialogueVoice:    v.GetString("dialogue_voice"),
		SynthesisTimeout: v.GetDuration("synthesis_timeout"),
	}

	if cfg.AudioDir == "" {
		return Config{}, errors.New("audio_dir must not be empty")
	}

	return cfg, nil
}
