// Package tts synthesizes speech audio through the Gemini TTS models.
package tts

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"

	"kazka/internal/audio"
)

// Voice is a Gemini prebuilt voice name.
type Voice string

const (
	VoicePuck   Voice = "Puck"
	VoiceCharon Voice = "Charon"
	VoiceKore   Voice = "Kore"
	VoiceFenrir Voice = "Fenrir"
	VoiceAoede  Voice = "Aoede"
)

// ParseVoice maps an external string to a known Voice.
func ParseVoice(s string) (Voice, bool) {
	for _, v := range []Voice{VoicePuck, VoiceCharon, VoiceKore, VoiceFenrir, VoiceAoede} {
		if strings.EqualFold(s, string(v)) {
			return v, true
		}
	}
	return "", false
}

const defaultTimeout = 60 * time.Second

// Model tiers tried in order. Only quota failures advance to the next tier.
var defaultModels = []string{
	"gemini-2.5-pro-preview-tts",
	"gemini-2.5-flash-preview-tts",
}

// Options configures optional client behavior.
type Options struct {
	Models  []string
	Timeout time.Duration
}

// GeminiClient synthesizes speech with Gemini TTS, falling back across model
// tiers when a tier is out of quota.
type GeminiClient struct {
	logger  *slog.Logger
	apiKey  string
	models  []string
	timeout time.Duration

	// call performs one synthesis attempt against a single model and
	// returns raw PCM bytes. Replaced in tests.
	call func(ctx context.Context, model, text string, voice Voice) ([]byte, error)
}

// NewGeminiClient creates a Gemini TTS client. The API key is not validated
// here; a missing key surfaces as a configuration error on first use.
func NewGeminiClient(logger *slog.Logger, apiKey string, opts *Options) *GeminiClient {
	if opts == nil {
		opts = &Options{}
	}

	models := opts.Models
	if len(models) == 0 {
		models = defaultModels
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	c := &GeminiClient{
		logger:  logger,
		apiKey:  apiKey,
		models:  models,
		timeout: timeout,
	}
	c.call = c.generatePCM
	return c
}

// Synthesize converts text to a WAV clip spoken by the given voice. Each
// model tier gets one attempt; a quota failure on a non-final tier moves on
// to the next tier, any other failure aborts immediately.
func (c *GeminiClient) Synthesize(ctx context.Context, text string, voice Voice) ([]byte, error) {
	if strings.TrimSpace(c.apiKey) == "" {
		return nil, &SynthesisError{Kind: KindConfiguration, Message: "GEMINI_API_KEY is not set"}
	}

	var lastErr error
	for i, model := range c.models {
		// Each tier gets its own budget; a slow attempt must not starve
		// the fallback tier.
		attemptCtx, cancel := context.WithTimeout(ctx, c.timeout)
		pcm, err := c.call(attemptCtx, model, text, voice)
		cancel()
		if err == nil {
			wav, encErr := audio.EncodePCM(pcm, audio.SampleRate, audio.Channels)
			if encErr != nil {
				return nil, &SynthesisError{Kind: KindInvalidResponse, Message: "model returned malformed audio", Err: encErr}
			}
			c.logger.Info("synthesis succeeded",
				slog.String("model", model),
				slog.Int("pcm_bytes", len(pcm)),
			)
			return wav, nil
		}

		lastErr = err
		if isQuotaError(err) && i < len(c.models)-1 {
			c.logger.Warn("quota exceeded, falling back to next model",
				slog.String("model", model),
				slog.String("next", c.models[i+1]),
			)
			continue
		}
		break
	}

	err := c.classify(lastErr)
	c.logger.Error("synthesis failed", slog.String("error", err.Error()))
	return nil, err
}

func (c *GeminiClient) generatePCM(ctx context.Context, model, text string, voice Voice) ([]byte, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  c.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("init gemini client: %w", err)
	}

	cfg := &genai.GenerateContentConfig{
		ResponseModalities: []string{"AUDIO"},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: string(voice)},
			},
		},
	}

	prompt := "Please speak the following text clearly: " + text
	resp, err := client.Models.GenerateContent(ctx, model, genai.Text(prompt), cfg)
	if err != nil {
		return nil, err
	}
	return extractAudio(resp)
}

// extractAudio decides the response shape exactly once: an audio part wins,
// a text-only reply and an empty reply are distinct invalid responses.
func extractAudio(resp *genai.GenerateContentResponse) ([]byte, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, &SynthesisError{Kind: KindInvalidResponse, Message: "the model did not return a valid response"}
	}

	parts := resp.Candidates[0].Content.Parts
	for _, part := range parts {
		if part.InlineData != nil && strings.Contains(part.InlineData.MIMEType, "audio") && len(part.InlineData.Data) > 0 {
			return part.InlineData.Data, nil
		}
	}
	for _, part := range parts {
		if part.Text != "" {
			return nil, &SynthesisError{Kind: KindInvalidResponse, Message: "the model returned text instead of audio"}
		}
	}
	return nil, &SynthesisError{Kind: KindInvalidResponse, Message: "no speech audio was generated"}
}

func apiError(err error) (genai.APIError, bool) {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return genai.APIError{}, false
}

// isQuotaError prefers the structured status code; the message substrings
// match the quota signals observed from the preview TTS endpoints.
func isQuotaError(err error) bool {
	if err == nil {
		return false
	}
	if apiErr, ok := apiError(err); ok {
		if apiErr.Code == http.StatusTooManyRequests || apiErr.Status == "RESOURCE_EXHAUSTED" {
			return true
		}
	}
	msg := err.Error()
	return strings.Contains(msg, "quota") || strings.Contains(msg, "429")
}

func (c *GeminiClient) classify(err error) error {
	if err == nil {
		return &SynthesisError{Kind: KindFailed, Message: "synthesis produced no result"}
	}
	if _, ok := AsSynthesisError(err); ok {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &SynthesisError{Kind: KindTimeout, Message: "synthesis timed out", Err: err}
	}

	apiErr, ok := apiError(err)
	switch {
	case isQuotaError(err):
		return &SynthesisError{Kind: KindQuotaExhausted, Message: "API quota exceeded for all available models", Err: err}
	case ok && (apiErr.Code == http.StatusUnauthorized || apiErr.Code == http.StatusForbidden),
		strings.Contains(err.Error(), "API_KEY_INVALID"):
		return &SynthesisError{Kind: KindInvalidCredentials, Message: "invalid API key", Err: err}
	case ok && apiErr.Code >= http.StatusInternalServerError,
		strings.Contains(err.Error(), "INTERNAL"):
		return &SynthesisError{Kind: KindTransient, Message: "the synthesis engine hit an internal error, try again shortly", Err: err}
	default:
		return &SynthesisError{Kind: KindFailed, Message: err.Error(), Err: err}
	}
}
