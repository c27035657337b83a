package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kazka/internal/config"
	apphttp "kazka/internal/http"
	"kazka/internal/speech"
	"kazka/internal/story"
	"kazka/internal/tts"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	if err := run(logger); err != nil {
		logger.Error("startup failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	repo := story.NewBookRepository()
	store := speech.NewStore(cfg.AudioDir)

	var synth speech.Synthesizer
	if cfg.GeminiAPIKey == "" {
		logger.Warn("GEMINI_API_KEY not set, using stub synthesizer")
		synth = tts.NewStubClient()
	} else {
		synth = tts.NewGeminiClient(logger, cfg.GeminiAPIKey, &tts.Options{
			Models:  cfg.Models,
			Timeout: cfg.SynthesisTimeout,
		})
	}

	service := speech.NewService(logger, repo, synth, store, voicesFromConfig(logger, cfg))

	handler := apphttp.NewServer(logger, service, cfg.AudioDir)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.String("addr", server.Addr))
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("shutdown server: %w", err)
		}
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
	}

	return nil
}

func voicesFromConfig(logger *slog.Logger, cfg config.Config) speech.Voices {
	voices := speech.DefaultVoices()
	if v, ok := tts.ParseVoice(cfg.NarrationVoice); ok {
		voices.Narration = v
	} else if cfg.NarrationVoice != "" {
		logger.Warn("unknown narration voice, using default", slog.String("voice", cfg.NarrationVoice))
	}
	if v, ok := tts.ParseVoice(cfg.DialogueVoice); ok {
		voices.Dialogue = v
	} else if cfg.DialogueVoice != "" {
		logger.Warn("unknown dialogue voice, using default", slog.String("voice", cfg.DialogueVoice))
	}
	return voices
}
