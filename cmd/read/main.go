package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"kazka/internal/config"
	"kazka/internal/playback"
	"kazka/internal/speech"
	"kazka/internal/story"
	"kazka/internal/tts"
)

// Colour scheme for the CLI.
var (
	heading = color.New(color.FgCyan, color.Bold)
	prose   = color.New(color.FgWhite)
	status  = color.New(color.FgGreen, color.Bold)
	failure = color.New(color.FgRed, color.Bold)
)

func main() {
	var (
		name      string
		chapterID int
		hotspots  bool
	)

	rootCmd := &cobra.Command{
		Use:   "read",
		Short: "Read a chapter aloud with sound effects and personalized dialogue",
		Long: `Plays one chapter end to end through the system speaker: the narration
first, then every hotspot's sound effect followed by the character's
personalized line. Audio is generated on demand and cached, so repeat
readings start instantly.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return read(cmd.Context(), chapterID, name, hotspots)
		},
	}

	rootCmd.Flags().StringVarP(&name, "name", "n", "", "Child name to personalize the story for")
	rootCmd.Flags().IntVarP(&chapterID, "chapter", "c", 0, "Chapter to read")
	rootCmd.Flags().BoolVar(&hotspots, "hotspots", true, "Play each hotspot sequence after the narration")

	if err := rootCmd.Execute(); err != nil {
		failure.Fprintf(os.Stderr, "read failed: %v\n", err)
		os.Exit(1)
	}
}

func read(ctx context.Context, chapterID int, childName string, playHotspots bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	repo := story.NewBookRepository()
	chapter, ok := repo.Chapter(chapterID)
	if !ok {
		return fmt.Errorf("chapter %d does not exist", chapterID)
	}

	store := speech.NewStore(cfg.AudioDir)

	var synth speech.Synthesizer
	if cfg.GeminiAPIKey == "" {
		heading.Println("GEMINI_API_KEY not set, reading with stub audio")
		synth = tts.NewStubClient()
	} else {
		synth = tts.NewGeminiClient(logger, cfg.GeminiAPIKey, &tts.Options{
			Models:  cfg.Models,
			Timeout: cfg.SynthesisTimeout,
		})
	}

	service := speech.NewService(logger, repo, synth, store, speech.DefaultVoices())

	// The generation service hands back served URLs; map them onto the
	// store directory for local playback. Sound effects arrive as plain
	// filesystem paths and pass through untouched.
	loader := func(path string) (playback.Clip, error) {
		if rest, ok := strings.CutPrefix(path, "/audio/"); ok {
			path = filepath.Join(cfg.AudioDir, rest)
		}
		return playback.NewFileClip(path)
	}

	heading.Println(chapter.Title)
	prose.Println(story.PersonalizeContent(chapter.Content, childName))
	fmt.Println()

	// Warm the dialogue cache while the narration is being prepared and
	// spoken, so hotspot clips are ready by the time they are needed.
	prefetcher := playback.NewPrefetcher(logger, service, repo)
	prefetchDone := make(chan struct{})
	go func() {
		prefetcher.PrefetchChapter(ctx, chapterID, childName)
		close(prefetchDone)
	}()

	if _, err := service.GenerateNarration(ctx, speech.NarrationRequest{ChapterID: chapterID}); err != nil {
		return fmt.Errorf("generate narration: %w", err)
	}
	clip, err := loader(speech.NarrationURL(chapterID))
	if err != nil {
		return fmt.Errorf("load narration: %w", err)
	}

	narrator := playback.NewNarrator(logger)
	narrator.SetChapter(clip)
	status.Println("Narrating...")
	narrator.Toggle(ctx)
	for narrator.Playing() {
		select {
		case <-ctx.Done():
			narrator.Toggle(ctx)
			return ctx.Err()
		case <-time.After(100 * time.Millisecond):
		}
	}

	if !playHotspots {
		return nil
	}

	<-prefetchDone
	for _, hotspot := range repo.HotspotsForChapter(chapterID) {
		seq := playback.NewHotspotSequencer(logger, service, loader, cfg.SoundsDir, chapterID, hotspot, childName)
		seq.Prepare(ctx)
		status.Println(hotspot.ID)
		seq.Activate(ctx)
	}

	status.Println("The end.")
	return nil
}
