package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"kazka/internal/config"
	"kazka/internal/speech"
	"kazka/internal/story"
	"kazka/internal/tts"
)

// Colour scheme for the CLI.
var (
	heading = color.New(color.FgCyan, color.Bold)
	success = color.New(color.FgGreen)
	cached  = color.New(color.FgBlue)
	failure = color.New(color.FgRed, color.Bold)
)

func main() {
	var (
		names    []string
		chapters []int
	)

	rootCmd := &cobra.Command{
		Use:   "prewarm",
		Short: "Pre-generate narration and dialogue audio for the book",
		Long: `Fills the audio cache ahead of time so a reading session never waits
on synthesis. Generates chapter narration plus one personalized dialogue
clip per character and child name.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return prewarm(cmd.Context(), names, chapters)
		},
	}

	rootCmd.Flags().StringSliceVarP(&names, "name", "n", nil, "Child name to personalize dialogues for (repeatable; empty means the unpersonalized fallback)")
	rootCmd.Flags().IntSliceVarP(&chapters, "chapters", "c", nil, "Chapters to warm (default: all)")

	if err := rootCmd.Execute(); err != nil {
		failure.Fprintf(os.Stderr, "prewarm failed: %v\n", err)
		os.Exit(1)
	}
}

func prewarm(ctx context.Context, names []string, chapters []int) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	repo := story.NewBookRepository()
	store := speech.NewStore(cfg.AudioDir)

	var synth speech.Synthesizer
	if cfg.GeminiAPIKey == "" {
		heading.Println("GEMINI_API_KEY not set, warming the cache with stub audio")
		synth = tts.NewStubClient()
	} else {
		synth = tts.NewGeminiClient(logger, cfg.GeminiAPIKey, &tts.Options{
			Models:  cfg.Models,
			Timeout: cfg.SynthesisTimeout,
		})
	}

	service := speech.NewService(logger, repo, synth, store, speech.DefaultVoices())

	if len(chapters) == 0 {
		for id := 0; id < repo.TotalChapters(); id++ {
			chapters = append(chapters, id)
		}
	}
	if len(names) == 0 {
		names = []string{""}
	}

	var failures int
	for _, id := range chapters {
		heading.Printf("Chapter %d\n", id)

		result, err := service.GenerateNarration(ctx, speech.NarrationRequest{ChapterID: id})
		switch {
		case err != nil:
			failures++
			failure.Printf("  narration: %v\n", err)
		case result.Cached:
			cached.Printf("  narration: cached (%s)\n", result.Filename)
		default:
			success.Printf("  narration: generated (%s)\n", result.Filename)
		}

		for _, character := range sortedCharacters(repo.ChapterDialogues(id)) {
			for _, name := range names {
				result, err := service.GenerateDialogue(ctx, speech.DialogueRequest{
					ChapterID: id,
					Character: character,
					ChildName: name,
				})
				switch {
				case err != nil:
					failures++
					failure.Printf("  %s: %v\n", character, err)
				case result.Cached:
					cached.Printf("  %s: cached (%s)\n", character, result.Filename)
				default:
					success.Printf("  %s: generated (%s)\n", character, result.Filename)
				}
			}
		}
	}

	if failures > 0 {
		return fmt.Errorf("%d clips failed", failures)
	}
	success.Println("Cache warm.")
	return nil
}

func sortedCharacters(dialogues map[story.Character]string) []story.Character {
	out := make([]story.Character, 0, len(dialogues))
	for character := range dialogues {
		out = append(out, character)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
