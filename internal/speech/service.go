package speech

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"kazka/internal/story"
	"kazka/internal/tts"
)

var (
	// ErrNotFound signals a chapter or dialogue template missing from the
	// story dataset.
	ErrNotFound = errors.New("story content not found")

	// ErrBadRequest signals missing or malformed identifying fields.
	ErrBadRequest = errors.New("invalid audio request")
)

// NarrationRequest identifies a chapter narration artifact.
type NarrationRequest struct {
	ChapterID int
}

// DialogueRequest identifies a personalized hotspot dialogue artifact.
type DialogueRequest struct {
	ChapterID int
	Character story.Character
	ChildName string
}

// Result reports where a generated artifact lives and whether it was cached.
type Result struct {
	AudioPath string
	Filename  string
	Cached    bool
}

// Synthesizer converts text to a WAV clip spoken by a voice.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string, voice tts.Voice) ([]byte, error)
}

// Voices selects the narration and dialogue voices. Chosen for tonal fit,
// not semantically significant.
type Voices struct {
	Narration tts.Voice
	Dialogue  tts.Voice
}

// DefaultVoices matches the shipped book: warm narrator, playful characters.
func DefaultVoices() Voices {
	return Voices{Narration: tts.VoiceKore, Dialogue: tts.VoicePuck}
}

// Service is the cache-aware generation endpoint: it checks the artifact
// store first and only synthesizes on a miss, guaranteeing at-most-once
// generation per key for the lifetime of the filesystem.
type Service struct {
	logger *slog.Logger
	repo   story.Repository
	synth  Synthesizer
	store  *Store
	voices Voices
}

// NewService constructs a Service.
func NewService(logger *slog.Logger, repo story.Repository, synth Synthesizer, store *Store, voices Voices) *Service {
	if voices.Narration == "" {
		voices.Narration = DefaultVoices().Narration
	}
	if voices.Dialogue == "" {
		voices.Dialogue = DefaultVoices().Dialogue
	}
	return &Service{
		logger: logger,
		repo:   repo,
		synth:  synth,
		store:  store,
		voices: voices,
	}
}

// GenerateNarration returns the narration artifact for a chapter, creating
// it on first request from the chapter title and body.
func (s *Service) GenerateNarration(ctx context.Context, req NarrationRequest) (Result, error) {
	if req.ChapterID < 0 {
		return Result{}, fmt.Errorf("%w: chapter id must be non-negative", ErrBadRequest)
	}

	path := s.store.NarrationPath(req.ChapterID)
	unlock := s.store.Lock(path)
	defer unlock()

	if s.store.Exists(path) {
		return Result{AudioPath: NarrationURL(req.ChapterID), Filename: NarrationFilename(req.ChapterID), Cached: true}, nil
	}

	chapter, ok := s.repo.Chapter(req.ChapterID)
	if !ok {
		return Result{}, fmt.Errorf("%w: chapter %d", ErrNotFound, req.ChapterID)
	}

	text := chapter.Title + ". " + chapter.Content
	s.logger.Info("generating narration",
		slog.Int("chapter", req.ChapterID),
		slog.Int("text_length", len(text)),
	)

	wav, err := s.synth.Synthesize(ctx, text, s.voices.Narration)
	if err != nil {
		return Result{}, fmt.Errorf("synthesize narration for chapter %d: %w", req.ChapterID, err)
	}

	if err := s.store.Write(path, wav); err != nil {
		return Result{}, fmt.Errorf("store narration for chapter %d: %w", req.ChapterID, err)
	}

	return Result{AudioPath: NarrationURL(req.ChapterID), Filename: NarrationFilename(req.ChapterID), Cached: false}, nil
}

// GenerateDialogue returns the personalized dialogue artifact for a
// chapter/character/name key, creating it on first request.
func (s *Service) GenerateDialogue(ctx context.Context, req DialogueRequest) (Result, error) {
	if err := validateDialogueRequest(req); err != nil {
		return Result{}, err
	}

	path := s.store.DialoguePath(req.ChapterID, req.Character, req.ChildName)
	unlock := s.store.Lock(path)
	defer unlock()

	filename := DialogueFilename(req.ChapterID, req.Character, req.ChildName)
	url := DialogueURL(req.ChapterID, req.Character, req.ChildName)

	if s.store.Exists(path) {
		return Result{AudioPath: url, Filename: filename, Cached: true}, nil
	}

	template, ok := s.repo.DialogueTemplate(req.ChapterID, req.Character)
	if !ok {
		return Result{}, fmt.Errorf("%w: no dialogue for chapter %d character %s", ErrNotFound, req.ChapterID, req.Character)
	}

	text := story.RenderDialogue(template, req.ChildName)
	s.logger.Info("generating dialogue",
		slog.Int("chapter", req.ChapterID),
		slog.String("character", string(req.Character)),
		slog.String("name_hash", NameHash(req.ChildName)),
	)

	wav, err := s.synth.Synthesize(ctx, text, s.voices.Dialogue)
	if err != nil {
		return Result{}, fmt.Errorf("synthesize dialogue %s: %w", filename, err)
	}

	if err := s.store.Write(path, wav); err != nil {
		return Result{}, fmt.Errorf("store dialogue %s: %w", filename, err)
	}

	return Result{AudioPath: url, Filename: filename, Cached: false}, nil
}

// DialogueExists reports whether the dialogue artifact for the key is
// already on disk, and its filename when it is.
func (s *Service) DialogueExists(req DialogueRequest) (bool, string) {
	if validateDialogueRequest(req) != nil {
		return false, ""
	}
	if s.store.Exists(s.store.DialoguePath(req.ChapterID, req.Character, req.ChildName)) {
		return true, DialogueFilename(req.ChapterID, req.Character, req.ChildName)
	}
	return false, ""
}

func validateDialogueRequest(req DialogueRequest) error {
	if req.ChapterID < 0 {
		return fmt.Errorf("%w: chapter id must be non-negative", ErrBadRequest)
	}
	if _, ok := story.ParseCharacter(string(req.Character)); !ok {
		return fmt.Errorf("%w: unknown character %q", ErrBadRequest, req.Character)
	}
	return nil
}
