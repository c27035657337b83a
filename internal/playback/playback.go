// Package playback drives client-side audio sequencing: the per-hotspot
// effect-then-dialogue chain, page-level narration toggling, and background
// pre-generation of a chapter's dialogue clips.
package playback

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"

	"kazka/internal/speech"
	"kazka/internal/story"
)

// Clip is a playable audio source. Play blocks until the clip finishes, is
// stopped, or ctx is canceled. Stop halts playback; a subsequent Play starts
// from the beginning again.
type Clip interface {
	Play(ctx context.Context) error
	Stop()
}

// ClipLoader opens a Clip for an audio file path or URL.
type ClipLoader func(path string) (Clip, error)

// Generator is the cache-aware dialogue generation endpoint the sequencer
// talks to. Implemented by speech.Service.
type Generator interface {
	DialogueExists(req speech.DialogueRequest) (bool, string)
	GenerateDialogue(ctx context.Context, req speech.DialogueRequest) (speech.Result, error)
}

// DialogueState tracks readiness of a hotspot's dialogue clip.
type DialogueState int

const (
	// DialogueChecking means the existence check or generation is pending.
	DialogueChecking DialogueState = iota
	// DialogueReady means the dialogue clip is loaded and playable.
	DialogueReady
	// DialogueUnavailable means the dialogue step will be skipped.
	DialogueUnavailable
)

// HotspotSequencer owns playback for one hotspot: an ambient sound effect
// followed by the character's personalized line. Plays are strictly
// sequential within the hotspot; independent hotspots do not share state.
type HotspotSequencer struct {
	logger    *slog.Logger
	gen       Generator
	load      ClipLoader
	soundsDir string
	chapterID int
	hotspot   story.Hotspot
	childName string

	mu       sync.Mutex
	playing  bool
	effect   Clip
	dialogue Clip
	state    DialogueState
}

// NewHotspotSequencer prepares the sequencer and loads the sound effect. An
// effect that fails to load is not fatal: activation skips straight to the
// dialogue step.
func NewHotspotSequencer(logger *slog.Logger, gen Generator, load ClipLoader, soundsDir string, chapterID int, hotspot story.Hotspot, childName string) *HotspotSequencer {
	s := &HotspotSequencer{
		logger:    logger,
		gen:       gen,
		load:      load,
		soundsDir: soundsDir,
		chapterID: chapterID,
		hotspot:   hotspot,
		childName: childName,
		state:     DialogueChecking,
	}

	effect, err := load(filepath.Join(soundsDir, hotspot.SoundEffect))
	if err != nil {
		logger.Warn("sound effect failed to load",
			slog.String("hotspot", hotspot.ID),
			slog.String("file", hotspot.SoundEffect),
			slog.String("error", err.Error()),
		)
	} else {
		s.effect = effect
	}
	return s
}

// Prepare checks for the dialogue artifact and generates it on a miss, then
// loads the resulting clip. Any failure leaves the sequencer in
// DialogueUnavailable; the sound effect still plays on activation.
func (s *HotspotSequencer) Prepare(ctx context.Context) {
	req := speech.DialogueRequest{
		ChapterID: s.chapterID,
		Character: s.hotspot.Character,
		ChildName: s.childName,
	}

	path := speech.DialogueURL(s.chapterID, s.hotspot.Character, s.childName)
	if exists, _ := s.gen.DialogueExists(req); !exists {
		res, err := s.gen.GenerateDialogue(ctx, req)
		if err != nil {
			s.logger.Warn("dialogue generation failed",
				slog.String("hotspot", s.hotspot.ID),
				slog.String("error", err.Error()),
			)
			s.setDialogue(nil, DialogueUnavailable)
			return
		}
		path = res.AudioPath
	}

	clip, err := s.load(path)
	if err != nil {
		s.logger.Warn("dialogue clip failed to load",
			slog.String("hotspot", s.hotspot.ID),
			slog.String("path", path),
			slog.String("error", err.Error()),
		)
		s.setDialogue(nil, DialogueUnavailable)
		return
	}
	s.setDialogue(clip, DialogueReady)
}

func (s *HotspotSequencer) setDialogue(clip Clip, state DialogueState) {
	s.mu.Lock()
	s.dialogue = clip
	s.state = state
	s.mu.Unlock()
}

// State returns the dialogue readiness.
func (s *HotspotSequencer) State() DialogueState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Activate runs one playback sequence and blocks until it finishes: the
// sound effect to completion, then the dialogue if ready. Returns false
// without doing anything when a sequence is already in flight; repeat
// activations are dropped, not queued.
func (s *HotspotSequencer) Activate(ctx context.Context) bool {
	s.mu.Lock()
	if s.playing {
		s.mu.Unlock()
		return false
	}
	s.playing = true
	effect := s.effect
	dialogue := s.dialogue
	ready := s.state == DialogueReady
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.playing = false
		s.mu.Unlock()
	}()

	if effect != nil {
		if err := effect.Play(ctx); err != nil {
			s.logger.Warn("sound effect playback failed",
				slog.String("hotspot", s.hotspot.ID),
				slog.String("error", err.Error()),
			)
		}
	}

	if ready && dialogue != nil {
		if err := dialogue.Play(ctx); err != nil {
			s.logger.Warn("dialogue playback failed",
				slog.String("hotspot", s.hotspot.ID),
				slog.String("error", err.Error()),
			)
		}
	}
	return true
}

// Narrator toggles chapter narration. Stop always rewinds to the start;
// switching chapters discards the previous chapter's handle.
type Narrator struct {
	logger *slog.Logger

	mu      sync.Mutex
	clip    Clip
	playing bool
}

// NewNarrator constructs a Narrator.
func NewNarrator(logger *slog.Logger) *Narrator {
	return &Narrator{logger: logger}
}

// SetChapter installs the narration clip for the current chapter, forcibly
// stopping whatever the previous chapter was playing.
func (n *Narrator) SetChapter(clip Clip) {
	n.mu.Lock()
	prev := n.clip
	wasPlaying := n.playing
	n.clip = clip
	n.playing = false
	n.mu.Unlock()

	if prev != nil && wasPlaying {
		prev.Stop()
	}
}

// Toggle starts narration from the beginning, or stops it if it is playing.
func (n *Narrator) Toggle(ctx context.Context) {
	n.mu.Lock()
	if n.playing {
		clip := n.clip
		n.playing = false
		n.mu.Unlock()
		if clip != nil {
			clip.Stop()
		}
		return
	}
	clip := n.clip
	if clip == nil {
		n.mu.Unlock()
		return
	}
	n.playing = true
	n.mu.Unlock()

	go func() {
		if err := clip.Play(ctx); err != nil && ctx.Err() == nil {
			n.logger.Warn("narration playback failed", slog.String("error", err.Error()))
		}
		n.mu.Lock()
		if n.clip == clip {
			n.playing = false
		}
		n.mu.Unlock()
	}()
}

// Playing reports whether narration is currently audible.
func (n *Narrator) Playing() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.playing
}

// Prefetcher warms the dialogue cache for a chapter before the user clicks
// anything, hiding synthesis latency.
type Prefetcher struct {
	logger *slog.Logger
	gen    Generator
	repo   story.Repository
}

// NewPrefetcher constructs a Prefetcher.
func NewPrefetcher(logger *slog.Logger, gen Generator, repo story.Repository) *Prefetcher {
	return &Prefetcher{logger: logger, gen: gen, repo: repo}
}

// PrefetchChapter fires ensure-generated for every dialogue of the chapter
// concurrently and waits for all of them to settle. Failures are logged and
// swallowed: pre-fetch is latency hiding, never a user-facing action, and a
// failed key can still be generated on demand later.
func (p *Prefetcher) PrefetchChapter(ctx context.Context, chapterID int, childName string) {
	dialogues := p.repo.ChapterDialogues(chapterID)
	if len(dialogues) == 0 {
		return
	}

	var wg sync.WaitGroup
	for character := range dialogues {
		wg.Add(1)
		go func(character story.Character) {
			defer wg.Done()
			req := speech.DialogueRequest{
				ChapterID: chapterID,
				Character: character,
				ChildName: childName,
			}
			if exists, _ := p.gen.DialogueExists(req); exists {
				return
			}
			if _, err := p.gen.GenerateDialogue(ctx, req); err != nil {
				p.logger.Warn("dialogue pre-generation failed",
					slog.Int("chapter", chapterID),
					slog.String("character", string(character)),
					slog.String("error", err.Error()),
				)
			}
		}(character)
	}
	wg.Wait()
}
