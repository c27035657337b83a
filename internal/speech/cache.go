// Package speech generates and caches narration and dialogue audio.
package speech

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"unicode/utf16"

	"github.com/google/uuid"

	"kazka/internal/story"
)

const (
	narrationDir = "chapters"
	dialogueDir  = "hotspots"

	// DefaultNameToken is the hash token used when no child name is set.
	DefaultNameToken = "default"
)

// NameHash reduces a child's name to a short stable token for cache keys.
// The rolling hash runs over UTF-16 code units with a 31 multiplier wrapped
// to 32 bits, rendered as the absolute value in base 36. Existing cache
// files on disk were named with exactly this scheme, so it must not change.
// Collisions are tolerated; only same-name stability matters.
func NameHash(name string) string {
	if name == "" {
		return DefaultNameToken
	}
	var h int32
	for _, u := range utf16.Encode([]rune(name)) {
		h = h*31 + int32(u)
	}
	abs := int64(h)
	if abs < 0 {
		abs = -abs
	}
	return strconv.FormatInt(abs, 36)
}

// Store is the filesystem-backed audio artifact cache. Existence of a file
// at its derived path is the whole cache: no index, no expiry, no checksum.
type Store struct {
	root string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewStore creates a Store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{
		root:  dir,
		locks: make(map[string]*sync.Mutex),
	}
}

// NarrationFilename returns the artifact name for a chapter narration.
func NarrationFilename(chapterID int) string {
	return fmt.Sprintf("chapter-%d.wav", chapterID)
}

// DialogueFilename returns the artifact name for a personalized dialogue.
func DialogueFilename(chapterID int, character story.Character, childName string) string {
	return fmt.Sprintf("chapter-%d-%s-%s.wav", chapterID, character, NameHash(childName))
}

// NarrationPath returns the filesystem path of a chapter narration artifact.
func (s *Store) NarrationPath(chapterID int) string {
	return filepath.Join(s.root, narrationDir, NarrationFilename(chapterID))
}

// DialoguePath returns the filesystem path of a dialogue artifact.
func (s *Store) DialoguePath(chapterID int, character story.Character, childName string) string {
	return filepath.Join(s.root, dialogueDir, DialogueFilename(chapterID, character, childName))
}

// NarrationURL returns the path the artifact is served under.
func NarrationURL(chapterID int) string {
	return "/audio/" + narrationDir + "/" + NarrationFilename(chapterID)
}

// DialogueURL returns the path the artifact is served under.
func DialogueURL(chapterID int, character story.Character, childName string) string {
	return "/audio/" + dialogueDir + "/" + DialogueFilename(chapterID, character, childName)
}

// Exists reports whether the artifact at path is present.
func (s *Store) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// Write persists data at path atomically relative to readers: the bytes land
// in a temporary file first and are renamed into place, so a reader never
// observes a truncated artifact.
func (s *Store) Write(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create audio dir: %w", err)
	}

	tmp := filepath.Join(dir, "."+filepath.Base(path)+".tmp-"+uuid.NewString())
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write audio temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("publish audio file: %w", err)
	}
	return nil
}

// Lock takes the per-key mutex for path and returns its release func. Held
// for the whole check-then-generate-then-write span so at most one
// generation per key runs at a time. The lock map is never pruned; the key
// space (chapters x characters x seen names) is small and bounded.
func (s *Store) Lock(path string) func() {
	s.mu.Lock()
	m, ok := s.locks[path]
	if !ok {
		m = &sync.Mutex{}
		s.locks[path] = m
	}
	s.mu.Unlock()

	m.Lock()
	return m.Unlock
}
