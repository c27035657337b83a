package speech

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"kazka/internal/audio"
	"kazka/internal/story"
	"kazka/internal/tts"
)

// fixtureRepo is a minimal story dataset for driving the service in tests.
type fixtureRepo struct{}

func (fixtureRepo) Chapter(id int) (story.Chapter, bool) {
	if id == 0 {
		return story.Chapter{ID: 0, Title: "Знайомство", Content: "Жили-були три машинки."}, true
	}
	return story.Chapter{}, false
}

func (fixtureRepo) TotalChapters() int { return 1 }

func (fixtureRepo) HotspotsForChapter(id int) []story.Hotspot {
	if id != 0 {
		return nil
	}
	return []story.Hotspot{
		{ID: "police-1", Character: story.Police, SoundEffect: "police-siren.mp3"},
		{ID: "fire-1", Character: story.Fire, SoundEffect: "fire-siren.mp3"},
	}
}

func (fixtureRepo) DialogueTemplate(chapterID int, c story.Character) (string, bool) {
	d := fixtureRepo{}.ChapterDialogues(chapterID)
	template, ok := d[c]
	return template, ok
}

func (fixtureRepo) ChapterDialogues(chapterID int) map[story.Character]string {
	if chapterID != 0 {
		return nil
	}
	return map[story.Character]string{
		story.Police: "Привіт, {childName}!",
		story.Fire:   "Я пожежна машинка, {childName}!",
	}
}

// countingSynth records synthesized texts, safe for concurrent use.
type countingSynth struct {
	mu    sync.Mutex
	texts []string
}

func (c *countingSynth) Synthesize(ctx context.Context, text string, voice tts.Voice) ([]byte, error) {
	c.mu.Lock()
	c.texts = append(c.texts, text)
	c.mu.Unlock()
	pcm := make([]byte, 4)
	return audio.EncodePCM(pcm, audio.SampleRate, audio.Channels)
}

func (c *countingSynth) calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.texts)
}

func newTestService(t *testing.T) (*Service, *countingSynth) {
	t.Helper()
	synth := &countingSynth{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewService(logger, fixtureRepo{}, synth, NewStore(t.TempDir()), DefaultVoices())
	return svc, synth
}

func TestGenerateNarrationCacheIdempotence(t *testing.T) {
	svc, synth := newTestService(t)
	ctx := context.Background()

	first, err := svc.GenerateNarration(ctx, NarrationRequest{ChapterID: 0})
	require.NoError(t, err)
	require.False(t, first.Cached)
	require.Equal(t, "/audio/chapters/chapter-0.wav", first.AudioPath)

	second, err := svc.GenerateNarration(ctx, NarrationRequest{ChapterID: 0})
	require.NoError(t, err)
	require.True(t, second.Cached)
	require.Equal(t, first.AudioPath, second.AudioPath)
	require.Equal(t, 1, synth.calls(), "cache hit must not call the synthesizer")
}

func TestGenerateNarrationText(t *testing.T) {
	svc, synth := newTestService(t)

	_, err := svc.GenerateNarration(context.Background(), NarrationRequest{ChapterID: 0})
	require.NoError(t, err)
	require.Equal(t, []string{"Знайомство. Жили-були три машинки."}, synth.texts)
}

func TestGenerateNarrationErrors(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.GenerateNarration(ctx, NarrationRequest{ChapterID: -1})
	require.ErrorIs(t, err, ErrBadRequest)

	_, err = svc.GenerateNarration(ctx, NarrationRequest{ChapterID: 42})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestGenerateDialoguePersonalization(t *testing.T) {
	svc, synth := newTestService(t)
	ctx := context.Background()

	res, err := svc.GenerateDialogue(ctx, DialogueRequest{ChapterID: 0, Character: story.Police, ChildName: "Olena"})
	require.NoError(t, err)
	require.False(t, res.Cached)
	require.Equal(t, "chapter-0-police-"+NameHash("Olena")+".wav", res.Filename)
	require.Equal(t, []string{"Привіт, Olena!"}, synth.texts)

	// No name falls back to the generic address and the default token.
	res, err = svc.GenerateDialogue(ctx, DialogueRequest{ChapterID: 0, Character: story.Police})
	require.NoError(t, err)
	require.Equal(t, "chapter-0-police-default.wav", res.Filename)
	require.Equal(t, "Привіт, "+story.FallbackAddress+"!", synth.texts[1])
}

func TestGenerateDialogueCacheKeyPerName(t *testing.T) {
	svc, synth := newTestService(t)
	ctx := context.Background()

	req := DialogueRequest{ChapterID: 0, Character: story.Fire, ChildName: "Olena"}
	first, err := svc.GenerateDialogue(ctx, req)
	require.NoError(t, err)
	require.False(t, first.Cached)

	second, err := svc.GenerateDialogue(ctx, req)
	require.NoError(t, err)
	require.True(t, second.Cached)
	require.Equal(t, first.Filename, second.Filename)
	require.Equal(t, 1, synth.calls())

	// A different name is a different key.
	other, err := svc.GenerateDialogue(ctx, DialogueRequest{ChapterID: 0, Character: story.Fire, ChildName: "Max"})
	require.NoError(t, err)
	require.False(t, other.Cached)
	require.NotEqual(t, first.Filename, other.Filename)
}

func TestGenerateDialogueErrors(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.GenerateDialogue(ctx, DialogueRequest{ChapterID: 0, Character: "submarine"})
	require.ErrorIs(t, err, ErrBadRequest)

	_, err = svc.GenerateDialogue(ctx, DialogueRequest{ChapterID: 0, Character: story.Tow})
	require.ErrorIs(t, err, ErrNotFound)

	_, err = svc.GenerateDialogue(ctx, DialogueRequest{ChapterID: 5, Character: story.Police})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestConcurrentMissesGenerateOnce(t *testing.T) {
	svc, synth := newTestService(t)
	ctx := context.Background()
	req := DialogueRequest{ChapterID: 0, Character: story.Police, ChildName: "Olena"}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.GenerateDialogue(ctx, req)
			require.NoError(t, err)
		}()
	}
	wg.Wait()

	require.Equal(t, 1, synth.calls(), "per-key lock must allow only one generation")
}

func TestDialogueExists(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	req := DialogueRequest{ChapterID: 0, Character: story.Police, ChildName: "Olena"}

	exists, filename := svc.DialogueExists(req)
	require.False(t, exists)
	require.Empty(t, filename)

	_, err := svc.GenerateDialogue(ctx, req)
	require.NoError(t, err)

	exists, filename = svc.DialogueExists(req)
	require.True(t, exists)
	require.Equal(t, "chapter-0-police-"+NameHash("Olena")+".wav", filename)
}
