package playback

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

// FileClip plays a WAV file through the system speaker. Each Play reopens
// and re-decodes the file, so playback always starts from the beginning,
// which gives Stop its rewind semantics for free.
type FileClip struct {
	path string

	mu   sync.Mutex
	stop chan struct{}
}

// NewFileClip returns a Clip for the WAV file at path. The file is probed
// here so a missing or undecodable file fails at load time, not on click.
func NewFileClip(path string) (Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open clip: %w", err)
	}
	streamer, _, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decode clip %s: %w", path, err)
	}
	streamer.Close()
	return &FileClip{path: path}, nil
}

// Play decodes and plays the file, blocking until it ends, Stop is called,
// or ctx is canceled.
func (c *FileClip) Play(ctx context.Context) error {
	f, err := os.Open(c.path)
	if err != nil {
		return fmt.Errorf("open clip: %w", err)
	}
	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return fmt.Errorf("decode clip %s: %w", c.path, err)
	}
	defer streamer.Close()

	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	stop := make(chan struct{})
	c.mu.Lock()
	c.stop = stop
	c.mu.Unlock()

	done := make(chan struct{})
	speaker.Play(beep.Seq(streamer, beep.Callback(func() {
		close(done)
	})))

	select {
	case <-done:
		return nil
	case <-stop:
		speaker.Clear()
		return nil
	case <-ctx.Done():
		speaker.Clear()
		return ctx.Err()
	}
}

// Stop halts the in-flight Play, if any. The next Play starts from the
// beginning of the file.
func (c *FileClip) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stop != nil {
		select {
		case <-c.stop:
		default:
			close(c.stop)
		}
		c.stop = nil
	}
}
