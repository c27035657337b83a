package tts

import (
	"context"

	"kazka/internal/audio"
)

// StubClient simulates Gemini synthesis for development and tests.
type StubClient struct {
	// Calls counts Synthesize invocations.
	Calls int
	// Err, when set, is returned instead of audio.
	Err error
}

// NewStubClient constructs StubClient.
func NewStubClient() *StubClient {
	return &StubClient{}
}

// Synthesize returns a short silent WAV clip regardless of input.
func (s *StubClient) Synthesize(ctx context.Context, text string, voice Voice) ([]byte, error) {
	s.Calls++
	if s.Err != nil {
		return nil, s.Err
	}
	// 100ms of silence at the synthesis sample rate.
	pcm := make([]byte, audio.SampleRate/10*2)
	return audio.EncodePCM(pcm, audio.SampleRate, audio.Channels)
}
