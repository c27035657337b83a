// Package audio converts raw PCM sample data into playable WAV containers.
package audio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

const (
	// SampleRate is the rate the synthesis backend emits PCM at.
	SampleRate = 24000
	// Channels is the channel count of synthesized audio (mono).
	Channels = 1
	// BitsPerSample is the sample depth of synthesized audio.
	BitsPerSample = 16

	headerSize = 44
)

// ErrInvalidAudioData signals PCM input whose length is not aligned to
// whole 16-bit frames for the requested channel count.
var ErrInvalidAudioData = errors.New("pcm data not aligned to sample frame size")

// EncodePCM wraps signed 16-bit little-endian PCM samples in a minimal WAV
// container. The output is exactly 44 header bytes followed by the payload
// unmodified, so re-encoding the same input is byte-for-byte stable.
func EncodePCM(pcm []byte, sampleRate, channels int) ([]byte, error) {
	if sampleRate <= 0 || channels <= 0 {
		return nil, fmt.Errorf("invalid format: sample rate %d, channels %d", sampleRate, channels)
	}

	frameSize := channels * BitsPerSample / 8
	if len(pcm)%frameSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes with frame size %d", ErrInvalidAudioData, len(pcm), frameSize)
	}

	byteRate := sampleRate * channels * BitsPerSample / 8
	dataLen := uint32(len(pcm))

	buf := bytes.NewBuffer(make([]byte, 0, headerSize+len(pcm)))
	buf.WriteString("RIFF")
	if err := binary.Write(buf, binary.LittleEndian, uint32(headerSize-8)+dataLen); err != nil {
		return nil, err
	}
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	if err := binary.Write(buf, binary.LittleEndian, uint32(16)); err != nil {
		return nil, err
	}
	if err := binary.Write(buf, binary.LittleEndian, uint16(1)); err != nil { // PCM
		return nil, err
	}
	if err := binary.Write(buf, binary.LittleEndian, uint16(channels)); err != nil {
		return nil, err
	}
	if err := binary.Write(buf, binary.LittleEndian, uint32(sampleRate)); err != nil {
		return nil, err
	}
	if err := binary.Write(buf, binary.LittleEndian, uint32(byteRate)); err != nil {
		return nil, err
	}
	if err := binary.Write(buf, binary.LittleEndian, uint16(frameSize)); err != nil {
		return nil, err
	}
	if err := binary.Write(buf, binary.LittleEndian, uint16(BitsPerSample)); err != nil {
		return nil, err
	}
	buf.WriteString("data")
	if err := binary.Write(buf, binary.LittleEndian, dataLen); err != nil {
		return nil, err
	}
	buf.Write(pcm)

	return buf.Bytes(), nil
}
