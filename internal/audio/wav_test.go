package audio

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodePCMHeader(t *testing.T) {
	pcm := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06}

	out, err := EncodePCM(pcm, SampleRate, Channels)
	require.NoError(t, err)
	require.Len(t, out, 44+len(pcm))

	require.Equal(t, "RIFF", string(out[0:4]))
	require.Equal(t, uint32(36+len(pcm)), binary.LittleEndian.Uint32(out[4:8]))
	require.Equal(t, "WAVE", string(out[8:12]))
	require.Equal(t, "fmt ", string(out[12:16]))
	require.Equal(t, uint32(16), binary.LittleEndian.Uint32(out[16:20]))
	require.Equal(t, uint16(1), binary.LittleEndian.Uint16(out[20:22]))
	require.Equal(t, uint16(1), binary.LittleEndian.Uint16(out[22:24]))
	require.Equal(t, uint32(24000), binary.LittleEndian.Uint32(out[24:28]))
	require.Equal(t, uint32(24000*2), binary.LittleEndian.Uint32(out[28:32]))
	require.Equal(t, uint16(2), binary.LittleEndian.Uint16(out[32:34]))
	require.Equal(t, uint16(16), binary.LittleEndian.Uint16(out[34:36]))
	require.Equal(t, "data", string(out[36:40]))
	require.Equal(t, uint32(len(pcm)), binary.LittleEndian.Uint32(out[40:44]))
	require.Equal(t, pcm, out[44:])
}

func TestEncodePCMEmptyPayload(t *testing.T) {
	out, err := EncodePCM(nil, SampleRate, Channels)
	require.NoError(t, err)
	require.Len(t, out, 44)
	require.Equal(t, uint32(0), binary.LittleEndian.Uint32(out[40:44]))
}

func TestEncodePCMStereoFormatFields(t *testing.T) {
	pcm := make([]byte, 16)

	out, err := EncodePCM(pcm, 44100, 2)
	require.NoError(t, err)

	require.Equal(t, uint16(2), binary.LittleEndian.Uint16(out[22:24]))
	require.Equal(t, uint32(44100), binary.LittleEndian.Uint32(out[24:28]))
	require.Equal(t, uint32(44100*2*2), binary.LittleEndian.Uint32(out[28:32]))
	require.Equal(t, uint16(4), binary.LittleEndian.Uint16(out[32:34]))
}

func TestEncodePCMRejectsMisalignedInput(t *testing.T) {
	_, err := EncodePCM([]byte{0x01, 0x02, 0x03}, SampleRate, Channels)
	require.ErrorIs(t, err, ErrInvalidAudioData)

	// Six bytes is three mono frames but only one and a half stereo frames.
	_, err = EncodePCM(make([]byte, 6), SampleRate, 2)
	require.ErrorIs(t, err, ErrInvalidAudioData)
}

func TestEncodePCMDeterministic(t *testing.T) {
	pcm := []byte{0xff, 0x7f, 0x00, 0x80}

	a, err := EncodePCM(pcm, SampleRate, Channels)
	require.NoError(t, err)
	b, err := EncodePCM(pcm, SampleRate, Channels)
	require.NoError(t, err)
	require.Equal(t, a, b)
}
