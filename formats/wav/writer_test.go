// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	goaudio "github.com/go-audio/audio"
	"github.com/stretchr/testify/require"

	"github.com/ik5/roqplay/formats/roq"
	"github.com/ik5/roqplay/internal/roqtest"
	"github.com/ik5/roqplay/utils"
)

func TestWritePCM16_RoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.wav")
	f, err := os.Create(path)
	require.NoError(t, err)

	samples := []int16{100, -100, 200, -200, 32767, -32768}
	require.NoError(t, WritePCM16(f, 22050, 2, samples))
	require.NoError(t, f.Close())

	in, err := os.Open(path)
	require.NoError(t, err)

	src, err := Decoder{}.Decode(in)
	require.NoError(t, err)
	defer src.Close()

	require.Equal(t, 22050, src.SampleRate())
	require.Equal(t, 2, src.Channels())

	buf := make([]float32, 16)
	n, err := src.ReadSamples(buf)
	require.NoError(t, err)
	require.Equal(t, len(samples), n)
	for i, s := range samples {
		require.Equal(t, utils.Int16ToFloat32(s), buf[i])
	}

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, int64(44+2*len(samples)), info.Size())
}

func TestWritePCM16_InvalidChannels(t *testing.T) {
	t.Parallel()

	f, err := os.Create(filepath.Join(t.TempDir(), "bad.wav"))
	require.NoError(t, err)
	defer f.Close()

	require.ErrorIs(t, WritePCM16(f, 8000, 0, []int16{1}), ErrInvalidChannels)
	require.ErrorIs(t, WritePCM16(f, 8000, 2, []int16{1, 2, 3}), ErrPartialFrame)
}

func TestWriteIntBuffer_NilFormat(t *testing.T) {
	t.Parallel()

	f, err := os.Create(filepath.Join(t.TempDir(), "nil.wav"))
	require.NoError(t, err)
	defer f.Close()

	err = WriteIntBuffer(f, &goaudio.IntBuffer{Data: []int{1}})
	require.True(t, errors.Is(err, ErrInvalidChannels))
}

func TestWriteIntBuffer_DecodedStereoBlock(t *testing.T) {
	t.Parallel()

	stream := roqtest.NewBuilder(30).SoundStereo(0x0102, []byte{2, 130, 3, 131}).Reader()
	dec, err := roq.NewBgr565Decoder(stream, roq.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	require.NoError(t, err)

	ev, err := dec.Next()
	require.NoError(t, err)
	require.Equal(t, roq.EventAudio, ev.Kind)

	path := filepath.Join(t.TempDir(), "block.wav")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, WriteIntBuffer(f, ev.IntBuffer()))
	require.NoError(t, f.Close())

	in, err := os.Open(path)
	require.NoError(t, err)
	src, err := Decoder{}.Decode(in)
	require.NoError(t, err)
	defer src.Close()

	require.Equal(t, roq.SampleRate, src.SampleRate())
	require.Equal(t, 2, src.Channels())

	buf := make([]float32, 8)
	n, err := src.ReadSamples(buf)
	require.NoError(t, err)
	require.Equal(t, 4, n)

	want := []int16{260, 508, 269, 499}
	for i, s := range want {
		require.Equal(t, utils.Int16ToFloat32(s), buf[i])
	}
}
