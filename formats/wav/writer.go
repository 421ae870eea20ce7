// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// pcmFormat is the WAVE format tag of integer PCM.
const pcmFormat = 1

// WriteIntBuffer writes buf as a 16-bit PCM WAV file. The header is
// patched once all samples are written, hence the io.WriteSeeker.
func WriteIntBuffer(w io.WriteSeeker, buf *goaudio.IntBuffer) error {
	if buf == nil || buf.Format == nil || buf.Format.NumChannels < 1 {
		return ErrInvalidChannels
	}
	if len(buf.Data)%buf.Format.NumChannels != 0 {
		return ErrPartialFrame
	}

	enc := wav.NewEncoder(w, buf.Format.SampleRate, 16, buf.Format.NumChannels, pcmFormat)

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("writing wav samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finishing wav file: %w", err)
	}

	return nil
}

// WritePCM16 writes interleaved 16-bit samples as a WAV file.
func WritePCM16(w io.WriteSeeker, sampleRate, channels int, samples []int16) error {
	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(s)
	}

	return WriteIntBuffer(w, &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: channels,
			SampleRate:  sampleRate,
		},
		Data:           data,
		SourceBitDepth: 16,
	})
}
