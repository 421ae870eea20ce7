// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
)

// WriteIntBuffer writes buf as a 16-bit PCM AIFF file. The FORM and SSND
// sizes are patched on close, hence the io.WriteSeeker.
func WriteIntBuffer(w io.WriteSeeker, buf *goaudio.IntBuffer) error {
	if buf == nil || buf.Format == nil || buf.Format.NumChannels < 1 {
		return ErrInvalidChannels
	}
	if len(buf.Data)%buf.Format.NumChannels != 0 {
		return ErrPartialFrame
	}

	enc := aiff.NewEncoder(w, buf.Format.SampleRate, 16, buf.Format.NumChannels)

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("writing aiff samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finishing aiff file: %w", err)
	}

	return nil
}

// WritePCM16 writes interleaved 16-bit samples as an AIFF file.
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
