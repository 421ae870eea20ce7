// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes 16-bit PCM WAV files on top of
// github.com/go-audio/wav.
//
// Decoder turns a WAV stream into an audio.Source:
//
//	src, err := wav.Decoder{}.Decode(file)
//	if err != nil {
//	    return err
//	}
//	defer src.Close()
//
// Readers that cannot seek are buffered in memory first.
//
// WritePCM16 and WriteIntBuffer write a complete file. The RIFF sizes are
// patched when the data is done, so they take an io.WriteSeeker such as an
// *os.File:
//
//	out, _ := os.Create("track.wav")
//	err := wav.WritePCM16(out, roq.SampleRate, 2, samples)
package wav
