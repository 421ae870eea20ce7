// SPDX-License-Identifier: EPL-2.0

// Package aiff reads and writes 16-bit PCM AIFF files on top of
// github.com/go-audio/aiff. It mirrors formats/wav for hosts that prefer
// big-endian sample data.
//
//	src, err := aiff.Decoder{}.Decode(file)
//	if err != nil {
//	    return err
//	}
//	defer src.Close()
//
// WritePCM16 and WriteIntBuffer take an io.WriteSeeker, since the chunk
// sizes are written once the samples are done:
//
//	out, _ := os.Create("track.aiff")
//	err := aiff.WritePCM16(out, roq.SampleRate, 2, samples)
package aiff
