// SPDX-License-Identifier: EPL-2.0

// Package roqplay plays and converts RoQ video streams.
//
// The decoder lives in formats/roq. This package adds the pieces around it
// that most callers need:
//
//   - Open and OpenFile, which transparently decompress .roq.zst and
//     .roq.gz input
//   - AudioTrackMono16, which extracts a whole sound track as mono PCM
//   - ResampleToMono16, the same for any audio.Source
//
// # Quick Start
//
//	in, err := roqplay.OpenFile("intro.roq.zst")
//	if err != nil {
//	    return err
//	}
//	defer in.Close()
//
//	dec, err := roq.NewRgba8888Decoder(in)
//	if err != nil {
//	    return err
//	}
//	for {
//	    ev, err := dec.Next()
//	    if err != nil || ev.Kind == roq.EventEndOfFile {
//	        return err
//	    }
//	    // ...
//	}
//
// # Audio Processing
//
// Sound goes through the audio subpackage, which resamples and downmixes
// any audio.Source:
//
//	src, _ := roq.NewAudioSource(in)
//	mono := audio.NewMonoMixer(audio.NewResampler(src, 16000))
//
// formats/wav or formats/aiff writes the result and formats/frame writes
// video frames as PNG or QOI. examples/roqdump ties them together on the
// command line.
package roqplay
