// SPDX-License-Identifier: EPL-2.0

// Package audio provides the PCM primitives used to play back or export the
// sound track of a RoQ stream.
//
// # Source
//
// Source is a pull-based stream of interleaved float32 samples in [-1, 1].
// formats/roq exposes the audio of a stream as a Source and formats/wav reads
// WAV files into one, so both plug into the same pipeline:
//
//	src, _ := roq.NewAudioSource(file)
//	mono := audio.NewMonoMixer(audio.NewResampler(src, 8000))
//
//	buf := make([]float32, 4096)
//	for {
//	    n, err := mono.ReadSamples(buf)
//	    // use buf[:n]
//	    if err == io.EOF {
//	        break
//	    }
//	}
//
// Sources report the end of the stream with io.EOF, possibly together with
// the last samples.
//
// # Resampling and downmixing
//
// Resampler changes the sample rate with Catmull-Rom interpolation and a
// one-pole low-pass filter when downsampling. MonoMixer averages all channels
// of a frame.
//
// # Voice scheduling
//
// Hosts that hand PCM16 blocks to mono voices use Deinterleave to split a
// stereo block into one buffer per channel and Scheduler to compute the host
// time each block has to start at so consecutive blocks play back to back.
package audio
