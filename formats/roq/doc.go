// SPDX-License-Identifier: EPL-2.0

// Package roq decodes RoQ streams: vector quantized video interleaved with
// DPCM audio, as found in id Tech 3 era games.
//
// A stream is a file header followed by chunks. The Decoder pulls one chunk
// at a time from an io.Reader and turns it into an Event:
//
//	dec, err := roq.NewRgba8888Decoder(file)
//	if err != nil {
//	    return err
//	}
//
//	for {
//	    ev, err := dec.Next()
//	    if err != nil {
//	        return err
//	    }
//	    switch ev.Kind {
//	    case roq.EventInitVideo:
//	        // dec.Width() and dec.Height() are known now
//	    case roq.EventVideo:
//	        // ev.Frame holds dec.Width()*dec.Height() pixels
//	    case roq.EventAudio:
//	        // ev.Samples holds interleaved 16-bit PCM at roq.SampleRate
//	    case roq.EventEndOfFile:
//	        return nil
//	    }
//	}
//
// # Colorspaces
//
// Frames are produced in the packed pixel format of a Colorspace. Bgr565
// yields uint16 pixels and Rgba8888 uint32 pixels. Image converts either
// into an *image.NRGBA.
//
// # Audio
//
// AudioSource exposes only the sound of a stream as an audio.Source, so it
// can be fed to the resampler and mixers of the audio package.
//
// # Pacing
//
// The decoder runs as fast as Next is called. A Pacer tells a player on
// which host ticks to pull the next frame, and audio.Scheduler assigns
// start times to sound blocks with DefaultLookahead of slack.
package roq

// DefaultLookahead is how far ahead of the audio clock sound blocks are
// scheduled, in seconds.
const DefaultLookahead = 0.25
