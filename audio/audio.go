// SPDX-License-Identifier: EPL-2.0

package audio

// Source is a pull-based stream of interleaved float32 samples in [-1, 1].
type Source interface {
	// SampleRate of the stream in Hz.
	SampleRate() int
	// Channels per frame, 1 for mono and 2 for stereo.
	Channels() int
	// ReadSamples fills dst with interleaved samples and returns how many
	// values (not frames) were written. (0, io.EOF) ends the stream.
	ReadSamples(dst []float32) (n int, err error)
	// BufSize hints a good size for dst.
	BufSize() int
	// Close releases the underlying reader, if any.
	Close() error
}
