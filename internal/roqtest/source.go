// SPDX-License-Identifier: EPL-2.0

package roqtest

import "io"

// ConstantSource is an audio source repeating one value. It implements
// audio.Source without importing it.
type ConstantSource struct {
	sampleRate  int
	channels    int
	totalFrames int
	generated   int
	value       float32
}

func NewConstantSource(sampleRate, channels, totalFrames int, value float32) *ConstantSource {
	return &ConstantSource{
		sampleRate:  sampleRate,
		channels:    channels,
		totalFrames: totalFrames,
		value:       value,
	}
}

func (s *ConstantSource) SampleRate() int { return s.sampleRate }
func (s *ConstantSource) Channels() int   { return s.channels }
func (s *ConstantSource) BufSize() int    { return 4096 }
func (s *ConstantSource) Close() error    { return nil }

func (s *ConstantSource) ReadSamples(dst []float32) (int, error) {
	if s.generated >= s.totalFrames {
		return 0, io.EOF
	}

	frames := min(len(dst)/s.channels, s.totalFrames-s.generated)
	n := frames * s.channels
	for i := range n {
		dst[i] = s.value
	}
	s.generated += frames

	return n, nil
}
