// SPDX-License-Identifier: EPL-2.0

package roq

import (
	"fmt"
	"io"

	"github.com/ik5/roqplay/audio"
	"github.com/ik5/roqplay/utils"
)

// AudioSource plays the sound chunks of a stream as an audio.Source. Video
// chunks are still decoded, since the format interleaves both, but their
// frames are dropped.
type AudioSource struct {
	dec      *Decoder[uint16]
	closer   io.Closer
	channels int

	pending []int16 // samples of the current block not yet returned
	block   []int16
	eof     bool
}

var _ audio.Source = (*AudioSource)(nil)

// NewAudioSource reads r up to its first sound chunk to learn the channel
// count. If r is an io.Closer, Close closes it.
func NewAudioSource(r io.Reader, opts ...Option) (*AudioSource, error) {
	dec, err := NewBgr565Decoder(r, opts...)
	if err != nil {
		return nil, err
	}

	s := &AudioSource{dec: dec}
	if c, ok := r.(io.Closer); ok {
		s.closer = c
	}

	if err := s.fill(); err != nil {
		return nil, err
	}
	if s.eof {
		return nil, ErrNoAudio
	}

	return s, nil
}

// fill loads the next sound block into pending, or sets eof.
func (s *AudioSource) fill() error {
	for {
		ev, err := s.dec.Next()
		if err != nil {
			return err
		}

		switch ev.Kind {
		case EventEndOfFile:
			s.eof = true
			return nil
		case EventAudio:
			if s.channels == 0 {
				s.channels = ev.Channels
			}
			if ev.Channels != s.channels {
				return fmt.Errorf("sound chunk with %d channels in a %d channel stream: %w",
					ev.Channels, s.channels, ErrMixedChannels)
			}
			s.block = append(s.block[:0], ev.Samples...)
			s.pending = s.block
			if len(s.pending) > 0 {
				return nil
			}
		}
	}
}

func (s *AudioSource) SampleRate() int { return SampleRate }
func (s *AudioSource) Channels() int   { return s.channels }
func (s *AudioSource) BufSize() int    { return 4096 }

func (s *AudioSource) Close() error {
	if s.closer == nil {
		return nil
	}
	if err := s.closer.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// ReadSamples returns whole frames only; a dst shorter than one frame reads
// nothing.
func (s *AudioSource) ReadSamples(dst []float32) (int, error) {
	want := len(dst) - len(dst)%s.channels
	written := 0

	for written < want {
		if len(s.pending) == 0 {
			if s.eof {
				break
			}
			if err := s.fill(); err != nil {
				return written, err
			}
			continue
		}

		n := min(want-written, len(s.pending))
		for i, v := range s.pending[:n] {
			dst[written+i] = utils.Int16ToFloat32(v)
		}
		s.pending = s.pending[n:]
		written += n
	}

	if written == 0 && s.eof && want > 0 {
		return 0, io.EOF
	}
	return written, nil
}
