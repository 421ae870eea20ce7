// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/roqplay/utils"
)

// lowpassAlpha is the coefficient of the one-pole filter applied to source
// frames when downsampling.
const lowpassAlpha = 0.5

// Resampler converts a Source to another sample rate with Catmull-Rom
// interpolation. Channel count and interleaving are preserved.
type Resampler struct {
	src      Source
	dstRate  int
	channels int
	step     float64 // source frames consumed per output frame

	// win holds the frames around the interpolation point: t-1, t, t+1, t+2
	win   [4][]float32
	valid [4]bool
	frac  float64

	primed bool
	done   bool // source exhausted
	ended  bool // io.EOF returned to the caller
	frame  []float32

	lowpass bool
	lpState []float32
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	step := float64(src.SampleRate()) / float64(dstRate)

	r := &Resampler{
		src:      src,
		dstRate:  dstRate,
		channels: channels,
		step:     step,
		frame:    make([]float32, channels),
		lowpass:  step > 1,
		lpState:  make([]float32, channels),
	}
	for i := range r.win {
		r.win[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// readFrame pulls one frame from the source into dst. ok reports whether a
// frame was read; io.EOF is returned together with the last frame or alone.
func (r *Resampler) readFrame(dst []float32, first bool) (ok bool, err error) {
	n, err := r.src.ReadSamples(r.frame)
	if n > 0 {
		copy(dst, r.frame[:n])
		if r.lowpass {
			if first {
				copy(r.lpState, dst)
			}
			for c := range dst {
				dst[c] = lowpassAlpha*dst[c] + (1-lowpassAlpha)*r.lpState[c]
				r.lpState[c] = dst[c]
			}
		}
		ok = true
	}

	if err != nil && !errors.Is(err, io.EOF) {
		return ok, fmt.Errorf("%w", err)
	}
	return ok, err
}

// prime fills the window. Missing trailing frames repeat the last one read.
func (r *Resampler) prime() error {
	r.primed = true

	last := -1
	for i := range r.win {
		ok, err := r.readFrame(r.win[i], i == 0)
		if ok {
			r.valid[i] = true
			last = i
		}
		if errors.Is(err, io.EOF) {
			r.done = true
			break
		}
		if err != nil {
			return err
		}
	}

	if last < 0 {
		return io.EOF
	}

	for i := last + 1; i < len(r.win); i++ {
		copy(r.win[i], r.win[last])
		r.valid[i] = true
	}

	return nil
}

// advance slides the window by one source frame.
func (r *Resampler) advance() error {
	if r.done {
		return io.EOF
	}

	tail := r.win[0]
	copy(r.win[:], r.win[1:])
	r.win[3] = tail
	copy(r.valid[:], r.valid[1:])

	ok, err := r.readFrame(r.win[3], false)
	r.valid[3] = ok

	if errors.Is(err, io.EOF) {
		r.done = true
		if !ok {
			return io.EOF
		}
		return nil
	}

	return err
}

// ReadSamples writes resampled frames into dst. len(dst) must be a multiple
// of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if r.ended {
		return 0, io.EOF
	}

	n, err := r.read(dst)
	if errors.Is(err, io.EOF) {
		r.ended = true
	}
	return n, err
}

func (r *Resampler) read(dst []float32) (int, error) {
	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	frames := len(dst) / r.channels
	written := 0

	for written < frames {
		for r.frac >= 1 {
			r.frac--
			if err := r.advance(); err != nil {
				return written * r.channels, err
			}
		}

		if !r.valid[1] || !r.valid[2] {
			return written * r.channels, io.EOF
		}

		x := float32(r.frac)
		out := dst[written*r.channels : (written+1)*r.channels]
		for c := range out {
			y0 := r.win[1][c]
			if r.valid[0] {
				y0 = r.win[0][c]
			}
			y3 := r.win[2][c]
			if r.valid[3] {
				y3 = r.win[3][c]
			}
			out[c] = utils.CubicInterpolate(y0, r.win[1][c], r.win[2][c], y3, x)
		}

		written++
		r.frac += r.step
	}

	return written * r.channels, nil
}
