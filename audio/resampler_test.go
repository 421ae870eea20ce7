// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"math"
	"testing"
)

// drain reads src to the end with buffers of size n.
func drain(t *testing.T, src Source, n int) []float32 {
	t.Helper()

	buf := make([]float32, n)
	var out []float32
	for {
		got, err := src.ReadSamples(buf)
		out = append(out, buf[:got]...)
		if errors.Is(err, io.EOF) {
			return out
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}
}

func TestResampler_Metadata(t *testing.T) {
	t.Parallel()

	r := NewResampler(newSilentSource(22050, 2, 1000), 8000)

	if r.SampleRate() != 8000 {
		t.Errorf("SampleRate() = %d, want 8000", r.SampleRate())
	}
	if r.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", r.Channels())
	}
	if r.BufSize() != 4096 {
		t.Errorf("BufSize() = %d, want 4096", r.BufSize())
	}
}

func TestResampler_SameRateConstant(t *testing.T) {
	t.Parallel()

	out := drain(t, NewResampler(newConstantSource(8000, 1, 100, 0.5), 8000), 64)

	if len(out) == 0 {
		t.Fatal("no samples produced")
	}
	for i, s := range out {
		if math.Abs(float64(s-0.5)) > 1e-5 {
			t.Fatalf("out[%d] = %v, want 0.5", i, s)
		}
	}
}

func TestResampler_OutputLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		srcRate   int
		dstRate   int
		tolerance int
	}{
		{name: "roq to telephony", srcRate: 22050, dstRate: 8000, tolerance: 100},
		{name: "cd to roq", srcRate: 44100, dstRate: 22050, tolerance: 100},
		{name: "roq to 48k", srcRate: 22050, dstRate: 48000, tolerance: 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// one second of audio
			src := newSineSource(tt.srcRate, 1, tt.srcRate, 440)
			out := drain(t, NewResampler(src, tt.dstRate), 1024)

			if len(out) < tt.dstRate-tt.tolerance || len(out) > tt.dstRate+tt.tolerance {
				t.Errorf("got %d samples, want ≈%d (±%d)", len(out), tt.dstRate, tt.tolerance)
			}
			for i, s := range out {
				if s < -1.5 || s > 1.5 {
					t.Fatalf("out[%d] = %v outside [-1.5, 1.5]", i, s)
				}
			}
		})
	}
}

func TestResampler_StereoPreserved(t *testing.T) {
	t.Parallel()

	src := newMockSource(22050, 2, 1000, func(_, channel int) float32 {
		if channel == 0 {
			return 0.3
		}
		return 0.7
	})

	out := drain(t, NewResampler(src, 8000), 20)
	if len(out) == 0 || len(out)%2 != 0 {
		t.Fatalf("got %d samples, want a positive even count", len(out))
	}

	for f := range len(out) / 2 {
		if math.Abs(float64(out[2*f]-0.3)) > 0.01 {
			t.Errorf("frame %d left = %v, want ≈0.3", f, out[2*f])
		}
		if math.Abs(float64(out[2*f+1]-0.7)) > 0.01 {
			t.Errorf("frame %d right = %v, want ≈0.7", f, out[2*f+1])
		}
	}
}

func TestResampler_EOFIsSticky(t *testing.T) {
	t.Parallel()

	r := NewResampler(newSilentSource(22050, 1, 100), 8000)
	drain(t, r, 1024)

	n, err := r.ReadSamples(make([]float32, 16))
	if !errors.Is(err, io.EOF) || n != 0 {
		t.Errorf("after EOF ReadSamples() = (%d, %v), want (0, io.EOF)", n, err)
	}
}

func TestResampler_EmptySource(t *testing.T) {
	t.Parallel()

	r := NewResampler(newSilentSource(22050, 1, 0), 8000)

	n, err := r.ReadSamples(make([]float32, 16))
	if !errors.Is(err, io.EOF) || n != 0 {
		t.Errorf("ReadSamples() = (%d, %v), want (0, io.EOF)", n, err)
	}
}

func TestResampler_InvalidDstSize(t *testing.T) {
	t.Parallel()

	r := NewResampler(newSilentSource(22050, 2, 1000), 8000)

	if _, err := r.ReadSamples(make([]float32, 7)); !errors.Is(err, ErrInvalidDstSize) {
		t.Errorf("ReadSamples() error = %v, want ErrInvalidDstSize", err)
	}
}

func TestResampler_Close(t *testing.T) {
	t.Parallel()

	src := newSilentSource(22050, 1, 10)
	if err := NewResampler(src, 8000).Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !src.closed {
		t.Error("Close() did not close the source")
	}
}

func BenchmarkResampler_RoQToTelephony(b *testing.B) {
	buf := make([]float32, 4096)

	b.ReportAllocs()
	for range b.N {
		r := NewResampler(newSineSource(22050, 2, 22050, 440), 8000)
		for {
			if _, err := r.ReadSamples(buf); err != nil {
				break
			}
		}
	}
}
