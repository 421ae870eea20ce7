// SPDX-License-Identifier: EPL-2.0

package frame

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"sort"
	"sync"

	"github.com/xfmoulet/qoi"
)

// Encoder writes one decoded frame in an image format.
type Encoder interface {
	Encode(w io.Writer, img image.Image) error
	// Ext is the file extension without the dot.
	Ext() string
}

// PNG encodes frames with image/png at best speed.
type PNG struct{}

func (PNG) Ext() string { return "png" }

func (PNG) Encode(w io.Writer, img image.Image) error {
	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	if err := enc.Encode(w, img); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}

// QOI encodes frames in the Quite OK Image format.
type QOI struct{}

func (QOI) Ext() string { return "qoi" }

func (QOI) Encode(w io.Writer, img image.Image) error {
	if err := qoi.Encode(w, img); err != nil {
		return fmt.Errorf("encoding qoi: %w", err)
	}
	return nil
}

// Registry maps format names to encoders.
type Registry struct {
	encoders map[string]Encoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		encoders: make(map[string]Encoder),
		mtx:      &sync.Mutex{},
	}
}

// DefaultRegistry knows "png" and "qoi".
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("png", PNG{})
	r.Register("qoi", QOI{})
	return r
}

func (r *Registry) Register(format string, e Encoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.encoders[format] = e
}

func (r *Registry) Get(format string) (Encoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	e, ok := r.encoders[format]
	return e, ok
}

// Lookup is Get with an error naming the known formats.
func (r *Registry) Lookup(format string) (Encoder, error) {
	if e, ok := r.Get(format); ok {
		return e, nil
	}
	return nil, fmt.Errorf("%w: %q (have %v)", ErrUnknownFormat, format, r.Formats())
}

// Formats lists the registered names in order.
func (r *Registry) Formats() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	names := make([]string, 0, len(r.encoders))
	for name := range r.encoders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
