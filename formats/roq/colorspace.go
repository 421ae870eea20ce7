// SPDX-License-Identifier: EPL-2.0

package roq

import (
	"image/color"

	"github.com/ik5/roqplay/utils"
)

// Pixel is the set of packed pixel types a Colorspace can produce.
type Pixel interface {
	~uint16 | ~uint32
}

// Colorspace maps a YCbCr sample with alpha to one packed output pixel.
type Colorspace[C Pixel] interface {
	// Default is the value frame buffers and codebooks start with.
	Default() C
	// Convert packs a BT.601 studio-range sample into a pixel.
	Convert(y, cb, cr int32, a uint8) C
	// NRGBA unpacks a pixel for image export.
	NRGBA(c C) color.NRGBA
}

// ycbcrToRGB returns unclamped full-range RGB components.
func ycbcrToRGB(y, cb, cr int32) (r, g, b float32) {
	yp := float32(y-16) * 1.164
	fcb := float32(cb - 128)
	fcr := float32(cr - 128)

	r = yp + 1.596*fcr
	g = yp - 0.813*fcr - 0.391*fcb
	b = yp + 2.018*fcb
	return r, g, b
}

// Bgr565 packs pixels as 16 bit, red in the top 5 bits, green in the middle
// 6 and blue in the low 5. Alpha is dropped.
type Bgr565 struct{}

func (Bgr565) Default() uint16 { return 0 }

func (Bgr565) Convert(y, cb, cr int32, _ uint8) uint16 {
	r, g, b := ycbcrToRGB(y, cb, cr)

	r5 := uint16(utils.ClampFloat32(r/8, 0, 31))
	g6 := uint16(utils.ClampFloat32(g/4, 0, 63))
	b5 := uint16(utils.ClampFloat32(b/8, 0, 31))

	return r5<<11 | g6<<5 | b5
}

func (Bgr565) NRGBA(c uint16) color.NRGBA {
	r5 := uint8(c>>11) & 0x1F
	g6 := uint8(c>>5) & 0x3F
	b5 := uint8(c) & 0x1F

	return color.NRGBA{
		R: r5<<3 | r5>>2,
		G: g6<<2 | g6>>4,
		B: b5<<3 | b5>>2,
		A: 0xFF,
	}
}

// Rgba8888 packs pixels as 32 bit with red in the low byte and alpha in the
// high byte, the memory order of an RGBA texture on a little-endian host.
type Rgba8888 struct{}

func (Rgba8888) Default() uint32 { return 0 }

func (Rgba8888) Convert(y, cb, cr int32, a uint8) uint32 {
	r, g, b := ycbcrToRGB(y, cb, cr)

	r8 := uint32(utils.ClampFloat32(r, 0, 255))
	g8 := uint32(utils.ClampFloat32(g, 0, 255))
	b8 := uint32(utils.ClampFloat32(b, 0, 255))

	return r8 | g8<<8 | b8<<16 | uint32(a)<<24
}

func (Rgba8888) NRGBA(c uint32) color.NRGBA {
	return color.NRGBA{
		R: uint8(c),
		G: uint8(c >> 8),
		B: uint8(c >> 16),
		A: uint8(c >> 24),
	}
}
