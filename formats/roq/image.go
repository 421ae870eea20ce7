// SPDX-License-Identifier: EPL-2.0

package roq

import (
	"image"
)

// Image unpacks a decoded frame into an image. pix is row-major with a
// stride of width pixels.
func Image[C Pixel](pix []C, width, height int, cs Colorspace[C]) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))

	for y := range height {
		row := pix[y*width : (y+1)*width]
		off := y * img.Stride
		for x, c := range row {
			px := cs.NRGBA(c)
			img.Pix[off+4*x+0] = px.R
			img.Pix[off+4*x+1] = px.G
			img.Pix[off+4*x+2] = px.B
			img.Pix[off+4*x+3] = px.A
		}
	}

	return img
}

// Image returns the last decoded frame as an image, nil before video info
// is known.
func (d *Decoder[C]) Image() *image.NRGBA {
	if d.state == stateUninitialized {
		return nil
	}
	return Image(d.frames.frame(), d.width, d.height, d.cs)
}
