// SPDX-License-Identifier: EPL-2.0

package roq

// Bytes one 2x2 cell takes in a codebook chunk: four luma samples plus Cb
// and Cr, or four luma/alpha pairs plus Cb and Cr.
const (
	cellBytes      = 6
	cellBytesAlpha = 10
)

// quadrant4x4 is the offset of each 2x2 quadrant inside a 16 pixel 4x4 cell,
// in top-left, top-right, bottom-left, bottom-right order.
var quadrant4x4 = [4]int{0, 2, 8, 10}

// Codebook holds the vector cells frames are built from. Chunks overwrite a
// prefix of each table; cells past that prefix keep their old contents.
type Codebook[C Pixel] struct {
	Cells2x2 [256][4]C
	Cells4x4 [256][16]C
}

func newCodebook[C Pixel](cs Colorspace[C]) *Codebook[C] {
	cb := &Codebook[C]{}
	def := cs.Default()
	for i := range cb.Cells2x2 {
		for j := range cb.Cells2x2[i] {
			cb.Cells2x2[i][j] = def
		}
		for j := range cb.Cells4x4[i] {
			cb.Cells4x4[i][j] = def
		}
	}
	return cb
}

// cellCounts decodes how many 2x2 and 4x4 cells a codebook chunk carries.
// A zero 2x2 count means 256. A zero 4x4 count means 256 only when the
// payload is larger than the 2x2 cells alone.
func cellCounts(size uint32, arg uint16, alpha bool) (n2, n4 int) {
	n2 = int(arg >> 8)
	n4 = int(arg & 0xFF)

	if n2 == 0 {
		n2 = 256
	}

	per := cellBytes
	if alpha {
		per = cellBytesAlpha
	}

	if n4 == 0 && uint64(n2*per) < uint64(size) {
		n4 = 256
	}

	return n2, n4
}

// unpack applies one codebook chunk.
func (cb *Codebook[C]) unpack(data []byte, size uint32, arg uint16, alpha bool, cs Colorspace[C]) error {
	n2, n4 := cellCounts(size, arg, alpha)
	p := payload{data: data}

	var (
		y [4]byte
		a [4]byte
	)

	for i := range n2 {
		a = [4]byte{0xFF, 0xFF, 0xFF, 0xFF}

		if alpha {
			for j := range 4 {
				var err error
				if y[j], err = p.u8(); err != nil {
					return err
				}
				if a[j], err = p.u8(); err != nil {
					return err
				}
			}
		} else if err := p.read(y[:]); err != nil {
			return err
		}

		u, err := p.u8()
		if err != nil {
			return err
		}
		v, err := p.u8()
		if err != nil {
			return err
		}

		for j := range 4 {
			cb.Cells2x2[i][j] = cs.Convert(int32(y[j]), int32(u), int32(v), a[j])
		}
	}

	for i := range n4 {
		for q := range 4 {
			idx, err := p.u8()
			if err != nil {
				return err
			}

			src := &cb.Cells2x2[idx]
			dst := cb.Cells4x4[i][quadrant4x4[q]:]
			dst[0] = src[0]
			dst[1] = src[1]
			dst[4] = src[2]
			dst[5] = src[3]
		}
	}

	return nil
}
